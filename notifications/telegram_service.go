package notifications

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	config "github.com/Rdx99999/bhumi-backend/configs"
	"github.com/Rdx99999/bhumi-backend/models"
	"github.com/go-resty/resty/v2"
)

// ErrRateLimited is returned when a send is attempted inside the minimum
// interval since the last successful send. The submission itself is already
// persisted; the retry job picks the alert up later.
var ErrRateLimited = errors.New("telegram alert rate limited")

type TelegramService struct {
	client   *resty.Client
	apiBase  string
	botToken string
	chatID   string

	minInterval time.Duration
	maxAttempts int

	mu       sync.Mutex
	lastSent time.Time
	now      func() time.Time
	sleep    func(time.Duration)
}

// Telegram is the shared client, nil when the bot is not configured.
var Telegram *TelegramService

func InitTelegramService() {
	botToken := config.AppConfig.TelegramBotToken
	chatID := config.AppConfig.TelegramChatID

	if botToken == "" || chatID == "" {
		log.Println("⚠️ Telegram notifications not configured. Missing bot token or chat ID.")
		Telegram = nil
		return
	}

	Telegram = NewTelegramService(botToken, chatID)
	log.Println("✅ Telegram notification service initialized successfully.")
}

func NewTelegramService(botToken, chatID string) *TelegramService {
	return &TelegramService{
		client:      resty.New().SetTimeout(10 * time.Second),
		apiBase:     "https://api.telegram.org",
		botToken:    botToken,
		chatID:      chatID,
		minInterval: 30 * time.Second,
		maxAttempts: 3,
		now:         time.Now,
		sleep:       time.Sleep,
	}
}

// SendContactAlert posts a contact submission to the configured chat.
// Delivery failures are retried in-call with doubling backoff; a send inside
// the minimum interval fails fast with ErrRateLimited.
func (s *TelegramService) SendContactAlert(contact models.Contact) error {
	s.mu.Lock()
	if !s.lastSent.IsZero() && s.now().Sub(s.lastSent) < s.minInterval {
		s.mu.Unlock()
		return ErrRateLimited
	}
	s.mu.Unlock()

	phone := "-"
	if contact.Phone != nil {
		phone = *contact.Phone
	}
	text := fmt.Sprintf(
		"📩 New contact submission\n\nName: %s\nEmail: %s\nPhone: %s\nSubject: %s\n\n%s",
		contact.Name, contact.Email, phone, contact.Subject, contact.Message,
	)

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.apiBase, s.botToken)

	var lastErr error
	backoff := time.Second
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		resp, err := s.client.R().
			SetBody(map[string]string{"chat_id": s.chatID, "text": text}).
			Post(url)
		if err == nil && resp.StatusCode() == 200 {
			s.mu.Lock()
			s.lastSent = s.now()
			s.mu.Unlock()
			return nil
		}

		if err != nil {
			lastErr = err
		} else {
			lastErr = fmt.Errorf("telegram API returned %d: %s", resp.StatusCode(), resp.String())
		}

		if attempt < s.maxAttempts {
			s.sleep(backoff)
			backoff *= 2
		}
	}
	return lastErr
}

// SendContactAlert is the package-level convenience used at call sites; it is
// a no-op when the bot is not configured.
func SendContactAlert(contact models.Contact) error {
	if Telegram == nil {
		log.Println("Telegram client not initialized, skipping contact alert.")
		return nil
	}
	return Telegram.SendContactAlert(contact)
}
