package services

import (
	"encoding/xml"
	"fmt"
	"sync"
	"time"

	"github.com/Rdx99999/bhumi-backend/models"
	"gorm.io/gorm"
)

// Sitemap is the shared instance used by the HTTP handler and the cron
// warm-up; tests construct their own.
var Sitemap *SitemapService

// SitemapService builds the sitemap XML from the current services and
// training programs and caches the result for a fixed TTL. The cache and the
// clock are explicit so tests can control both.
type SitemapService struct {
	db      *gorm.DB
	baseURL string
	ttl     time.Duration

	mu        sync.Mutex
	cached    []byte
	expiresAt time.Time
	now       func() time.Time
}

func NewSitemapService(db *gorm.DB, baseURL string, ttl time.Duration) *SitemapService {
	return &SitemapService{db: db, baseURL: baseURL, ttl: ttl, now: time.Now}
}

func InitSitemapService(db *gorm.DB, baseURL string, ttl time.Duration) {
	Sitemap = NewSitemapService(db, baseURL, ttl)
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

var staticPages = []string{"", "/about", "/services", "/training-programs", "/verify-certificate", "/contact"}

// XML returns the cached sitemap, rebuilding it when the TTL has lapsed.
func (s *SitemapService) XML() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.now().Before(s.expiresAt) {
		return s.cached, nil
	}

	built, err := s.build()
	if err != nil {
		return nil, err
	}
	s.cached = built
	s.expiresAt = s.now().Add(s.ttl)
	return built, nil
}

// Refresh rebuilds the cache regardless of TTL. The cron warm-up calls this.
func (s *SitemapService) Refresh() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	built, err := s.build()
	if err != nil {
		return err
	}
	s.cached = built
	s.expiresAt = s.now().Add(s.ttl)
	return nil
}

func (s *SitemapService) build() ([]byte, error) {
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}

	for _, p := range staticPages {
		set.URLs = append(set.URLs, sitemapURL{Loc: s.baseURL + p, ChangeFreq: "monthly"})
	}

	var services []models.Service
	if err := s.db.Find(&services).Error; err != nil {
		return nil, err
	}
	for _, svc := range services {
		set.URLs = append(set.URLs, sitemapURL{Loc: fmt.Sprintf("%s/services/%d", s.baseURL, svc.ID)})
	}

	var programs []models.TrainingProgram
	if err := s.db.Find(&programs).Error; err != nil {
		return nil, err
	}
	for _, p := range programs {
		set.URLs = append(set.URLs, sitemapURL{Loc: fmt.Sprintf("%s/training-programs/%s", s.baseURL, p.Slug)})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
