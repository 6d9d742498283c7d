package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	config "github.com/Rdx99999/bhumi-backend/configs"
	"github.com/Rdx99999/bhumi-backend/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// GenerateCertificateFile renders the certificate template for cert (which
// must have Participant and TrainingProgram preloaded), prints it to PDF via
// headless Chrome, uploads the PDF to Cloudinary, and returns the secure URL.
func GenerateCertificateFile(cert models.Certificate) (string, error) {
	htmlData, err := renderCertificateHTML(cert)
	if err != nil {
		return "", fmt.Errorf("failed to render certificate HTML: %w", err)
	}

	pdfBytes, err := printPDF(htmlData)
	if err != nil {
		return "", fmt.Errorf("failed to print certificate PDF: %w", err)
	}

	url, err := uploadCertificate(pdfBytes, cert.CertificateID)
	if err != nil {
		return "", fmt.Errorf("failed to upload certificate: %w", err)
	}
	return url, nil
}

func renderCertificateHTML(cert models.Certificate) (string, error) {
	tmpl, err := template.ParseFiles("templates/certificate.html")
	if err != nil {
		return "", err
	}

	expiry := ""
	if cert.ExpiryDate != nil {
		expiry = cert.ExpiryDate.Format("January 2, 2006")
	}

	data := struct {
		CertificateID   string
		ParticipantName string
		ProgramTitle    string
		IssueDate       string
		ExpiryDate      string
	}{
		CertificateID:   cert.CertificateID,
		ParticipantName: cert.Participant.FullName,
		ProgramTitle:    cert.TrainingProgram.Title,
		IssueDate:       cert.IssueDate.Format("January 2, 2006"),
		ExpiryDate:      expiry,
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, data); err != nil {
		return "", err
	}
	return rendered.String(), nil
}

func printPDF(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadCertificate(fileBytes []byte, certificateID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.AppConfig.CloudinaryURL)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploader.UploadParams{
		PublicID:     fmt.Sprintf("certificates/%s_%s", certificateID, uuid.New().String()),
		Folder:       "bhumi_certificates",
		ResourceType: "raw",
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}
