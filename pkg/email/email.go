// Package email, e-posta gönderimi için soyutlama katmanı.
//
// Service'ler Sender interface'ine bağımlıdır; şu anki implementasyon Resend API'dir.
// RESEND_API_KEY tanımlı değilse composition root Sender vermez ve
// hoş geldin e-postası atlanır.
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"
)

// Sender, e-posta gönderimi için interface.
type Sender interface {
	// SendWelcome, yeni kayıt olan kullanıcıya hoş geldin e-postası gönderir.
	SendWelcome(ctx context.Context, toEmail, name string) error
}

type resendSender struct {
	client    *resend.Client
	fromEmail string // Resend'de doğrulanmış domain altında olmalı
	appURL    string
}

// NewResendSender, Resend API client'ı ile Sender oluşturur.
func NewResendSender(apiKey, fromEmail, appURL string) Sender {
	return &resendSender{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		appURL:    appURL,
	}
}

var welcomeTmpl = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html lang="tr">
<head><meta charset="utf-8"></head>
<body style="margin:0;padding:0;background-color:#fff7ed;font-family:Arial,Helvetica,sans-serif;">
  <table width="100%" cellpadding="0" cellspacing="0" style="padding:40px 0;">
    <tr><td align="center">
      <table width="480" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;padding:40px;">
        <tr><td>
          <h1 style="color:#ea580c;font-size:24px;margin:0 0 8px 0;">LezzetKeşif</h1>
          <h2 style="color:#1f2937;font-size:18px;margin:0 0 24px 0;">Hoş geldin, {{.Name}}!</h2>
          <p style="color:#4b5563;font-size:15px;line-height:1.6;margin:0 0 24px 0;">
            Ankara'nın en iyi restoranlarını keşfetmeye hazırsın. Favorilerini kaydet, deneyimlerini paylaş.
          </p>
          <a href="{{.Link}}" style="background-color:#ea580c;color:#ffffff;padding:12px 32px;border-radius:6px;text-decoration:none;">Restoranları Keşfet</a>
        </td></tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`))

// renderWelcome, hoş geldin e-postasının HTML gövdesi. İsim HTML-escape edilir.
func renderWelcome(name, appURL string) (string, error) {
	var buf bytes.Buffer
	err := welcomeTmpl.Execute(&buf, struct {
		Name string
		Link string
	}{Name: name, Link: appURL + "/restaurants"})
	if err != nil {
		return "", fmt.Errorf("failed to render welcome email: %w", err)
	}
	return buf.String(), nil
}

func (s *resendSender) SendWelcome(ctx context.Context, toEmail, name string) error {
	html, err := renderWelcome(name, s.appURL)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("LezzetKeşif <%s>", s.fromEmail),
		To:      []string{toEmail},
		Subject: "LezzetKeşif'e hoş geldin",
		Html:    html,
	}
	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}
