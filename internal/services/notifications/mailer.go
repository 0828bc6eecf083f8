package notifications

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"time"

	"github.com/gracefm/radio-api/internal/models"
	"github.com/gracefm/radio-api/pkg/config"
)

// MailNotifier sends notification emails over SMTP and records each one.
// Delivery happens in a background goroutine so callers never wait on the
// mail server.
type MailNotifier struct {
	cfg  config.MailConfig
	repo Repository
}

// NewMailNotifier creates an SMTP-backed notifier
func NewMailNotifier(cfg config.MailConfig, repo Repository) *MailNotifier {
	return &MailNotifier{cfg: cfg, repo: repo}
}

func (n *MailNotifier) Notify(ctx context.Context, user *models.User, kind, subject, body string) error {
	now := time.Now()
	record := &models.Notification{
		UserID:  user.ID,
		Kind:    kind,
		Subject: subject,
		Body:    body,
		SentAt:  &now,
	}
	if err := n.repo.Record(ctx, record); err != nil {
		return err
	}

	if !n.cfg.Enabled {
		return nil
	}

	email := user.Email
	go func() {
		if err := n.send(email, subject, body); err != nil {
			log.Printf("Failed to send %s email to %s: %v", kind, email, err)
		}
	}()
	return nil
}

func (n *MailNotifier) send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	auth := smtp.PlainAuth("", n.cfg.From, n.cfg.Password, n.cfg.Host)

	msg := []byte("From: " + n.cfg.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		body + "\r\n")

	return smtp.SendMail(addr, auth, n.cfg.From, []string{to}, msg)
}

// RecordingNotifier captures notifications in memory. Used in tests and as
// a fallback when mail is disabled entirely.
type RecordingNotifier struct {
	Sent []models.Notification
}

// NewRecordingNotifier creates an in-memory notifier
func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{}
}

func (n *RecordingNotifier) Notify(_ context.Context, user *models.User, kind, subject, body string) error {
	now := time.Now()
	n.Sent = append(n.Sent, models.Notification{
		UserID:  user.ID,
		Kind:    kind,
		Subject: subject,
		Body:    body,
		SentAt:  &now,
	})
	return nil
}
