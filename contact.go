package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/smtp"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ahzammaqsood/portfolio/internal/store"
)

const (
	msgMissingFields = "Please fill in all required fields."
	msgInvalidEmail  = "Please enter a valid email address."
	msgSendFailed    = "Sorry, there was an error sending your message. Please try again later."
	msgSent          = "Thank you for your message! I'll get back to you soon."
)

// errMailDisabled means the message was kept but not mailed.
var errMailDisabled = errors.New("mail delivery disabled")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type contactForm struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Subject string `form:"subject"`
	Message string `form:"message"`
}

// problem returns the message shown to the visitor for an invalid form,
// or "" when the form can be sent.
func (f *contactForm) problem() string {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Subject = strings.TrimSpace(f.Subject)
	f.Message = strings.TrimSpace(f.Message)

	if f.Name == "" || f.Email == "" || f.Message == "" {
		return msgMissingFields
	}
	if !emailPattern.MatchString(f.Email) {
		return msgInvalidEmail
	}
	return ""
}

// Mailer delivers contact messages.
type Mailer interface {
	Send(ctx context.Context, m store.Message) error
}

// smtpMailer sends through an authenticated SMTP relay.
type smtpMailer struct {
	cfg SMTPConfig
	to  string
}

func (m smtpMailer) Send(_ context.Context, msg store.Message) error {
	subject := fmt.Sprintf("Portfolio Contact: %s", msg.Name)
	if msg.Subject != "" {
		subject += " - " + msg.Subject
	}
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Body)

	raw := []byte("To: " + m.to + "\r\n" +
		"Subject: " + headerSafe(subject) + "\r\n" +
		"From: " + m.cfg.User + "\r\n" +
		"Reply-To: " + headerSafe(msg.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	if err := smtp.SendMail(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.User, []string{m.to}, raw); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// headerSafe keeps visitor input from adding mail headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

// logMailer is used when no SMTP credentials are configured; messages
// are only kept in the database.
type logMailer struct {
	log *zap.Logger
}

func (m logMailer) Send(_ context.Context, msg store.Message) error {
	m.log.Info("contact message stored, mail delivery disabled",
		zap.String("id", msg.ID), zap.String("from", msg.Email))
	return errMailDisabled
}

func newMailer(cfg Config, log *zap.Logger) Mailer {
	if !cfg.SMTP.Enabled() {
		log.Warn("SMTP credentials not configured, contact messages will not be mailed")
		return logMailer{log: log}
	}
	return smtpMailer{cfg: cfg.SMTP, to: cfg.ToEmail}
}

// Handle contact form submission with HTMX. Fragments are returned with
// 200 so HTMX swaps them in.
func (s *server) handleContact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		s.contactError(c, msgMissingFields)
		return
	}
	if problem := form.problem(); problem != "" {
		s.contactError(c, problem)
		return
	}

	ctx := c.Request.Context()
	msg := store.Message{
		ID:        uuid.NewString(),
		Name:      form.Name,
		Email:     form.Email,
		Subject:   form.Subject,
		Body:      form.Message,
		CreatedAt: s.now(),
	}
	if err := s.store.SaveMessage(ctx, msg); err != nil {
		s.log.Error("saving contact message", zap.Error(err))
		s.contactError(c, msgSendFailed)
		return
	}

	switch err := s.mailer.Send(ctx, msg); {
	case errors.Is(err, errMailDisabled):
	case err != nil:
		s.log.Error("sending contact email", zap.String("id", msg.ID), zap.Error(err))
		s.contactError(c, msgSendFailed)
		return
	default:
		if err := s.store.MarkDelivered(ctx, msg.ID); err != nil {
			s.log.Warn("marking contact message delivered", zap.String("id", msg.ID), zap.Error(err))
		}
	}

	s.log.Info("contact message received", zap.String("id", msg.ID))
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": msgSent,
	})
}

func (s *server) contactError(c *gin.Context, message string) {
	c.HTML(http.StatusOK, "contact-error.html", gin.H{
		"error": message,
	})
}
