package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/store"
)

// Mailer delivers contact form submissions to the site owner.
type Mailer interface {
	Send(name, email, message string) error
}

var errSMTPNotConfigured = errors.New("SMTP credentials not configured")

type smtpMailer struct {
	cfg SMTPConfig
	to  string
}

func newSMTPMailer(cfg SMTPConfig, to string) *smtpMailer {
	return &smtpMailer{cfg: cfg, to: to}
}

func (m *smtpMailer) Send(name, email, message string) error {
	if m.cfg.User == "" || m.cfg.Pass == "" {
		return errSMTPNotConfigured
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, name, email, message)

	msg := []byte("To: " + m.to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.cfg.User + "\r\n" +
		"Reply-To: " + email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	if err := smtp.SendMail(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.User, []string{m.to}, msg); err != nil {
		return fmt.Errorf("sending contact email: %w", err)
	}
	return nil
}

// contactForm is a validated contact submission.
type contactForm struct {
	Name    string
	Email   string
	Message string
}

// parseContactForm returns the submission and, when it is unusable, the
// message to show the visitor.
func parseContactForm(c *gin.Context) (contactForm, string) {
	f := contactForm{
		Name:    strings.TrimSpace(c.PostForm("fullName")),
		Email:   strings.TrimSpace(c.PostForm("email")),
		Message: strings.TrimSpace(c.PostForm("message")),
	}
	if f.Name == "" || f.Email == "" || f.Message == "" {
		return f, "Please fill in your name, email and message."
	}
	// Header injection guard: name and email end up in mail headers.
	if strings.ContainsAny(f.Name+f.Email, "\r\n") {
		return f, "Please enter a valid name and email address."
	}
	if _, err := mail.ParseAddress(f.Email); err != nil {
		return f, "Please enter a valid email address."
	}
	return f, ""
}

func (s *server) handleContact(c *gin.Context) {
	form, problem := parseContactForm(c)
	if problem != "" {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": problem,
		})
		return
	}

	ctx := c.Request.Context()
	id, err := s.db.SaveMessage(ctx, store.Message{Name: form.Name, Email: form.Email, Body: form.Message})
	if err != nil {
		log.Printf("Error saving contact message: %v", err)
	}

	if err := s.mailer.Send(form.Name, form.Email, form.Message); err != nil {
		log.Printf("Error sending email: %v", err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}
	if id > 0 {
		if err := s.db.MarkDelivered(ctx, id); err != nil {
			log.Printf("Error marking message delivered: %v", err)
		}
	}

	log.Printf("Email sent successfully from %s (%s)", form.Name, form.Email)
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
