package notify

import (
	"bytes"
	"context"
	"crypto/tls"
	"embed"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"psicomapa-backend/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var emailTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// SMTPConfig holds SMTP connection parameters
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	TLS      bool
}

// Message is a rendered email
type Message struct {
	To      []string
	Subject string
	HTML    string
}

//go:generate mockgen -source=mailer.go -destination=../mocks/mailer_mocks.go -package=mocks

// Mailer sends transactional email
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// NewMailer returns an SMTP mailer, or a logging no-op mailer when no host is configured
func NewMailer(cfg SMTPConfig) Mailer {
	if cfg.Host == "" {
		return &NoopMailer{}
	}
	return NewSMTPMailer(cfg)
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends email via SMTP
type SMTPMailer struct {
	config   SMTPConfig
	sendMail sendFunc
}

// NewSMTPMailer creates an SMTP-based mailer
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	m := &SMTPMailer{config: cfg}
	m.sendMail = smtp.SendMail
	if cfg.TLS {
		m.sendMail = m.sendTLS
	}
	return m
}

// Send delivers msg to every recipient
func (m *SMTPMailer) Send(ctx context.Context, msg *Message) error {
	if msg == nil || len(msg.To) == 0 {
		return fmt.Errorf("email has no recipients")
	}

	addr := net.JoinHostPort(m.config.Host, strconv.Itoa(m.config.Port))
	var auth smtp.Auth
	if m.config.Username != "" && m.config.Password != "" {
		auth = smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	}

	body := buildEmailBody(m.config.From, msg.To, msg.Subject, msg.HTML)
	if err := m.sendMail(addr, auth, envelopeAddress(m.config.From), msg.To, body); err != nil {
		return fmt.Errorf("send email %q: %w", msg.Subject, err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"subject":    msg.Subject,
		"recipients": len(msg.To),
	}).Info("Email sent")
	return nil
}

func (m *SMTPMailer) sendTLS(addr string, auth smtp.Auth, from string, to []string, body []byte) error {
	conn, err := tls.DialWithDialer(&net.Dialer{Timeout: 10 * time.Second}, "tcp", addr, &tls.Config{
		ServerName: m.config.Host,
		MinVersion: tls.VersionTLS12,
	})
	if err != nil {
		return fmt.Errorf("tls dial %s: %w", addr, err)
	}

	client, err := smtp.NewClient(conn, m.config.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp client: %w", err)
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}
	if err := client.Mail(from); err != nil {
		return fmt.Errorf("smtp MAIL FROM: %w", err)
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("smtp RCPT TO %s: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("smtp write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close data: %w", err)
	}
	return client.Quit()
}

// envelopeAddress extracts the bare address from "Name <addr>"
func envelopeAddress(from string) string {
	if i := strings.LastIndex(from, "<"); i >= 0 {
		if j := strings.LastIndex(from, ">"); j > i {
			return from[i+1 : j]
		}
	}
	return from
}

func buildEmailBody(from string, to []string, subject, html string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + strings.Join(to, ", ") + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(html)
	return []byte(b.String())
}

// NoopMailer logs instead of sending
type NoopMailer struct{}

// Send logs the email and returns nil
func (NoopMailer) Send(ctx context.Context, msg *Message) error {
	if msg == nil {
		return nil
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"subject":    msg.Subject,
		"recipients": strings.Join(msg.To, ","),
	}).Info("SMTP not configured, email not sent")
	return nil
}

// InvitationData fills the invitation template
type InvitationData struct {
	FullName         string
	OrganizationName string
	Role             string
	AppURL           string
}

// AssessmentClosedData fills the assessment closed template
type AssessmentClosedData struct {
	OrganizationName string
	AssessmentTitle  string
	Respondents      int64
	AppURL           string
}

// PaymentFailedData fills the payment failed template
type PaymentFailedData struct {
	OrganizationName string
	AmountDue        string
	AppURL           string
}

// InvitationEmail renders the invitation sent to a new profile
func InvitationEmail(to string, data InvitationData) (*Message, error) {
	return render([]string{to}, "Você foi convidado para o PsicoMapa", "invitation.html", data)
}

// AssessmentClosedEmail renders the notice sent to org admins when an assessment closes
func AssessmentClosedEmail(to []string, data AssessmentClosedData) (*Message, error) {
	return render(to, "Avaliação encerrada: "+data.AssessmentTitle, "assessment_closed.html", data)
}

// PaymentFailedEmail renders the notice sent to org admins when an invoice payment fails
func PaymentFailedEmail(to []string, data PaymentFailedData) (*Message, error) {
	return render(to, "Falha no pagamento da assinatura PsicoMapa", "payment_failed.html", data)
}

func render(to []string, subject, name string, data interface{}) (*Message, error) {
	var buf bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return &Message{To: to, Subject: subject, HTML: buf.String()}, nil
}
