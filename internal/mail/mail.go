package mail

import (
	"context"
	"fmt"
	"regexp"

	"github.com/studydesk/dashboard/internal/metrics"
	"gopkg.in/gomail.v2"
)

// Config is an SMTP transport configuration.
type Config struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Secure   bool   `json:"secure"`
	User     string `json:"user"`
	Password string `json:"password"`
	From     string `json:"fromEmail"`
}

// Message is one outgoing email. Text defaults to HTML with tags stripped.
type Message struct {
	To      []string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers messages over one transport.
type Sender interface {
	// Verify dials and authenticates without sending.
	Verify(ctx context.Context) error
	// Send delivers msg in a single transport call. It does not retry.
	Send(ctx context.Context, msg Message) error
}

type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSender returns an SMTP Sender for cfg. Secure selects implicit TLS;
// otherwise STARTTLS is used when the server offers it.
func NewSender(cfg Config) Sender {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	d.SSL = cfg.Secure
	return &smtpSender{dialer: d, from: cfg.From}
}

func (s *smtpSender) Verify(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c, err := s.dialer.Dial()
	if err != nil {
		return fmt.Errorf("mail: connect %s:%d: %w", s.dialer.Host, s.dialer.Port, err)
	}
	return c.Close()
}

func (s *smtpSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.dialer.DialAndSend(NewMessage(s.from, msg)); err != nil {
		metrics.MailSendFailure.WithLabelValues(s.dialer.Host).Inc()
		return fmt.Errorf("mail: send: %w", err)
	}
	metrics.MailSendSuccess.WithLabelValues(s.dialer.Host).Inc()
	return nil
}

// NewMessage builds the gomail message: every recipient in To, Reply-To set
// to the sender, a plain text part and an HTML alternative.
func NewMessage(from string, msg Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Reply-To", from)
	m.SetHeader("Subject", msg.Subject)

	text := msg.Text
	if text == "" {
		text = StripTags(msg.HTML)
	}
	m.SetBody("text/plain", text)
	m.AddAlternative("text/html", msg.HTML)
	return m
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripTags removes anything that looks like an HTML tag.
func StripTags(html string) string {
	return tagPattern.ReplaceAllString(html, "")
}
