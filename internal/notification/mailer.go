package notification

import (
	"go.uber.org/zap"
	mail "gopkg.in/mail.v2"

	"rentease/internal/config"
	"rentease/internal/logger"
)

// Sender delivers human-facing notifications. Implementations are best-effort:
// failures are logged, never propagated to the caller.
type Sender interface {
	Send(to, subject, body string)
}

// Mailer sends plain-text email over SMTP asynchronously.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewMailer(cfg *config.SMTPConfig) *Mailer {
	return &Mailer{
		host: cfg.Host,
		port: cfg.Port,
		user: cfg.User,
		pass: cfg.Password,
		from: cfg.From,
	}
}

func (m *Mailer) Send(to, subject, body string) {
	if to == "" {
		return
	}

	go func() {
		msg := mail.NewMessage()
		msg.SetHeader("From", m.from)
		msg.SetHeader("To", to)
		msg.SetHeader("Subject", subject)
		msg.SetBody("text/plain", body)

		dialer := mail.NewDialer(m.host, m.port, m.user, m.pass)
		if err := dialer.DialAndSend(msg); err != nil {
			logger.Error("Failed to send email",
				zap.String("to", to),
				zap.String("subject", subject),
				zap.Error(err),
			)
			return
		}

		logger.Debug("Email sent", zap.String("to", to))
	}()
}
