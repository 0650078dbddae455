package notification

import (
	"context"
	"strings"

	"go-leave/internal/config"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type noopMailer struct {
	logger *zap.Logger
}

func (m noopMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	m.logger.Debug("mail skipped, smtp not configured",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

// NewMailer returns an SMTP mailer, or a no-op one when SMTP_HOST is unset.
func NewMailer(cfg config.Config, logger ...*zap.Logger) Mailer {
	l := zap.L().Named("notification.mailer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.mailer")
	}

	if cfg.SMTPHost == "" {
		return noopMailer{logger: l}
	}
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.MailFrom,
		logger: l,
	}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if strings.TrimSpace(to) == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("send mail failed", zap.String("to", to), zap.Error(err))
		return err
	}

	m.logger.Info("mail sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
