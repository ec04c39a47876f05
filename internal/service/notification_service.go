package service

import (
	"context"
	"fmt"

	mail "github.com/go-mail/mail"
	"go.uber.org/zap"

	"github.com/spec-kit/studio-api/internal/config"
	"github.com/spec-kit/studio-api/internal/events"
)

// NotificationService emails the configured admin when inquiries and
// applications arrive. Send failures are logged, never propagated; mail is a
// best-effort side channel.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.MailConfig
	dialer     *mail.Dialer
}

// NewNotificationService creates the service. With no SMTP host configured
// every send becomes a no-op.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.MailConfig) *NotificationService {
	var dialer *mail.Dialer
	if cfg.Host != "" {
		dialer = mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	}
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
		dialer:     dialer,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventContactReceived, n.handleContactReceived)
	n.dispatcher.Subscribe(events.EventApplicationReceived, n.handleApplicationReceived)
	n.dispatcher.Subscribe(events.EventApplicationStatusChanged, n.handleApplicationStatusChanged)
}

func (n *NotificationService) handleContactReceived(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ContactReceivedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("ContactReceived", zap.String("contact_id", payload.ContactID))
	n.send(
		fmt.Sprintf("New contact inquiry from %s", payload.Name),
		fmt.Sprintf("Name: %s\nEmail: %s\nSubject: %s", payload.Name, payload.Email, payload.Subject),
	)
	return nil
}

func (n *NotificationService) handleApplicationReceived(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ApplicationReceivedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("ApplicationReceived",
		zap.String("application_id", payload.ApplicationID),
		zap.String("job_id", payload.JobID))
	n.send(
		fmt.Sprintf("New application for %s", payload.JobTitle),
		fmt.Sprintf("Candidate: %s\nEmail: %s\nJob: %s", payload.Name, payload.Email, payload.JobTitle),
	)
	return nil
}

func (n *NotificationService) handleApplicationStatusChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ApplicationStatusChangedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("ApplicationStatusChanged",
		zap.String("application_id", payload.ApplicationID),
		zap.String("old_status", string(payload.OldStatus)),
		zap.String("new_status", string(payload.NewStatus)))
	return nil
}

func (n *NotificationService) send(subject, body string) {
	if n.dialer == nil || n.cfg.AdminTo == "" {
		return
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", n.cfg.From)
	msg.SetHeader("To", n.cfg.AdminTo)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(msg); err != nil {
		n.logger.Warn("notification email failed", zap.Error(err))
	}
}
