package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sparksonic/portal/internal/config"
	"github.com/sparksonic/portal/internal/events"
)

// NotificationService forwards domain events to the office: structured log
// lines always, plus an optional webhook POST when configured. Direct SMTP
// delivery is intentionally not wired here.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
	client     *http.Client
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventCustomerRegistered, n.handleCustomerRegistered)
	n.dispatcher.Subscribe(events.EventQuoteRequested, n.handleQuoteRequested)
	n.dispatcher.Subscribe(events.EventTicketOpened, n.handleTicketOpened)
	n.dispatcher.Subscribe(events.EventContactReceived, n.handleContactReceived)
}

func (n *NotificationService) handleCustomerRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("CustomerRegistered", zap.Any("payload", event.Payload))
	n.notifyEmail(event)
	return nil
}

func (n *NotificationService) handleQuoteRequested(ctx context.Context, event events.Event) error {
	n.logger.Info("QuoteRequested", zap.Any("payload", event.Payload))
	n.notifyEmail(event)
	n.notifyWebhook(ctx, event)
	return nil
}

func (n *NotificationService) handleTicketOpened(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketOpened", zap.Any("payload", event.Payload))
	n.notifyEmail(event)
	n.notifyWebhook(ctx, event)
	return nil
}

func (n *NotificationService) handleContactReceived(ctx context.Context, event events.Event) error {
	n.logger.Info("ContactReceived", zap.Any("payload", event.Payload))
	n.notifyEmail(event)
	n.notifyWebhook(ctx, event)
	return nil
}

func (n *NotificationService) notifyEmail(event events.Event) {
	if strings.TrimSpace(n.cfg.EmailTo) == "" {
		return
	}
	n.logger.Debug("email notification queued",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("to", n.cfg.EmailTo),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) notifyWebhook(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Warn("webhook notification failed", zap.Error(err))
		return
	}
	_ = resp.Body.Close()
}
