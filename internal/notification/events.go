package notification

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"rentease/internal/config"
	"rentease/internal/domain/delivery"
	"rentease/internal/logger"
)

// EventPublisher emits delivery status changes for external consumers
// (tracking dashboards, courier apps). Best-effort, never blocks the caller.
type EventPublisher interface {
	PublishDeliveryStatus(deliveryID uuid.UUID, status delivery.Status)
}

type statusEvent struct {
	DeliveryID string `json:"delivery_id"`
	Status     string `json:"status"`
	OccurredAt string `json:"occurred_at"`
}

// MQTTPublisher publishes retained status events to
// <prefix>/deliveries/<id>/status so late subscribers see the current state.
type MQTTPublisher struct {
	client      mqtt.Client
	topicPrefix string
}

func NewMQTTPublisher(cfg *config.MQTTConfig) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	opts.SetUsername(cfg.Username)
	opts.SetPassword(cfg.Password)
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(30 * time.Second)
	opts.SetConnectTimeout(10 * time.Second)

	opts.SetOnConnectHandler(func(mqtt.Client) {
		logger.Info("MQTT publisher connected", zap.String("broker", cfg.Broker))
	})
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		logger.Warn("MQTT connection lost", zap.Error(err))
	})

	client := mqtt.NewClient(opts)
	token := client.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", err)
	}

	return &MQTTPublisher{
		client:      client,
		topicPrefix: cfg.TopicPrefix,
	}, nil
}

func (p *MQTTPublisher) PublishDeliveryStatus(deliveryID uuid.UUID, status delivery.Status) {
	payload, err := json.Marshal(statusEvent{
		DeliveryID: deliveryID.String(),
		Status:     string(status),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		logger.Error("Failed to encode delivery status event", zap.Error(err))
		return
	}

	topic := fmt.Sprintf("%s/deliveries/%s/status", p.topicPrefix, deliveryID)

	go func() {
		token := p.client.Publish(topic, 1, true, payload)
		token.Wait()
		if err := token.Error(); err != nil {
			logger.Error("Failed to publish delivery status event",
				zap.String("topic", topic),
				zap.Error(err),
			)
		}
	}()
}

func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishDeliveryStatus(uuid.UUID, delivery.Status) {}
