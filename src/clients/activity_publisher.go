package clients

import (
	"encoding/json"
	"fmt"
	"time"

	"bizpulse-api/src/internal/config"
	"bizpulse-api/src/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

// ActivityPublisher emits user activity events. Publishing is best effort:
// callers log the error and carry on.
type ActivityPublisher interface {
	PublishActivity(userID, serviceName, action string, metadata map[string]string) error
}

// channelPublisher is the subset of *amqp.Channel used for publishing.
type channelPublisher interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type amqpActivityPublisher struct {
	channel channelPublisher
	cfg     *config.RabbitMQConfig
	now     func() time.Time
}

func NewActivityPublisher(channel channelPublisher, cfg *config.RabbitMQConfig) ActivityPublisher {
	return &amqpActivityPublisher{
		channel: channel,
		cfg:     cfg,
		now:     time.Now,
	}
}

func (p *amqpActivityPublisher) PublishActivity(userID, serviceName, action string, metadata map[string]string) error {
	message := models.ActivityMessage{
		UserID:      userID,
		ServiceName: serviceName,
		Action:      action,
		Metadata:    metadata,
		Timestamp:   p.now().UTC(),
	}

	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal activity message: %w", err)
	}

	err = p.channel.Publish(
		p.cfg.Exchange,
		p.cfg.RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   message.Timestamp,
		},
	)
	if err != nil {
		logrus.WithError(err).Error("Failed to publish activity message")
		return fmt.Errorf("%w: %v", models.ErrQueuePublish, err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":     userID,
		"service":     serviceName,
		"action":      action,
		"exchange":    p.cfg.Exchange,
		"routing_key": p.cfg.RoutingKey,
	}).Debug("Activity message published")

	return nil
}

// PublishBestEffort publishes and only logs a failure.
func PublishBestEffort(p ActivityPublisher, userID, serviceName, action string, metadata map[string]string) {
	if err := p.PublishActivity(userID, serviceName, action, metadata); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"service": serviceName,
			"action":  action,
		}).Warn("Failed to publish activity")
	}
}

type noopActivityPublisher struct{}

// NewNoopActivityPublisher is used when no broker is configured.
func NewNoopActivityPublisher() ActivityPublisher {
	return noopActivityPublisher{}
}

func (noopActivityPublisher) PublishActivity(string, string, string, map[string]string) error {
	return nil
}
