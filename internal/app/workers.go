package app

import (
	"context"

	"StorefrontPayments/config"
	"StorefrontPayments/internal/controller/message"
	"StorefrontPayments/internal/external/kafka"
	"StorefrontPayments/internal/messaging"
	"StorefrontPayments/internal/webhook"
	"StorefrontPayments/pkg/logger"
)

// StartWorkers starts the Kafka consumer that dispatches published webhook
// notifications. It returns immediately; the consumer stops when ctx is
// cancelled.
func StartWorkers(
	ctx context.Context,
	l *logger.Logger,
	cfg config.Config,
	processor webhook.Processor,
) {
	controller := message.NewNotificationMessageController(l, processor)
	consumer := kafka.NewConsumer(
		l,
		cfg.KafkaBrokers,
		cfg.KafkaNotificationsTopic,
		cfg.KafkaNotificationsConsumerGroup,
	)
	runner := messaging.NewRunner(l, []messaging.Worker{consumer}, controller.HandleMessage)

	go func() {
		l.Info("Starting notification consumer: topic=%s group=%s",
			cfg.KafkaNotificationsTopic, cfg.KafkaNotificationsConsumerGroup)
		if err := runner.Start(ctx); err != nil {
			l.Error("Notification runner failed: error=%v", err)
		}
	}()
}
