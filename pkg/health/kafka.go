package health

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// KafkaChecker dials the notification brokers; one reachable broker is
// enough for the async webhook path to make progress.
type KafkaChecker struct {
	brokers []string
}

func NewKafkaChecker(brokers []string) *KafkaChecker {
	return &KafkaChecker{brokers: brokers}
}

func (c *KafkaChecker) Name() string { return "kafka" }

func (c *KafkaChecker) Check(ctx context.Context) Result {
	var lastErr error
	for _, broker := range c.brokers {
		conn, err := kafka.DialContext(ctx, "tcp", broker)
		if err != nil {
			lastErr = err
			continue
		}
		_ = conn.Close()
		return Result{Status: StatusUp}
	}

	msg := "no brokers configured"
	if lastErr != nil {
		msg = lastErr.Error()
	}
	return Result{Status: StatusDown, Message: msg}
}
