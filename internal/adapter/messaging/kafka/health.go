package kafka

import (
	"context"
	"errors"

	"github.com/segmentio/kafka-go"
)

// HealthChecker implements ports.HealthChecker against the first
// reachable broker.
type HealthChecker struct {
	brokers []string
}

func NewHealthChecker(brokers []string) *HealthChecker {
	return &HealthChecker{brokers: brokers}
}

func (h *HealthChecker) Ping(ctx context.Context) error {
	if len(h.brokers) == 0 {
		return errors.New("no kafka brokers configured")
	}

	var lastErr error
	for _, broker := range h.brokers {
		conn, err := kafka.DialContext(ctx, "tcp", broker)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = conn.Brokers()
		conn.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return lastErr
}

func (h *HealthChecker) Name() string {
	return "kafka"
}
