package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/khyunjo1/paytalk-menu-service/internal/domain"
)

type MenuEventPublisher struct {
	writer *kafka.Writer
}

func NewMenuEventPublisher(brokers []string, topic string) *MenuEventPublisher {
	return &MenuEventPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PublishMenuEvent keys by store so one store's lifecycle stays ordered
// within a partition.
func (p *MenuEventPublisher) PublishMenuEvent(event domain.MenuEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(event.StoreID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (p *MenuEventPublisher) Close() error {
	return p.writer.Close()
}
