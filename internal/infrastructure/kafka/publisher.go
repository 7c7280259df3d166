package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jawirlabs/topup-order-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type DefaultKafkaPublisher struct {
	writer *kafka.Writer
}

func NewDefaultKafkaPublisher(brokers []string) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *DefaultKafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	var km []kafka.Message
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
			Topic: topic,
		})
	}

	return k.writer.WriteMessages(context.Background(), km...)
}

// PublishTransaction emits a transaction event through any PublisherPort,
// keyed by ref_id so all events of one transaction land on one partition.
func PublishTransaction(port domain.PublisherPort, event TransactionEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return port.Publish(TopicTransactionEvents, domain.Message{Key: []byte(event.RefID), Value: v})
}
