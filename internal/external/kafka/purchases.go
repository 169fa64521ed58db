package crm

import (
	"context"
	"fmt"

	config "github.com/glkeru/crm/internal/config"
	"github.com/segmentio/kafka-go"
)

type PurchaseReader struct {
	reader *kafka.Reader
}

func NewPurchaseReader(cfg *config.Config) (reader *PurchaseReader, err error) {
	if len(cfg.KafkaBrokers) == 0 {
		return nil, fmt.Errorf("env CRM_KAFKA_BROKERS is not set")
	}

	kafkaconfig := kafka.ReaderConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.KafkaTopic,
		GroupID: cfg.KafkaGroup,
	}
	return &PurchaseReader{kafka.NewReader(kafkaconfig)}, nil
}

func (k *PurchaseReader) GetNewMessage(ctx context.Context) (purchaseJSON string, err error) {
	msg, err := k.reader.ReadMessage(ctx)
	if err != nil {
		return "", err
	}
	return string(msg.Value), nil
}

func (k *PurchaseReader) CloseReader() {
	k.reader.Close()
}
