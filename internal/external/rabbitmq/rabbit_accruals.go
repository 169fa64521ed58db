package crm

import (
	"context"
	"encoding/json"
	"fmt"

	config "github.com/glkeru/crm/internal/config"
	amqp "github.com/rabbitmq/amqp091-go"
)

const queueAccruals = "accruals"

type AccrualPublisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAccrualPublisher(cfg *config.Config) (publisher *AccrualPublisher, err error) {
	if cfg.RabbitURL == "" {
		return nil, fmt.Errorf("env CRM_RABBIT_URL is not set")
	}

	conn, err := amqp.Dial(cfg.RabbitURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	_, err = ch.QueueDeclare(
		queueAccruals, // name
		false,         // durable
		false,         // delete when unused
		false,         // exclusive
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &AccrualPublisher{conn, ch}, nil
}

func (p *AccrualPublisher) Close() {
	p.ch.Close()
	p.conn.Close()
}

type AccrualConfirm struct {
	CustomerID   string `json:"customerId"`
	PointsEarned int64  `json:"pointsEarned"`
	NewTier      string `json:"newTier"`
	Success      bool   `json:"success"`
}

// подтверждение начисления
func (p *AccrualPublisher) Processed(ctx context.Context, confirm AccrualConfirm) error {
	msg, err := json.Marshal(confirm)
	if err != nil {
		return err
	}

	err = p.ch.PublishWithContext(ctx,
		"",            // exchange
		queueAccruals, // routing key
		false,         // mandatory
		false,         // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        msg,
		})
	if err != nil {
		return err
	}
	return nil
}
