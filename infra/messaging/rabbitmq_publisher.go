package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/sokoide/bookstore/domain/entity"
	"github.com/sokoide/bookstore/domain/repository"
)

type rabbitMQPublisher struct {
	ch *amqp.Channel
}

// NewRabbitMQPublisher creates an OrderEventPublisher backed by RabbitMQ.
func NewRabbitMQPublisher(ch *amqp.Channel) repository.OrderEventPublisher {
	return &rabbitMQPublisher{ch: ch}
}

func (p *rabbitMQPublisher) PublishOrderEvent(ctx context.Context, event entity.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal order event: %w", err)
	}

	// Routing Key: order.<type> (e.g., order.placed)
	routingKey := fmt.Sprintf("order.%s", event.Type)

	return p.ch.PublishWithContext(ctx,
		ExchangeName, // exchange
		routingKey,   // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
