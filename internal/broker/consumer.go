package broker

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

// Consumer lê os eventos publicados pela API (auto-ack).
type Consumer struct {
	conn       *amqp.Connection
	ch         *amqp.Channel
	deliveries <-chan amqp.Delivery
}

func NewConsumer(uri, queue, tag string, prefetch int) (*Consumer, error) {
	conn, ch, err := dialQueue(uri, queue)
	if err != nil {
		return nil, err
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		_ = closeAll(ch, conn)
		return nil, err
	}
	deliveries, err := ch.Consume(
		queue,
		tag,
		true,  // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = closeAll(ch, conn)
		return nil, err
	}
	return &Consumer{conn: conn, ch: ch, deliveries: deliveries}, nil
}

// Deliveries é fechado quando o canal ou a conexão caem.
func (c *Consumer) Deliveries() <-chan amqp.Delivery { return c.deliveries }

func (c *Consumer) Close() error {
	return closeAll(c.ch, c.conn)
}
