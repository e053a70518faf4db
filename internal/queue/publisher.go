package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const changeQueueName = "oshilog.changes"

// Publisher sends ChangeEvents to the broker.  It satisfies the
// repository Notifier contract; a nil *Publisher is safe to call and
// publishes nothing, so the broker stays optional.
type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewPublisher dials the broker and declares the durable change queue.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if _, err := ch.QueueDeclare(changeQueueName, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return &Publisher{conn: conn, ch: ch}, nil
}

// EntityChanged builds and publishes a ChangeEvent.  Publish failures are
// logged and swallowed: change notification is best-effort and must never
// fail a store mutation that already persisted.
func (p *Publisher) EntityChanged(entity, action, id string) {
	if p == nil {
		return
	}
	ev := ChangeEvent{
		Entity:     entity,
		Action:     action,
		ID:         id,
		OccurredAt: time.Now().Format(time.RFC3339),
	}
	body, err := json.Marshal(ev)
	if err != nil {
		log.Printf("change-publisher: marshal event: %v", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err = p.ch.PublishWithContext(ctx, "", changeQueueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		log.Printf("change-publisher: publish %s.%s failed: %v", ev.Entity, ev.Action, err)
	}
}

// Close releases the channel and connection.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	_ = p.ch.Close()
	_ = p.conn.Close()
}
