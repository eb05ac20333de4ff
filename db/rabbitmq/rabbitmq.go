package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"movie_catalog/configs"
	"sync"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Process-wide connection to the broadcast broker. A lost connection only
// degrades notifications, writes keep going.

var (
	conn    *amqp.Connection
	channel *amqp.Channel
	mu      sync.Mutex
)

var ErrNotConnected = errors.New("rabbitmq not connected")

func ConnectRabbit() {
	mu.Lock()
	defer mu.Unlock()

	c, err := amqp.Dial(configs.GetConfigs().RabbitmqUrl)
	if err != nil {
		fmt.Println("====> [[MovieCatalog Rabbitmq Client:", err, "]]")
		return
	}
	ch, err := c.Channel()
	if err != nil {
		fmt.Println("====> [[MovieCatalog Rabbitmq Channel:", err, "]]")
		return
	}

	conn = c
	channel = ch
	fmt.Println("====> [[MovieCatalog Rabbitmq Client: PONG <nil> ]]")
}

func Close() {
	mu.Lock()
	defer mu.Unlock()
	if channel != nil {
		_ = channel.Close()
	}
	if conn != nil {
		_ = conn.Close()
	}
}

//------------------------------------------
//------------------------------------------

// PublishRabbit declares the durable queue and publishes one persistent
// message on it. One attempt, the caller decides what a failure means.
func PublishRabbit(ctx context.Context, queueName string, body []byte) error {
	mu.Lock()
	ch := channel
	mu.Unlock()

	if ch == nil {
		return ErrNotConnected
	}

	q, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return err
	}

	return ch.PublishWithContext(ctx,
		"", // default exchange
		q.Name,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			MessageId:    uuid.NewString(),
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}
