// Package rabbitmq реализует подключение к RabbitMQ и публикацию
// событий об ордерах.
package rabbitmq

import (
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

// OrdersExchange имя exchange для событий об ордерах.
const OrdersExchange = "orders"

// OrderCreatedKey routing key события о созданном ордере.
const OrderCreatedKey = "order.created"

// Connect подключается к RabbitMQ с повторными попытками.
func Connect(connection string, retries int, delay time.Duration) (*amqp.Connection, error) {
	const op = "rabbitmq.Connect"
	var conn *amqp.Connection
	var err error

	for range retries {
		conn, err = amqp.Dial(connection)
		if err == nil {
			return conn, nil
		}
		time.Sleep(delay)
	}

	return nil, fmt.Errorf("%s: %w", op, err)
}

// SetupChannel открывает канал и объявляет exchange и очередь событий об ордерах.
func SetupChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	const op = "rabbitmq.SetupChannel"

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	err = ch.ExchangeDeclare(
		OrdersExchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_, err = ch.QueueDeclare(
		"order.events",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to declare queue: %w", op, err)
	}

	err = ch.QueueBind(
		"order.events",
		OrderCreatedKey,
		OrdersExchange,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to bind queue: %w", op, err)
	}

	return ch, nil
}
