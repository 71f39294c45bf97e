package rabbitmq

import (
	"errors"
	"fmt"
	"time"

	"mealtrack-go-api/utils"

	"github.com/streadway/amqp"
)

// Connection wraps one named AMQP connection with its channel and queues.
type Connection struct {
	name    string
	Conn    *amqp.Connection
	Channel *amqp.Channel
	Queues  []string
	Err     chan error
	ApiErr  chan error
}

var (
	connectionPool = make(map[string]*Connection)
)

// NewConnection returns the pooled connection for name, creating it if
// needed.
func NewConnection(name string, queues []string) *Connection {
	if c, ok := connectionPool[name]; ok {
		return c
	}
	c := &Connection{
		name:   name,
		Queues: queues,
		Err:    make(chan error),
		ApiErr: make(chan error),
	}
	connectionPool[name] = c
	return c
}

// GetConnection returns the connection which was instantiated
func GetConnection(name string) *Connection {
	return connectionPool[name]
}

func (c *Connection) Connect() error {
	var err error
	c.Conn, err = amqp.Dial(utils.EnvConfig.RabbitMQ.Domain)
	if err != nil {
		return fmt.Errorf("Error in creating rabbitmq connection with %s : %s", utils.EnvConfig.RabbitMQ.Domain, err.Error())
	}
	go func() {
		<-c.Conn.NotifyClose(make(chan *amqp.Error))
		c.Err <- errors.New("Connection Closed")
		c.ApiErr <- errors.New("Api detect Connection Closed")
	}()
	c.Channel, err = c.Conn.Channel()
	if err != nil {
		return fmt.Errorf("Channel: %s", err)
	}
	return nil
}

func (c *Connection) BindQueue() error {
	for _, q := range c.Queues {
		if _, err := c.Channel.QueueDeclare(q, false, false, false, false, nil); err != nil {
			return fmt.Errorf("error in declaring the queue %s", err)
		}
	}
	return nil
}

// Reconnect reconnects the connection
func (c *Connection) Reconnect() error {
	if err := c.Connect(); err != nil {
		return err
	}
	if err := c.BindQueue(); err != nil {
		return err
	}
	return nil
}

func (c *Connection) Consume() (map[string]<-chan amqp.Delivery, error) {
	m := make(map[string]<-chan amqp.Delivery)
	for _, q := range c.Queues {
		deliveries, err := c.Channel.Consume(q, "", true, false, false, false, nil)
		if err != nil {
			return nil, err
		}
		m[q] = deliveries
	}
	return m, nil
}

// HandleConsumedDeliveries keeps fn fed with deliveries for q, reconnecting
// and re-consuming whenever the connection drops.
func (c *Connection) HandleConsumedDeliveries(q string, delivery <-chan amqp.Delivery, fn func(Connection, string, <-chan amqp.Delivery)) {
	for {
		go fn(*c, q, delivery)
		if err := <-c.Err; err != nil {
			for {
				c.Reconnect()

				deliveries, err := c.Consume()
				if err != nil {
					time.Sleep(60 * time.Second)
					fmt.Println("try again")
				} else {
					delivery = deliveries[q]
					break
				}
			}
		}
	}
}
