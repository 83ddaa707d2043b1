package rdb

import (
	"context"

	"github.com/meower-media/notify/pkg/events"
	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

func Init(uri string) error {
	// Get Redis options
	rdbOpts, err := redis.ParseURL(uri)
	if err != nil {
		return err
	}

	// Create Redis client
	Client = redis.NewClient(rdbOpts)

	// Ping Redis cluster
	if err := Client.Ping(context.Background()).Err(); err != nil {
		return err
	}

	return nil
}

// Publisher sends events on a single Redis channel.
type Publisher struct {
	client  *redis.Client
	channel string
}

func NewPublisher(client *redis.Client, channel string) *Publisher {
	return &Publisher{client: client, channel: channel}
}

func (p *Publisher) Publish(ctx context.Context, op uint8, v interface{}) error {
	// Marshal packet
	marshaledPacket, err := events.Marshal(op, v)
	if err != nil {
		return err
	}

	// Send packet
	return p.client.Publish(ctx, p.channel, marshaledPacket).Err()
}

// Subscribe streams raw payloads published on channel. The returned channel
// is closed once the subscription is closed.
func Subscribe(ctx context.Context, client *redis.Client, channel string) (<-chan []byte, func() error, error) {
	pubsub := client.Subscribe(ctx, channel)

	// Wait for the subscription to be confirmed
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, nil, err
	}

	payloads := make(chan []byte, 64)
	go func() {
		defer close(payloads)
		for msg := range pubsub.Channel() {
			select {
			case payloads <- []byte(msg.Payload):
			case <-ctx.Done():
				return
			}
		}
	}()

	return payloads, pubsub.Close, nil
}
