package service

import (
	"context"
	"movie_catalog/db/rabbitmq"
	"movie_catalog/db/redis"
)

// Transport adapters behind the publisher interfaces, so the orchestration
// can be tested with failing fakes.

type RabbitBroadcastPublisher struct{}

func (RabbitBroadcastPublisher) Publish(ctx context.Context, queueName string, body []byte) error {
	return rabbitmq.PublishRabbit(ctx, queueName, body)
}

type RedisNotifyPublisher struct{}

func (RedisNotifyPublisher) Publish(ctx context.Context, channel string, body []byte) error {
	return redis.PublishRedis(ctx, channel, body)
}
