package redis

import (
	"context"
	"errors"
	"fmt"
	"movie_catalog/configs"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

// ErrNotConnected covers the startup window before ConnectRedis has run.
var ErrNotConnected = errors.New("redis not connected")

func ConnectRedis() {
	time.Sleep(time.Duration(configs.GetConfigs().WaitForRedisConnectionSec) * time.Second)
	ConnectRedisTo(configs.GetConfigs().RedisUrl, configs.GetConfigs().RedisPassword)
}

func ConnectRedisTo(addr string, password string) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	ctx := context.Background()
	pong, err := redisClient.Ping(ctx).Result()
	fmt.Println("====> [[MovieCatalog Redis Client:", pong, err, "]]")
}

func GetRedis(ctx context.Context, key string) (string, error) {
	if redisClient == nil {
		return "", ErrNotConnected
	}
	val, err := redisClient.Get(ctx, key).Result()
	return val, err
}

func SetRedis(ctx context.Context, key string, value interface{}, duration time.Duration) error {
	if redisClient == nil {
		return ErrNotConnected
	}
	err := redisClient.Set(ctx, key, value, duration).Err()
	return err
}

// PublishRedis pushes a payload on a pub/sub channel, fire and forget.
func PublishRedis(ctx context.Context, channel string, payload interface{}) error {
	if redisClient == nil {
		return ErrNotConnected
	}
	return redisClient.Publish(ctx, channel, payload).Err()
}
