package utils

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// Shared Redis client for OTP limits, the JWT blacklist, OAuth state and
// the analytics snapshot cache. Set once from main; callers that can run
// without Redis (the analytics cron, cached reads) tolerate a nil client.
var redisClient *redis.Client

func SetRedis(client *redis.Client) {
	redisClient = client
}

func GetRedis() *redis.Client {
	return redisClient
}

var redisCtx = context.Background()

func RedisCtx() context.Context {
	return redisCtx
}
