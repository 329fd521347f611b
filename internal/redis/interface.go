package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so stores depend on one narrow type that works for
// both single-node and cluster deployments
type Client interface {
	redis.UniversalClient
}
