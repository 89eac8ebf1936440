package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories depend on an interface
// that tests can satisfy with miniredis-backed clients.
type Client interface {
	redis.UniversalClient
}

// Pipeliner wraps redis.Pipeliner for batch operations
type Pipeliner interface {
	redis.Pipeliner
}
