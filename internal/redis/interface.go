package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories depend on an
// interface in this module rather than the driver type directly.
type Client interface {
	redis.UniversalClient
}
