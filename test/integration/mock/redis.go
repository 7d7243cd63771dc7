package mock

import (
	"context"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// Redis is an in-process session store. Keys expire only when the test
// advances the server clock, so TTL behaviour is deterministic.
type Redis struct {
	Client *redis.Client
	server *miniredis.Miniredis
}

func NewRedis() *Redis {
	server, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	return &Redis{
		Client: redis.NewClient(&redis.Options{Addr: server.Addr()}),
		server: server,
	}
}

func (r *Redis) Clear() error {
	return r.Client.FlushAll(context.Background()).Err()
}

// FastForward expires every key whose TTL falls within d.
func (r *Redis) FastForward(d time.Duration) {
	r.server.FastForward(d)
}

func (r *Redis) Close() {
	_ = r.Client.Close()
	r.server.Close()
}
