package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

// SharedTier is the optional cross-process cache backing (spec §4.4
// "an optional shared cache (keyvalue store with pub/sub)"). A nil
// *SharedTier is valid everywhere it's used — callers check for nil,
// which realizes the "null implementation, always-miss" default
// without a separate type.
type SharedTier struct {
	client  *redis.Client
	channel func(tenant string) string
}

// NewSharedTier wraps an existing redis client. The caller owns the
// client's lifecycle (creation and Close).
func NewSharedTier(client *redis.Client) *SharedTier {
	return &SharedTier{
		client: client,
		channel: func(tenant string) string {
			return "rebac:invalidate:" + tenant
		},
	}
}

func (s *SharedTier) generation(ctx context.Context, tenant string) (uint64, error) {
	val, err := s.client.Get(ctx, "rebac:"+tenant+":gen").Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	return val, err
}

func (s *SharedTier) get(ctx context.Context, key Key) (Entry, bool, error) {
	gen, err := s.generation(ctx, key.Tenant)
	if err != nil {
		return Entry{}, false, err
	}

	raw, err := s.client.Get(ctx, key.redisKey(gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Entry{}, false, nil
	}

	if err != nil {
		return Entry{}, false, err
	}

	var entry Entry
	if err := msgpack.Unmarshal(raw, &entry); err != nil {
		return Entry{}, false, err
	}

	return entry, true, nil
}

func (s *SharedTier) put(ctx context.Context, key Key, entry Entry, ttl time.Duration) error {
	gen, err := s.generation(ctx, key.Tenant)
	if err != nil {
		return err
	}

	raw, err := msgpack.Marshal(entry)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, key.redisKey(gen), raw, ttl).Err()
}

// invalidateTenant bumps the shared generation counter and publishes
// on the tenant's invalidation channel so every subscribed process
// drops its in-process entries (spec §4.4 "broadcast via pub/sub so
// every process drops stale entries").
func (s *SharedTier) invalidateTenant(ctx context.Context, tenant string) error {
	gen, err := s.client.Incr(ctx, "rebac:"+tenant+":gen").Result()
	if err != nil {
		return err
	}

	return s.client.Publish(ctx, s.channel(tenant), gen).Err()
}

// Subscribe listens for invalidation broadcasts and calls onInvalidate
// for each one with the tenant and the new generation. Callers
// typically wire onInvalidate to a memoryTier's setGeneration plus a
// sweep. It blocks until ctx is cancelled.
func (s *SharedTier) Subscribe(ctx context.Context, onInvalidate func(tenant string, generation uint64)) error {
	pubsub := s.client.PSubscribe(ctx, "rebac:invalidate:*")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}

			tenant := msg.Channel[len("rebac:invalidate:"):]

			gen, err := parseUint(msg.Payload)
			if err != nil {
				continue
			}

			onInvalidate(tenant, gen)
		}
	}
}

func parseUint(s string) (uint64, error) {
	var v uint64

	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, errors.New("cache: non-numeric generation payload")
		}

		v = v*10 + uint64(r-'0')
	}

	return v, nil
}
