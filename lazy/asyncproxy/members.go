package asyncproxy

import (
	"context"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/on-the-ground/lazy_ive_go/object"
	"github.com/on-the-ground/lazy_ive_go/shared/future"
)

var _ object.Callable = (*Member)(nil)

// Member is the callable read from an async handle. There is exactly one Member per
// handle and key, so repeated reads of a key return the same pointer.
type Member struct {
	key    string
	invoke func(ctx context.Context, args []any) *future.Future[any]
}

func (m *Member) Key() string {
	return m.key
}

// Invoke resolves the handle's value and reads the member from it. A callable member
// is called with args and its result, awaited if pending, becomes the outcome;
// any other member is the outcome as is.
func (m *Member) Invoke(ctx context.Context, args ...any) *future.Future[any] {
	return m.invoke(ctx, args)
}

// Call lets a Member be passed to object.Call. It returns the *future.Future[any]
// of Invoke and ignores this.
func (m *Member) Call(_ any, args ...any) (any, error) {
	return m.Invoke(context.Background(), args...), nil
}

// memberCache is append-only: a key, once stored, keeps its Member forever.
type memberCache struct {
	shards []*memberShard
}

type memberShard struct {
	mu      sync.Mutex
	members map[string]*Member
}

func newMemberCache(numShards int) *memberCache {
	shards := make([]*memberShard, numShards)
	for i := range shards {
		shards[i] = &memberShard{members: make(map[string]*Member)}
	}
	return &memberCache{shards: shards}
}

func (c *memberCache) loadOrStore(key string, build func() *Member) *Member {
	shard := c.shards[indexByHash(key, len(c.shards))]
	shard.mu.Lock()
	defer shard.mu.Unlock()

	if m, ok := shard.members[key]; ok {
		return m
	}
	m := build()
	shard.members[key] = m
	return m
}

func indexByHash(key string, numShards int) int {
	switch numShards {
	case 0:
		panic("number of shards cannot be 0")
	case 1:
		return 0
	default:
		return int(xxhash.Sum64String(key) % uint64(numShards))
	}
}
