package asyncproxy

// Config tunes an async handle.
type Config struct {
	MemberCacheShards int // default: 1
}

func NewConfig(memberCacheShards int) Config {
	if memberCacheShards <= 0 {
		memberCacheShards = 1
	}
	return Config{
		MemberCacheShards: memberCacheShards,
	}
}

// DefaultConfig is used by Create.
func DefaultConfig() Config {
	return NewConfig(8)
}
