package asyncproxy

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/on-the-ground/lazy_ive_go/lazy"
	"github.com/on-the-ground/lazy_ive_go/lazy/lazymodel"
	"github.com/on-the-ground/lazy_ive_go/object"
	"go.uber.org/zap"
)

var (
	ErrInit = errors.New("async lazy proxy: factory must not be empty")
	ErrType = errors.New("async lazy proxy: provided value is not an async lazy proxy")
)

type marked interface {
	asyncLazyProxy() lazymodel.Info
}

// Create returns a handle whose value is produced by factory on first use, with the
// default configuration.
func Create[T object.Object](factory *Factory[T]) (*Handle[T], error) {
	return CreateWithConfig(factory, DefaultConfig())
}

func CreateWithConfig[T object.Object](factory *Factory[T], cfg Config) (*Handle[T], error) {
	if factory == nil || factory.produce == nil {
		return nil, ErrInit
	}
	switch factory.kind {
	case lazymodel.FactoryTypeObject, lazymodel.FactoryTypeClass, lazymodel.FactoryTypeFunction:
	default:
		return nil, fmt.Errorf("%w: could not resolve async lazy target type %v", ErrInit, factory.kind)
	}
	cfg = NewConfig(cfg.MemberCacheShards)

	h := &Handle[T]{
		id: uuid.NewString(),
		target: &standIn[T]{
			kind:    factory.kind,
			lazy:    lazy.NewAsyncLazy(factory.produce),
			members: newMemberCache(cfg.MemberCacheShards),
		},
	}
	lazy.Logger().Debug("created async lazy proxy",
		zap.String("id", h.id),
		zap.Stringer("type", factory.kind),
		zap.Int("member_cache_shards", cfg.MemberCacheShards),
	)

	return h, nil
}

// IsInstanceOf reports whether value is a handle created by this package.
func IsInstanceOf(value any) bool {
	_, ok := value.(marked)
	return ok
}

// IsInitialized reports whether the handle's value has been produced.
// It fails with ErrType when value is not a handle created by this package.
func IsInitialized(value any) (bool, error) {
	info, err := Inspect(value)
	if err != nil {
		return false, err
	}
	return info.Initialized, nil
}

func Inspect(value any) (lazymodel.Info, error) {
	m, ok := value.(marked)
	if !ok {
		return lazymodel.Info{}, fmt.Errorf("%w: %T", ErrType, value)
	}
	return m.asyncLazyProxy(), nil
}
