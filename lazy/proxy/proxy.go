package proxy

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
	ErrInit = errors.New("lazy proxy: factory must not be empty")
	ErrType = errors.New("lazy proxy: provided value is not a lazy proxy")
)

// marked is satisfied only by this package's handles, whatever their type parameter.
type marked interface {
	lazyProxy() lazymodel.Info
}

// Create returns a handle whose value is produced by factory on first use.
//
// The producer may use other handles, but it must not touch the handle being
// created: concurrent first uses are serialized, so that operation waits for the
// producer it is running inside and never returns.
func Create[T object.Object](factory *Factory[T]) (*Handle[T], error) {
	if factory == nil || factory.produce == nil {
		return nil, ErrInit
	}

	target, err := newStandIn(factory.kind, lazy.NewLazy(factory.produce))
	if err != nil {
		return nil, err
	}
	h := &Handle[T]{
		id:     uuid.NewString(),
		target: target,
	}
	lazy.Logger().Debug("created lazy proxy", zap.String("id", h.id), zap.Stringer("type", factory.kind))

	return h, nil
}

// IsInstanceOf reports whether value is a handle created by this package.
// It is false for the realized value itself.
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

// Inspect returns a snapshot of the handle without realizing it.
func Inspect(value any) (lazymodel.Info, error) {
	m, ok := value.(marked)
	if !ok {
		return lazymodel.Info{}, fmt.Errorf("%w: %T", ErrType, value)
	}
	return m.lazyProxy(), nil
}
