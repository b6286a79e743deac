package asyncproxy

import (
	"context"
	"fmt"

	"github.com/on-the-ground/lazy_ive_go/lazy"
	"github.com/on-the-ground/lazy_ive_go/lazy/lazymodel"
	"github.com/on-the-ground/lazy_ive_go/object"
	"github.com/on-the-ground/lazy_ive_go/shared/future"
)

var (
	_ object.Object   = (*Handle[object.Object])(nil)
	_ object.Callable = (*Handle[object.Object])(nil)
	_ object.Shaped   = (*Handle[object.Object])(nil)
)

type standIn[T object.Object] struct {
	kind    lazymodel.FactoryType
	lazy    *lazy.AsyncLazy[T]
	members *memberCache
}

// Handle is an asynchronous lazy proxy.
type Handle[T object.Object] struct {
	id     string
	target *standIn[T]
}

func (h *Handle[T]) asyncLazyProxy() lazymodel.Info {
	info := lazymodel.Info{
		ID:          h.id,
		Type:        h.target.kind,
		Initialized: h.target.lazy.IsInitialized(),
	}
	if span, ok := h.target.lazy.RealizationSpan(); ok {
		info.Realization = span
	}
	return info
}

func (h *Handle[T]) CanCall() bool {
	return h.target.kind.CanCall()
}

// CanConstruct is always false: construction is only reachable through New, since
// a future is not an object.
func (h *Handle[T]) CanConstruct() bool {
	return false
}

// Invoke resolves the value and calls it with args and no this. A pending result is
// awaited.
func (h *Handle[T]) Invoke(ctx context.Context, args ...any) *future.Future[any] {
	return h.invoke(ctx, nil, args)
}

func (h *Handle[T]) invoke(ctx context.Context, this any, args []any) *future.Future[any] {
	if !h.target.kind.CanCall() {
		return future.Rejected[any](fmt.Errorf("%w: async lazy %v proxy", object.ErrNotCallable, h.target.kind))
	}
	return future.Then(ctx, h.target.lazy.GetValueAsync(ctx), func(ctx context.Context, v T) (any, error) {
		res, err := object.Call(v, this, args...)
		if err != nil {
			return nil, err
		}
		return future.Flatten(ctx, res)
	})
}

// New resolves the value and constructs it with args, using the realized value as
// new-target so the instance gets its own prototype.
func (h *Handle[T]) New(ctx context.Context, args ...any) *future.Future[object.Object] {
	if !h.target.kind.CanConstruct() {
		return future.Rejected[object.Object](fmt.Errorf("%w: async lazy %v proxy", object.ErrNotConstructor, h.target.kind))
	}
	return future.Then(ctx, h.target.lazy.GetValueAsync(ctx), func(_ context.Context, v T) (object.Object, error) {
		return object.Construct(v, args, v)
	})
}

// Member returns the cached callable for key without resolving the value.
func (h *Handle[T]) Member(key string) *Member {
	return h.target.members.loadOrStore(key, func() *Member {
		return &Member{
			key: key,
			invoke: func(ctx context.Context, args []any) *future.Future[any] {
				return future.Then(ctx, h.target.lazy.GetValueAsync(ctx), func(ctx context.Context, v T) (any, error) {
					member, err := object.Get(v, key)
					if err != nil {
						return nil, err
					}
					if !object.IsCallable(member) {
						return member, nil
					}
					res, err := object.Call(member, v, args...)
					if err != nil {
						return nil, err
					}
					return future.Flatten(ctx, res)
				})
			},
		}
	})
}

// Call lets a handle be passed to object.Call. this is forwarded to the realized
// value and the result is a *future.Future[any].
func (h *Handle[T]) Call(this any, args ...any) (any, error) {
	if !h.CanCall() {
		return nil, fmt.Errorf("%w: async lazy %v proxy", object.ErrNotCallable, h.target.kind)
	}
	return h.invoke(context.Background(), this, args), nil
}

// Get returns the key's *Member. It never resolves the value.
func (h *Handle[T]) Get(key string, _ object.Object) (any, error) {
	return h.Member(key), nil
}

func (h *Handle[T]) DefineOwnProperty(string, object.PropertyDescriptor) (bool, error) {
	return false, lazymodel.Unsupported(lazymodel.OperationDefineProperty, h)
}

func (h *Handle[T]) Delete(string) (bool, error) {
	return false, lazymodel.Unsupported(lazymodel.OperationDeleteProperty, h)
}

func (h *Handle[T]) GetOwnProperty(string) (object.PropertyDescriptor, bool, error) {
	return object.PropertyDescriptor{}, false, lazymodel.Unsupported(lazymodel.OperationGetOwnPropertyDescriptor, h)
}

func (h *Handle[T]) GetPrototypeOf() (object.Object, error) {
	return nil, lazymodel.Unsupported(lazymodel.OperationGetPrototypeOf, h)
}

func (h *Handle[T]) HasProperty(string) (bool, error) {
	return false, lazymodel.Unsupported(lazymodel.OperationHas, h)
}

func (h *Handle[T]) IsExtensible() (bool, error) {
	return false, lazymodel.Unsupported(lazymodel.OperationIsExtensible, h)
}

func (h *Handle[T]) OwnKeys() ([]string, error) {
	return nil, lazymodel.Unsupported(lazymodel.OperationOwnKeys, h)
}

func (h *Handle[T]) PreventExtensions() (bool, error) {
	return false, lazymodel.Unsupported(lazymodel.OperationPreventExtensions, h)
}

func (h *Handle[T]) Set(string, any, object.Object) (bool, error) {
	return false, lazymodel.Unsupported(lazymodel.OperationSet, h)
}

func (h *Handle[T]) SetPrototypeOf(object.Object) (bool, error) {
	return false, lazymodel.Unsupported(lazymodel.OperationSetPrototypeOf, h)
}
