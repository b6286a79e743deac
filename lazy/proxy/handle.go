package proxy

import (
	"fmt"
	"sync/atomic"

	"github.com/on-the-ground/lazy_ive_go/lazy"
	"github.com/on-the-ground/lazy_ive_go/lazy/lazymodel"
	"github.com/on-the-ground/lazy_ive_go/object"
)

var (
	_ object.Object      = (*Handle[object.Object])(nil)
	_ object.Callable    = (*Handle[object.Object])(nil)
	_ object.Constructor = (*Handle[object.Object])(nil)
	_ object.Shaped      = (*Handle[object.Object])(nil)
)

// standIn is what a handle wraps before and after realization. Its extensibility
// only ever moves from true to false and follows the realized value's.
type standIn[T object.Object] struct {
	kind       lazymodel.FactoryType
	lazy       *lazy.Lazy[T]
	extensible atomic.Bool
}

func newStandIn[T object.Object](kind lazymodel.FactoryType, l *lazy.Lazy[T]) (*standIn[T], error) {
	switch kind {
	case lazymodel.FactoryTypeObject, lazymodel.FactoryTypeClass, lazymodel.FactoryTypeFunction:
		s := &standIn[T]{kind: kind, lazy: l}
		s.extensible.Store(true)
		return s, nil
	default:
		return nil, fmt.Errorf("%w: could not resolve lazy target type %v", ErrInit, kind)
	}
}

func (s *standIn[T]) preventExtensions() bool {
	s.extensible.Store(false)
	return true
}

// Handle is a synchronous lazy proxy. Every method except CanCall and CanConstruct
// realizes the backing memo before doing anything else.
type Handle[T object.Object] struct {
	id     string
	target *standIn[T]
}

func (h *Handle[T]) lazyProxy() lazymodel.Info {
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

func (h *Handle[T]) CanConstruct() bool {
	return h.target.kind.CanConstruct()
}

func (h *Handle[T]) value() (T, error) {
	return h.target.lazy.GetValue()
}

func (h *Handle[T]) Call(this any, args ...any) (any, error) {
	if !h.CanCall() {
		return nil, fmt.Errorf("%w: lazy %v proxy", object.ErrNotCallable, h.target.kind)
	}
	v, err := h.value()
	if err != nil {
		return nil, err
	}
	return object.Call(v, this, args...)
}

// Construct ignores newTarget and constructs with the realized value itself, so the
// instance gets the realized class's prototype rather than anything the handle exposes.
func (h *Handle[T]) Construct(args []any, _ object.Object) (object.Object, error) {
	if !h.CanConstruct() {
		return nil, fmt.Errorf("%w: lazy %v proxy", object.ErrNotConstructor, h.target.kind)
	}
	v, err := h.value()
	if err != nil {
		return nil, err
	}
	return object.Construct(v, args, v)
}

func (h *Handle[T]) DefineOwnProperty(key string, desc object.PropertyDescriptor) (bool, error) {
	v, err := h.value()
	if err != nil {
		return false, err
	}
	return v.DefineOwnProperty(key, desc)
}

func (h *Handle[T]) Delete(key string) (bool, error) {
	v, err := h.value()
	if err != nil {
		return false, err
	}
	return v.Delete(key)
}

func (h *Handle[T]) Get(key string, receiver object.Object) (any, error) {
	v, err := h.value()
	if err != nil {
		return nil, err
	}
	return v.Get(key, receiver)
}

func (h *Handle[T]) GetOwnProperty(key string) (object.PropertyDescriptor, bool, error) {
	v, err := h.value()
	if err != nil {
		return object.PropertyDescriptor{}, false, err
	}
	return v.GetOwnProperty(key)
}

func (h *Handle[T]) GetPrototypeOf() (object.Object, error) {
	v, err := h.value()
	if err != nil {
		return nil, err
	}
	return v.GetPrototypeOf()
}

func (h *Handle[T]) HasProperty(key string) (bool, error) {
	v, err := h.value()
	if err != nil {
		return false, err
	}
	return v.HasProperty(key)
}

func (h *Handle[T]) IsExtensible() (bool, error) {
	v, err := h.value()
	if err != nil {
		return false, err
	}
	extensible, err := v.IsExtensible()
	if err != nil {
		return false, err
	}
	if !extensible && h.target.extensible.Load() {
		h.target.preventExtensions()
	}
	return extensible, nil
}

func (h *Handle[T]) OwnKeys() ([]string, error) {
	v, err := h.value()
	if err != nil {
		return nil, err
	}
	return v.OwnKeys()
}

// PreventExtensions succeeds only when both the stand-in and the realized value
// accept it. A realized value that refuses leaves the pair out of step, which is
// reported as an unsupported operation.
func (h *Handle[T]) PreventExtensions() (bool, error) {
	v, err := h.value()
	if err != nil {
		return false, err
	}
	if !h.target.preventExtensions() {
		return false, nil
	}
	ok, err := v.PreventExtensions()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, lazymodel.Unsupported(lazymodel.OperationPreventExtensions, h.target)
	}
	return true, nil
}

// Set writes through to the realized value, which is also the receiver. Adding a
// property to a non-extensible value is refused without an error; an inherited
// accessor still receives the write, since it adds nothing to the value.
func (h *Handle[T]) Set(key string, value any, _ object.Object) (bool, error) {
	v, err := h.value()
	if err != nil {
		return false, err
	}
	extensible, err := v.IsExtensible()
	if err != nil {
		return false, err
	}
	if !extensible {
		h.target.preventExtensions()
		_, exists, err := v.GetOwnProperty(key)
		if err != nil {
			return false, err
		}
		if !exists {
			accessor, err := inheritedAccessor(v, key)
			if err != nil || !accessor {
				return false, err
			}
		}
	}
	return v.Set(key, value, v)
}

// inheritedAccessor reports whether key resolves to an accessor somewhere on o's
// prototype chain.
func inheritedAccessor(o object.Object, key string) (bool, error) {
	proto, err := o.GetPrototypeOf()
	for ; proto != nil; proto, err = proto.GetPrototypeOf() {
		if err != nil {
			return false, err
		}
		desc, ok, err := proto.GetOwnProperty(key)
		if err != nil {
			return false, err
		}
		if ok {
			return desc.IsAccessor(), nil
		}
	}
	return false, err
}
