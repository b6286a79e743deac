package object

import (
	"fmt"

	"github.com/on-the-ground/lazy_ive_go/shared/helper"
)

// Get reads key from o, using o itself as the receiver.
func Get(o Object, key string) (any, error) {
	return o.Get(key, o)
}

// GetAs reads key from o and asserts the result to V.
func GetAs[V any](o Object, key string) (V, error) {
	return helper.GetTypedValueOf[V](func() (any, error) {
		return Get(o, key)
	})
}

// Set writes key on o, using o itself as the receiver.
// It reports false when the write was refused.
func Set(o Object, key string, value any) (bool, error) {
	return o.Set(key, value, o)
}

func Has(o Object, key string) (bool, error) {
	return o.HasProperty(key)
}

func Delete(o Object, key string) (bool, error) {
	return o.Delete(key)
}

func OwnKeys(o Object) ([]string, error) {
	return o.OwnKeys()
}

// Keys returns the enumerable own keys of o in definition order.
func Keys(o Object) ([]string, error) {
	keys, err := o.OwnKeys()
	if err != nil {
		return nil, err
	}
	enumerable := make([]string, 0, len(keys))
	for _, k := range keys {
		desc, ok, err := o.GetOwnProperty(k)
		if err != nil {
			return nil, err
		}
		if ok && desc.Enumerable {
			enumerable = append(enumerable, k)
		}
	}
	return enumerable, nil
}

// Freeze makes o non-extensible and every own property non-configurable, and every
// own data property read-only.
func Freeze(o Object) (bool, error) {
	if ok, err := o.PreventExtensions(); !ok || err != nil {
		return false, err
	}
	keys, err := o.OwnKeys()
	if err != nil {
		return false, err
	}
	for _, k := range keys {
		desc, ok, err := o.GetOwnProperty(k)
		if err != nil {
			return false, err
		}
		if !ok {
			continue
		}
		desc.Configurable = false
		if !desc.IsAccessor() {
			desc.Writable = false
		}
		if ok, err := o.DefineOwnProperty(k, desc); !ok || err != nil {
			return false, err
		}
	}
	return true, nil
}

// IsCallable reports whether v can be passed to Call.
func IsCallable(v any) bool {
	if _, ok := v.(Callable); !ok {
		return false
	}
	if s, ok := v.(Shaped); ok {
		return s.CanCall()
	}
	return true
}

// IsConstructor reports whether v can be passed to Construct.
func IsConstructor(v any) bool {
	if _, ok := v.(Constructor); !ok {
		return false
	}
	if s, ok := v.(Shaped); ok {
		return s.CanConstruct()
	}
	return true
}

// Call invokes f with the given this value and arguments.
func Call(f any, this any, args ...any) (any, error) {
	if !IsCallable(f) {
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, f)
	}
	return f.(Callable).Call(this, args...)
}

// CallAs invokes f and asserts the result to V.
func CallAs[V any](f any, this any, args ...any) (V, error) {
	return helper.GetTypedValueOf[V](func() (any, error) {
		return Call(f, this, args...)
	})
}

// Construct invokes c with new. A nil newTarget means c itself.
func Construct(c any, args []any, newTarget Object) (Object, error) {
	if !IsConstructor(c) {
		return nil, fmt.Errorf("%w: %T", ErrNotConstructor, c)
	}
	if newTarget == nil {
		if o, ok := c.(Object); ok {
			newTarget = o
		}
	}
	return c.(Constructor).Construct(args, newTarget)
}
