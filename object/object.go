package object

import "reflect"

// Object is the full set of structural operations the runtime exposes.
//
// A receiver argument is the object the operation was originally addressed to; it
// differs from the method's own object when the lookup walked up a prototype chain.
type Object interface {
	GetPrototypeOf() (Object, error)
	SetPrototypeOf(proto Object) (bool, error)
	IsExtensible() (bool, error)
	PreventExtensions() (bool, error)
	GetOwnProperty(key string) (PropertyDescriptor, bool, error)
	DefineOwnProperty(key string, desc PropertyDescriptor) (bool, error)
	HasProperty(key string) (bool, error)
	Get(key string, receiver Object) (any, error)
	Set(key string, value any, receiver Object) (bool, error)
	Delete(key string) (bool, error)
	OwnKeys() ([]string, error)
}

// Callable is implemented by values that can be invoked as functions.
type Callable interface {
	Call(this any, args ...any) (any, error)
}

// Constructor is implemented by values that can be invoked with new.
// newTarget supplies the prototype of the created instance.
type Constructor interface {
	Construct(args []any, newTarget Object) (Object, error)
}

// Shaped is implemented by values whose invocability is fixed when they are built
// rather than by their Go method set.
type Shaped interface {
	CanCall() bool
	CanConstruct() bool
}

// PropertyDescriptor describes a single own property. A descriptor with a Getter or
// Setter is an accessor property and its Value and Writable fields are ignored.
type PropertyDescriptor struct {
	Value        any
	Getter       func(receiver Object) (any, error)
	Setter       func(receiver Object, value any) error
	Writable     bool
	Enumerable   bool
	Configurable bool
}

// IsAccessor reports whether d describes an accessor property.
func (d PropertyDescriptor) IsAccessor() bool {
	return d.Getter != nil || d.Setter != nil
}

// Data returns a writable, enumerable, configurable data descriptor.
func Data(value any) PropertyDescriptor {
	return PropertyDescriptor{Value: value, Writable: true, Enumerable: true, Configurable: true}
}

// ReadOnly returns an enumerable data descriptor that can be neither written nor reconfigured.
func ReadOnly(value any) PropertyDescriptor {
	return PropertyDescriptor{Value: value, Enumerable: true}
}

// Hidden returns a writable, configurable data descriptor that is skipped by Keys.
func Hidden(value any) PropertyDescriptor {
	return PropertyDescriptor{Value: value, Writable: true, Configurable: true}
}

// Accessor returns an enumerable, configurable accessor descriptor.
func Accessor(
	getter func(receiver Object) (any, error),
	setter func(receiver Object, value any) error,
) PropertyDescriptor {
	return PropertyDescriptor{Getter: getter, Setter: setter, Enumerable: true, Configurable: true}
}

// sameValue compares two property values without panicking on uncomparable types.
func sameValue(a, b any) (same bool) {
	defer func() {
		if r := recover(); r != nil {
			same = false
		}
	}()
	return a == b
}

func sameFunc(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.IsNil() || vb.IsNil() {
		return va.IsNil() && vb.IsNil()
	}
	return va.Pointer() == vb.Pointer()
}
