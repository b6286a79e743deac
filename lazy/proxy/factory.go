package proxy

import (
	"github.com/on-the-ground/lazy_ive_go/lazy/lazymodel"
	"github.com/on-the-ground/lazy_ive_go/object"
)

// Factory pairs a producer with the shape of the value it produces.
// Build one with ForObject, ForClass or ForFunction.
type Factory[T object.Object] struct {
	kind    lazymodel.FactoryType
	produce func() (T, error)
}

// Type returns the shape tag stamped by the builder.
func (f *Factory[T]) Type() lazymodel.FactoryType {
	return f.kind
}

// ForObject builds a factory for a plain object.
// The produced value must be neither callable nor constructible.
func ForObject[T object.Object](producer func() (T, error)) *Factory[T] {
	return &Factory[T]{kind: lazymodel.FactoryTypeObject, produce: producer}
}

// ForClass builds a factory for a constructible value.
func ForClass[T interface {
	object.Object
	object.Constructor
}](producer func() (T, error)) *Factory[T] {
	return &Factory[T]{kind: lazymodel.FactoryTypeClass, produce: producer}
}

// ForFunction builds a factory for a callable value.
func ForFunction[T interface {
	object.Object
	object.Callable
}](producer func() (T, error)) *Factory[T] {
	return &Factory[T]{kind: lazymodel.FactoryTypeFunction, produce: producer}
}
