package lazymodel

import (
	"errors"
	"fmt"

	"github.com/rickb777/date/v2/timespan"
)

// FactoryType classifies what a lazy proxy factory produces. It fixes the shape of
// the handle before any value exists: only function and class handles can be invoked,
// and only class handles can be constructed.
type FactoryType int

const (
	// FactoryTypeObject is for values that are neither callable nor constructible.
	FactoryTypeObject FactoryType = iota
	FactoryTypeClass
	FactoryTypeFunction
)

func (t FactoryType) String() string {
	switch t {
	case FactoryTypeObject:
		return "object"
	case FactoryTypeClass:
		return "class"
	case FactoryTypeFunction:
		return "function"
	default:
		return fmt.Sprintf("unknown_factory_type_%d", int(t))
	}
}

func (t FactoryType) CanCall() bool {
	return t == FactoryTypeClass || t == FactoryTypeFunction
}

func (t FactoryType) CanConstruct() bool {
	return t == FactoryTypeClass
}

// Operation names a structural operation a handle may be asked to forward.
type Operation string

const (
	OperationApply                    Operation = "apply"
	OperationConstruct                Operation = "construct"
	OperationDefineProperty           Operation = "defineProperty"
	OperationDeleteProperty           Operation = "deleteProperty"
	OperationGet                      Operation = "get"
	OperationGetOwnPropertyDescriptor Operation = "getOwnPropertyDescriptor"
	OperationGetPrototypeOf           Operation = "getPrototypeOf"
	OperationHas                      Operation = "has"
	OperationIsExtensible             Operation = "isExtensible"
	OperationOwnKeys                  Operation = "ownKeys"
	OperationPreventExtensions        Operation = "preventExtensions"
	OperationSet                      Operation = "set"
	OperationSetPrototypeOf           Operation = "setPrototypeOf"
)

var ErrUnsupportedOperation = errors.New("proxy operation not supported")

// UnsupportedOperationError reports an operation a handle cannot forward faithfully.
type UnsupportedOperationError struct {
	Operation Operation
	Target    any
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%v: %s on %T", ErrUnsupportedOperation, e.Operation, e.Target)
}

func (e *UnsupportedOperationError) Unwrap() error {
	return ErrUnsupportedOperation
}

func Unsupported(op Operation, target any) error {
	return &UnsupportedOperationError{Operation: op, Target: target}
}

// Info is a read-only snapshot of a handle, as returned by the proxy packages' Inspect.
type Info struct {
	ID          string
	Type        FactoryType
	Initialized bool
	// Realization is zero until Initialized is true.
	Realization timespan.TimeSpan
}
