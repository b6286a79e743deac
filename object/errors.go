package object

import (
	"errors"
	"fmt"
)

// ErrType is the root of every type error raised by the runtime.
var ErrType = errors.New("type error")

var (
	ErrNotCallable    = fmt.Errorf("%w: value is not callable", ErrType)
	ErrNotConstructor = fmt.Errorf("%w: value is not a constructor", ErrType)
	ErrClassCall      = fmt.Errorf("%w: class constructor cannot be invoked without 'new'", ErrType)
)
