package object

var (
	_ Object   = (*Func)(nil)
	_ Callable = (*Func)(nil)
)

// Func is a callable object.
type Func struct {
	*Ordinary
	fn func(this any, args ...any) (any, error)
}

// NewFunc wraps fn as a callable object with a non-enumerable name property.
func NewFunc(name string, fn func(this any, args ...any) (any, error)) *Func {
	f := &Func{Ordinary: New(nil), fn: fn}
	_, _ = f.DefineOwnProperty("name", PropertyDescriptor{Value: name, Configurable: true})
	return f
}

func (f *Func) Call(this any, args ...any) (any, error) {
	return f.fn(this, args...)
}
