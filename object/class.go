package object

var (
	_ Object      = (*Class)(nil)
	_ Callable    = (*Class)(nil)
	_ Constructor = (*Class)(nil)
)

// Class is a constructible object. Instances inherit from the object stored in its
// non-writable "prototype" property, which in turn carries a "constructor" link back.
type Class struct {
	*Ordinary
	name      string
	parent    *Class
	prototype *Ordinary
	init      func(this Object, args ...any) error
}

// NewClass creates a base class. init runs against every new instance and may be nil.
func NewClass(name string, init func(this Object, args ...any) error) *Class {
	return newClass(name, nil, init)
}

// Extend creates a subclass of c. Construction runs the initializers from the root
// class down, each receiving the same arguments.
func (c *Class) Extend(name string, init func(this Object, args ...any) error) *Class {
	return newClass(name, c, init)
}

func newClass(name string, parent *Class, init func(this Object, args ...any) error) *Class {
	var (
		staticProto   Object
		instanceProto Object
	)
	if parent != nil {
		staticProto, instanceProto = parent, parent.prototype
	}
	c := &Class{
		Ordinary:  New(staticProto),
		name:      name,
		parent:    parent,
		prototype: New(instanceProto),
		init:      init,
	}
	_, _ = c.DefineOwnProperty("name", PropertyDescriptor{Value: name, Configurable: true})
	_, _ = c.DefineOwnProperty("prototype", PropertyDescriptor{Value: Object(c.prototype)})
	_, _ = c.prototype.DefineOwnProperty("constructor", Hidden(Object(c)))
	return c
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// Prototype returns the object instances of c inherit from.
func (c *Class) Prototype() *Ordinary { return c.prototype }

func (c *Class) Call(_ any, _ ...any) (any, error) {
	return nil, ErrClassCall
}

// Construct creates an instance whose prototype is newTarget's "prototype" property,
// falling back to c's own prototype when newTarget is nil or carries none.
func (c *Class) Construct(args []any, newTarget Object) (Object, error) {
	proto := Object(c.prototype)
	if newTarget != nil {
		v, err := newTarget.Get("prototype", newTarget)
		if err != nil {
			return nil, err
		}
		if p, ok := v.(Object); ok && p != nil {
			proto = p
		}
	}
	instance := New(proto)
	if err := c.initialize(instance, args); err != nil {
		return nil, err
	}
	return instance, nil
}

func (c *Class) initialize(instance Object, args []any) error {
	if c.parent != nil {
		if err := c.parent.initialize(instance, args); err != nil {
			return err
		}
	}
	if c.init == nil {
		return nil
	}
	return c.init(instance, args...)
}
