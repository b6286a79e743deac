package object

var _ Object = (*Ordinary)(nil)

// Ordinary is a plain keyed object with a prototype link.
type Ordinary struct {
	proto      Object
	extensible bool
	keys       []string
	props      map[string]*PropertyDescriptor
}

// New returns an empty extensible object whose prototype is proto (nil for none).
func New(proto Object) *Ordinary {
	return &Ordinary{
		proto:      proto,
		extensible: true,
		props:      make(map[string]*PropertyDescriptor),
	}
}

// With defines key as a plain data property and returns o for chaining.
// It is meant for building fixtures and literals; a refused definition is ignored.
func (o *Ordinary) With(key string, value any) *Ordinary {
	_, _ = o.DefineOwnProperty(key, Data(value))
	return o
}

func (o *Ordinary) base() *Ordinary { return o }

func (o *Ordinary) GetPrototypeOf() (Object, error) {
	return o.proto, nil
}

// SetPrototypeOf refuses to change the prototype of a non-extensible object and to
// create a cycle through ordinary objects.
func (o *Ordinary) SetPrototypeOf(proto Object) (bool, error) {
	if proto == o.proto {
		return true, nil
	}
	if !o.extensible {
		return false, nil
	}
	for p := proto; p != nil; {
		ord, ok := p.(interface{ base() *Ordinary })
		if !ok {
			// exotic objects end the walk
			break
		}
		if ord.base() == o {
			return false, nil
		}
		p = ord.base().proto
	}
	o.proto = proto
	return true, nil
}

func (o *Ordinary) IsExtensible() (bool, error) {
	return o.extensible, nil
}

func (o *Ordinary) PreventExtensions() (bool, error) {
	o.extensible = false
	return true, nil
}

func (o *Ordinary) GetOwnProperty(key string) (PropertyDescriptor, bool, error) {
	desc, ok := o.props[key]
	if !ok {
		return PropertyDescriptor{}, false, nil
	}
	return *desc, true, nil
}

func (o *Ordinary) DefineOwnProperty(key string, desc PropertyDescriptor) (bool, error) {
	cur, ok := o.props[key]
	if !ok {
		if !o.extensible {
			return false, nil
		}
		d := desc
		o.props[key] = &d
		o.keys = append(o.keys, key)
		return true, nil
	}
	if !cur.Configurable && !compatible(*cur, desc) {
		return false, nil
	}
	*cur = desc
	return true, nil
}

// compatible reports whether desc may replace the non-configurable descriptor cur.
func compatible(cur, desc PropertyDescriptor) bool {
	if desc.Configurable || desc.Enumerable != cur.Enumerable {
		return false
	}
	if cur.IsAccessor() != desc.IsAccessor() {
		return false
	}
	if cur.IsAccessor() {
		return sameFunc(cur.Getter, desc.Getter) && sameFunc(cur.Setter, desc.Setter)
	}
	if !cur.Writable {
		return !desc.Writable && sameValue(cur.Value, desc.Value)
	}
	return true
}

func (o *Ordinary) HasProperty(key string) (bool, error) {
	if _, ok := o.props[key]; ok {
		return true, nil
	}
	if o.proto == nil {
		return false, nil
	}
	return o.proto.HasProperty(key)
}

func (o *Ordinary) Get(key string, receiver Object) (any, error) {
	if receiver == nil {
		receiver = o
	}
	desc, ok := o.props[key]
	if !ok {
		if o.proto == nil {
			return nil, nil
		}
		return o.proto.Get(key, receiver)
	}
	if !desc.IsAccessor() {
		return desc.Value, nil
	}
	if desc.Getter == nil {
		return nil, nil
	}
	return desc.Getter(receiver)
}

func (o *Ordinary) Set(key string, value any, receiver Object) (bool, error) {
	if receiver == nil {
		receiver = o
	}
	desc, ok := o.props[key]
	if !ok {
		if o.proto != nil {
			return o.proto.Set(key, value, receiver)
		}
		d := Data(nil)
		desc = &d
	}
	if desc.IsAccessor() {
		if desc.Setter == nil {
			return false, nil
		}
		if err := desc.Setter(receiver, value); err != nil {
			return false, err
		}
		return true, nil
	}
	if !desc.Writable {
		return false, nil
	}

	existing, found, err := receiver.GetOwnProperty(key)
	if err != nil {
		return false, err
	}
	if !found {
		return receiver.DefineOwnProperty(key, Data(value))
	}
	if existing.IsAccessor() || !existing.Writable {
		return false, nil
	}
	existing.Value = value
	return receiver.DefineOwnProperty(key, existing)
}

func (o *Ordinary) Delete(key string) (bool, error) {
	desc, ok := o.props[key]
	if !ok {
		return true, nil
	}
	if !desc.Configurable {
		return false, nil
	}
	delete(o.props, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true, nil
}

func (o *Ordinary) OwnKeys() ([]string, error) {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys, nil
}
