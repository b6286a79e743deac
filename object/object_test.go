package object_test

import (
	"testing"

	"github.com/on-the-ground/lazy_ive_go/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdinary_GetSetThroughPrototype(t *testing.T) {
	proto := object.New(nil).With("greeting", "hi")
	o := object.New(proto)

	v, err := object.Get(o, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hi", v)

	ok, err := object.Set(o, "greeting", "hello")
	require.NoError(t, err)
	require.True(t, ok)

	own, found, err := o.GetOwnProperty("greeting")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "hello", own.Value)

	protoValue, err := object.Get(proto, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hi", protoValue, "write must shadow, not overwrite the prototype")
}

func TestOrdinary_NonExtensible(t *testing.T) {
	o := object.New(nil).With("a", 1)
	ok, err := o.PreventExtensions()
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = object.Set(o, "b", 2)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = object.Set(o, "a", 3)
	require.NoError(t, err)
	assert.True(t, ok, "existing properties stay writable")

	ok, err = o.SetPrototypeOf(object.New(nil))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOrdinary_ReadOnlyAndNonConfigurable(t *testing.T) {
	o := object.New(nil)
	ok, err := o.DefineOwnProperty("k", object.ReadOnly(1))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = object.Set(o, "k", 2)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = object.Delete(o, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = o.DefineOwnProperty("k", object.ReadOnly(1))
	require.NoError(t, err)
	assert.True(t, ok, "identical redefinition is allowed")

	ok, err = o.DefineOwnProperty("k", object.Data(1))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOrdinary_OwnKeysKeepDefinitionOrder(t *testing.T) {
	o := object.New(nil).With("z", 1).With("a", 2).With("m", 3)
	_, _ = o.DefineOwnProperty("hidden", object.Hidden(4))

	keys, err := object.OwnKeys(o)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m", "hidden"}, keys)

	enumerable, err := object.Keys(o)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, enumerable)

	ok, err := object.Delete(o, "a")
	require.NoError(t, err)
	require.True(t, ok)

	keys, _ = object.OwnKeys(o)
	assert.Equal(t, []string{"z", "m", "hidden"}, keys)
}

func TestOrdinary_Accessor(t *testing.T) {
	var stored any
	o := object.New(nil)
	_, _ = o.DefineOwnProperty("x", object.Accessor(
		func(receiver object.Object) (any, error) { return stored, nil },
		func(receiver object.Object, value any) error {
			stored = value
			return nil
		},
	))

	ok, err := object.Set(o, "x", 7)
	require.NoError(t, err)
	require.True(t, ok)

	v, err := object.GetAs[int](o, "x")
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestOrdinary_SetPrototypeOfRefusesCycles(t *testing.T) {
	a := object.New(nil)
	b := object.New(a)

	ok, err := a.SetPrototypeOf(b)
	require.NoError(t, err)
	assert.False(t, ok)

	has, err := object.Has(b, "missing")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestFreeze(t *testing.T) {
	o := object.New(nil).With("a", 1)
	ok, err := object.Freeze(o)
	require.NoError(t, err)
	require.True(t, ok)

	ok, _ = object.Set(o, "a", 2)
	assert.False(t, ok)

	ext, _ := o.IsExtensible()
	assert.False(t, ext)
}

func TestFunc_Call(t *testing.T) {
	double := object.NewFunc("double", func(_ any, args ...any) (any, error) {
		return args[0].(int) * 2, nil
	})

	assert.True(t, object.IsCallable(double))
	assert.False(t, object.IsConstructor(double))

	v, err := object.CallAs[int](double, nil, 21)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	name, _ := object.GetAs[string](double, "name")
	assert.Equal(t, "double", name)

	_, err = object.Construct(double, nil, nil)
	assert.ErrorIs(t, err, object.ErrNotConstructor)
	assert.ErrorIs(t, err, object.ErrType)

	_, err = object.Call(object.New(nil), nil)
	assert.ErrorIs(t, err, object.ErrNotCallable)
}

func TestClass_ConstructUsesNewTargetPrototype(t *testing.T) {
	animal := object.NewClass("Animal", func(this object.Object, args ...any) error {
		_, err := object.Set(this, "name", args[0])
		return err
	})
	dog := animal.Extend("Dog", func(this object.Object, args ...any) error {
		_, err := object.Set(this, "sound", "woof")
		return err
	})

	rex, err := object.Construct(dog, []any{"rex"}, nil)
	require.NoError(t, err)

	proto, err := rex.GetPrototypeOf()
	require.NoError(t, err)
	assert.Same(t, dog.Prototype(), proto)

	name, _ := object.GetAs[string](rex, "name")
	sound, _ := object.GetAs[string](rex, "sound")
	assert.Equal(t, "rex", name)
	assert.Equal(t, "woof", sound)

	ctor, _ := object.Get(rex, "constructor")
	assert.Same(t, dog, ctor)

	_, err = object.Call(dog, nil)
	assert.ErrorIs(t, err, object.ErrClassCall)
}
