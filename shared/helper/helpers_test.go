package helper_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/lazy_ive_go/shared/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTypedValueOf(t *testing.T) {
	v, err := helper.GetTypedValueOf[int](func() (any, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = helper.GetTypedValueOf[string](func() (any, error) { return 42, nil })
	assert.ErrorContains(t, err, "unexpected type: int")

	boom := errors.New("boom")
	_, err = helper.GetTypedValueOf[int](func() (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)

	s, err := helper.GetTypedValueOf[error](func() (any, error) { return nil, nil })
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestMustGetTypedValue(t *testing.T) {
	assert.Equal(t, "ok", helper.MustGetTypedValue[string](func() (any, error) { return "ok", nil }))
	assert.Panics(t, func() {
		helper.MustGetTypedValue[string](func() (any, error) { return 1, nil })
	})
}
