package modmap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func attrFixture(t *testing.T) (*Map[string, int], *AttrMap[int]) {
	t.Helper()
	typ := mustDefine(t, Config[string, int]{KeyModifiers: lower})
	m := typ.New()
	return m, AsAttrs[int](m)
}

func TestAttrReadWriteDelete(t *testing.T) {
	m, attrs := attrFixture(t)

	require.NoError(t, attrs.SetAttr("NaMe", 1))

	// Attribute names live in the same modified key space as keys.
	v, err := attrs.GetAttr("NAME")
	require.NoError(t, err)
	require.Equal(t, 1, v)

	v, err = m.Get("name")
	require.NoError(t, err)
	require.Equal(t, 1, v)

	require.NoError(t, attrs.DelAttr("Name"))
	require.Equal(t, 0, m.Len())
}

func TestAttrItemWritesAreVisibleAsAttributes(t *testing.T) {
	m, attrs := attrFixture(t)
	require.NoError(t, m.Set("Via-Item", 2))

	v, err := attrs.GetAttr("VIA-ITEM")
	require.NoError(t, err)
	require.Equal(t, 2, v)
}

func TestAttrMissingTranslatesTheError(t *testing.T) {
	_, attrs := attrFixture(t)

	_, err := attrs.GetAttr("Missing")
	require.ErrorIs(t, err, ErrAttributeNotFound)
	require.ErrorContains(t, err, "modmap.Map")
	require.ErrorContains(t, err, `no attribute "Missing"`)

	// The underlying lookup failure kind never leaks out.
	require.False(t, errors.Is(err, ErrKeyNotFound))

	delErr := attrs.DelAttr("Missing")
	require.ErrorIs(t, delErr, ErrAttributeNotFound)
	require.Equal(t, err.Error(), delErr.Error())
}

func TestAttrPassesOtherFailuresThrough(t *testing.T) {
	typ := mustDefine(t, Config[string, int]{KeyModifiers: 7.62})
	attrs := AsAttrs[int](typ.New())

	_, err := attrs.GetAttr("anything")
	require.ErrorIs(t, err, ErrInvalidModifiers)

	require.ErrorIs(t, attrs.SetAttr("anything", 1), ErrInvalidModifiers)
	require.ErrorIs(t, attrs.DelAttr("anything"), ErrInvalidModifiers)
}
