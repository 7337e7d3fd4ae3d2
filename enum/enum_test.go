package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type CustomEnum int

const (
	Unknown CustomEnum = 0
	Val1    CustomEnum = 1
	Val2    CustomEnum = 2
)

var customEnum = New().
	Add(Val2, "val2").
	Add(Unknown, "unknown").
	Add(Val1, "val1")

func TestStringKeys(t *testing.T) {

	require.Equal(t, []string{}, New().StringKeys())
	require.Equal(t, []string{"val2", "unknown", "val1"}, customEnum.StringKeys())

	// re-adding a name keeps its position
	e := New().Add(Val1, "a").Add(Val2, "b").Add(Val1, "a")
	require.Equal(t, []string{"a", "b"}, e.StringKeys())
}

func TestGetByString(t *testing.T) {

	get := func(src string) CustomEnum {
		mode, ok := customEnum.GetByString(src)
		if !ok {
			return Unknown
		}
		return mode.(CustomEnum)
	}

	require.Equal(t, Unknown, get("-"))
	require.Equal(t, Unknown, get("unknown"))
	require.Equal(t, Val1, get("val1"))
	require.Equal(t, Val2, get("val2"))
}

func TestGetByIndex(t *testing.T) {

	str, ok := customEnum.GetByIndex(Val1)
	require.True(t, ok)
	require.Equal(t, "val1", str)

	_, ok = customEnum.GetByIndex(CustomEnum(3))
	require.False(t, ok)

	// type of the index matters
	_, ok = customEnum.GetByIndex(1)
	require.False(t, ok)
}

func TestName(t *testing.T) {
	require.Equal(t, "val2", customEnum.Name(Val2, "?"))
	require.Equal(t, "?", customEnum.Name(CustomEnum(9), "?"))
}
