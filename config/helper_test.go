package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetInt(t *testing.T) {

	os.Setenv("TEST_INT_KEY1", "1")
	defer os.Unsetenv("TEST_INT_KEY1")

	v, err := New("test_int", "", nil, map[string]interface{}{"key2": 2})
	require.NoError(t, err)

	{
		val, err := GetInt(v, "key1")
		require.NoError(t, err)
		require.Equal(t, 1, val)
	}

	{
		val, err := GetInt(v, "key2")
		require.NoError(t, err)
		require.Equal(t, 2, val)
	}

	{
		val, err := GetInt(v, "key3")
		require.EqualError(t, err, "not found config value: 'key3'")
		require.Equal(t, 0, val)
	}
}
