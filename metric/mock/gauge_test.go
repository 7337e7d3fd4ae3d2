package mock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGauge(t *testing.T) {

	g := NewGauge()
	require.Equal(t, float64(0), g.Get())

	g.Set(3)
	require.Equal(t, float64(3), g.Get())

	g.Set(0.5)
	require.Equal(t, 0.5, g.Get())
}
