package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCentsToAmount(t *testing.T) {
	assert.Equal(t, 45.0, CentsToAmount(4500))
	assert.Equal(t, 0.99, CentsToAmount(99))
}

func TestNewMercadoPago(t *testing.T) {
	_, err := NewMercadoPago("", "BRL")
	assert.Error(t, err)

	mp, err := NewMercadoPago("TEST-123", "")
	require.NoError(t, err)
	assert.Equal(t, "BRL", mp.currency)
}
