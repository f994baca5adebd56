package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestInitialStatus(t *testing.T) {
	s, err := InitialStatus("")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, s)

	s, err = InitialStatus("cancelado")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, s)

	_, err = InitialStatus("scheduled")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

func TestTransition(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusConfirmed)}

	require.NoError(t, Transition(ap, StatusCancelled))
	assert.Equal(t, string(StatusCancelled), ap.Status)

	err := Transition(ap, StatusCancelled)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))

	require.NoError(t, Transition(ap, StatusConfirmed))
	assert.Equal(t, string(StatusConfirmed), ap.Status)

	err = Confirm(ap)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
}
