package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatus_HappyPath(t *testing.T) {
	steps := []struct {
		action ReservationAction
		want   ReservationStatus
	}{
		{ActionConfirm, StatusConfirmed},
		{ActionAssign, StatusAssigned},
		{ActionStart, StatusOnRoute},
		{ActionComplete, StatusCompleted},
	}

	status := StatusPending
	for _, step := range steps {
		next, err := NextStatus(status, step.action)
		require.NoError(t, err, "action %s from %s", step.action, status)
		assert.Equal(t, step.want, next)
		status = next
	}
	assert.True(t, status.IsTerminal())
}

func TestNextStatus_Cancel(t *testing.T) {
	for _, from := range []ReservationStatus{StatusPending, StatusConfirmed, StatusAssigned} {
		next, err := NextStatus(from, ActionCancel)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, next)
	}

	_, err := NextStatus(StatusOnRoute, ActionCancel)
	var terr *TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, StatusOnRoute, terr.From)
	assert.Equal(t, ActionCancel, terr.Action)
}

func TestNextStatus_TerminalStatesRejectEverything(t *testing.T) {
	actions := []ReservationAction{ActionConfirm, ActionAssign, ActionStart, ActionComplete, ActionCancel}

	for _, from := range []ReservationStatus{StatusCompleted, StatusCancelled} {
		for _, a := range actions {
			_, err := NextStatus(from, a)
			var terr *TransitionError
			assert.ErrorAs(t, err, &terr, "%s -> %s", from, a)
		}
	}
}

func TestNextStatus_UnknownAction(t *testing.T) {
	_, err := NextStatus(StatusPending, ReservationAction("teleport"))
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestNextStatus_AssignWhilePendingKeepsPending(t *testing.T) {
	next, err := NextStatus(StatusPending, ActionAssign)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, next)

	// the attached driver can then act on the reservation
	next, err = NextStatus(next, ActionConfirm)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, next)
}

func TestCanPerform(t *testing.T) {
	assert.True(t, CanPerform(RoleAdmin, ActionAssign))
	assert.False(t, CanPerform(RoleDriver, ActionAssign))
	assert.False(t, CanPerform(RoleCustomer, ActionConfirm))
	assert.True(t, CanPerform(RoleCustomer, ActionCancel))
}

func TestAvailableActions(t *testing.T) {
	assert.Equal(t, []ReservationAction{ActionConfirm, ActionCancel}, AvailableActions(StatusPending, RoleDriver))
	assert.Equal(t,
		[]ReservationAction{ActionConfirm, ActionAssign, ActionCancel},
		AvailableActions(StatusPending, RoleAdmin))
	assert.Equal(t, []ReservationAction{ActionCancel}, AvailableActions(StatusConfirmed, RoleCustomer))
	assert.Equal(t,
		[]ReservationAction{ActionAssign, ActionStart, ActionComplete, ActionCancel},
		AvailableActions(StatusConfirmed, RoleAdmin))
	assert.Empty(t, AvailableActions(StatusCompleted, RoleAdmin))
}

func TestTransitionNotice(t *testing.T) {
	assert.Equal(t, "Sürücü rezervasyonu onayladı.", TransitionNotice(RoleDriver, ActionConfirm))
	assert.Equal(t, "Rezervasyon onaylandı.", TransitionNotice(RoleAdmin, ActionConfirm))
	assert.Equal(t, "Müşteri rezervasyonu iptal etti.", TransitionNotice(RoleCustomer, ActionCancel))
}
