package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDriver_WorksAt(t *testing.T) {
	day := Driver{WorkStart: "08:00", WorkEnd: "20:00"}
	assert.True(t, day.WorksAt("08:00"))
	assert.True(t, day.WorksAt("20:00"))
	assert.False(t, day.WorksAt("21:30"))

	night := Driver{WorkStart: "22:00", WorkEnd: "06:00"}
	assert.True(t, night.WorksAt("23:15"))
	assert.True(t, night.WorksAt("05:00"))
	assert.False(t, night.WorksAt("12:00"))

	assert.True(t, (&Driver{}).WorksAt("03:00"))
}

func TestConversation_IsParticipant(t *testing.T) {
	userID, driverID := int64(7), int64(3)
	conv := Conversation{ReservationID: 1, UserID: &userID, DriverID: &driverID}

	assert.True(t, conv.IsParticipant(Actor{UserID: 7, Role: RoleCustomer}))
	assert.False(t, conv.IsParticipant(Actor{UserID: 8, Role: RoleCustomer}))
	assert.True(t, conv.IsParticipant(Actor{UserID: 3, Role: RoleDriver}))
	assert.True(t, conv.IsParticipant(Actor{UserID: 99, Role: RoleAdmin}))
}
