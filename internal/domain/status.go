package domain

import (
	"errors"
	"fmt"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusAssigned  ReservationStatus = "assigned"
	StatusOnRoute   ReservationStatus = "on-route"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

// IsValid returns true for known statuses
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusAssigned, StatusOnRoute, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal returns true for completed and cancelled reservations
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ReservationAction an operation requested by a panel
type ReservationAction string

const (
	ActionConfirm  ReservationAction = "confirm"
	ActionAssign   ReservationAction = "assign"
	ActionStart    ReservationAction = "start"
	ActionComplete ReservationAction = "complete"
	ActionCancel   ReservationAction = "cancel"
)

// IsValid returns true for known actions
func (a ReservationAction) IsValid() bool {
	_, ok := actionRoles[a]
	return ok
}

type transitionKey struct {
	from   ReservationStatus
	action ReservationAction
}

// transitions is the only place that decides which status changes are legal
var transitions = map[transitionKey]ReservationStatus{
	// assign on pending attaches a driver who then confirms or rejects
	{StatusPending, ActionConfirm}: StatusConfirmed,
	{StatusPending, ActionAssign}:  StatusPending,
	{StatusPending, ActionCancel}:  StatusCancelled,

	{StatusConfirmed, ActionAssign}:   StatusAssigned,
	{StatusConfirmed, ActionStart}:    StatusOnRoute,
	{StatusConfirmed, ActionComplete}: StatusCompleted,
	{StatusConfirmed, ActionCancel}:   StatusCancelled,

	{StatusAssigned, ActionAssign}:   StatusAssigned,
	{StatusAssigned, ActionStart}:    StatusOnRoute,
	{StatusAssigned, ActionComplete}: StatusCompleted,
	{StatusAssigned, ActionCancel}:   StatusCancelled,

	{StatusOnRoute, ActionComplete}: StatusCompleted,
}

var actionRoles = map[ReservationAction][]Role{
	ActionConfirm:  {RoleAdmin, RoleDriver},
	ActionAssign:   {RoleAdmin},
	ActionStart:    {RoleAdmin, RoleDriver},
	ActionComplete: {RoleAdmin, RoleDriver},
	ActionCancel:   {RoleAdmin, RoleDriver, RoleCustomer},
}

var (
	// ErrUnknownAction action is not part of the lifecycle
	ErrUnknownAction = errors.New("unknown reservation action")

	// ErrActionNotAllowed role may not perform the action
	ErrActionNotAllowed = errors.New("action is not allowed for role")
)

// TransitionError is returned when the action is undefined for the current status
type TransitionError struct {
	From   ReservationStatus
	Action ReservationAction
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s reservation in status %s", e.Action, e.From)
}

// NextStatus returns the status reached by applying action to from
func NextStatus(from ReservationStatus, action ReservationAction) (ReservationStatus, error) {
	if !action.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	next, ok := transitions[transitionKey{from, action}]
	if !ok {
		return "", &TransitionError{From: from, Action: action}
	}
	return next, nil
}

// CanPerform returns true if the role is allowed to request the action
func CanPerform(role Role, action ReservationAction) bool {
	for _, r := range actionRoles[action] {
		if r == role {
			return true
		}
	}
	return false
}

// AvailableActions returns actions the role may apply in the given status, in lifecycle order
func AvailableActions(status ReservationStatus, role Role) []ReservationAction {
	ordered := []ReservationAction{ActionConfirm, ActionAssign, ActionStart, ActionComplete, ActionCancel}

	actions := make([]ReservationAction, 0, len(ordered))
	for _, a := range ordered {
		if _, ok := transitions[transitionKey{status, a}]; ok && CanPerform(role, a) {
			actions = append(actions, a)
		}
	}
	return actions
}

// TransitionNotice returns the informational text shown to admins after a transition
func TransitionNotice(role Role, action ReservationAction) string {
	switch action {
	case ActionConfirm:
		if role == RoleDriver {
			return "Sürücü rezervasyonu onayladı."
		}
		return "Rezervasyon onaylandı."
	case ActionAssign:
		return "Rezervasyona sürücü atandı."
	case ActionStart:
		return "Sürücü yola çıktı."
	case ActionComplete:
		if role == RoleDriver {
			return "Sürücü transferi tamamladı."
		}
		return "Rezervasyon tamamlandı."
	case ActionCancel:
		switch role {
		case RoleDriver:
			return "Sürücü rezervasyonu reddetti."
		case RoleCustomer:
			return "Müşteri rezervasyonu iptal etti."
		}
		return "Rezervasyon iptal edildi."
	}
	return ""
}
