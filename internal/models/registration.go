package models

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusSelected  Status = "selected"
	StatusConfirmed Status = "confirmed"
	StatusDeclined  Status = "declined"
	StatusCancelled Status = "cancelled"
)

// transitions is the legal status graph. Confirmed, declined and cancelled
// are terminal. Pending leaves the lifecycle only through external
// cancellation, which is not handled by this service.
var transitions = map[Status][]Status{
	StatusSelected: {StatusConfirmed, StatusDeclined, StatusCancelled},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s Status) Terminal() bool {
	switch s {
	case StatusConfirmed, StatusDeclined, StatusCancelled:
		return true
	}
	return false
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusSelected, StatusConfirmed, StatusDeclined, StatusCancelled:
		return true
	}
	return false
}

type Registration struct {
	EventID    string    `json:"event_id"`
	UserID     string    `json:"user_id"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	SelectedAt time.Time `json:"selected_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
