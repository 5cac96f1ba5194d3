package waitlist

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventLottery/internal/lib/logger/sl"
)

var (
	ErrInvalidInput       = errors.New("event id, user id and timestamp are required")
	ErrRegistrationClosed = errors.New("registration window is closed")
	ErrAlreadyRegistered  = errors.New("user already has a registration for this event")
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Gateway
type Gateway interface {
	IsRegistrationOpen(eventID string, now time.Time) (bool, error)
	IsOnWaitlist(eventID, userID string) (bool, error)
	RegistrationExists(eventID, userID string) (bool, error)
	AddToWaitlist(eventID, userID string, joinedAt time.Time) error
	RemoveFromWaitlist(eventID, userID string) (bool, error)
}

type Controller struct {
	log     *slog.Logger
	gateway Gateway
}

func New(log *slog.Logger, gateway Gateway) *Controller {
	if log == nil {
		panic("waitlist: nil logger")
	}
	if gateway == nil {
		panic("waitlist: nil gateway")
	}

	return &Controller{log: log, gateway: gateway}
}

// Join puts the user on the event's waitlist. Joining twice is a no-op
// success, the entry is never duplicated. A user holding a registration
// for the event, in any status, cannot also be on its waitlist.
func (c *Controller) Join(eventID, userID string, now time.Time) error {
	const op = "service.waitlist.Join"

	if blank(eventID) || blank(userID) || now.IsZero() {
		return ErrInvalidInput
	}

	log := c.log.With(
		slog.String("op", op),
		slog.String("event_id", eventID),
		slog.String("user_id", userID),
	)

	open, err := c.gateway.IsRegistrationOpen(eventID, now)
	if err != nil {
		log.Error("failed to check registration window", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if !open {
		log.Info("registration window is closed")
		return ErrRegistrationClosed
	}

	onList, err := c.gateway.IsOnWaitlist(eventID, userID)
	if err != nil {
		log.Error("failed to check waitlist membership", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if onList {
		log.Info("user already on waitlist")
		return nil
	}

	registered, err := c.gateway.RegistrationExists(eventID, userID)
	if err != nil {
		log.Error("failed to check registration", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if registered {
		log.Info("user already holds a registration")
		return ErrAlreadyRegistered
	}

	if err = c.gateway.AddToWaitlist(eventID, userID, now); err != nil {
		log.Error("failed to add user to waitlist", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user joined waitlist")

	return nil
}

// Leave removes the user's waitlist entry. The bool reports whether an
// entry was actually removed; an absent entry is not an error.
func (c *Controller) Leave(eventID, userID string) (bool, error) {
	const op = "service.waitlist.Leave"

	if blank(eventID) || blank(userID) {
		return false, ErrInvalidInput
	}

	log := c.log.With(
		slog.String("op", op),
		slog.String("event_id", eventID),
		slog.String("user_id", userID),
	)

	removed, err := c.gateway.RemoveFromWaitlist(eventID, userID)
	if err != nil {
		log.Error("failed to remove user from waitlist", sl.Err(err))
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if !removed {
		log.Info("user was not on waitlist")
		return false, nil
	}

	log.Info("user left waitlist")

	return true, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
