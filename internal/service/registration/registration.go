package registration

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventLottery/internal/lib/logger/sl"
	"eventLottery/internal/models"
)

var (
	ErrInvalidInput       = errors.New("event id, user id and timestamp are required")
	ErrRegistrationClosed = errors.New("registration window is closed")
	ErrGeoNotVerified     = errors.New("geolocation could not be verified")
	ErrNotSelected        = errors.New("registration is not awaiting a response")
	ErrOnWaitlist         = errors.New("user is on the waitlist for this event")
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Gateway
type Gateway interface {
	IsRegistrationOpen(eventID string, now time.Time) (bool, error)
	IsGeolocationRequired(eventID string) (bool, error)
	IsOnWaitlist(eventID, userID string) (bool, error)
	UpsertRegistration(eventID, userID string, status models.Status, now time.Time) error
	GetRegistration(eventID, userID string) (*models.Registration, error)
	UpdateRegistrationStatus(eventID, userID string, from, to models.Status) (bool, error)
}

// GeoVerifier validates an entrant's location for events that require it.
// Registration fails closed when verification fails or errors.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GeoVerifier
type GeoVerifier interface {
	Verify(eventID, userID string) (bool, error)
}

type Controller struct {
	log     *slog.Logger
	gateway Gateway
	geo     GeoVerifier
}

func New(log *slog.Logger, gateway Gateway, geo GeoVerifier) *Controller {
	if log == nil {
		panic("registration: nil logger")
	}
	if gateway == nil {
		panic("registration: nil gateway")
	}
	if geo == nil {
		panic("registration: nil geo verifier")
	}

	return &Controller{log: log, gateway: gateway, geo: geo}
}

// Register creates a pending registration directly from the event details
// page, bypassing the lottery. Re-registering is an idempotent no-op.
// A user on the event's waitlist cannot also hold a registration; they
// have to leave the waitlist first.
func (c *Controller) Register(eventID, userID string, now time.Time) error {
	const op = "service.registration.Register"

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
		log.Info("user is on the waitlist")
		return ErrOnWaitlist
	}

	required, err := c.gateway.IsGeolocationRequired(eventID)
	if err != nil {
		log.Error("failed to check geolocation requirement", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if required {
		ok, err := c.geo.Verify(eventID, userID)
		if err != nil {
			log.Error("geolocation verification failed", sl.Err(err))
			return fmt.Errorf("%s: %w", op, err)
		}
		if !ok {
			log.Info("geolocation rejected")
			return ErrGeoNotVerified
		}
	}

	if err = c.gateway.UpsertRegistration(eventID, userID, models.StatusPending, now); err != nil {
		log.Error("failed to create registration", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("registration created")

	return nil
}

// Accept confirms a lottery invitation. Valid only while the registration
// is in the selected status; this is the sole path into confirmed.
func (c *Controller) Accept(eventID, userID string) error {
	const op = "service.registration.Accept"
	return c.respond(op, eventID, userID, models.StatusConfirmed)
}

// Decline turns down a lottery invitation. Valid only from selected.
func (c *Controller) Decline(eventID, userID string) error {
	const op = "service.registration.Decline"
	return c.respond(op, eventID, userID, models.StatusDeclined)
}

func (c *Controller) respond(op, eventID, userID string, to models.Status) error {
	if blank(eventID) || blank(userID) {
		return ErrInvalidInput
	}

	log := c.log.With(
		slog.String("op", op),
		slog.String("event_id", eventID),
		slog.String("user_id", userID),
	)

	reg, err := c.gateway.GetRegistration(eventID, userID)
	if err != nil {
		log.Error("failed to load registration", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if !models.CanTransition(reg.Status, to) {
		log.Info("illegal status transition rejected",
			slog.String("from", string(reg.Status)),
			slog.String("to", string(to)),
		)
		return ErrNotSelected
	}

	// Conditioned on the status read above so a concurrent accept/decline
	// cannot be silently overwritten.
	updated, err := c.gateway.UpdateRegistrationStatus(eventID, userID, reg.Status, to)
	if err != nil {
		log.Error("failed to update registration status", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if !updated {
		log.Info("registration changed concurrently, transition lost")
		return ErrNotSelected
	}

	log.Info("invitation answered", slog.String("status", string(to)))

	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
