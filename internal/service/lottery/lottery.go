package lottery

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"eventLottery/internal/lib/logger/sl"
	"eventLottery/internal/models"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("event id is required")

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Gateway
type Gateway interface {
	Event(eventID string) (*models.Event, error)
	WaitlistSnapshot(eventID string) ([]models.WaitlistEntry, error)
	// PromoteFromWaitlist atomically turns waitlist entries into selected
	// registrations. Entrants whose waitlist row is already gone are
	// skipped; the returned slice holds the ids actually promoted.
	PromoteFromWaitlist(eventID string, userIDs []string, selectedAt time.Time) ([]string, error)
	CountActive(eventID string) (int, error)
	SelectedRegistrations(eventID string) ([]models.Registration, error)
	BulkCancelSelected(eventID string, userIDs []string) (int, error)
	SaveLotteryResult(result *models.LotteryResult) error
}

// Picker returns k distinct indexes in [0, n). The default picker samples
// uniformly without replacement; tests inject a deterministic one.
type Picker func(n, k int) []int

type Engine struct {
	log     *slog.Logger
	gateway Gateway
	pick    Picker
}

type Option func(*Engine)

func WithPicker(pick Picker) Option {
	return func(e *Engine) {
		e.pick = pick
	}
}

func New(log *slog.Logger, gateway Gateway, opts ...Option) *Engine {
	if log == nil {
		panic("lottery: nil logger")
	}
	if gateway == nil {
		panic("lottery: nil gateway")
	}

	e := &Engine{log: log, gateway: gateway, pick: uniformPick}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func uniformPick(n, k int) []int {
	return rand.Perm(n)[:k]
}

// Draw selects up to count distinct entrants from the event's waitlist,
// promotes them to selected registrations and records the result. An
// empty waitlist or a non-positive count is a successful empty draw.
func (e *Engine) Draw(eventID string, count int) (*models.LotteryResult, error) {
	const op = "service.lottery.Draw"

	if blank(eventID) {
		return nil, ErrInvalidInput
	}

	if count <= 0 {
		return emptyResult(eventID), nil
	}

	log := e.log.With(slog.String("op", op), slog.String("event_id", eventID))

	snapshot, err := e.gateway.WaitlistSnapshot(eventID)
	if err != nil {
		log.Error("failed to snapshot waitlist", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(snapshot) == 0 {
		log.Info("waitlist is empty, nothing to draw")
		return emptyResult(eventID), nil
	}

	if count > len(snapshot) {
		count = len(snapshot)
	}

	candidates := make([]string, 0, count)
	for _, i := range e.pick(len(snapshot), count) {
		candidates = append(candidates, snapshot[i].UserID)
	}

	drawnAt := time.Now()

	promoted, err := e.gateway.PromoteFromWaitlist(eventID, candidates, drawnAt)
	if err != nil {
		log.Error("failed to promote entrants", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(promoted) == 0 {
		log.Info("all candidates left the waitlist before promotion")
		return emptyResult(eventID), nil
	}

	result := &models.LotteryResult{
		ID:         uuid.NewString(),
		EventID:    eventID,
		EntrantIDs: promoted,
		DrawnAt:    drawnAt,
	}

	if err = e.gateway.SaveLotteryResult(result); err != nil {
		log.Error("failed to save lottery result", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("lottery drawn", slog.Int("selected", len(promoted)))

	return result, nil
}

// Run is the organizer-facing "run initial lottery" action. It behaves
// exactly like Draw.
func (e *Engine) Run(eventID string, count int) (*models.LotteryResult, error) {
	return e.Draw(eventID, count)
}

// Refill draws exactly as many entrants as the event has open slots,
// where open slots are capacity minus selected and confirmed entrants.
func (e *Engine) Refill(eventID string) (*models.LotteryResult, error) {
	const op = "service.lottery.Refill"

	if blank(eventID) {
		return nil, ErrInvalidInput
	}

	log := e.log.With(slog.String("op", op), slog.String("event_id", eventID))

	event, err := e.gateway.Event(eventID)
	if err != nil {
		log.Error("failed to load event", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	active, err := e.gateway.CountActive(eventID)
	if err != nil {
		log.Error("failed to count active registrations", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	openSlots := event.Capacity - active
	if openSlots <= 0 {
		log.Info("no open slots to refill", slog.Int("active", active))
		return emptyResult(eventID), nil
	}

	log.Info("refilling open slots", slog.Int("open_slots", openSlots))

	return e.Draw(eventID, openSlots)
}

// CancelNonResponders reclaims selections that were never answered:
// every selected registration picked strictly before the deadline moves
// to cancelled. Returns how many were reclaimed; zero is a success.
// Refilling the freed slots is a separate, explicit call.
func (e *Engine) CancelNonResponders(eventID string, deadline time.Time) (int, error) {
	const op = "service.lottery.CancelNonResponders"

	if blank(eventID) || deadline.IsZero() {
		return 0, ErrInvalidInput
	}

	log := e.log.With(slog.String("op", op), slog.String("event_id", eventID))

	selected, err := e.gateway.SelectedRegistrations(eventID)
	if err != nil {
		log.Error("failed to load selected registrations", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var stale []string
	for _, reg := range selected {
		if reg.SelectedAt.Before(deadline) {
			stale = append(stale, reg.UserID)
		}
	}

	if len(stale) == 0 {
		log.Info("no stale selections")
		return 0, nil
	}

	cancelled, err := e.gateway.BulkCancelSelected(eventID, stale)
	if err != nil {
		log.Error("failed to cancel stale selections", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("stale selections reclaimed", slog.Int("cancelled", cancelled))

	return cancelled, nil
}

func emptyResult(eventID string) *models.LotteryResult {
	return &models.LotteryResult{
		ID:         uuid.NewString(),
		EventID:    eventID,
		EntrantIDs: []string{},
		DrawnAt:    time.Now(),
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
