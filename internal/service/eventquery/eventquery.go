package eventquery

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventLottery/internal/lib/logger/sl"
	"eventLottery/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Gateway
type Gateway interface {
	OpenEvents(now time.Time) ([]models.Event, error)
	IsOnWaitlist(eventID, userID string) (bool, error)
	RegistrationExists(eventID, userID string) (bool, error)
	WaitlistCount(eventID string) (int, error)
	CustomLotteryCriteria() (string, error)
}

type Service struct {
	log             *slog.Logger
	gateway         Gateway
	defaultCriteria string
}

func New(log *slog.Logger, gateway Gateway, defaultCriteria string) *Service {
	if log == nil {
		panic("eventquery: nil logger")
	}
	if gateway == nil {
		panic("eventquery: nil gateway")
	}

	return &Service{log: log, gateway: gateway, defaultCriteria: defaultCriteria}
}

// JoinableEvents returns the open events the user may still join: events
// where they hold neither a waitlist entry nor a registration of any
// status. Gateway ordering is preserved.
func (s *Service) JoinableEvents(userID string, now time.Time) ([]models.Event, error) {
	const op = "service.eventquery.JoinableEvents"

	if blank(userID) || now.IsZero() {
		return []models.Event{}, nil
	}

	log := s.log.With(slog.String("op", op), slog.String("user_id", userID))

	events, err := s.gateway.OpenEvents(now)
	if err != nil {
		log.Error("failed to load open events", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	joinable := make([]models.Event, 0, len(events))

	for _, event := range events {
		if blank(event.ID) {
			continue
		}

		onList, err := s.gateway.IsOnWaitlist(event.ID, userID)
		if err != nil {
			log.Error("failed to check waitlist membership", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if onList {
			continue
		}

		registered, err := s.gateway.RegistrationExists(event.ID, userID)
		if err != nil {
			log.Error("failed to check registration", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if registered {
			continue
		}

		joinable = append(joinable, event)
	}

	log.Info("joinable events resolved", slog.Int("count", len(joinable)))

	return joinable, nil
}

// WaitlistCount reports how many entrants are waiting for the event,
// never less than zero. A blank event id counts as zero.
func (s *Service) WaitlistCount(eventID string) (int, error) {
	const op = "service.eventquery.WaitlistCount"

	if blank(eventID) {
		return 0, nil
	}

	count, err := s.gateway.WaitlistCount(eventID)
	if err != nil {
		s.log.Error("failed to count waitlist", slog.String("op", op), sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if count < 0 {
		count = 0
	}

	return count, nil
}

// CriteriaMarkdown resolves the lottery criteria text shown to entrants:
// the organizer's custom text, then the system default, then empty.
func (s *Service) CriteriaMarkdown() string {
	const op = "service.eventquery.CriteriaMarkdown"

	custom, err := s.gateway.CustomLotteryCriteria()
	if err != nil {
		s.log.Error("failed to load custom criteria", slog.String("op", op), sl.Err(err))
		custom = ""
	}

	if !blank(custom) {
		return custom
	}

	if !blank(s.defaultCriteria) {
		return s.defaultCriteria
	}

	return ""
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
