package lottery

import (
	"errors"
	"testing"
	"time"

	"eventLottery/internal/lib/logger/handlers/slogdiscard"
	"eventLottery/internal/models"
	"eventLottery/internal/service/lottery/mocks"
	"eventLottery/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// firstK promotes the first k waitlist entries in snapshot order, making
// draws deterministic.
func firstK(n, k int) []int {
	picked := make([]int, k)
	for i := range picked {
		picked[i] = i
	}
	return picked
}

func newEngine(t *testing.T) (*Engine, *mocks.Gateway) {
	t.Helper()

	gw := mocks.NewGateway(t)
	engine := New(slogdiscard.NewDiscardLogger(), gw, WithPicker(firstK))

	return engine, gw
}

func snapshot(userIDs ...string) []models.WaitlistEntry {
	entries := make([]models.WaitlistEntry, 0, len(userIDs))
	for i, id := range userIDs {
		entries = append(entries, models.WaitlistEntry{
			EventID:  "ev1",
			UserID:   id,
			JoinedAt: time.Unix(int64(1000+i), 0),
		})
	}
	return entries
}

func TestDraw(t *testing.T) {
	t.Parallel()

	t.Run("Zero count returns empty result without gateway calls", func(t *testing.T) {
		t.Parallel()

		engine, gw := newEngine(t)

		result, err := engine.Draw("ev1", 0)

		require.NoError(t, err)
		assert.Equal(t, "ev1", result.EventID)
		assert.Empty(t, result.EntrantIDs)
		assert.False(t, result.DrawnAt.IsZero())
		gw.AssertNotCalled(t, "WaitlistSnapshot")
		gw.AssertNotCalled(t, "SaveLotteryResult")
	})

	t.Run("Negative count returns empty result", func(t *testing.T) {
		t.Parallel()

		engine, gw := newEngine(t)

		result, err := engine.Draw("ev1", -5)

		require.NoError(t, err)
		assert.Empty(t, result.EntrantIDs)
		gw.AssertNotCalled(t, "WaitlistSnapshot")
	})

	t.Run("Blank event id fails", func(t *testing.T) {
		t.Parallel()

		engine, _ := newEngine(t)

		_, err := engine.Draw("  ", 3)

		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Empty waitlist is a successful empty draw", func(t *testing.T) {
		t.Parallel()

		engine, gw := newEngine(t)
		gw.On("WaitlistSnapshot", "ev1").Return([]models.WaitlistEntry{}, nil)

		result, err := engine.Draw("ev1", 3)

		require.NoError(t, err)
		assert.Empty(t, result.EntrantIDs)
		gw.AssertNotCalled(t, "PromoteFromWaitlist")
		gw.AssertNotCalled(t, "SaveLotteryResult")
	})

	t.Run("Draws two of three and records the result", func(t *testing.T) {
		t.Parallel()

		engine, gw := newEngine(t)
		gw.On("WaitlistSnapshot", "ev1").Return(snapshot("u1", "u2", "u3"), nil)
		gw.On("PromoteFromWaitlist", "ev1", []string{"u1", "u2"}, mock.AnythingOfType("time.Time")).
			Return([]string{"u1", "u2"}, nil)

		var saved *models.LotteryResult
		gw.On("SaveLotteryResult", mock.AnythingOfType("*models.LotteryResult")).
			Run(func(args mock.Arguments) {
				saved = args.Get(0).(*models.LotteryResult)
			}).
			Return(nil)

		result, err := engine.Draw("ev1", 2)

		require.NoError(t, err)
		assert.Equal(t, []string{"u1", "u2"}, result.EntrantIDs)
		assert.NotEmpty(t, result.ID)
		assert.False(t, result.DrawnAt.IsZero())

		require.NotNil(t, saved)
		assert.Equal(t, result, saved)
	})

	t.Run("Count above waitlist size selects everyone", func(t *testing.T) {
		t.Parallel()

		engine, gw := newEngine(t)
		gw.On("WaitlistSnapshot", "ev1").Return(snapshot("u1", "u2"), nil)
		gw.On("PromoteFromWaitlist", "ev1", []string{"u1", "u2"}, mock.AnythingOfType("time.Time")).
			Return([]string{"u1", "u2"}, nil)
		gw.On("SaveLotteryResult", mock.AnythingOfType("*models.LotteryResult")).Return(nil)

		result, err := engine.Draw("ev1", 10)

		require.NoError(t, err)
		assert.Equal(t, []string{"u1", "u2"}, result.EntrantIDs)
	})

	t.Run("Entrants who left concurrently are skipped", func(t *testing.T) {
		t.Parallel()

		engine, gw := newEngine(t)
		gw.On("WaitlistSnapshot", "ev1").Return(snapshot("u1", "u2"), nil)
		gw.On("PromoteFromWaitlist", "ev1", []string{"u1", "u2"}, mock.AnythingOfType("time.Time")).
			Return([]string{"u2"}, nil)
		gw.On("SaveLotteryResult", mock.AnythingOfType("*models.LotteryResult")).Return(nil)

		result, err := engine.Draw("ev1", 2)

		require.NoError(t, err)
		assert.Equal(t, []string{"u2"}, result.EntrantIDs)
	})

	t.Run("All candidates gone yields empty result without persisting", func(t *testing.T) {
		t.Parallel()

		engine, gw := newEngine(t)
		gw.On("WaitlistSnapshot", "ev1").Return(snapshot("u1"), nil)
		gw.On("PromoteFromWaitlist", "ev1", []string{"u1"}, mock.AnythingOfType("time.Time")).
			Return([]string{}, nil)

		result, err := engine.Draw("ev1", 1)

		require.NoError(t, err)
		assert.Empty(t, result.EntrantIDs)
		gw.AssertNotCalled(t, "SaveLotteryResult")
	})

	t.Run("Promotion failure fails the whole draw", func(t *testing.T) {
		t.Parallel()

		engine, gw := newEngine(t)
		gw.On("WaitlistSnapshot", "ev1").Return(snapshot("u1"), nil)
		gw.On("PromoteFromWaitlist", "ev1", []string{"u1"}, mock.AnythingOfType("time.Time")).
			Return(nil, errors.New("db down"))

		_, err := engine.Draw("ev1", 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "db down")
	})

	t.Run("Result persistence failure fails the draw", func(t *testing.T) {
		t.Parallel()

		engine, gw := newEngine(t)
		gw.On("WaitlistSnapshot", "ev1").Return(snapshot("u1"), nil)
		gw.On("PromoteFromWaitlist", "ev1", []string{"u1"}, mock.AnythingOfType("time.Time")).
			Return([]string{"u1"}, nil)
		gw.On("SaveLotteryResult", mock.AnythingOfType("*models.LotteryResult")).
			Return(errors.New("db down"))

		_, err := engine.Draw("ev1", 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "db down")
	})
}

func TestRunIsDrawAlias(t *testing.T) {
	t.Parallel()

	engine, gw := newEngine(t)
	gw.On("WaitlistSnapshot", "ev1").Return(snapshot("u1", "u2"), nil)
	gw.On("PromoteFromWaitlist", "ev1", []string{"u1"}, mock.AnythingOfType("time.Time")).
		Return([]string{"u1"}, nil)
	gw.On("SaveLotteryResult", mock.AnythingOfType("*models.LotteryResult")).Return(nil)

	result, err := engine.Run("ev1", 1)

	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, result.EntrantIDs)
}

func TestRefill(t *testing.T) {
	t.Parallel()

	t.Run("No open slots returns empty result without drawing", func(t *testing.T) {
		t.Parallel()

		engine, gw := newEngine(t)
		gw.On("Event", "ev1").Return(&models.Event{ID: "ev1", Capacity: 0}, nil)
		gw.On("CountActive", "ev1").Return(0, nil)

		result, err := engine.Refill("ev1")

		require.NoError(t, err)
		assert.Empty(t, result.EntrantIDs)
		gw.AssertNotCalled(t, "WaitlistSnapshot")
	})

	t.Run("Full event returns empty result", func(t *testing.T) {
		t.Parallel()

		engine, gw := newEngine(t)
		gw.On("Event", "ev1").Return(&models.Event{ID: "ev1", Capacity: 3}, nil)
		gw.On("CountActive", "ev1").Return(3, nil)

		result, err := engine.Refill("ev1")

		require.NoError(t, err)
		assert.Empty(t, result.EntrantIDs)
	})

	t.Run("Draws exactly the open slots", func(t *testing.T) {
		t.Parallel()

		engine, gw := newEngine(t)
		gw.On("Event", "ev1").Return(&models.Event{ID: "ev1", Capacity: 5}, nil)
		gw.On("CountActive", "ev1").Return(3, nil)
		gw.On("WaitlistSnapshot", "ev1").Return(snapshot("u1", "u2", "u3"), nil)
		gw.On("PromoteFromWaitlist", "ev1", []string{"u1", "u2"}, mock.AnythingOfType("time.Time")).
			Return([]string{"u1", "u2"}, nil)
		gw.On("SaveLotteryResult", mock.AnythingOfType("*models.LotteryResult")).Return(nil)

		result, err := engine.Refill("ev1")

		require.NoError(t, err)
		assert.Equal(t, []string{"u1", "u2"}, result.EntrantIDs)
	})

	t.Run("Unknown event fails", func(t *testing.T) {
		t.Parallel()

		engine, gw := newEngine(t)
		gw.On("Event", "ev1").Return(nil, storage.ErrEventNotFound)

		_, err := engine.Refill("ev1")

		require.ErrorIs(t, err, storage.ErrEventNotFound)
	})

	t.Run("Blank event id fails", func(t *testing.T) {
		t.Parallel()

		engine, _ := newEngine(t)

		_, err := engine.Refill("")

		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCancelNonResponders(t *testing.T) {
	t.Parallel()

	deadline := time.Unix(10000, 0)

	t.Run("Cancels every stale selection", func(t *testing.T) {
		t.Parallel()

		engine, gw := newEngine(t)
		gw.On("SelectedRegistrations", "ev1").Return([]models.Registration{
			{EventID: "ev1", UserID: "u1", Status: models.StatusSelected, SelectedAt: time.Unix(1000, 0)},
			{EventID: "ev1", UserID: "u2", Status: models.StatusSelected, SelectedAt: time.Unix(2000, 0)},
		}, nil)
		gw.On("BulkCancelSelected", "ev1", []string{"u1", "u2"}).Return(2, nil)

		cancelled, err := engine.CancelNonResponders("ev1", deadline)

		require.NoError(t, err)
		assert.Equal(t, 2, cancelled)
	})

	t.Run("Selections at or after the deadline stay", func(t *testing.T) {
		t.Parallel()

		engine, gw := newEngine(t)
		gw.On("SelectedRegistrations", "ev1").Return([]models.Registration{
			{EventID: "ev1", UserID: "u1", Status: models.StatusSelected, SelectedAt: deadline},
			{EventID: "ev1", UserID: "u2", Status: models.StatusSelected, SelectedAt: time.Unix(1000, 0)},
		}, nil)
		gw.On("BulkCancelSelected", "ev1", []string{"u2"}).Return(1, nil)

		cancelled, err := engine.CancelNonResponders("ev1", deadline)

		require.NoError(t, err)
		assert.Equal(t, 1, cancelled)
	})

	t.Run("Nothing stale is a zero success", func(t *testing.T) {
		t.Parallel()

		engine, gw := newEngine(t)
		gw.On("SelectedRegistrations", "ev1").Return([]models.Registration{}, nil)

		cancelled, err := engine.CancelNonResponders("ev1", deadline)

		require.NoError(t, err)
		assert.Zero(t, cancelled)
		gw.AssertNotCalled(t, "BulkCancelSelected")
	})

	t.Run("Gateway error propagates", func(t *testing.T) {
		t.Parallel()

		engine, gw := newEngine(t)
		gw.On("SelectedRegistrations", "ev1").Return(nil, errors.New("db down"))

		_, err := engine.CancelNonResponders("ev1", deadline)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "db down")
	})

	t.Run("Missing deadline fails", func(t *testing.T) {
		t.Parallel()

		engine, _ := newEngine(t)

		_, err := engine.CancelNonResponders("ev1", time.Time{})

		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUniformPick(t *testing.T) {
	t.Parallel()

	picked := uniformPick(10, 4)

	require.Len(t, picked, 4)

	seen := make(map[int]bool, len(picked))
	for _, i := range picked {
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, 10)
		assert.False(t, seen[i], "index %d picked twice", i)
		seen[i] = true
	}
}

func TestNewPanicsOnNilGateway(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { New(slogdiscard.NewDiscardLogger(), nil) })
	assert.Panics(t, func() { New(nil, mocks.NewGateway(t)) })
}
