package waitlist

import (
	"errors"
	"testing"
	"time"

	"eventLottery/internal/lib/logger/handlers/slogdiscard"
	"eventLottery/internal/service/waitlist/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		eventID     string
		userID      string
		now         time.Time
		mockSetup   func(gw *mocks.Gateway)
		expectedErr error
	}{
		{
			name:    "Success",
			eventID: "ev1",
			userID:  "user123",
			now:     now,
			mockSetup: func(gw *mocks.Gateway) {
				gw.On("IsRegistrationOpen", "ev1", now).Return(true, nil)
				gw.On("IsOnWaitlist", "ev1", "user123").Return(false, nil)
				gw.On("RegistrationExists", "ev1", "user123").Return(false, nil)
				gw.On("AddToWaitlist", "ev1", "user123", now).Return(nil)
			},
		},
		{
			name:      "Blank event id",
			eventID:   "  ",
			userID:    "user123",
			now:       now,
			mockSetup: func(gw *mocks.Gateway) {},

			expectedErr: ErrInvalidInput,
		},
		{
			name:        "Blank user id",
			eventID:     "ev1",
			userID:      "",
			now:         now,
			mockSetup:   func(gw *mocks.Gateway) {},
			expectedErr: ErrInvalidInput,
		},
		{
			name:        "Missing timestamp",
			eventID:     "ev1",
			userID:      "user123",
			now:         time.Time{},
			mockSetup:   func(gw *mocks.Gateway) {},
			expectedErr: ErrInvalidInput,
		},
		{
			name:    "Registration window closed",
			eventID: "ev1",
			userID:  "user123",
			now:     now,
			mockSetup: func(gw *mocks.Gateway) {
				gw.On("IsRegistrationOpen", "ev1", now).Return(false, nil)
			},
			expectedErr: ErrRegistrationClosed,
		},
		{
			name:    "Already on waitlist is idempotent",
			eventID: "ev1",
			userID:  "user123",
			now:     now,
			mockSetup: func(gw *mocks.Gateway) {
				gw.On("IsRegistrationOpen", "ev1", now).Return(true, nil)
				gw.On("IsOnWaitlist", "ev1", "user123").Return(true, nil)
			},
		},
		{
			name:    "Existing registration blocks join",
			eventID: "ev1",
			userID:  "user123",
			now:     now,
			mockSetup: func(gw *mocks.Gateway) {
				gw.On("IsRegistrationOpen", "ev1", now).Return(true, nil)
				gw.On("IsOnWaitlist", "ev1", "user123").Return(false, nil)
				gw.On("RegistrationExists", "ev1", "user123").Return(true, nil)
			},
			expectedErr: ErrAlreadyRegistered,
		},
		{
			name:    "Gateway error propagates",
			eventID: "ev1",
			userID:  "user123",
			now:     now,
			mockSetup: func(gw *mocks.Gateway) {
				gw.On("IsRegistrationOpen", "ev1", now).Return(true, nil)
				gw.On("IsOnWaitlist", "ev1", "user123").Return(false, nil)
				gw.On("RegistrationExists", "ev1", "user123").Return(false, nil)
				gw.On("AddToWaitlist", "ev1", "user123", now).Return(errors.New("db down"))
			},
			expectedErr: errors.New("db down"),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gw := mocks.NewGateway(t)
			tc.mockSetup(gw)

			controller := New(logger, gw)

			err := controller.Join(tc.eventID, tc.userID, tc.now)

			if tc.expectedErr == nil {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedErr.Error())
		})
	}
}

func TestJoinRejectsExistingRegistration(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	gw := mocks.NewGateway(t)
	gw.On("IsRegistrationOpen", "ev1", now).Return(true, nil)
	gw.On("IsOnWaitlist", "ev1", "u1").Return(false, nil)
	gw.On("RegistrationExists", "ev1", "u1").Return(true, nil)

	controller := New(slogdiscard.NewDiscardLogger(), gw)

	err := controller.Join("ev1", "u1", now)

	require.ErrorIs(t, err, ErrAlreadyRegistered)
	gw.AssertNotCalled(t, "AddToWaitlist")
}

func TestJoinBlankInputSkipsGateway(t *testing.T) {
	t.Parallel()

	gw := mocks.NewGateway(t)
	controller := New(slogdiscard.NewDiscardLogger(), gw)

	err := controller.Join("", "", time.Time{})

	require.ErrorIs(t, err, ErrInvalidInput)
	gw.AssertNotCalled(t, "IsRegistrationOpen")
	gw.AssertNotCalled(t, "AddToWaitlist")
}

func TestLeave(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name        string
		eventID     string
		userID      string
		mockSetup   func(gw *mocks.Gateway)
		expected    bool
		expectedErr error
	}{
		{
			name:    "Removed",
			eventID: "ev1",
			userID:  "user123",
			mockSetup: func(gw *mocks.Gateway) {
				gw.On("RemoveFromWaitlist", "ev1", "user123").Return(true, nil)
			},
			expected: true,
		},
		{
			name:    "Not on waitlist",
			eventID: "ev1",
			userID:  "user123",
			mockSetup: func(gw *mocks.Gateway) {
				gw.On("RemoveFromWaitlist", "ev1", "user123").Return(false, nil)
			},
			expected: false,
		},
		{
			name:        "Blank input",
			eventID:     "",
			userID:      "user123",
			mockSetup:   func(gw *mocks.Gateway) {},
			expectedErr: ErrInvalidInput,
		},
		{
			name:    "Gateway error propagates",
			eventID: "ev1",
			userID:  "user123",
			mockSetup: func(gw *mocks.Gateway) {
				gw.On("RemoveFromWaitlist", "ev1", "user123").Return(false, errors.New("db down"))
			},
			expectedErr: errors.New("db down"),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gw := mocks.NewGateway(t)
			tc.mockSetup(gw)

			controller := New(logger, gw)

			removed, err := controller.Leave(tc.eventID, tc.userID)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErr.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, removed)
		})
	}
}

func TestNewPanicsOnNilGateway(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		New(slogdiscard.NewDiscardLogger(), nil)
	})
	assert.Panics(t, func() {
		New(nil, mocks.NewGateway(t))
	})
}
