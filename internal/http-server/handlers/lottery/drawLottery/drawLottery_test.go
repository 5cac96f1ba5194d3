package drawLottery

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventLottery/internal/http-server/handlers/lottery/drawLottery/mocks"
	"eventLottery/internal/lib/logger/handlers/slogdiscard"
	"eventLottery/internal/models"
	"eventLottery/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawLotteryHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	result := &models.LotteryResult{
		ID:         "res-1",
		EventID:    "ev1",
		EntrantIDs: []string{"u1", "u2"},
		DrawnAt:    time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.Drawer)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"count": 2}`,
			mockSetup: func(m *mocks.Drawer) {
				m.On("Draw", "ev1", 2).Return(result, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"entrant_ids":["u1","u2"]`)
			},
		},
		{
			name:        "Zero count is a successful empty draw",
			requestBody: `{"count": 0}`,
			mockSetup: func(m *mocks.Drawer) {
				m.On("Draw", "ev1", 0).Return(&models.LotteryResult{
					ID:         "res-2",
					EventID:    "ev1",
					EntrantIDs: []string{},
					DrawnAt:    time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"entrant_ids":[]`)
			},
		},
		{
			name:        "Negative count is a successful empty draw",
			requestBody: `{"count": -1}`,
			mockSetup: func(m *mocks.Drawer) {
				m.On("Draw", "ev1", -1).Return(&models.LotteryResult{
					ID:         "res-3",
					EventID:    "ev1",
					EntrantIDs: []string{},
					DrawnAt:    time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"entrant_ids":[]`)
			},
		},
		{
			name:        "Event not found",
			requestBody: `{"count": 2}`,
			mockSetup: func(m *mocks.Drawer) {
				m.On("Draw", "ev1", 2).Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "event not found")
			},
		},
		{
			name:        "Internal error",
			requestBody: `{"count": 2}`,
			mockSetup: func(m *mocks.Drawer) {
				m.On("Draw", "ev1", 2).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to draw lottery")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			drawer := mocks.NewDrawer(t)
			tc.mockSetup(drawer)

			handler := New(logger, drawer)

			router := chi.NewRouter()
			router.Post("/events/{id}/lottery/draw", handler)

			req, err := http.NewRequest("POST", "/events/ev1/lottery/draw",
				bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			tc.checkBody(t, rr.Body.String())
		})
	}
}
