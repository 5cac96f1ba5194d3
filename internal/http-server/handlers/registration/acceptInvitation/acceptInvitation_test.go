package acceptInvitation

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventLottery/internal/http-server/handlers/registration/acceptInvitation/mocks"
	"eventLottery/internal/lib/logger/handlers/slogdiscard"
	"eventLottery/internal/service/registration"
	"eventLottery/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcceptInvitationHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.InvitationAccepter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: `{"user_id": "user123"}`,
			mockSetup: func(m *mocks.InvitationAccepter) {
				m.On("Accept", "ev1", "user123").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:        "No invitation",
			requestBody: `{"user_id": "user123"}`,
			mockSetup: func(m *mocks.InvitationAccepter) {
				m.On("Accept", "ev1", "user123").Return(storage.ErrRegistrationNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"no invitation found for this user"}`,
		},
		{
			name:        "Not selected",
			requestBody: `{"user_id": "user123"}`,
			mockSetup: func(m *mocks.InvitationAccepter) {
				m.On("Accept", "ev1", "user123").Return(registration.ErrNotSelected)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"registration is not awaiting a response"}`,
		},
		{
			name:        "Internal error",
			requestBody: `{"user_id": "user123"}`,
			mockSetup: func(m *mocks.InvitationAccepter) {
				m.On("Accept", "ev1", "user123").Return(errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to accept invitation"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `nope`,
			mockSetup:      func(m *mocks.InvitationAccepter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			accepter := mocks.NewInvitationAccepter(t)
			tc.mockSetup(accepter)

			handler := New(logger, accepter)

			router := chi.NewRouter()
			router.Post("/events/{id}/invitation/accept", handler)

			req, err := http.NewRequest("POST", "/events/ev1/invitation/accept",
				bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
