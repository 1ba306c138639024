package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetwise/models"
	"meetwise/services/scheduling"
)

// stubSchedulingService returns a canned response or error.
type stubSchedulingService struct {
	resp models.ScheduleResponse
	err  error
	got  models.ScheduleRequest
}

func (s *stubSchedulingService) ScheduleMeeting(_ context.Context, req models.ScheduleRequest) (models.ScheduleResponse, error) {
	s.got = req
	return s.resp, s.err
}

func newTestRouter(svc scheduling.SchedulingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	SchedulingSvc = svc
	RecordRepo = nil
	r := gin.New()
	r.POST("/receive", ReceiveMeetingRequest)
	return r
}

func validPayload() map[string]any {
	return map[string]any{
		"Request_id":   "6118b54f-907b-4451-8d48-dd13d76033a5",
		"Datetime":     "17-07-2025T12:34:55",
		"Location":     "IISc Bangalore",
		"From":         "userone.amd@gmail.com",
		"Attendees":    []map[string]string{{"email": "usertwo.amd@gmail.com"}},
		"Subject":      "Project Status",
		"EmailContent": "Let's meet Thursday for 30 minutes.",
	}
}

func postJSON(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/receive", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReceiveMeetingRequest(t *testing.T) {
	svc := &stubSchedulingService{resp: models.ScheduleResponse{
		RequestID:    "6118b54f-907b-4451-8d48-dd13d76033a5",
		EventStart:   "2025-07-17T14:00:00+05:30",
		EventEnd:     "2025-07-17T14:30:00+05:30",
		DurationMins: "30",
	}}
	r := newTestRouter(svc)

	w := postJSON(t, r, validPayload())

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2025-07-17T14:00:00+05:30", resp.EventStart)
	assert.Equal(t, "30", resp.DurationMins)
	assert.Equal(t, "userone.amd@gmail.com", svc.got.From)
}

func TestReceiveMeetingRequestNotFoundIsOK(t *testing.T) {
	svc := &stubSchedulingService{resp: models.ScheduleResponse{
		RequestID: "6118b54f-907b-4451-8d48-dd13d76033a5",
		Error:     "no feasible slot within the scheduling horizon",
	}}
	r := newTestRouter(svc)

	w := postJSON(t, r, validPayload())

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.EventStart)
	assert.NotEmpty(t, resp.Error)
}

func TestReceiveMeetingRequestBadJSON(t *testing.T) {
	r := newTestRouter(&stubSchedulingService{})

	req := httptest.NewRequest(http.MethodPost, "/receive", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReceiveMeetingRequestMissingRequiredFields(t *testing.T) {
	r := newTestRouter(&stubSchedulingService{})

	payload := validPayload()
	delete(payload, "From")
	w := postJSON(t, r, payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReceiveMeetingRequestErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid duration", scheduling.ErrInvalidDuration, http.StatusBadRequest},
		{"no participants", scheduling.ErrNoParticipants, http.StatusBadRequest},
		{"internal failure", assert.AnError, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&stubSchedulingService{err: tc.err})
			w := postJSON(t, r, validPayload())
			assert.Equal(t, tc.want, w.Code)
		})
	}
}
