package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conferencehub/internal/delivery/http/helpers"
	"conferencehub/internal/domain"
)

// fakeEventService implements domain.EventService for tests.
type fakeEventService struct {
	createErr error
	list      []*domain.EventWithSessions
	listErr   error
	get       *domain.EventWithSessions
	getErr    error
	updated   *domain.Event
	updateErr error
	deleteErr error
}

func (f *fakeEventService) Create(_ context.Context, event *domain.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	event.ID = 1
	return nil
}

func (f *fakeEventService) List(_ context.Context) ([]*domain.EventWithSessions, error) {
	return f.list, f.listErr
}

func (f *fakeEventService) GetByID(_ context.Context, _ int64) (*domain.EventWithSessions, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.get, nil
}

func (f *fakeEventService) Update(_ context.Context, _ *domain.Event) (*domain.Event, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updated, nil
}

func (f *fakeEventService) Delete(_ context.Context, _ int64) error {
	return f.deleteErr
}

func TestEventController_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svc        *fakeEventService
		wantStatus int
		wantError  string
	}{
		{
			name:       "success",
			body:       `{"name":"GopherCon","date":"2026-11-01T09:00:00Z","location":"Berlin"}`,
			svc:        &fakeEventService{},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing name and date",
			body:       `{"location":"Berlin"}`,
			svc:        &fakeEventService{},
			wantStatus: http.StatusBadRequest,
			wantError:  "name is required; date is required",
		},
		{
			name:       "store failure",
			body:       `{"name":"GopherCon","date":"2026-11-01T09:00:00Z"}`,
			svc:        &fakeEventService{createErr: errors.New("insert event: connection refused")},
			wantStatus: http.StatusBadRequest,
			wantError:  "could not create the event",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewEventController(testLogger(), tt.svc)
			req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			c.Create(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantError != "" {
				var body helpers.ErrorResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, tt.wantError, body.Error)
				return
			}
			var created domain.Event
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
			assert.Equal(t, int64(1), created.ID)
			assert.Equal(t, "GopherCon", created.Name)
		})
	}
}

func TestEventController_GetByID(t *testing.T) {
	date := time.Date(2026, 11, 1, 9, 0, 0, 0, time.UTC)
	event := &domain.EventWithSessions{
		Event: &domain.Event{ID: 5, Name: "GopherCon", Date: date},
		Sessions: []*domain.SessionWithSpeaker{
			{
				Session: &domain.Session{ID: 9, Title: "Generics in Practice", EventID: 5, SpeakerID: 2},
				Speaker: &domain.Speaker{ID: 2, Name: "Robert"},
			},
		},
	}

	tests := []struct {
		name       string
		pathID     string
		svc        *fakeEventService
		wantStatus int
		wantError  string
	}{
		{
			name:       "found with nested sessions",
			pathID:     "5",
			svc:        &fakeEventService{get: event},
			wantStatus: http.StatusOK,
		},
		{
			name:       "not found is 404",
			pathID:     "999",
			svc:        &fakeEventService{getErr: domain.ErrNotFound},
			wantStatus: http.StatusNotFound,
			wantError:  "event not found",
		},
		{
			name:       "store failure is 500 not 404",
			pathID:     "5",
			svc:        &fakeEventService{getErr: errors.New("get event: connection refused")},
			wantStatus: http.StatusInternalServerError,
			wantError:  "could not fetch the event",
		},
		{
			name:       "non-numeric id",
			pathID:     "abc",
			svc:        &fakeEventService{},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid id",
		},
		{
			name:       "non-positive id",
			pathID:     "0",
			svc:        &fakeEventService{},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewEventController(testLogger(), tt.svc)
			req := httptest.NewRequest(http.MethodGet, "/events/"+tt.pathID, nil)
			req.SetPathValue("id", tt.pathID)
			rr := httptest.NewRecorder()

			c.GetByID(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantError != "" {
				var body helpers.ErrorResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, tt.wantError, body.Error)
				return
			}
			var got domain.EventWithSessions
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
			assert.Equal(t, int64(5), got.ID)
			require.Len(t, got.Sessions, 1)
			assert.Equal(t, "Generics in Practice", got.Sessions[0].Title)
			assert.Equal(t, "Robert", got.Sessions[0].Speaker.Name)
		})
	}
}

func TestEventController_List(t *testing.T) {
	t.Run("empty list is an array not null", func(t *testing.T) {
		c := NewEventController(testLogger(), &fakeEventService{list: []*domain.EventWithSessions{}})
		req := httptest.NewRequest(http.MethodGet, "/events", nil)
		rr := httptest.NewRecorder()

		c.List(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("store failure is 500", func(t *testing.T) {
		c := NewEventController(testLogger(), &fakeEventService{listErr: errors.New("list events: connection refused")})
		req := httptest.NewRequest(http.MethodGet, "/events", nil)
		rr := httptest.NewRecorder()

		c.List(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		var body helpers.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, "could not fetch events", body.Error)
	})
}

func TestEventController_Update(t *testing.T) {
	t.Run("success returns the updated event", func(t *testing.T) {
		updated := &domain.Event{ID: 5, Name: "GopherCon EU", Date: time.Now().UTC()}
		c := NewEventController(testLogger(), &fakeEventService{updated: updated})
		body := `{"name":"GopherCon EU","date":"2026-11-01T09:00:00Z"}`
		req := httptest.NewRequest(http.MethodPut, "/events/5", strings.NewReader(body))
		req.SetPathValue("id", "5")
		rr := httptest.NewRecorder()

		c.Update(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got domain.Event
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, "GopherCon EU", got.Name)
	})

	t.Run("missing event is 400 on the write path", func(t *testing.T) {
		c := NewEventController(testLogger(), &fakeEventService{updateErr: domain.ErrNotFound})
		body := `{"name":"GopherCon EU","date":"2026-11-01T09:00:00Z"}`
		req := httptest.NewRequest(http.MethodPut, "/events/999", strings.NewReader(body))
		req.SetPathValue("id", "999")
		rr := httptest.NewRecorder()

		c.Update(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		var resp helpers.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "could not update the event", resp.Error)
	})
}

func TestEventController_Delete(t *testing.T) {
	t.Run("success is 204 with empty body", func(t *testing.T) {
		c := NewEventController(testLogger(), &fakeEventService{})
		req := httptest.NewRequest(http.MethodDelete, "/events/5", nil)
		req.SetPathValue("id", "5")
		rr := httptest.NewRecorder()

		c.Delete(rr, req)

		require.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("missing event is 400", func(t *testing.T) {
		c := NewEventController(testLogger(), &fakeEventService{deleteErr: domain.ErrNotFound})
		req := httptest.NewRequest(http.MethodDelete, "/events/999", nil)
		req.SetPathValue("id", "999")
		rr := httptest.NewRecorder()

		c.Delete(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		var resp helpers.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "could not delete the event", resp.Error)
	})
}
