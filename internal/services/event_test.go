package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conferencehub/internal/domain"
)

// fakeSessionRepo implements domain.SessionRepository for tests.
type fakeSessionRepo struct {
	createErr error
	byEvent   map[int64][]*domain.SessionWithSpeaker
	listErr   error

	created *domain.Session
}

func (f *fakeSessionRepo) Create(_ context.Context, session *domain.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	session.ID = 9
	f.created = session
	return nil
}

func (f *fakeSessionRepo) ListByEventID(_ context.Context, eventID int64) ([]*domain.SessionWithSpeaker, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byEvent[eventID], nil
}

func TestEventService_Create(t *testing.T) {
	svc := NewEventService(&fakeEventRepo{}, &fakeSessionRepo{}, time.Second)
	event := &domain.Event{Name: "GopherCon", Date: time.Date(2026, 11, 1, 9, 0, 0, 0, time.UTC)}

	err := svc.Create(context.Background(), event)

	require.NoError(t, err)
	assert.False(t, event.CreatedAt.IsZero())
	assert.Equal(t, event.CreatedAt, event.UpdatedAt)
}

func TestEventService_List(t *testing.T) {
	events := []*domain.Event{{ID: 1, Name: "First"}, {ID: 2, Name: "Second"}}
	sessions := map[int64][]*domain.SessionWithSpeaker{
		1: {
			{
				Session: &domain.Session{ID: 9, Title: "Generics in Practice", EventID: 1, SpeakerID: 2},
				Speaker: &domain.Speaker{ID: 2, Name: "Robert"},
			},
		},
	}
	svc := NewEventService(&fakeEventRepo{list: events}, &fakeSessionRepo{byEvent: sessions}, time.Second)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Len(t, got[0].Sessions, 1)
	assert.Equal(t, "Robert", got[0].Sessions[0].Speaker.Name)
	assert.Empty(t, got[1].Sessions)
}

func TestEventService_GetByID(t *testing.T) {
	t.Run("bundles the event with its sessions", func(t *testing.T) {
		event := &domain.Event{ID: 5, Name: "GopherCon"}
		sessions := map[int64][]*domain.SessionWithSpeaker{
			5: {
				{
					Session: &domain.Session{ID: 9, Title: "Profiling Go", EventID: 5, SpeakerID: 3},
					Speaker: &domain.Speaker{ID: 3, Name: "Dana"},
				},
			},
		}
		svc := NewEventService(&fakeEventRepo{byID: event}, &fakeSessionRepo{byEvent: sessions}, time.Second)

		got, err := svc.GetByID(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, int64(5), got.ID)
		require.Len(t, got.Sessions, 1)
		assert.Equal(t, "Dana", got.Sessions[0].Speaker.Name)
	})

	t.Run("missing event passes through not found", func(t *testing.T) {
		svc := NewEventService(&fakeEventRepo{byIDErr: domain.ErrNotFound}, &fakeSessionRepo{}, time.Second)

		_, err := svc.GetByID(context.Background(), 999)

		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEventService_Delete(t *testing.T) {
	t.Run("missing event passes through not found", func(t *testing.T) {
		svc := NewEventService(&fakeEventRepo{deleteErr: domain.ErrNotFound}, &fakeSessionRepo{}, time.Second)

		err := svc.Delete(context.Background(), 999)

		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
