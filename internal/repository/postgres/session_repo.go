package postgres

import (
	"context"
	"database/sql"

	"conferencehub/internal/domain"
)

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{DB: db}
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (title, description, start_time, end_time, event_id, speaker_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, s.Title, s.Description, s.StartTime, s.EndTime, s.EventID, s.SpeakerID).
		Scan(&s.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return err
	}
	return nil
}

func (r *sessionRepository) ListByEventID(ctx context.Context, eventID int64) ([]*domain.SessionWithSpeaker, error) {
	query := `
		SELECT s.id, s.title, s.description, s.start_time, s.end_time, s.event_id, s.speaker_id,
		       sp.id, sp.name, sp.bio, sp.user_id
		FROM sessions s
		JOIN speakers sp ON sp.id = s.speaker_id
		WHERE s.event_id = $1
		ORDER BY s.start_time
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]*domain.SessionWithSpeaker, 0)
	for rows.Next() {
		sess := &domain.Session{}
		sp := &domain.Speaker{}
		var spUserID sql.NullInt64
		err := rows.Scan(
			&sess.ID, &sess.Title, &sess.Description, &sess.StartTime, &sess.EndTime, &sess.EventID, &sess.SpeakerID,
			&sp.ID, &sp.Name, &sp.Bio, &spUserID,
		)
		if err != nil {
			return nil, err
		}
		if spUserID.Valid {
			sp.UserID = &spUserID.Int64
		}
		sessions = append(sessions, &domain.SessionWithSpeaker{Session: sess, Speaker: sp})
	}
	return sessions, rows.Err()
}
