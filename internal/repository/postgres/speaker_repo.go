package postgres

import (
	"context"
	"database/sql"

	"conferencehub/internal/domain"
)

type speakerRepository struct {
	DB *sql.DB
}

func NewSpeakerRepository(db *sql.DB) domain.SpeakerRepository {
	return &speakerRepository{DB: db}
}

func (r *speakerRepository) Create(ctx context.Context, s *domain.Speaker) error {
	query := `
		INSERT INTO speakers (name, bio, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var userID sql.NullInt64
	if s.UserID != nil {
		userID = sql.NullInt64{Int64: *s.UserID, Valid: true}
	}
	err := r.DB.QueryRowContext(ctx, query, s.Name, s.Bio, userID).Scan(&s.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return err
	}
	return nil
}

func (r *speakerRepository) List(ctx context.Context) ([]*domain.Speaker, error) {
	query := `
		SELECT id, name, bio, user_id
		FROM speakers
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	speakers := make([]*domain.Speaker, 0)
	for rows.Next() {
		s := &domain.Speaker{}
		var userID sql.NullInt64
		if err := rows.Scan(&s.ID, &s.Name, &s.Bio, &userID); err != nil {
			return nil, err
		}
		if userID.Valid {
			s.UserID = &userID.Int64
		}
		speakers = append(speakers, s)
	}
	return speakers, rows.Err()
}
