package postgres

import (
	"context"
	"database/sql"

	"conferencehub/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{DB: db}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO registrations (user_id, event_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, reg.UserID, reg.EventID, reg.CreatedAt).Scan(&reg.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRegistration
		}
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return err
	}
	return nil
}

func (r *registrationRepository) ListByEventID(ctx context.Context, eventID int64) ([]*domain.RegistrationWithUser, error) {
	query := `
		SELECT r.id, r.user_id, r.event_id, r.created_at,
		       u.id, u.name, u.email
		FROM registrations r
		JOIN users u ON u.id = r.user_id
		WHERE r.event_id = $1
		ORDER BY r.created_at
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := make([]*domain.RegistrationWithUser, 0)
	for rows.Next() {
		reg := &domain.Registration{}
		var user domain.RegistrationUser
		var nameNull sql.NullString
		err := rows.Scan(
			&reg.ID, &reg.UserID, &reg.EventID, &reg.CreatedAt,
			&user.ID, &nameNull, &user.Email,
		)
		if err != nil {
			return nil, err
		}
		user.Name = nameNull.String
		regs = append(regs, &domain.RegistrationWithUser{Registration: reg, User: user})
	}
	return regs, rows.Err()
}
