package repository

import (
	"context"
	"database/sql"
	"errors"

	"customer-onboarding/config"
	"customer-onboarding/internal/model"
	"customer-onboarding/internal/util"

	"github.com/jmoiron/sqlx"
)

const profileCustomerConstraint = "customer_profiles_customer_id_key"

type ProfileRepository struct {
	*config.Database
}

func NewProfileRepository(database *config.Database) *ProfileRepository {
	return &ProfileRepository{database}
}

// Create : повторная анкета того же клиента даёт model.ErrProfileExists
func (r *ProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	query := `
	INSERT INTO customer_profiles (
		id, customer_id, name, father_name, gender, nationality, date_of_birth,
		address, place_of_birth, phone_number, email_address
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING created_at, updated_at
	`

	err := r.DB.QueryRowxContext(ctx, query,
		profile.UUID,
		profile.CustomerID,
		profile.Name,
		profile.FatherName,
		profile.Gender,
		profile.Nationality,
		profile.DateOfBirth,
		profile.Address,
		profile.PlaceOfBirth,
		profile.PhoneNumber,
		profile.EmailAddress,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if uniqueViolationOn(err, profileCustomerConstraint) {
			return model.ErrProfileExists
		}
		if foreignKeyViolationOn(err) {
			return model.ErrUserNotFound
		}
		return util.LogError("[ProfileRepo] ошибка вставки данных в БД", err)
	}

	return nil
}

func (r *ProfileRepository) FindByCustomerID(ctx context.Context, customerID string) (*model.Profile, error) {
	query := `
	SELECT id, customer_id, name, father_name, gender, nationality, date_of_birth,
		address, place_of_birth, phone_number, email_address, created_at, updated_at
	FROM customer_profiles
	WHERE customer_id = $1
	`

	var profile model.Profile
	if err := sqlx.GetContext(ctx, r.DB, &profile, query, customerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, util.LogError("[ProfileRepo] не удалось получить анкету клиента", err)
	}
	return &profile, nil
}

// Update : перезаписывает анкету клиента целиком. Нет анкеты: model.ErrNotFound
func (r *ProfileRepository) Update(ctx context.Context, profile *model.Profile) error {
	query := `
	UPDATE customer_profiles
	SET name = $2, father_name = $3, gender = $4, nationality = $5, date_of_birth = $6,
		address = $7, place_of_birth = $8, phone_number = $9, email_address = $10, updated_at = NOW()
	WHERE customer_id = $1
	RETURNING id, created_at, updated_at
	`

	err := r.DB.QueryRowxContext(ctx, query,
		profile.CustomerID,
		profile.Name,
		profile.FatherName,
		profile.Gender,
		profile.Nationality,
		profile.DateOfBirth,
		profile.Address,
		profile.PlaceOfBirth,
		profile.PhoneNumber,
		profile.EmailAddress,
	).Scan(&profile.UUID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ErrNotFound
		}
		return util.LogError("[ProfileRepo] ошибка обновления анкеты", err)
	}

	return nil
}
