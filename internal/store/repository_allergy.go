package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/clinical-records/internal/logger"
	"github.com/MKhiriev/clinical-records/models"
)

type allergyRepository struct {
	*DB
	logger *logger.Logger
}

// NewAllergyRepository constructs an [AllergyRepository] over the
// "allergies" table.
func NewAllergyRepository(db *DB, logger *logger.Logger) AllergyRepository {
	logger.Debug().Msg("creating allergy repository")
	return &allergyRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateAllergy inserts allergy. An unknown patient yields
// [ErrReferenceNotFound].
func (r *allergyRepository) CreateAllergy(ctx context.Context, allergy models.Allergy) (models.Allergy, error) {
	allergy.CreatedAt = now()

	created, err := r.insertAllergy(ctx, r.DB, allergy)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*allergyRepository.CreateAllergy").
			Int64("pacient_id", allergy.PatientID).
			Msg("error inserting allergy")
		return models.Allergy{}, err
	}

	return created, nil
}

func (r *allergyRepository) GetAllergyByID(ctx context.Context, id int64) (models.Allergy, error) {
	query, args, err := r.selectByID(models.Allergy{}.TableName(), allergyColumns, id).ToSql()
	if err != nil {
		return models.Allergy{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	allergy, err := scanAllergy(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Allergy{}, ErrNotFound
	}
	if err != nil {
		return models.Allergy{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return allergy, nil
}

func (r *allergyRepository) DeleteAllergy(ctx context.Context, id int64) error {
	query, args, err := r.deleteByID(models.Allergy{}.TableName(), id).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, query, args...)
}

// insertAllergy is shared with patient creation, which runs it inside the
// patient transaction.
func (db *DB) insertAllergy(ctx context.Context, q queryer, allergy models.Allergy) (models.Allergy, error) {
	query, args, err := db.insertAllergyQuery(allergy).ToSql()
	if err != nil {
		return models.Allergy{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = q.QueryRowContext(ctx, query, args...).Scan(&allergy.ID); err != nil {
		return models.Allergy{}, db.statementError(err)
	}

	return allergy, nil
}
