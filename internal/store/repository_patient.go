package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/clinical-records/internal/logger"
	"github.com/MKhiriev/clinical-records/models"
)

// patientRepository is the SQL implementation of [PatientRepository]. It owns
// the "pacients" table and reads the "allergies" and "clinical_stories"
// tables when a patient is loaded with its relations.
type patientRepository struct {
	*DB
	logger *logger.Logger
}

// NewPatientRepository constructs a [PatientRepository] backed by the
// provided database connection and logger.
func NewPatientRepository(db *DB, logger *logger.Logger) PatientRepository {
	logger.Debug().Msg("creating patient repository")
	return &patientRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePatient inserts the patient and its inline allergies in one
// transaction.
//
// Error handling:
//   - unique violation on document → [ErrAlreadyExists].
//   - unknown creator → [ErrReferenceNotFound].
func (r *patientRepository) CreatePatient(ctx context.Context, patient models.Patient) (models.Patient, error) {
	log := logger.FromContext(ctx)

	patient.CreatedAt = now()
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := r.insertPatientQuery(patient).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err = tx.QueryRowContext(ctx, query, args...).Scan(&patient.ID); err != nil {
			log.Err(err).Str("func", "*patientRepository.CreatePatient").Str("document", patient.Document).Msg("error inserting patient")
			return r.statementError(err)
		}

		for i := range patient.Allergies {
			patient.Allergies[i].PatientID = patient.ID
			patient.Allergies[i].CreatedAt = patient.CreatedAt

			allergy, err := r.insertAllergy(ctx, tx, patient.Allergies[i])
			if err != nil {
				log.Err(err).Str("func", "*patientRepository.CreatePatient").Int("allergy", i).Msg("error inserting allergy")
				return err
			}
			patient.Allergies[i] = allergy
		}

		return nil
	})
	if err != nil {
		return models.Patient{}, err
	}

	if patient.Allergies == nil {
		patient.Allergies = []models.Allergy{}
	}
	patient.ClinicalStories = []models.ClinicalStory{}

	return patient, nil
}

// GetPatientByID returns the patient with its allergies and clinical stories,
// both ordered by ID, or [ErrNotFound].
func (r *patientRepository) GetPatientByID(ctx context.Context, id int64) (models.Patient, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.selectByID(models.Patient{}.TableName(), patientColumns, id).ToSql()
	if err != nil {
		return models.Patient{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	patient, err := scanPatient(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Patient{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*patientRepository.GetPatientByID").Int64("pacient_id", id).Msg("error scanning patient")
		return models.Patient{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if patient.Allergies, err = r.patientAllergies(ctx, id); err != nil {
		log.Err(err).Str("func", "*patientRepository.GetPatientByID").Int64("pacient_id", id).Msg("error loading allergies")
		return models.Patient{}, err
	}

	if patient.ClinicalStories, err = r.patientClinicalStories(ctx, id); err != nil {
		log.Err(err).Str("func", "*patientRepository.GetPatientByID").Int64("pacient_id", id).Msg("error loading clinical stories")
		return models.Patient{}, err
	}

	return patient, nil
}

// UpdatePatient writes the non-nil fields of update and returns the patient
// with its relations.
func (r *patientRepository) UpdatePatient(ctx context.Context, id int64, update models.PatientUpdate) (models.Patient, error) {
	changes := patientChanges(update)
	if len(changes) == 0 {
		return r.GetPatientByID(ctx, id)
	}

	query, args, err := r.builder.Update(models.Patient{}.TableName()).
		SetMap(changes).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Patient{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*patientRepository.UpdatePatient").Int64("pacient_id", id).Msg("error updating patient")
		return models.Patient{}, err
	}

	return r.GetPatientByID(ctx, id)
}

// DeletePatient removes the patient. Its allergies and clinical stories are
// removed by the ON DELETE CASCADE foreign keys.
func (r *patientRepository) DeletePatient(ctx context.Context, id int64) error {
	query, args, err := r.deleteByID(models.Patient{}.TableName(), id).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*patientRepository.DeletePatient").Int64("pacient_id", id).Msg("error deleting patient")
		return err
	}

	return nil
}

func (r *patientRepository) patientAllergies(ctx context.Context, patientID int64) ([]models.Allergy, error) {
	query, args, err := r.builder.Select(allergyColumns...).
		From(models.Allergy{}.TableName()).
		Where(sq.Eq{"pacient_id": patientID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryAll(ctx, r.DB, scanAllergy, query, args...)
}

func (r *patientRepository) patientClinicalStories(ctx context.Context, patientID int64) ([]models.ClinicalStory, error) {
	query, args, err := r.builder.Select(clinicalStoryColumns...).
		From(models.ClinicalStory{}.TableName()).
		Where(sq.Eq{"pacient_id": patientID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryAll(ctx, r.DB, scanClinicalStory, query, args...)
}

// queryAll runs query and scans every row with scan. It never returns a nil
// slice on success.
func queryAll[T any](ctx context.Context, q queryer, scan func(rowScanner) (T, error), query string, args ...any) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}
