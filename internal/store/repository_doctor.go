package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/clinical-records/internal/logger"
	"github.com/MKhiriev/clinical-records/models"
)

// doctorRepository is the SQL implementation of [DoctorRepository] over the
// "doctors" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type doctorRepository struct {
	*DB
	logger *logger.Logger
}

// NewDoctorRepository constructs a [DoctorRepository] backed by the provided
// database connection and logger.
func NewDoctorRepository(db *DB, logger *logger.Logger) DoctorRepository {
	logger.Debug().Msg("creating doctor repository")
	return &doctorRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateDoctor inserts doctor and returns it with the assigned ID and
// creation time.
//
// Error handling:
//   - unique violation on username → [ErrAlreadyExists].
func (r *doctorRepository) CreateDoctor(ctx context.Context, doctor models.Doctor) (models.Doctor, error) {
	log := logger.FromContext(ctx)

	doctor.CreatedAt = now()
	query, args, err := r.insertDoctorQuery(doctor).ToSql()
	if err != nil {
		return models.Doctor{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.QueryRowContext(ctx, query, args...).Scan(&doctor.ID); err != nil {
		log.Err(err).Str("func", "*doctorRepository.CreateDoctor").Str("username", doctor.Username).Msg("error inserting doctor")
		return models.Doctor{}, r.statementError(err)
	}

	return doctor, nil
}

// GetDoctorByID returns the doctor with the given ID or [ErrNotFound].
func (r *doctorRepository) GetDoctorByID(ctx context.Context, id int64) (models.Doctor, error) {
	query, args, err := r.selectByID(models.Doctor{}.TableName(), doctorColumns, id).ToSql()
	if err != nil {
		return models.Doctor{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.getDoctor(ctx, query, args...)
}

// GetDoctorByUsername returns the doctor with the given username or
// [ErrNotFound].
func (r *doctorRepository) GetDoctorByUsername(ctx context.Context, username string) (models.Doctor, error) {
	query, args, err := r.builder.Select(doctorColumns...).
		From(models.Doctor{}.TableName()).
		Where("username = ?", username).
		ToSql()
	if err != nil {
		return models.Doctor{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.getDoctor(ctx, query, args...)
}

func (r *doctorRepository) getDoctor(ctx context.Context, query string, args ...any) (models.Doctor, error) {
	doctor, err := scanDoctor(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Doctor{}, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*doctorRepository.getDoctor").Msg("error scanning doctor")
		return models.Doctor{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return doctor, nil
}

// UpdateDoctor writes the non-nil fields of update (and passwordHash when
// set) and returns the stored doctor.
func (r *doctorRepository) UpdateDoctor(ctx context.Context, id int64, update models.DoctorUpdate, passwordHash string) (models.Doctor, error) {
	changes := doctorChanges(update, passwordHash)
	if len(changes) == 0 {
		return r.GetDoctorByID(ctx, id)
	}

	query, args, err := r.builder.Update(models.Doctor{}.TableName()).
		SetMap(changes).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return models.Doctor{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*doctorRepository.UpdateDoctor").Int64("doctor_id", id).Msg("error updating doctor")
		return models.Doctor{}, err
	}

	return r.GetDoctorByID(ctx, id)
}

// DeleteDoctor removes the doctor. Patients and clinical stories keep
// existing with their creator/author reference set to NULL.
func (r *doctorRepository) DeleteDoctor(ctx context.Context, id int64) error {
	query, args, err := r.deleteByID(models.Doctor{}.TableName(), id).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*doctorRepository.DeleteDoctor").Int64("doctor_id", id).Msg("error deleting doctor")
		return err
	}

	return nil
}

// execAffectingOne executes an UPDATE or DELETE addressed by primary key and
// reports [ErrNotFound] when no row matched.
func (db *DB) execAffectingOne(ctx context.Context, query string, args ...any) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return db.statementError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
