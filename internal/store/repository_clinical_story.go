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

type clinicalStoryRepository struct {
	*DB
	logger *logger.Logger
}

// NewClinicalStoryRepository constructs a [ClinicalStoryRepository] over the
// "clinical_stories" table.
func NewClinicalStoryRepository(db *DB, logger *logger.Logger) ClinicalStoryRepository {
	logger.Debug().Msg("creating clinical story repository")
	return &clinicalStoryRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateClinicalStory inserts story. An unknown patient yields
// [ErrReferenceNotFound].
func (r *clinicalStoryRepository) CreateClinicalStory(ctx context.Context, story models.ClinicalStory) (models.ClinicalStory, error) {
	story.CreatedAt = now()
	story.UpdatedAt = story.CreatedAt

	query, args, err := r.insertClinicalStoryQuery(story).ToSql()
	if err != nil {
		return models.ClinicalStory{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.QueryRowContext(ctx, query, args...).Scan(&story.ID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*clinicalStoryRepository.CreateClinicalStory").
			Int64("pacient_id", story.PatientID).
			Msg("error inserting clinical story")
		return models.ClinicalStory{}, r.statementError(err)
	}

	return story, nil
}

func (r *clinicalStoryRepository) GetClinicalStoryByID(ctx context.Context, id int64) (models.ClinicalStory, error) {
	query, args, err := r.selectByID(models.ClinicalStory{}.TableName(), clinicalStoryColumns, id).ToSql()
	if err != nil {
		return models.ClinicalStory{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	story, err := scanClinicalStory(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ClinicalStory{}, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clinicalStoryRepository.GetClinicalStoryByID").Int64("id", id).Msg("error scanning clinical story")
		return models.ClinicalStory{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return story, nil
}

// UpdateClinicalStory writes the non-nil fields of update and bumps
// updated_at.
func (r *clinicalStoryRepository) UpdateClinicalStory(ctx context.Context, id int64, update models.ClinicalStoryUpdate) (models.ClinicalStory, error) {
	changes := clinicalStoryChanges(update)
	if len(changes) == 0 {
		return r.GetClinicalStoryByID(ctx, id)
	}
	changes["updated_at"] = now()

	query, args, err := r.builder.Update(models.ClinicalStory{}.TableName()).
		SetMap(changes).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.ClinicalStory{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clinicalStoryRepository.UpdateClinicalStory").Int64("id", id).Msg("error updating clinical story")
		return models.ClinicalStory{}, err
	}

	return r.GetClinicalStoryByID(ctx, id)
}

func (r *clinicalStoryRepository) DeleteClinicalStory(ctx context.Context, id int64) error {
	query, args, err := r.deleteByID(models.ClinicalStory{}.TableName(), id).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, query, args...)
}
