package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/clinical-records/internal/logger"
	"github.com/MKhiriev/clinical-records/models"
)

// revokedTokenRepository keeps the token blacklist in the "revoked_tokens"
// table so that every process sharing the database sees the same entries.
type revokedTokenRepository struct {
	*DB
	logger *logger.Logger
}

// NewRevokedTokenRepository constructs a [RevokedTokenRepository].
func NewRevokedTokenRepository(db *DB, logger *logger.Logger) RevokedTokenRepository {
	logger.Debug().Msg("creating revoked token repository")
	return &revokedTokenRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *revokedTokenRepository) RevokeToken(ctx context.Context, token models.RevokedToken) error {
	query, args, err := r.builder.Insert(revokedTokensTable).
		Columns("jti", "expires_at").
		Values(token.JTI, token.ExpiresAt.UTC()).
		Suffix("ON CONFLICT (jti) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*revokedTokenRepository.RevokeToken").Msg("error revoking token")
		return r.statementError(err)
	}

	return nil
}

func (r *revokedTokenRepository) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	query, args, err := r.builder.Select("COUNT(*)").
		From(revokedTokensTable).
		Where(sq.Eq{"jti": jti}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*revokedTokenRepository.IsTokenRevoked").Msg("error checking token")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func (r *revokedTokenRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := r.builder.Delete(revokedTokensTable).
		Where(sq.Lt{"expires_at": now.UTC()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return result.RowsAffected()
}
