package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/models"
)

type sessionRepository struct {
	db *DB
}

// NewSessionRepository constructs a PostgreSQL-backed [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{db: db}
}

// CreateSession records a login of userID at the database's current time.
// A userID without a users row yields [ErrUserNotFound].
func (s *sessionRepository) CreateSession(ctx context.Context, userID int64) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSessionQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("failed to build query")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var session models.Session
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&session.ID, &session.UserID, &session.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Int64("user_id", userID).Msg("failed to insert session")
		return models.Session{}, classifyPgError(ErrExecutingStatement, err)
	}

	return session, nil
}
