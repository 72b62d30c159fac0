package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Cellphone,
		&user.Status,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}

// CreateUser inserts user as an active row and returns it with the
// server-assigned ID, status and timestamps.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.ID, &user.Status, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("failed to insert user")
		return models.User{}, classifyPgError(ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByEmail returns the user whose email matches exactly, regardless
// of status. [ErrUserNotFound] is returned when there is none.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByEmailQuery(email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("failed to find user by email")
		return models.User{}, classifyPgError(ErrExecutingQuery, err)
	}

	return user, nil
}

// GetActiveUserByID returns the active user with the given id or
// [ErrUserNotFound].
func (r *userRepository) GetActiveUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetActiveUserByIDQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetActiveUserByID").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetActiveUserByID").Int64("user_id", id).Msg("failed to get user")
		return models.User{}, classifyPgError(ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *userRepository) UserExists(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUserExistsQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UserExists").Msg("failed to build query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var exists bool
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*userRepository.UserExists").Int64("user_id", id).Msg("failed to check user existence")
		return false, classifyPgError(ErrExecutingQuery, err)
	}

	return exists, nil
}

// GetActiveUsers returns every active user ordered by id. The result is an
// empty, non-nil slice when there are none.
func (r *userRepository) GetActiveUsers(ctx context.Context) ([]models.User, error) {
	query, args, err := buildGetActiveUsersQuery()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.GetActiveUsers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUsers(ctx, "*userRepository.GetActiveUsers", query, args)
}

// FindUsers returns the users matching filter ordered by id.
func (r *userRepository) FindUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	query, args, err := buildFindUsersQuery(filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUsers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUsers(ctx, "*userRepository.FindUsers", query, args)
}

func (r *userRepository) queryUsers(ctx context.Context, funcName, query string, args []any) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, classifyPgError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

// UpdateActiveUser writes the set fields of update in one conditional
// statement. [ErrUserNotFound] means no active row with that id existed.
func (r *userRepository) UpdateActiveUser(ctx context.Context, id int64, update models.UserUpdate) error {
	query, args, err := buildUpdateActiveUserQuery(id, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.UpdateActiveUser").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOnActiveUser(ctx, "*userRepository.UpdateActiveUser", id, query, args)
}

// SoftDeleteUser sets status = false on the active user with the given id.
// [ErrUserNotFound] means no active row with that id existed.
func (r *userRepository) SoftDeleteUser(ctx context.Context, id int64) error {
	query, args, err := buildSoftDeleteUserQuery(id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.SoftDeleteUser").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOnActiveUser(ctx, "*userRepository.SoftDeleteUser", id, query, args)
}

func (r *userRepository) execOnActiveUser(ctx context.Context, funcName string, id int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("user_id", id).Msg("failed to execute statement")
		return classifyPgError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("user_id", id).Msg("failed to get affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
