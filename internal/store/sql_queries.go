package store

import (
	"strings"

	"github.com/MKhiriev/go-user-service/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable    = "users"
	sessionsTable = "sessions"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{
	"id", "name", "email", "password", "cellphone", "status", "created_at", "updated_at",
}

// qualified prefixes every column with alias.
func qualified(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return psql.
		Insert(usersTable).
		Columns("name", "email", "password", "cellphone", "status").
		Values(user.Name, user.Email, user.Password, user.Cellphone, true).
		Suffix("RETURNING id, status, created_at, updated_at").
		ToSql()
}

func buildFindUserByEmailQuery(email string) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
}

func buildGetActiveUserByIDQuery(id int64) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id, "status": true}).
		ToSql()
}

func buildUserExistsQuery(id int64) (string, []any, error) {
	return psql.
		Select("1").
		Prefix("SELECT EXISTS (").
		From(usersTable).
		Where(sq.Eq{"id": id}).
		Suffix(")").
		ToSql()
}

func buildGetActiveUsersQuery() (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"status": true}).
		OrderBy("id").
		ToSql()
}

// buildFindUsersQuery combines the set criteria of filter with AND. Sessions
// are joined only when a login bound is given, and DISTINCT collapses the
// rows of users with several sessions inside the window.
func buildFindUsersQuery(filter models.UserFilter) (string, []any, error) {
	q := psql.
		Select(qualified("u", userColumns)...).
		From(usersTable + " u")

	if filter.Active != nil {
		q = q.Where(sq.Eq{"u.status": *filter.Active})
	}

	if filter.Name != nil {
		q = q.Where(sq.ILike{"u.name": "%" + escapeLike(*filter.Name) + "%"})
	}

	if filter.HasLoginWindow() {
		q = q.Distinct().Join(sessionsTable + " s ON s.user_id = u.id")

		if filter.LoginAfter != nil {
			q = q.Where(sq.GtOrEq{"s.created_at": *filter.LoginAfter})
		}
		if filter.LoginBefore != nil {
			q = q.Where(sq.LtOrEq{"s.created_at": *filter.LoginBefore})
		}
	}

	return q.OrderBy("u.id").ToSql()
}

// buildUpdateActiveUserQuery always touches updated_at, so the SET clause is
// never empty even when update carries no field.
func buildUpdateActiveUserQuery(id int64, update models.UserUpdate) (string, []any, error) {
	q := psql.
		Update(usersTable).
		Set("updated_at", sq.Expr("NOW()"))

	if update.Name != nil {
		q = q.Set("name", *update.Name)
	}
	if update.Password != nil {
		q = q.Set("password", *update.Password)
	}
	if update.Cellphone != nil {
		q = q.Set("cellphone", *update.Cellphone)
	}

	return q.Where(sq.Eq{"id": id, "status": true}).ToSql()
}

func buildSoftDeleteUserQuery(id int64) (string, []any, error) {
	return psql.
		Update(usersTable).
		Set("status", false).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "status": true}).
		ToSql()
}

func buildInsertSessionQuery(userID int64) (string, []any, error) {
	return psql.
		Insert(sessionsTable).
		Columns("user_id").
		Values(userID).
		Suffix("RETURNING id, user_id, created_at").
		ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
