package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/spjimr/classroom-companion/internal/model"
)

// ProfileRepo reads user profiles from the current-schema table and, during
// the migration window, from the legacy users table.
type ProfileRepo struct{ DB *sql.DB }

func NewProfileRepo(db *sql.DB) *ProfileRepo { return &ProfileRepo{DB: db} }

// GetByUserID fetches the t106_user_profile row for a user id.  Fields are
// returned verbatim; no role normalization happens here.
func (r *ProfileRepo) GetByUserID(ctx context.Context, userID string) (model.UserProfile, error) {
	userID = strings.TrimSpace(userID)
	var p model.UserProfile
	err := r.DB.QueryRowContext(ctx,
		"SELECT user_id, primary_role, access_status FROM t106_user_profile WHERE user_id=$1 LIMIT 1",
		userID).Scan(&p.UserID, &p.PrimaryRole, &p.AccessStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return model.UserProfile{}, ErrProfileNotFound
	}
	return p, err
}

// LegacyRoleByUserID fetches the role column from the pre-migration users
// table, which keys on id rather than user_id and names the role column
// differently.  Consulted only when the t106 lookup fails.
func (r *ProfileRepo) LegacyRoleByUserID(ctx context.Context, userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	var role string
	err := r.DB.QueryRowContext(ctx,
		"SELECT role FROM users WHERE id=$1 LIMIT 1",
		userID).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrLegacyUserNotFound
	}
	return role, err
}
