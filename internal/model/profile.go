package model

// UserProfile represents a row in the `t106_user_profile` table, the
// current-schema mapping from an identity-provider user id to a role and
// an account enablement state.  There is at most one row per user_id.
// Rows are created by the onboarding process; this service only reads them.
//
// Fields:
//
//	UserID       – opaque identifier issued by the identity provider.
//	PrimaryRole  – role code; seed data may still carry lowercase codes.
//	AccessStatus – account enablement state, opaque to this service.
type UserProfile struct {
	UserID       string // t106_user_profile.user_id
	PrimaryRole  string // t106_user_profile.primary_role
	AccessStatus string // t106_user_profile.access_status
}
