// Package authz decides whether an authenticated account may perform an
// action. All per-endpoint branching funnels through the same role and
// ownership predicates so the access rules live in one place.
package authz

import (
	"HEALTHAPI_BACK-END/internal/apperrors"
	"HEALTHAPI_BACK-END/internal/models"
)

// RequireRole allows the caller when its role is in the allowed set
func RequireRole(caller *models.User, message string, allowed ...models.Role) error {
	for _, role := range allowed {
		if caller.Role == role {
			return nil
		}
	}
	return apperrors.NewAuthorization(message)
}

// CanAccess is the ownership predicate: admins and doctors may reach any
// resource, patients only resources owned by their own account
func CanAccess(role models.Role, callerID, ownerID int64) bool {
	if role == models.RoleAdmin || role == models.RoleDoctor {
		return true
	}
	return callerID == ownerID
}

// RequireOwner denies patient callers that do not own the target resource
func RequireOwner(caller *models.User, ownerUserID int64, message string) error {
	if CanAccess(caller.Role, caller.ID, ownerUserID) {
		return nil
	}
	return apperrors.NewAuthorization(message)
}
