package request_models

import (
	"github.com/google/uuid"
	"healthcard/internal/models/db_models"
)

// Actor is the authenticated caller, passed explicitly into every service call.
type Actor struct {
	UserID uuid.UUID
	Role   db_models.Role
}

func (a Actor) HasRole(roles ...db_models.Role) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}
