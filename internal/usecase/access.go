package usecase

import (
	"review-hub/internal/data/entity"
)

// CanModifyResource is the single mutation predicate for reviews and
// comments: the author may touch their own resource, moderators and
// admins (and superusers) may touch anyone's.
func CanModifyResource(requester *entity.User, authorID int64) bool {
	if requester == nil {
		return false
	}
	return requester.ID == authorID || requester.IsStaff()
}
