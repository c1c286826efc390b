package usecase

import (
	"testing"

	"review-hub/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestCanModifyResource(t *testing.T) {
	author := &entity.User{ID: 1, Role: entity.RoleUser}
	other := &entity.User{ID: 2, Role: entity.RoleUser}
	moderator := &entity.User{ID: 3, Role: entity.RoleModerator}
	admin := &entity.User{ID: 4, Role: entity.RoleAdmin}
	superuser := &entity.User{ID: 5, Role: entity.RoleUser, IsSuperuser: true}

	tests := []struct {
		name      string
		requester *entity.User
		want      bool
	}{
		{"author may modify own resource", author, true},
		{"other plain user may not", other, false},
		{"moderator may modify anyone's", moderator, true},
		{"admin may modify anyone's", admin, true},
		{"superuser with user role may modify anyone's", superuser, true},
		{"anonymous may not", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanModifyResource(tt.requester, author.ID))
		})
	}
}

func TestRoleHelpers(t *testing.T) {
	admin := &entity.User{Role: entity.RoleAdmin}
	assert.True(t, admin.IsAdmin())
	assert.True(t, admin.IsStaff())

	moderator := &entity.User{Role: entity.RoleModerator}
	assert.False(t, moderator.IsAdmin())
	assert.True(t, moderator.IsModerator())
	assert.True(t, moderator.IsStaff())

	plain := &entity.User{Role: entity.RoleUser}
	assert.False(t, plain.IsAdmin())
	assert.False(t, plain.IsStaff())

	// Superuser rights do not depend on the role column.
	super := &entity.User{Role: entity.RoleUser, IsSuperuser: true}
	assert.True(t, super.IsAdmin())
	assert.True(t, super.IsStaff())
}
