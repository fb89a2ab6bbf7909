package newsroom

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sahelmedia/newsroom/internal/db"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		resource Resource
		action   Action
		want     bool
	}{
		{"AdministratorDeletesUsers", db.RoleAdministrator, ResourceUser, ActionDelete, true},
		{"AdministratorDeletesArticles", db.RoleAdministrator, ResourceArticle, ActionDelete, true},
		{"AdministratorModeratesNothing", db.RoleAdministrator, ResourceComment, ActionModerate, false},

		{"EditorPublishesArticles", db.RoleEditor, ResourceArticle, ActionPublish, true},
		{"EditorModeratesComments", db.RoleEditor, ResourceComment, ActionModerate, true},
		{"EditorCannotDeleteArticles", db.RoleEditor, ResourceArticle, ActionDelete, false},
		{"EditorCannotManageUsers", db.RoleEditor, ResourceUser, ActionView, false},

		{"JournalistWritesArticles", db.RoleJournalist, ResourceArticle, ActionAdd, true},
		{"JournalistEditsArticles", db.RoleJournalist, ResourceArticle, ActionChange, true},
		{"JournalistCannotPublish", db.RoleJournalist, ResourceArticle, ActionPublish, false},
		{"JournalistUploadsMedia", db.RoleJournalist, ResourceMedia, ActionAdd, true},
		{"JournalistCannotChangeMedia", db.RoleJournalist, ResourceMedia, ActionChange, false},
		{"JournalistCannotTouchCategories", db.RoleJournalist, ResourceCategory, ActionView, false},

		{"UnknownRoleHasNothing", "publisher", ResourceArticle, ActionView, false},
		{"EmptyRoleHasNothing", "", ResourceArticle, ActionView, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.role, tt.resource, tt.action))
		})
	}
}

func TestPermissionIndexCoversAllRoles(t *testing.T) {
	for _, role := range []string{db.RoleAdministrator, db.RoleEditor, db.RoleJournalist} {
		_, ok := permissionIndex[role]
		assert.True(t, ok, "role %q missing from permission index", role)
	}
}
