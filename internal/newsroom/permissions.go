package newsroom

import "github.com/sahelmedia/newsroom/internal/db"

// PermissionsVersion identifies the capability table below; bump it whenever
// the matrix changes so consumers can detect a stale cache.
const PermissionsVersion = 1

type Resource string

const (
	ResourceArticle  Resource = "article"
	ResourceCategory Resource = "category"
	ResourceRegion   Resource = "region"
	ResourceMedia    Resource = "media"
	ResourceComment  Resource = "comment"
	ResourceUser     Resource = "user"
)

type Action string

const (
	ActionAdd      Action = "add"
	ActionChange   Action = "change"
	ActionDelete   Action = "delete"
	ActionView     Action = "view"
	ActionPublish  Action = "publish"
	ActionModerate Action = "moderate"
)

type capability struct {
	resource Resource
	action   Action
}

// rolePermissions is the declarative capability table, keyed by role name.
// It replaces any runtime permission bootstrap: the table is the source of
// truth and is indexed once at package init into immutable state.
var rolePermissions = map[string]map[Resource][]Action{
	db.RoleAdministrator: {
		ResourceUser:     {ActionAdd, ActionChange, ActionDelete, ActionView},
		ResourceArticle:  {ActionAdd, ActionChange, ActionDelete, ActionView},
		ResourceCategory: {ActionAdd, ActionChange, ActionDelete, ActionView},
		ResourceRegion:   {ActionAdd, ActionChange, ActionDelete, ActionView},
		ResourceMedia:    {ActionAdd, ActionChange, ActionDelete, ActionView},
		ResourceComment:  {ActionAdd, ActionChange, ActionDelete, ActionView},
	},
	db.RoleEditor: {
		ResourceArticle:  {ActionAdd, ActionChange, ActionView, ActionPublish},
		ResourceCategory: {ActionAdd, ActionChange, ActionView},
		ResourceRegion:   {ActionAdd, ActionChange, ActionView},
		ResourceMedia:    {ActionAdd, ActionChange, ActionView},
		ResourceComment:  {ActionAdd, ActionChange, ActionView, ActionModerate},
	},
	db.RoleJournalist: {
		ResourceArticle: {ActionAdd, ActionChange, ActionView},
		ResourceMedia:   {ActionAdd, ActionView},
	},
}

var permissionIndex map[string]map[capability]struct{}

func init() {
	permissionIndex = make(map[string]map[capability]struct{}, len(rolePermissions))
	for role, resources := range rolePermissions {
		caps := make(map[capability]struct{})
		for resource, actions := range resources {
			for _, action := range actions {
				caps[capability{resource: resource, action: action}] = struct{}{}
			}
		}
		permissionIndex[role] = caps
	}
}

// Allowed reports whether the role may perform the action on the resource.
// Unknown roles have no capabilities.
func Allowed(role string, resource Resource, action Action) bool {
	caps, ok := permissionIndex[role]
	if !ok {
		return false
	}
	_, ok = caps[capability{resource: resource, action: action}]
	return ok
}
