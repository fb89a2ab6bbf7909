package db

import (
	"context"
	"time"

	"github.com/go-pg/pg/v10/orm"
	"github.com/google/uuid"
)

// Locale values accepted for articles and user preferences.
const (
	LocaleAr = "ar"
	LocaleFr = "fr"
)

// Article workflow statuses.
const (
	StatusDraft     = "draft"
	StatusInReview  = "in_review"
	StatusApproved  = "approved"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// User account statuses.
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// Role names.
const (
	RoleAdministrator = "administrator"
	RoleEditor        = "editor"
	RoleJournalist    = "journalist"
)

// Media asset types.
const (
	AssetTypeImage = "image"
	AssetTypeVideo = "video"
	AssetTypeAudio = "audio"
)

// Media licenses.
const (
	LicenseInternal          = "internal"
	LicenseCCBY              = "cc_by"
	LicenseCCBYSA            = "cc_by_sa"
	LicenseAllRightsReserved = "all_rights_reserved"
)

// Region types.
const (
	RegionTypeGovernorate  = "governorate"
	RegionTypeMunicipality = "municipality"
	RegionTypeNational     = "national"
)

var (
	_ orm.BeforeInsertHook = (*Article)(nil)
	_ orm.BeforeUpdateHook = (*Article)(nil)
	_ orm.BeforeInsertHook = (*Category)(nil)
	_ orm.BeforeUpdateHook = (*Category)(nil)
	_ orm.BeforeInsertHook = (*MediaAsset)(nil)
	_ orm.BeforeUpdateHook = (*MediaAsset)(nil)
	_ orm.BeforeInsertHook = (*Region)(nil)
	_ orm.BeforeUpdateHook = (*Region)(nil)
	_ orm.BeforeInsertHook = (*Role)(nil)
	_ orm.BeforeInsertHook = (*Tag)(nil)
	_ orm.BeforeUpdateHook = (*Tag)(nil)
	_ orm.BeforeInsertHook = (*User)(nil)
	_ orm.BeforeUpdateHook = (*User)(nil)
)

// BeforeInsert assigns the id and timestamps and derives the rtl flag.
// The hook runs for every insert path, including multi-row inserts, so the
// rtl invariant cannot be bypassed by callers.
func (a *Article) BeforeInsert(ctx context.Context) (context.Context, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	if a.Version == 0 {
		a.Version = 1
	}
	a.RTL = a.Locale == LocaleAr
	return ctx, nil
}

// BeforeUpdate re-derives rtl on every update so the flag can never go stale,
// whatever value the caller put in the struct.
func (a *Article) BeforeUpdate(ctx context.Context) (context.Context, error) {
	a.UpdatedAt = time.Now()
	a.RTL = a.Locale == LocaleAr
	return ctx, nil
}

func (c *Category) BeforeInsert(ctx context.Context) (context.Context, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	return ctx, nil
}

func (c *Category) BeforeUpdate(ctx context.Context) (context.Context, error) {
	c.UpdatedAt = time.Now()
	return ctx, nil
}

func (m *MediaAsset) BeforeInsert(ctx context.Context) (context.Context, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.License == "" {
		m.License = LicenseInternal
	}
	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
	return ctx, nil
}

func (m *MediaAsset) BeforeUpdate(ctx context.Context) (context.Context, error) {
	m.UpdatedAt = time.Now()
	return ctx, nil
}

func (r *Region) BeforeInsert(ctx context.Context) (context.Context, error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.RegionType == "" {
		r.RegionType = RegionTypeGovernorate
	}
	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	return ctx, nil
}

func (r *Region) BeforeUpdate(ctx context.Context) (context.Context, error) {
	r.UpdatedAt = time.Now()
	return ctx, nil
}

func (r *Role) BeforeInsert(ctx context.Context) (context.Context, error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	return ctx, nil
}

func (t *Tag) BeforeInsert(ctx context.Context) (context.Context, error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	return ctx, nil
}

func (t *Tag) BeforeUpdate(ctx context.Context) (context.Context, error) {
	t.UpdatedAt = time.Now()
	return ctx, nil
}

func (u *User) BeforeInsert(ctx context.Context) (context.Context, error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Status == "" {
		u.Status = UserStatusActive
	}
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	return ctx, nil
}

func (u *User) BeforeUpdate(ctx context.Context) (context.Context, error) {
	u.UpdatedAt = time.Now()
	return ctx, nil
}
