package db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleBeforeInsert(t *testing.T) {
	ctx := context.Background()

	t.Run("DerivesRTLFromArabicLocale", func(t *testing.T) {
		a := &Article{Locale: LocaleAr}
		_, err := a.BeforeInsert(ctx)
		require.NoError(t, err)
		assert.True(t, a.RTL)
	})

	t.Run("DerivesRTLFromFrenchLocale", func(t *testing.T) {
		a := &Article{Locale: LocaleFr}
		_, err := a.BeforeInsert(ctx)
		require.NoError(t, err)
		assert.False(t, a.RTL)
	})

	t.Run("OverridesCallerRTLValue", func(t *testing.T) {
		a := &Article{Locale: LocaleFr, RTL: true}
		_, err := a.BeforeInsert(ctx)
		require.NoError(t, err)
		assert.False(t, a.RTL, "rtl is derived, caller value must be discarded")
	})

	t.Run("AssignsIDAndDefaults", func(t *testing.T) {
		a := &Article{Locale: LocaleFr}
		_, err := a.BeforeInsert(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, a.ID)
		assert.Equal(t, 1, a.Version)
		assert.False(t, a.CreatedAt.IsZero())
		assert.False(t, a.UpdatedAt.IsZero())
	})

	t.Run("KeepsExistingIDAndVersion", func(t *testing.T) {
		id := uuid.New()
		a := &Article{ID: id, Locale: LocaleFr, Version: 5}
		_, err := a.BeforeInsert(ctx)
		require.NoError(t, err)
		assert.Equal(t, id, a.ID)
		assert.Equal(t, 5, a.Version)
	})
}

func TestArticleBeforeUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("RederivesRTLOnLocaleChange", func(t *testing.T) {
		a := &Article{Locale: LocaleAr, RTL: false}
		_, err := a.BeforeUpdate(ctx)
		require.NoError(t, err)
		assert.True(t, a.RTL)
	})

	t.Run("ClearsStaleRTL", func(t *testing.T) {
		a := &Article{Locale: LocaleFr, RTL: true}
		_, err := a.BeforeUpdate(ctx)
		require.NoError(t, err)
		assert.False(t, a.RTL)
	})
}

func TestDefaultsOnInsert(t *testing.T) {
	ctx := context.Background()

	t.Run("MediaAssetLicenseDefaultsToInternal", func(t *testing.T) {
		m := &MediaAsset{AssetName: "x.jpg", Type: AssetTypeImage}
		_, err := m.BeforeInsert(ctx)
		require.NoError(t, err)
		assert.Equal(t, LicenseInternal, m.License)
		assert.NotEqual(t, uuid.Nil, m.ID)
	})

	t.Run("RegionTypeDefaultsToGovernorate", func(t *testing.T) {
		r := &Region{NameFr: "Tunis", NameAr: "تونس", Slug: "tunis"}
		_, err := r.BeforeInsert(ctx)
		require.NoError(t, err)
		assert.Equal(t, RegionTypeGovernorate, r.RegionType)
	})

	t.Run("UserStatusDefaultsToActive", func(t *testing.T) {
		u := &User{Email: "r@example.com", Name: "Rim"}
		_, err := u.BeforeInsert(ctx)
		require.NoError(t, err)
		assert.Equal(t, UserStatusActive, u.Status)
	})
}

func TestUniqueViolation(t *testing.T) {
	t.Run("NilError", func(t *testing.T) {
		_, ok := UniqueViolation(nil)
		assert.False(t, ok)
	})

	t.Run("PlainError", func(t *testing.T) {
		_, ok := UniqueViolation(assert.AnError)
		assert.False(t, ok)
	})
}
