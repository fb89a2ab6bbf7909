package newsroom

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sahelmedia/newsroom/internal/db"
)

// Categories retrieves all categories in display order (weight, then French
// name).
func (m *Manager) Categories(ctx context.Context) (Categories, error) {
	list, err := m.db.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

// CategoryBySlug retrieves one category by slug. Returns nil when not found.
func (m *Manager) CategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	dbCategory, err := m.db.CategoryBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get category by slug: %w", err)
	} else if dbCategory == nil {
		return nil, nil
	}

	category := NewCategory(dbCategory)
	return &category, nil
}

func (m *Manager) CreateCategory(ctx context.Context, params CategoryParams) (*Category, error) {
	if err := validateCategoryParams(params); err != nil {
		return nil, err
	}

	dbCategory := categoryFromParams(params)
	if err := m.db.CreateCategory(ctx, dbCategory); err != nil {
		return nil, translateUnique(err)
	}

	category := NewCategory(dbCategory)
	return &category, nil
}

// UpdateCategory persists changed category fields. A parent assignment is
// rejected when it would close a cycle in the category tree. Returns nil
// when the category does not exist.
func (m *Manager) UpdateCategory(ctx context.Context, categoryID uuid.UUID, params CategoryParams) (*Category, error) {
	existing, err := m.db.CategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("db get category: %w", err)
	} else if existing == nil {
		return nil, nil
	}

	if err := validateCategoryParams(params); err != nil {
		return nil, err
	}
	if err := m.ensureNoCycle(ctx, categoryID, params.ParentID); err != nil {
		return nil, err
	}

	dbCategory := categoryFromParams(params)
	dbCategory.ID = existing.ID
	dbCategory.CreatedAt = existing.CreatedAt

	if err := m.db.UpdateCategory(ctx, dbCategory); err != nil {
		return nil, translateUnique(err)
	}

	category := NewCategory(dbCategory)
	return &category, nil
}

// DeleteCategory removes the category; referencing articles and child
// categories survive with the reference nulled.
func (m *Manager) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	if err := m.db.DeleteCategory(ctx, categoryID); err != nil {
		return fmt.Errorf("db delete category: %w", err)
	}

	return nil
}

// ensureNoCycle walks the ancestor chain of the proposed parent and rejects
// the assignment if it reaches the category itself. The walk terminates
// because the stored tree is acyclic (this check ran for every prior write).
func (m *Manager) ensureNoCycle(ctx context.Context, categoryID uuid.UUID, parentID *uuid.UUID) error {
	for parentID != nil {
		if *parentID == categoryID {
			return ErrCategoryCycle
		}

		parent, err := m.db.CategoryByID(ctx, *parentID)
		if err != nil {
			return fmt.Errorf("db get ancestor category: %w", err)
		} else if parent == nil {
			return nil
		}

		parentID = parent.ParentID
	}

	return nil
}

// Tags retrieves all tags ordered by French name.
func (m *Manager) Tags(ctx context.Context) (Tags, error) {
	list, err := m.db.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get tags: %w", err)
	}

	return NewTags(list), nil
}

func (m *Manager) CreateTag(ctx context.Context, params TagParams) (*Tag, error) {
	if params.NameFr == "" {
		return nil, fmt.Errorf("%w: nameFr", ErrMissingField)
	}
	if params.Slug == "" {
		return nil, fmt.Errorf("%w: slug", ErrMissingField)
	}

	dbTag := &db.Tag{
		NameFr: params.NameFr,
		NameAr: params.NameAr,
		Slug:   params.Slug,
	}
	if err := m.db.CreateTag(ctx, dbTag); err != nil {
		return nil, translateUnique(err)
	}

	tag := NewTag(dbTag)
	return &tag, nil
}

// Regions retrieves all regions ordered by French name.
func (m *Manager) Regions(ctx context.Context) (Regions, error) {
	list, err := m.db.Regions(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get regions: %w", err)
	}

	return NewRegions(list), nil
}

func (m *Manager) CreateRegion(ctx context.Context, params RegionParams) (*Region, error) {
	if params.NameFr == "" {
		return nil, fmt.Errorf("%w: nameFr", ErrMissingField)
	}
	if params.NameAr == "" {
		return nil, fmt.Errorf("%w: nameAr", ErrMissingField)
	}
	if params.Slug == "" {
		return nil, fmt.Errorf("%w: slug", ErrMissingField)
	}
	// Empty means the model default (governorate).
	switch params.RegionType {
	case "", db.RegionTypeGovernorate, db.RegionTypeMunicipality, db.RegionTypeNational:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidRegionType, params.RegionType)
	}

	dbRegion := &db.Region{
		NameFr:          params.NameFr,
		NameAr:          params.NameAr,
		Slug:            params.Slug,
		GovernorateCode: params.GovernorateCode,
		RegionType:      params.RegionType,
		Color:           params.Color,
		Coordinates:     params.Coordinates,
	}
	if err := m.db.CreateRegion(ctx, dbRegion); err != nil {
		return nil, translateUnique(err)
	}

	region := NewRegion(dbRegion)
	return &region, nil
}

func (m *Manager) CreateMediaAsset(ctx context.Context, params MediaAssetParams) (*MediaAsset, error) {
	if params.AssetName == "" {
		return nil, fmt.Errorf("%w: assetName", ErrMissingField)
	}
	if params.StorageURL == "" {
		return nil, fmt.Errorf("%w: storageUrl", ErrMissingField)
	}
	switch params.Type {
	case db.AssetTypeImage, db.AssetTypeVideo, db.AssetTypeAudio:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAssetType, params.Type)
	}
	// Empty means the model default (internal).
	switch params.License {
	case "", db.LicenseInternal, db.LicenseCCBY, db.LicenseCCBYSA, db.LicenseAllRightsReserved:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidLicense, params.License)
	}

	dbAsset := &db.MediaAsset{
		AssetName:    params.AssetName,
		Type:         params.Type,
		StorageURL:   params.StorageURL,
		AltTextFr:    params.AltTextFr,
		AltTextAr:    params.AltTextAr,
		CaptionFr:    params.CaptionFr,
		CaptionAr:    params.CaptionAr,
		Credit:       params.Credit,
		License:      params.License,
		FocalPoint:   params.FocalPoint,
		UploadedByID: params.UploadedByID,
	}
	if err := m.db.CreateMediaAsset(ctx, dbAsset); err != nil {
		return nil, fmt.Errorf("db create media asset: %w", err)
	}

	asset := NewMediaAsset(dbAsset)
	return &asset, nil
}

// DeleteMediaAsset removes the asset; articles using it as hero media keep
// existing with the reference nulled.
func (m *Manager) DeleteMediaAsset(ctx context.Context, assetID uuid.UUID) error {
	if err := m.db.DeleteMediaAsset(ctx, assetID); err != nil {
		return fmt.Errorf("db delete media asset: %w", err)
	}

	return nil
}

func validateCategoryParams(params CategoryParams) error {
	if params.NameFr == "" {
		return fmt.Errorf("%w: nameFr", ErrMissingField)
	}
	if params.NameAr == "" {
		return fmt.Errorf("%w: nameAr", ErrMissingField)
	}
	if params.Slug == "" {
		return fmt.Errorf("%w: slug", ErrMissingField)
	}

	return nil
}

func categoryFromParams(params CategoryParams) *db.Category {
	return &db.Category{
		NameFr:      params.NameFr,
		NameAr:      params.NameAr,
		Slug:        params.Slug,
		Description: params.Description,
		ParentID:    params.ParentID,
		Color:       params.Color,
		Weight:      params.Weight,
	}
}
