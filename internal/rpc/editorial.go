package rpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/sahelmedia/newsroom/internal/newsroom"
)

//go:generate zenrpc

// EditorialService provides the write surface for editorial tooling: the
// content paths that exercise the derived-rtl hook, slug uniqueness, the
// status workflow and the category cycle guard.
type EditorialService struct {
	zenrpc.Service
	manager *newsroom.Manager
}

func NewEditorialService(manager *newsroom.Manager) *EditorialService {
	return &EditorialService{manager: manager}
}

type IDParams struct {
	//id entity UUID
	ID uuid.UUID `json:"id"`
}

type UpdateArticleParams struct {
	ID      uuid.UUID     `json:"id"`
	Article ArticleParams `json:"article"`
}

type SetStatusParams struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type UpdateCategoryParams struct {
	ID       uuid.UUID      `json:"id"`
	Category CategoryParams `json:"category"`
}

// writeError maps domain validation failures to client-visible RPC errors;
// anything else is an internal error.
func writeError(err error) error {
	switch {
	case errors.Is(err, newsroom.ErrSlugTaken),
		errors.Is(err, newsroom.ErrEmailTaken),
		errors.Is(err, newsroom.ErrPeerTaken),
		errors.Is(err, newsroom.ErrMissingField),
		errors.Is(err, newsroom.ErrInvalidLocale),
		errors.Is(err, newsroom.ErrInvalidStatus),
		errors.Is(err, newsroom.ErrInvalidAssetType),
		errors.Is(err, newsroom.ErrInvalidLicense),
		errors.Is(err, newsroom.ErrInvalidRegionType),
		errors.Is(err, newsroom.ErrInvalidTransition),
		errors.Is(err, newsroom.ErrCategoryCycle),
		errors.Is(err, newsroom.ErrUnknownRole):
		return zenrpc.NewStringError(400, err.Error())
	}

	return err
}

// CreateArticle persists a new article in any workflow status.
//
//zenrpc:article article fields
//zenrpc:return created article
//zenrpc:400 validation failure, duplicate slug included
//zenrpc:500 internal server error
func (s *EditorialService) CreateArticle(ctx context.Context, article ArticleParams) (*Article, error) {
	created, err := s.manager.CreateArticle(ctx, article.ToModel())
	if err != nil {
		return nil, writeError(err)
	}

	result := NewArticle(*created)
	return &result, nil
}

// UpdateArticle rewrites an article; the status change must follow the
// workflow and the version counter is bumped.
//
//zenrpc:return updated article
//zenrpc:400 validation failure or illegal status transition
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s *EditorialService) UpdateArticle(ctx context.Context, req UpdateArticleParams) (*Article, error) {
	updated, err := s.manager.UpdateArticle(ctx, req.ID, req.Article.ToModel())
	if err != nil {
		return nil, writeError(err)
	}
	if updated == nil {
		return nil, zenrpc.NewStringError(404, "article not found")
	}

	result := NewArticle(*updated)
	return &result, nil
}

// SetArticleStatus moves an article along the workflow.
//
//zenrpc:return updated article
//zenrpc:400 unknown status or illegal transition
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s *EditorialService) SetArticleStatus(ctx context.Context, req SetStatusParams) (*Article, error) {
	updated, err := s.manager.SetArticleStatus(ctx, req.ID, req.Status)
	if err != nil {
		return nil, writeError(err)
	}
	if updated == nil {
		return nil, zenrpc.NewStringError(404, "article not found")
	}

	result := NewArticle(*updated)
	return &result, nil
}

// ArticleByID retrieves an article regardless of status.
//
//zenrpc:return article
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s *EditorialService) ArticleByID(ctx context.Context, req IDParams) (*Article, error) {
	article, err := s.manager.ArticleByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, zenrpc.NewStringError(404, "article not found")
	}

	result := NewArticle(*article)
	return &result, nil
}

// DeleteArticle removes an article.
//
//zenrpc:500 internal server error
func (s *EditorialService) DeleteArticle(ctx context.Context, req IDParams) (bool, error) {
	if err := s.manager.DeleteArticle(ctx, req.ID); err != nil {
		return false, err
	}

	return true, nil
}

// CreateCategory persists a new category.
//
//zenrpc:return created category
//zenrpc:400 validation failure, duplicate slug included
//zenrpc:500 internal server error
func (s *EditorialService) CreateCategory(ctx context.Context, category CategoryParams) (*Category, error) {
	created, err := s.manager.CreateCategory(ctx, category.ToModel())
	if err != nil {
		return nil, writeError(err)
	}

	result := NewCategory(*created)
	return &result, nil
}

// UpdateCategory rewrites a category; a parent assignment that would close a
// cycle in the tree is rejected.
//
//zenrpc:return updated category
//zenrpc:400 validation failure or cyclic parent
//zenrpc:404 category not found
//zenrpc:500 internal server error
func (s *EditorialService) UpdateCategory(ctx context.Context, req UpdateCategoryParams) (*Category, error) {
	updated, err := s.manager.UpdateCategory(ctx, req.ID, req.Category.ToModel())
	if err != nil {
		return nil, writeError(err)
	}
	if updated == nil {
		return nil, zenrpc.NewStringError(404, "category not found")
	}

	result := NewCategory(*updated)
	return &result, nil
}

// DeleteCategory removes a category; its articles and children survive with
// the reference cleared.
//
//zenrpc:500 internal server error
func (s *EditorialService) DeleteCategory(ctx context.Context, req IDParams) (bool, error) {
	if err := s.manager.DeleteCategory(ctx, req.ID); err != nil {
		return false, err
	}

	return true, nil
}

// CreateTag persists a new tag.
//
//zenrpc:return created tag
//zenrpc:400 validation failure, duplicate slug included
//zenrpc:500 internal server error
func (s *EditorialService) CreateTag(ctx context.Context, tag TagParams) (*Tag, error) {
	created, err := s.manager.CreateTag(ctx, newsroom.TagParams{
		NameFr: tag.NameFr,
		NameAr: tag.NameAr,
		Slug:   tag.Slug,
	})
	if err != nil {
		return nil, writeError(err)
	}

	result := NewTag(*created)
	return &result, nil
}

// CreateRegion persists a new region.
//
//zenrpc:return created region
//zenrpc:400 validation failure, duplicate slug included
//zenrpc:500 internal server error
func (s *EditorialService) CreateRegion(ctx context.Context, region RegionParams) (*Region, error) {
	created, err := s.manager.CreateRegion(ctx, newsroom.RegionParams{
		NameFr:          region.NameFr,
		NameAr:          region.NameAr,
		Slug:            region.Slug,
		GovernorateCode: region.GovernorateCode,
		RegionType:      region.RegionType,
		Color:           region.Color,
		Coordinates:     region.Coordinates,
	})
	if err != nil {
		return nil, writeError(err)
	}

	result := NewRegion(*created)
	return &result, nil
}

// CreateMediaAsset registers an uploaded media file.
//
//zenrpc:return created media asset
//zenrpc:400 validation failure
//zenrpc:500 internal server error
func (s *EditorialService) CreateMediaAsset(ctx context.Context, asset MediaAssetParams) (*MediaAsset, error) {
	created, err := s.manager.CreateMediaAsset(ctx, newsroom.MediaAssetParams{
		AssetName:    asset.AssetName,
		Type:         asset.Type,
		StorageURL:   asset.StorageURL,
		AltTextFr:    asset.AltTextFr,
		AltTextAr:    asset.AltTextAr,
		CaptionFr:    asset.CaptionFr,
		CaptionAr:    asset.CaptionAr,
		Credit:       asset.Credit,
		License:      asset.License,
		FocalPoint:   asset.FocalPoint,
		UploadedByID: asset.UploadedByID,
	})
	if err != nil {
		return nil, writeError(err)
	}

	result := NewMediaAsset(*created)
	return &result, nil
}

// DeleteMediaAsset removes a media asset; hero references are cleared, not
// cascaded.
//
//zenrpc:500 internal server error
func (s *EditorialService) DeleteMediaAsset(ctx context.Context, req IDParams) (bool, error) {
	if err := s.manager.DeleteMediaAsset(ctx, req.ID); err != nil {
		return false, err
	}

	return true, nil
}

// CreateUser creates an account with a bcrypt-hashed password.
//
//zenrpc:return created user
//zenrpc:400 validation failure, duplicate email included
//zenrpc:500 internal server error
func (s *EditorialService) CreateUser(ctx context.Context, user UserParams) (*User, error) {
	created, err := s.manager.CreateUser(ctx, newsroom.UserParams{
		Email:            user.Email,
		Name:             user.Name,
		Password:         user.Password,
		Phone:            user.Phone,
		RoleName:         user.RoleName,
		Department:       user.Department,
		LocalePreference: user.LocalePreference,
		Status:           user.Status,
	})
	if err != nil {
		return nil, writeError(err)
	}

	result := NewUser(*created)
	return &result, nil
}

// DisableUser marks an account disabled without deleting it.
//
//zenrpc:return updated user
//zenrpc:404 user not found
//zenrpc:500 internal server error
func (s *EditorialService) DisableUser(ctx context.Context, req IDParams) (*User, error) {
	updated, err := s.manager.DisableUser(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, zenrpc.NewStringError(404, "user not found")
	}

	result := NewUser(*updated)
	return &result, nil
}

// DeleteUser removes an account; authored content survives with the author
// reference cleared.
//
//zenrpc:500 internal server error
func (s *EditorialService) DeleteUser(ctx context.Context, req IDParams) (bool, error) {
	if err := s.manager.DeleteUser(ctx, req.ID); err != nil {
		return false, err
	}

	return true, nil
}
