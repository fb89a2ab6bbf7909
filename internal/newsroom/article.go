package newsroom

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sahelmedia/newsroom/internal/db"
)

// PublishedArticles retrieves published articles, newest publish date first,
// with all related entities attached. The optional filter narrows by locale
// or category slug but can never widen past the published-only predicate.
func (m *Manager) PublishedArticles(ctx context.Context, filter *db.ArticleFilter) (Articles, error) {
	list, err := m.db.PublishedArticles(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("db get published articles: %w", err)
	}

	return NewArticles(list), nil
}

// PublishedArticleByID retrieves one published article. Returns nil when the
// article does not exist or is not published; both cases look identical to
// the public surface.
func (m *Manager) PublishedArticleByID(ctx context.Context, articleID uuid.UUID) (*Article, error) {
	dbArticle, err := m.db.PublishedArticleByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("db get published article: %w", err)
	} else if dbArticle == nil {
		return nil, nil
	}

	article := NewArticle(dbArticle)
	return &article, nil
}

// ArticleByID retrieves an article regardless of workflow status, for the
// editorial surface.
func (m *Manager) ArticleByID(ctx context.Context, articleID uuid.UUID) (*Article, error) {
	dbArticle, err := m.db.ArticleByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("db get article: %w", err)
	} else if dbArticle == nil {
		return nil, nil
	}

	article := NewArticle(dbArticle)
	return &article, nil
}

// ArticleSlugExists reports whether the slug is already claimed. Seeding and
// import tooling uses this to disambiguate before writing.
func (m *Manager) ArticleSlugExists(ctx context.Context, slug string) (bool, error) {
	return m.db.ArticleSlugExists(ctx, slug)
}

// CreateArticle validates the params and persists a new article. The article
// may be created in any workflow status to support imports; transitions are
// only enforced on update.
func (m *Manager) CreateArticle(ctx context.Context, params ArticleParams) (*Article, error) {
	if params.Status == "" {
		params.Status = db.StatusDraft
	}
	if err := validateArticleParams(params); err != nil {
		return nil, err
	}

	dbArticle := articleFromParams(params)
	if err := m.db.CreateArticle(ctx, dbArticle, params.RegionIDs, params.TagIDs); err != nil {
		return nil, translateUnique(err)
	}

	article := NewArticle(dbArticle)
	return &article, nil
}

// UpdateArticle validates the params against the stored article, enforces
// the status workflow, bumps the version counter and persists. Returns nil
// when the article does not exist.
func (m *Manager) UpdateArticle(ctx context.Context, articleID uuid.UUID, params ArticleParams) (*Article, error) {
	existing, err := m.db.ArticleByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("db get article: %w", err)
	} else if existing == nil {
		return nil, nil
	}

	if params.Status == "" {
		params.Status = existing.Status
	}
	if err := validateArticleParams(params); err != nil {
		return nil, err
	}
	if !CanTransition(existing.Status, params.Status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, existing.Status, params.Status)
	}

	dbArticle := articleFromParams(params)
	dbArticle.ID = existing.ID
	dbArticle.CreatedAt = existing.CreatedAt
	dbArticle.Version = existing.Version + 1

	if err := m.db.UpdateArticle(ctx, dbArticle, params.RegionIDs, params.TagIDs); err != nil {
		return nil, translateUnique(err)
	}

	article := NewArticle(dbArticle)
	return &article, nil
}

// SetArticleStatus moves an article along the workflow without touching its
// content. Returns nil when the article does not exist.
func (m *Manager) SetArticleStatus(ctx context.Context, articleID uuid.UUID, status string) (*Article, error) {
	if !ValidStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	existing, err := m.db.ArticleByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("db get article: %w", err)
	} else if existing == nil {
		return nil, nil
	}

	if !CanTransition(existing.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, existing.Status, status)
	}

	regionIDs := make([]uuid.UUID, len(existing.Regions))
	for i := range existing.Regions {
		regionIDs[i] = existing.Regions[i].ID
	}
	tagIDs := make([]uuid.UUID, len(existing.Tags))
	for i := range existing.Tags {
		tagIDs[i] = existing.Tags[i].ID
	}

	existing.Status = status
	existing.Version++

	if err := m.db.UpdateArticle(ctx, existing, regionIDs, tagIDs); err != nil {
		return nil, fmt.Errorf("db update article status: %w", err)
	}

	article := NewArticle(existing)
	return &article, nil
}

// DeleteArticle removes an article entirely; the hreflang peer of a deleted
// article keeps existing with its peer link cleared by the schema.
func (m *Manager) DeleteArticle(ctx context.Context, articleID uuid.UUID) error {
	if err := m.db.DeleteArticle(ctx, articleID); err != nil {
		return fmt.Errorf("db delete article: %w", err)
	}

	return nil
}

func validateArticleParams(params ArticleParams) error {
	if params.Title == "" {
		return fmt.Errorf("%w: title", ErrMissingField)
	}
	if params.Slug == "" {
		return fmt.Errorf("%w: slug", ErrMissingField)
	}
	if params.Body == "" {
		return fmt.Errorf("%w: body", ErrMissingField)
	}
	if !ValidLocale(params.Locale) {
		return fmt.Errorf("%w: %q", ErrInvalidLocale, params.Locale)
	}
	if !ValidStatus(params.Status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, params.Status)
	}

	return nil
}

func articleFromParams(params ArticleParams) *db.Article {
	return &db.Article{
		Title:           params.Title,
		Subtitle:        params.Subtitle,
		Locale:          params.Locale,
		Slug:            params.Slug,
		Body:            params.Body,
		AuthorID:        params.AuthorID,
		EditorID:        params.EditorID,
		CategoryID:      params.CategoryID,
		HeroMediaID:     params.HeroMediaID,
		Featured:        params.Featured,
		ReadingTimeMin:  params.ReadingTimeMin,
		PublishDate:     params.PublishDate,
		Status:          params.Status,
		CanonicalURL:    params.CanonicalURL,
		SEOTitle:        params.SEOTitle,
		MetaDescription: params.MetaDescription,
		SourceURLs:      params.SourceURLs,
		HreflangPeerID:  params.HreflangPeerID,
	}
}
