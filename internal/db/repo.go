package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// ArticleFilter narrows the published-article listing. The published-only
// predicate is applied unconditionally and cannot be disabled through the
// filter.
type ArticleFilter struct {
	Locale   *string
	Category *string // category slug
}

// PublishedArticles retrieves published articles ordered by publishDate DESC
// with NULL publish dates sorting last (treated as oldest). Ties are broken
// by id so the ordering is total and stable. Related author, editor,
// category, hero media, regions and tags are loaded inline.
func (r *Repository) PublishedArticles(ctx context.Context, filter *ArticleFilter) ([]Article, error) {
	var articles []Article
	query := r.db.ModelContext(ctx, &articles).
		Relation(Columns.Article.Author).
		Relation(Columns.Article.Editor).
		Relation(Columns.Article.Category).
		Relation(Columns.Article.HeroMedia).
		Relation(Columns.Article.Regions).
		Relation(Columns.Article.Tags).
		Where(`"t"."status" = ?`, StatusPublished)

	if filter != nil {
		if filter.Locale != nil {
			query = query.Where(`"t"."locale" = ?`, *filter.Locale)
		}
		if filter.Category != nil {
			query = query.Where(`"category"."slug" = ?`, *filter.Category)
		}
	}

	err := query.
		OrderExpr(`"t"."publishDate" DESC NULLS LAST, "t"."articleId"`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query published articles: %w", err)
	}

	return articles, nil
}

// PublishedArticleByID retrieves a single published article by id. Returns
// nil without error when the article does not exist or is not published.
func (r *Repository) PublishedArticleByID(ctx context.Context, articleID uuid.UUID) (*Article, error) {
	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Relation(Columns.Article.Author).
		Relation(Columns.Article.Editor).
		Relation(Columns.Article.Category).
		Relation(Columns.Article.HeroMedia).
		Relation(Columns.Article.Regions).
		Relation(Columns.Article.Tags).
		Where(`"t"."status" = ?`, StatusPublished).
		Where(`"t"."articleId" = ?`, articleID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get published article by id: %w", err)
	}

	return article, nil
}

// ArticleByID retrieves an article regardless of status, for editorial use.
func (r *Repository) ArticleByID(ctx context.Context, articleID uuid.UUID) (*Article, error) {
	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Relation(Columns.Article.Regions).
		Relation(Columns.Article.Tags).
		Where(`"t"."articleId" = ?`, articleID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get article by id: %w", err)
	}

	return article, nil
}

// ArticleSlugExists reports whether an article already claims the slug.
func (r *Repository) ArticleSlugExists(ctx context.Context, slug string) (bool, error) {
	exists, err := r.db.ModelContext(ctx, (*Article)(nil)).
		Where(`"t"."slug" = ?`, slug).
		Exists()
	if err != nil {
		return false, fmt.Errorf("failed to check article slug: %w", err)
	}

	return exists, nil
}

// Categories retrieves all categories in display order: weight ascending,
// then French name ascending.
func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"weight" ASC, "nameFr" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

// CategoryBySlug retrieves a single category by its slug. The public detail
// endpoint looks categories up by slug, not id.
func (r *Repository) CategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}

	return category, nil
}

func (r *Repository) CategoryByID(ctx context.Context, categoryID uuid.UUID) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"categoryId" = ?`, categoryID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

// Tags retrieves all tags ordered by French name.
func (r *Repository) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	err := r.db.ModelContext(ctx, &tags).
		OrderExpr(`"nameFr" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}

	return tags, nil
}

// Regions retrieves all regions ordered by French name.
func (r *Repository) Regions(ctx context.Context) ([]Region, error) {
	var regions []Region
	err := r.db.ModelContext(ctx, &regions).
		OrderExpr(`"nameFr" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query regions: %w", err)
	}

	return regions, nil
}

// RoleByName retrieves a role by its unique name.
func (r *Repository) RoleByName(ctx context.Context, name string) (*Role, error) {
	role := &Role{}
	err := r.db.ModelContext(ctx, role).
		Where(`"name" = ?`, name).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get role by name: %w", err)
	}

	return role, nil
}

// UserByEmail retrieves a user by its unique email, with the role loaded.
func (r *Repository) UserByEmail(ctx context.Context, email string) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Relation(Columns.User.Role).
		Where(`"t"."email" = ?`, email).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *Repository) UserByID(ctx context.Context, userID uuid.UUID) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Relation(Columns.User.Role).
		Where(`"t"."userId" = ?`, userID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}
