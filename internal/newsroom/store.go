package newsroom

import (
	"context"

	"github.com/google/uuid"

	"github.com/sahelmedia/newsroom/internal/db"
)

// Store is the persistence surface the manager needs. *db.Repository
// implements it; tests substitute stubs.
type Store interface {
	PublishedArticles(ctx context.Context, filter *db.ArticleFilter) ([]db.Article, error)
	PublishedArticleByID(ctx context.Context, articleID uuid.UUID) (*db.Article, error)
	ArticleByID(ctx context.Context, articleID uuid.UUID) (*db.Article, error)
	ArticleSlugExists(ctx context.Context, slug string) (bool, error)
	CreateArticle(ctx context.Context, article *db.Article, regionIDs, tagIDs []uuid.UUID) error
	UpdateArticle(ctx context.Context, article *db.Article, regionIDs, tagIDs []uuid.UUID) error
	DeleteArticle(ctx context.Context, articleID uuid.UUID) error

	Categories(ctx context.Context) ([]db.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*db.Category, error)
	CategoryByID(ctx context.Context, categoryID uuid.UUID) (*db.Category, error)
	CreateCategory(ctx context.Context, category *db.Category) error
	UpdateCategory(ctx context.Context, category *db.Category) error
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error

	Tags(ctx context.Context) ([]db.Tag, error)
	CreateTag(ctx context.Context, tag *db.Tag) error
	Regions(ctx context.Context) ([]db.Region, error)
	CreateRegion(ctx context.Context, region *db.Region) error

	CreateMediaAsset(ctx context.Context, asset *db.MediaAsset) error
	DeleteMediaAsset(ctx context.Context, assetID uuid.UUID) error

	RoleByName(ctx context.Context, name string) (*db.Role, error)
	UserByEmail(ctx context.Context, email string) (*db.User, error)
	UserByID(ctx context.Context, userID uuid.UUID) (*db.User, error)
	CreateUser(ctx context.Context, user *db.User) error
	UpdateUser(ctx context.Context, user *db.User) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type Manager struct {
	db Store
}

func NewManager(store Store) *Manager {
	return &Manager{
		db: store,
	}
}

// translateUnique maps database uniqueness violations onto the validation
// errors of this package; other errors pass through untouched.
func translateUnique(err error) error {
	constraint, ok := db.UniqueViolation(err)
	if !ok {
		return err
	}

	switch constraint {
	case db.ConstraintArticleSlug, db.ConstraintCategorySlug,
		db.ConstraintRegionSlug, db.ConstraintTagSlug:
		return ErrSlugTaken
	case db.ConstraintArticlePeer:
		return ErrPeerTaken
	case db.ConstraintUserEmail:
		return ErrEmailTaken
	}

	return err
}
