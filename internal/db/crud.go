package db

import (
	"context"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

// CreateArticle inserts the article together with its region and tag links
// in one transaction. Slug uniqueness is left to the database constraint;
// callers inspect the error with UniqueViolation.
func (r *Repository) CreateArticle(ctx context.Context, article *Article, regionIDs, tagIDs []uuid.UUID) error {
	return r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		if _, err := tx.ModelContext(ctx, article).Insert(); err != nil {
			return fmt.Errorf("failed to insert article: %w", err)
		}

		return insertArticleLinks(ctx, tx, article.ID, regionIDs, tagIDs)
	})
}

// UpdateArticle writes the full article row and replaces its region and tag
// links in one transaction.
func (r *Repository) UpdateArticle(ctx context.Context, article *Article, regionIDs, tagIDs []uuid.UUID) error {
	return r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		if _, err := tx.ModelContext(ctx, article).WherePK().Update(); err != nil {
			return fmt.Errorf("failed to update article: %w", err)
		}

		if _, err := tx.ModelContext(ctx, (*ArticleRegion)(nil)).
			Where(`"articleId" = ?`, article.ID).
			Delete(); err != nil {
			return fmt.Errorf("failed to clear article regions: %w", err)
		}

		if _, err := tx.ModelContext(ctx, (*ArticleTag)(nil)).
			Where(`"articleId" = ?`, article.ID).
			Delete(); err != nil {
			return fmt.Errorf("failed to clear article tags: %w", err)
		}

		return insertArticleLinks(ctx, tx, article.ID, regionIDs, tagIDs)
	})
}

func insertArticleLinks(ctx context.Context, tx *pg.Tx, articleID uuid.UUID, regionIDs, tagIDs []uuid.UUID) error {
	if len(regionIDs) > 0 {
		links := make([]ArticleRegion, len(regionIDs))
		for i, id := range regionIDs {
			links[i] = ArticleRegion{ArticleID: articleID, RegionID: id}
		}
		if _, err := tx.ModelContext(ctx, &links).Insert(); err != nil {
			return fmt.Errorf("failed to insert article regions: %w", err)
		}
	}

	if len(tagIDs) > 0 {
		links := make([]ArticleTag, len(tagIDs))
		for i, id := range tagIDs {
			links[i] = ArticleTag{ArticleID: articleID, TagID: id}
		}
		if _, err := tx.ModelContext(ctx, &links).Insert(); err != nil {
			return fmt.Errorf("failed to insert article tags: %w", err)
		}
	}

	return nil
}

// DeleteArticle removes the article; join rows cascade at the schema level.
func (r *Repository) DeleteArticle(ctx context.Context, articleID uuid.UUID) error {
	_, err := r.db.ModelContext(ctx, &Article{ID: articleID}).WherePK().Delete()
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	return nil
}

func (r *Repository) CreateCategory(ctx context.Context, category *Category) error {
	if _, err := r.db.ModelContext(ctx, category).Insert(); err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}

	return nil
}

func (r *Repository) UpdateCategory(ctx context.Context, category *Category) error {
	if _, err := r.db.ModelContext(ctx, category).WherePK().Update(); err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	return nil
}

// DeleteCategory removes the category. Articles and child categories keep
// existing with their reference set to NULL by the schema.
func (r *Repository) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	_, err := r.db.ModelContext(ctx, &Category{ID: categoryID}).WherePK().Delete()
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}

func (r *Repository) CreateTag(ctx context.Context, tag *Tag) error {
	if _, err := r.db.ModelContext(ctx, tag).Insert(); err != nil {
		return fmt.Errorf("failed to insert tag: %w", err)
	}

	return nil
}

func (r *Repository) CreateRegion(ctx context.Context, region *Region) error {
	if _, err := r.db.ModelContext(ctx, region).Insert(); err != nil {
		return fmt.Errorf("failed to insert region: %w", err)
	}

	return nil
}

func (r *Repository) CreateMediaAsset(ctx context.Context, asset *MediaAsset) error {
	if _, err := r.db.ModelContext(ctx, asset).Insert(); err != nil {
		return fmt.Errorf("failed to insert media asset: %w", err)
	}

	return nil
}

// DeleteMediaAsset removes the asset; articles using it as hero media keep
// existing with the reference set to NULL.
func (r *Repository) DeleteMediaAsset(ctx context.Context, assetID uuid.UUID) error {
	_, err := r.db.ModelContext(ctx, &MediaAsset{ID: assetID}).WherePK().Delete()
	if err != nil {
		return fmt.Errorf("failed to delete media asset: %w", err)
	}

	return nil
}

func (r *Repository) CreateUser(ctx context.Context, user *User) error {
	if _, err := r.db.ModelContext(ctx, user).Insert(); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (r *Repository) UpdateUser(ctx context.Context, user *User) error {
	if _, err := r.db.ModelContext(ctx, user).WherePK().Update(); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// DeleteUser removes the user. Authored and edited articles and uploaded
// media keep existing with their reference set to NULL.
func (r *Repository) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.ModelContext(ctx, &User{ID: userID}).WherePK().Delete()
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
