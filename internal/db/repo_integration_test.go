package db

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

var (
	testDB       *pg.DB
	testFixtures *TestFixtures
)

func TestMain(m *testing.M) {
	var err error
	testDB, testFixtures, err = SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func withTx(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	return ctx, New(tx)
}

func TestPublishedArticles_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	t.Run("ReturnsOnlyPublished", func(t *testing.T) {
		articles, err := repo.PublishedArticles(ctx, nil)
		if err != nil {
			t.Fatalf("PublishedArticles: %v", err)
		}
		if len(articles) != 3 {
			t.Fatalf("expected 3 published articles, got %d", len(articles))
		}
		for _, a := range articles {
			if a.Status != StatusPublished {
				t.Errorf("article %s has status %q, want published", a.Slug, a.Status)
			}
			if a.Slug == testFixtures.Draft.Slug {
				t.Errorf("draft article leaked into published listing")
			}
		}
	})

	t.Run("OrdersByPublishDateDescNullsLast", func(t *testing.T) {
		articles, err := repo.PublishedArticles(ctx, nil)
		if err != nil {
			t.Fatalf("PublishedArticles: %v", err)
		}
		if len(articles) != 3 {
			t.Fatalf("expected 3 articles, got %d", len(articles))
		}
		if articles[0].ID != testFixtures.PublishedFr.ID {
			t.Errorf("expected newest article first, got %q", articles[0].Slug)
		}
		if articles[1].ID != testFixtures.PublishedAr.ID {
			t.Errorf("expected older article second, got %q", articles[1].Slug)
		}
		if articles[2].ID != testFixtures.NoDate.ID {
			t.Errorf("expected article without publish date last, got %q", articles[2].Slug)
		}
	})

	t.Run("DerivedRTLMatchesLocale", func(t *testing.T) {
		articles, err := repo.PublishedArticles(ctx, nil)
		if err != nil {
			t.Fatalf("PublishedArticles: %v", err)
		}
		for _, a := range articles {
			want := a.Locale == LocaleAr
			if a.RTL != want {
				t.Errorf("article %s: rtl=%v for locale %q", a.Slug, a.RTL, a.Locale)
			}
		}
	})

	t.Run("LoadsRelations", func(t *testing.T) {
		articles, err := repo.PublishedArticles(ctx, nil)
		if err != nil {
			t.Fatalf("PublishedArticles: %v", err)
		}
		for _, a := range articles {
			if a.ID != testFixtures.PublishedFr.ID {
				continue
			}
			if a.Author == nil || a.Author.Email != testFixtures.Journalist.Email {
				t.Error("author not loaded")
			}
			if a.Editor == nil || a.Editor.Email != testFixtures.Editor.Email {
				t.Error("editor not loaded")
			}
			if a.Category == nil || a.Category.Slug != testFixtures.News.Slug {
				t.Error("category not loaded")
			}
			if a.HeroMedia == nil || a.HeroMedia.AssetName != testFixtures.HeroImage.AssetName {
				t.Error("hero media not loaded")
			}
			if len(a.Regions) != 1 || a.Regions[0].Slug != testFixtures.Tunis.Slug {
				t.Error("regions not loaded")
			}
			if len(a.Tags) != 1 || a.Tags[0].Slug != testFixtures.Economy.Slug {
				t.Error("tags not loaded")
			}
		}
	})

	t.Run("FiltersByLocale", func(t *testing.T) {
		ar := LocaleAr
		articles, err := repo.PublishedArticles(ctx, &ArticleFilter{Locale: &ar})
		if err != nil {
			t.Fatalf("PublishedArticles: %v", err)
		}
		if len(articles) != 1 {
			t.Fatalf("expected 1 arabic article, got %d", len(articles))
		}
		if articles[0].ID != testFixtures.PublishedAr.ID {
			t.Errorf("unexpected article %q", articles[0].Slug)
		}
	})

	t.Run("FiltersByCategorySlug", func(t *testing.T) {
		slug := testFixtures.Politics.Slug
		articles, err := repo.PublishedArticles(ctx, &ArticleFilter{Category: &slug})
		if err != nil {
			t.Fatalf("PublishedArticles: %v", err)
		}
		if len(articles) != 1 {
			t.Fatalf("expected 1 article in %q, got %d", slug, len(articles))
		}
		if articles[0].ID != testFixtures.PublishedAr.ID {
			t.Errorf("unexpected article %q", articles[0].Slug)
		}
	})

	t.Run("FilterCannotWidenPastPublished", func(t *testing.T) {
		slug := testFixtures.News.Slug
		articles, err := repo.PublishedArticles(ctx, &ArticleFilter{Category: &slug})
		if err != nil {
			t.Fatalf("PublishedArticles: %v", err)
		}
		for _, a := range articles {
			if a.Status != StatusPublished {
				t.Errorf("non-published article %q in filtered listing", a.Slug)
			}
		}
	})
}

func TestPublishedArticleByID_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	t.Run("ReturnsPublishedArticle", func(t *testing.T) {
		article, err := repo.PublishedArticleByID(ctx, testFixtures.PublishedFr.ID)
		if err != nil {
			t.Fatalf("PublishedArticleByID: %v", err)
		}
		if article == nil {
			t.Fatal("expected article, got nil")
		}
		if article.Slug != testFixtures.PublishedFr.Slug {
			t.Errorf("expected slug %q, got %q", testFixtures.PublishedFr.Slug, article.Slug)
		}
	})

	t.Run("DraftIsInvisible", func(t *testing.T) {
		article, err := repo.PublishedArticleByID(ctx, testFixtures.Draft.ID)
		if err != nil {
			t.Fatalf("PublishedArticleByID: %v", err)
		}
		if article != nil {
			t.Fatalf("draft article visible through published lookup: %+v", article)
		}
	})

	t.Run("MissingReturnsNil", func(t *testing.T) {
		article, err := repo.PublishedArticleByID(ctx, uuid.New())
		if err != nil {
			t.Fatalf("PublishedArticleByID: %v", err)
		}
		if article != nil {
			t.Fatalf("expected nil for unknown id, got %+v", article)
		}
	})
}

func TestArticleCRUD_Integration(t *testing.T) {
	// Each subtest gets its own transaction: a unique violation aborts the
	// enclosing Postgres transaction for good.
	t.Run("CreateAssignsIDAndDerivesRTL", func(t *testing.T) {
		ctx, repo := withTx(t)
		article := &Article{
			Title:    "عنوان تجريبي",
			Locale:   LocaleAr,
			Slug:     "unwan-tajribi",
			Body:     "نص",
			AuthorID: &testFixtures.Journalist.ID,
			Status:   StatusDraft,
		}
		err := repo.CreateArticle(ctx, article, []uuid.UUID{testFixtures.Tunis.ID}, []uuid.UUID{testFixtures.Economy.ID})
		if err != nil {
			t.Fatalf("CreateArticle: %v", err)
		}
		if article.ID == uuid.Nil {
			t.Fatal("id not assigned")
		}
		if !article.RTL {
			t.Error("rtl not derived for arabic article")
		}

		stored, err := repo.ArticleByID(ctx, article.ID)
		if err != nil {
			t.Fatalf("ArticleByID: %v", err)
		}
		if stored == nil {
			t.Fatal("created article not found")
		}
		if len(stored.Regions) != 1 || len(stored.Tags) != 1 {
			t.Errorf("join rows not written: %d regions, %d tags", len(stored.Regions), len(stored.Tags))
		}
	})

	t.Run("DuplicateSlugIsUniqueViolation", func(t *testing.T) {
		ctx, repo := withTx(t)

		article := &Article{
			Title:  "Doublon",
			Locale: LocaleFr,
			Slug:   testFixtures.PublishedFr.Slug,
			Body:   "Corps.",
			Status: StatusDraft,
		}
		err := repo.CreateArticle(ctx, article, nil, nil)
		if err == nil {
			t.Fatal("expected unique violation, got nil")
		}
		constraint, ok := UniqueViolation(err)
		if !ok {
			t.Fatalf("expected unique violation, got %v", err)
		}
		if constraint != ConstraintArticleSlug {
			t.Errorf("expected constraint %q, got %q", ConstraintArticleSlug, constraint)
		}
	})

	t.Run("UpdateReplacesJoinRows", func(t *testing.T) {
		ctx, repo := withTx(t)

		article, err := repo.ArticleByID(ctx, testFixtures.PublishedFr.ID)
		if err != nil {
			t.Fatalf("ArticleByID: %v", err)
		}
		if article == nil {
			t.Fatal("fixture article missing")
		}

		err = repo.UpdateArticle(ctx, article, nil, []uuid.UUID{testFixtures.Economy.ID})
		if err != nil {
			t.Fatalf("UpdateArticle: %v", err)
		}

		stored, err := repo.ArticleByID(ctx, article.ID)
		if err != nil {
			t.Fatalf("ArticleByID: %v", err)
		}
		if len(stored.Regions) != 0 {
			t.Errorf("expected regions cleared, got %d", len(stored.Regions))
		}
		if len(stored.Tags) != 1 {
			t.Errorf("expected 1 tag, got %d", len(stored.Tags))
		}
	})
}

func TestSetNullOnDelete_Integration(t *testing.T) {
	t.Run("DeletingAuthorKeepsArticle", func(t *testing.T) {
		ctx, repo := withTx(t)

		if err := repo.DeleteUser(ctx, testFixtures.Journalist.ID); err != nil {
			t.Fatalf("DeleteUser: %v", err)
		}

		article, err := repo.PublishedArticleByID(ctx, testFixtures.PublishedFr.ID)
		if err != nil {
			t.Fatalf("PublishedArticleByID: %v", err)
		}
		if article == nil {
			t.Fatal("article vanished with its author")
		}
		if article.AuthorID != nil {
			t.Errorf("authorId not cleared: %v", article.AuthorID)
		}
	})

	t.Run("DeletingCategoryKeepsArticleAndChildren", func(t *testing.T) {
		ctx, repo := withTx(t)

		if err := repo.DeleteCategory(ctx, testFixtures.News.ID); err != nil {
			t.Fatalf("DeleteCategory: %v", err)
		}

		article, err := repo.ArticleByID(ctx, testFixtures.PublishedFr.ID)
		if err != nil {
			t.Fatalf("ArticleByID: %v", err)
		}
		if article == nil {
			t.Fatal("article vanished with its category")
		}
		if article.CategoryID != nil {
			t.Errorf("categoryId not cleared: %v", article.CategoryID)
		}

		child, err := repo.CategoryByID(ctx, testFixtures.Politics.ID)
		if err != nil {
			t.Fatalf("CategoryByID: %v", err)
		}
		if child == nil {
			t.Fatal("child category vanished with its parent")
		}
		if child.ParentID != nil {
			t.Errorf("parentId not cleared: %v", child.ParentID)
		}
	})

	t.Run("DeletingMediaClearsHeroReference", func(t *testing.T) {
		ctx, repo := withTx(t)

		if err := repo.DeleteMediaAsset(ctx, testFixtures.HeroImage.ID); err != nil {
			t.Fatalf("DeleteMediaAsset: %v", err)
		}

		article, err := repo.ArticleByID(ctx, testFixtures.PublishedFr.ID)
		if err != nil {
			t.Fatalf("ArticleByID: %v", err)
		}
		if article == nil {
			t.Fatal("article vanished with its hero media")
		}
		if article.HeroMediaID != nil {
			t.Errorf("heroMediaId not cleared: %v", article.HeroMediaID)
		}
	})

	t.Run("DeletingArticleRemovesJoinRows", func(t *testing.T) {
		ctx, repo := withTx(t)

		if err := repo.DeleteArticle(ctx, testFixtures.PublishedFr.ID); err != nil {
			t.Fatalf("DeleteArticle: %v", err)
		}

		article, err := repo.ArticleByID(ctx, testFixtures.PublishedFr.ID)
		if err != nil {
			t.Fatalf("ArticleByID: %v", err)
		}
		if article != nil {
			t.Fatal("article still present after delete")
		}

		// The tagged entities themselves survive; only the join rows cascade.
		regions, err := repo.Regions(ctx)
		if err != nil {
			t.Fatalf("Regions: %v", err)
		}
		if len(regions) == 0 {
			t.Error("region rows must survive article deletion")
		}
		tags, err := repo.Tags(ctx)
		if err != nil {
			t.Fatalf("Tags: %v", err)
		}
		if len(tags) == 0 {
			t.Error("tag rows must survive article deletion")
		}
	})
}

func TestTaxonomyQueries_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	t.Run("CategoriesOrderedByWeight", func(t *testing.T) {
		categories, err := repo.Categories(ctx)
		if err != nil {
			t.Fatalf("Categories: %v", err)
		}
		if len(categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(categories))
		}
		for i := 0; i < len(categories)-1; i++ {
			if categories[i].Weight > categories[i+1].Weight {
				t.Fatal("categories not ordered by weight")
			}
		}
	})

	t.Run("CategoryBySlug", func(t *testing.T) {
		category, err := repo.CategoryBySlug(ctx, "actualites")
		if err != nil {
			t.Fatalf("CategoryBySlug: %v", err)
		}
		if category == nil {
			t.Fatal("expected category, got nil")
		}
		if category.NameAr != "أخبار" {
			t.Errorf("unexpected arabic name %q", category.NameAr)
		}

		missing, err := repo.CategoryBySlug(ctx, "inconnu")
		if err != nil {
			t.Fatalf("CategoryBySlug: %v", err)
		}
		if missing != nil {
			t.Fatalf("expected nil for unknown slug, got %+v", missing)
		}
	})

	t.Run("RolesSeededByMigration", func(t *testing.T) {
		for _, name := range []string{RoleAdministrator, RoleEditor, RoleJournalist} {
			role, err := repo.RoleByName(ctx, name)
			if err != nil {
				t.Fatalf("RoleByName(%q): %v", name, err)
			}
			if role == nil {
				t.Fatalf("role %q missing", name)
			}
		}
	})

	t.Run("UserByEmailLoadsRole", func(t *testing.T) {
		user, err := repo.UserByEmail(ctx, testFixtures.Editor.Email)
		if err != nil {
			t.Fatalf("UserByEmail: %v", err)
		}
		if user == nil {
			t.Fatal("expected user, got nil")
		}
		if user.Role == nil || user.Role.Name != RoleEditor {
			t.Error("role not loaded with user")
		}
	})
}

func TestTimestamps_Integration(t *testing.T) {
	ctx, repo := withTx(t)

	tag := &Tag{NameFr: "Sport", Slug: "sport"}
	if err := repo.CreateTag(ctx, tag); err != nil {
		t.Fatalf("CreateTag: %v", err)
	}
	if tag.CreatedAt.IsZero() || tag.UpdatedAt.IsZero() {
		t.Error("timestamps not set on insert")
	}
	if time.Since(tag.CreatedAt) > time.Minute {
		t.Errorf("createdAt looks stale: %v", tag.CreatedAt)
	}
}
