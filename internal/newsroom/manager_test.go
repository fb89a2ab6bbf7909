package newsroom

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sahelmedia/newsroom/internal/db"
)

// stubStore is a manual stub implementation of Store. Methods without a
// configured func return zero values.
type stubStore struct {
	publishedArticlesFunc    func(ctx context.Context, filter *db.ArticleFilter) ([]db.Article, error)
	publishedArticleByIDFunc func(ctx context.Context, articleID uuid.UUID) (*db.Article, error)
	articleByIDFunc          func(ctx context.Context, articleID uuid.UUID) (*db.Article, error)
	articleSlugExistsFunc    func(ctx context.Context, slug string) (bool, error)
	createArticleFunc        func(ctx context.Context, article *db.Article, regionIDs, tagIDs []uuid.UUID) error
	updateArticleFunc        func(ctx context.Context, article *db.Article, regionIDs, tagIDs []uuid.UUID) error
	categoryByIDFunc         func(ctx context.Context, categoryID uuid.UUID) (*db.Category, error)
	updateCategoryFunc       func(ctx context.Context, category *db.Category) error
	roleByNameFunc           func(ctx context.Context, name string) (*db.Role, error)
	createUserFunc           func(ctx context.Context, user *db.User) error
	updateUserFunc           func(ctx context.Context, user *db.User) error
	userByIDFunc             func(ctx context.Context, userID uuid.UUID) (*db.User, error)
}

func (s *stubStore) PublishedArticles(ctx context.Context, filter *db.ArticleFilter) ([]db.Article, error) {
	if s.publishedArticlesFunc != nil {
		return s.publishedArticlesFunc(ctx, filter)
	}
	return nil, nil
}

func (s *stubStore) PublishedArticleByID(ctx context.Context, articleID uuid.UUID) (*db.Article, error) {
	if s.publishedArticleByIDFunc != nil {
		return s.publishedArticleByIDFunc(ctx, articleID)
	}
	return nil, nil
}

func (s *stubStore) ArticleByID(ctx context.Context, articleID uuid.UUID) (*db.Article, error) {
	if s.articleByIDFunc != nil {
		return s.articleByIDFunc(ctx, articleID)
	}
	return nil, nil
}

func (s *stubStore) ArticleSlugExists(ctx context.Context, slug string) (bool, error) {
	if s.articleSlugExistsFunc != nil {
		return s.articleSlugExistsFunc(ctx, slug)
	}
	return false, nil
}

func (s *stubStore) CreateArticle(ctx context.Context, article *db.Article, regionIDs, tagIDs []uuid.UUID) error {
	if s.createArticleFunc != nil {
		return s.createArticleFunc(ctx, article, regionIDs, tagIDs)
	}
	return nil
}

func (s *stubStore) UpdateArticle(ctx context.Context, article *db.Article, regionIDs, tagIDs []uuid.UUID) error {
	if s.updateArticleFunc != nil {
		return s.updateArticleFunc(ctx, article, regionIDs, tagIDs)
	}
	return nil
}

func (s *stubStore) DeleteArticle(ctx context.Context, articleID uuid.UUID) error { return nil }

func (s *stubStore) Categories(ctx context.Context) ([]db.Category, error) { return nil, nil }

func (s *stubStore) CategoryBySlug(ctx context.Context, slug string) (*db.Category, error) {
	return nil, nil
}

func (s *stubStore) CategoryByID(ctx context.Context, categoryID uuid.UUID) (*db.Category, error) {
	if s.categoryByIDFunc != nil {
		return s.categoryByIDFunc(ctx, categoryID)
	}
	return nil, nil
}

func (s *stubStore) CreateCategory(ctx context.Context, category *db.Category) error { return nil }

func (s *stubStore) UpdateCategory(ctx context.Context, category *db.Category) error {
	if s.updateCategoryFunc != nil {
		return s.updateCategoryFunc(ctx, category)
	}
	return nil
}

func (s *stubStore) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error { return nil }

func (s *stubStore) Tags(ctx context.Context) ([]db.Tag, error)       { return nil, nil }
func (s *stubStore) CreateTag(ctx context.Context, tag *db.Tag) error { return nil }

func (s *stubStore) Regions(ctx context.Context) ([]db.Region, error)          { return nil, nil }
func (s *stubStore) CreateRegion(ctx context.Context, region *db.Region) error { return nil }

func (s *stubStore) CreateMediaAsset(ctx context.Context, asset *db.MediaAsset) error { return nil }
func (s *stubStore) DeleteMediaAsset(ctx context.Context, assetID uuid.UUID) error    { return nil }

func (s *stubStore) RoleByName(ctx context.Context, name string) (*db.Role, error) {
	if s.roleByNameFunc != nil {
		return s.roleByNameFunc(ctx, name)
	}
	return nil, nil
}

func (s *stubStore) UserByEmail(ctx context.Context, email string) (*db.User, error) {
	return nil, nil
}

func (s *stubStore) UserByID(ctx context.Context, userID uuid.UUID) (*db.User, error) {
	if s.userByIDFunc != nil {
		return s.userByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (s *stubStore) CreateUser(ctx context.Context, user *db.User) error {
	if s.createUserFunc != nil {
		return s.createUserFunc(ctx, user)
	}
	return nil
}

func (s *stubStore) UpdateUser(ctx context.Context, user *db.User) error {
	if s.updateUserFunc != nil {
		return s.updateUserFunc(ctx, user)
	}
	return nil
}

func (s *stubStore) DeleteUser(ctx context.Context, userID uuid.UUID) error { return nil }

func validParams() ArticleParams {
	return ArticleParams{
		Title:  "Titre",
		Locale: db.LocaleFr,
		Slug:   "titre",
		Body:   "Corps de l'article.",
	}
}

func TestManager_CreateArticle(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultsToDraftStatus", func(t *testing.T) {
		var persisted *db.Article
		store := &stubStore{
			createArticleFunc: func(ctx context.Context, article *db.Article, regionIDs, tagIDs []uuid.UUID) error {
				persisted = article
				return nil
			},
		}
		manager := NewManager(store)

		article, err := manager.CreateArticle(ctx, validParams())
		require.NoError(t, err)
		require.NotNil(t, article)
		require.NotNil(t, persisted)
		assert.Equal(t, db.StatusDraft, persisted.Status)
	})

	t.Run("AcceptsAnyValidStatusOnCreate", func(t *testing.T) {
		store := &stubStore{}
		manager := NewManager(store)

		params := validParams()
		params.Status = db.StatusPublished

		article, err := manager.CreateArticle(ctx, params)
		require.NoError(t, err)
		require.NotNil(t, article)
		assert.Equal(t, db.StatusPublished, article.Status)
	})

	t.Run("ValidationErrors", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(p *ArticleParams)
			wantErr error
		}{
			{"MissingTitle", func(p *ArticleParams) { p.Title = "" }, ErrMissingField},
			{"MissingSlug", func(p *ArticleParams) { p.Slug = "" }, ErrMissingField},
			{"MissingBody", func(p *ArticleParams) { p.Body = "" }, ErrMissingField},
			{"UnknownLocale", func(p *ArticleParams) { p.Locale = "en" }, ErrInvalidLocale},
			{"UnknownStatus", func(p *ArticleParams) { p.Status = "live" }, ErrInvalidStatus},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				manager := NewManager(&stubStore{})

				params := validParams()
				tt.mutate(&params)

				article, err := manager.CreateArticle(ctx, params)
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, article)
			})
		}
	})

	t.Run("TranslatesSlugUniqueViolation", func(t *testing.T) {
		store := &stubStore{
			createArticleFunc: func(ctx context.Context, article *db.Article, regionIDs, tagIDs []uuid.UUID) error {
				return fakePGError{code: "23505", constraint: db.ConstraintArticleSlug}
			},
		}
		manager := NewManager(store)

		_, err := manager.CreateArticle(ctx, validParams())
		assert.ErrorIs(t, err, ErrSlugTaken)
	})

	t.Run("TranslatesPeerUniqueViolation", func(t *testing.T) {
		store := &stubStore{
			createArticleFunc: func(ctx context.Context, article *db.Article, regionIDs, tagIDs []uuid.UUID) error {
				return fakePGError{code: "23505", constraint: db.ConstraintArticlePeer}
			},
		}
		manager := NewManager(store)

		_, err := manager.CreateArticle(ctx, validParams())
		assert.ErrorIs(t, err, ErrPeerTaken)
	})
}

func TestManager_UpdateArticle(t *testing.T) {
	ctx := context.Background()
	articleID := uuid.New()

	existing := func() *db.Article {
		return &db.Article{
			ID:      articleID,
			Title:   "Titre",
			Locale:  db.LocaleFr,
			Slug:    "titre",
			Body:    "Corps.",
			Status:  db.StatusDraft,
			Version: 3,
		}
	}

	t.Run("ReturnsNilWhenMissing", func(t *testing.T) {
		manager := NewManager(&stubStore{})

		article, err := manager.UpdateArticle(ctx, articleID, validParams())
		require.NoError(t, err)
		assert.Nil(t, article)
	})

	t.Run("AllowsWorkflowTransition", func(t *testing.T) {
		var persisted *db.Article
		store := &stubStore{
			articleByIDFunc: func(ctx context.Context, id uuid.UUID) (*db.Article, error) {
				return existing(), nil
			},
			updateArticleFunc: func(ctx context.Context, article *db.Article, regionIDs, tagIDs []uuid.UUID) error {
				persisted = article
				return nil
			},
		}
		manager := NewManager(store)

		params := validParams()
		params.Status = db.StatusInReview

		article, err := manager.UpdateArticle(ctx, articleID, params)
		require.NoError(t, err)
		require.NotNil(t, article)
		require.NotNil(t, persisted)
		assert.Equal(t, db.StatusInReview, persisted.Status)
		assert.Equal(t, 4, persisted.Version)
		assert.Equal(t, articleID, persisted.ID)
	})

	t.Run("RejectsIllegalTransition", func(t *testing.T) {
		store := &stubStore{
			articleByIDFunc: func(ctx context.Context, id uuid.UUID) (*db.Article, error) {
				return existing(), nil
			},
		}
		manager := NewManager(store)

		params := validParams()
		params.Status = db.StatusPublished // draft cannot jump straight to published

		article, err := manager.UpdateArticle(ctx, articleID, params)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Nil(t, article)
	})

	t.Run("EmptyStatusKeepsExisting", func(t *testing.T) {
		var persisted *db.Article
		store := &stubStore{
			articleByIDFunc: func(ctx context.Context, id uuid.UUID) (*db.Article, error) {
				return existing(), nil
			},
			updateArticleFunc: func(ctx context.Context, article *db.Article, regionIDs, tagIDs []uuid.UUID) error {
				persisted = article
				return nil
			},
		}
		manager := NewManager(store)

		_, err := manager.UpdateArticle(ctx, articleID, validParams())
		require.NoError(t, err)
		require.NotNil(t, persisted)
		assert.Equal(t, db.StatusDraft, persisted.Status)
	})
}

func TestManager_SetArticleStatus(t *testing.T) {
	ctx := context.Background()
	articleID := uuid.New()

	t.Run("RejectsUnknownStatus", func(t *testing.T) {
		manager := NewManager(&stubStore{})

		_, err := manager.SetArticleStatus(ctx, articleID, "live")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("ArchivedArticleCanBeRepublished", func(t *testing.T) {
		var persisted *db.Article
		store := &stubStore{
			articleByIDFunc: func(ctx context.Context, id uuid.UUID) (*db.Article, error) {
				return &db.Article{ID: articleID, Status: db.StatusArchived, Version: 7}, nil
			},
			updateArticleFunc: func(ctx context.Context, article *db.Article, regionIDs, tagIDs []uuid.UUID) error {
				persisted = article
				return nil
			},
		}
		manager := NewManager(store)

		article, err := manager.SetArticleStatus(ctx, articleID, db.StatusPublished)
		require.NoError(t, err)
		require.NotNil(t, article)
		assert.Equal(t, db.StatusPublished, persisted.Status)
		assert.Equal(t, 8, persisted.Version)
	})

	t.Run("PublishedCannotRevertToDraft", func(t *testing.T) {
		store := &stubStore{
			articleByIDFunc: func(ctx context.Context, id uuid.UUID) (*db.Article, error) {
				return &db.Article{ID: articleID, Status: db.StatusPublished}, nil
			},
		}
		manager := NewManager(store)

		_, err := manager.SetArticleStatus(ctx, articleID, db.StatusDraft)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestManager_UpdateCategory_CycleDetection(t *testing.T) {
	ctx := context.Background()

	// Three-level chain: grandparent <- parent <- child.
	grandparentID := uuid.New()
	parentID := uuid.New()
	childID := uuid.New()

	categories := map[uuid.UUID]*db.Category{
		grandparentID: {ID: grandparentID, NameFr: "Racine", NameAr: "جذر", Slug: "racine"},
		parentID:      {ID: parentID, NameFr: "Parent", NameAr: "أب", Slug: "parent", ParentID: &grandparentID},
		childID:       {ID: childID, NameFr: "Enfant", NameAr: "ابن", Slug: "enfant", ParentID: &parentID},
	}

	store := &stubStore{
		categoryByIDFunc: func(ctx context.Context, id uuid.UUID) (*db.Category, error) {
			return categories[id], nil
		},
	}
	manager := NewManager(store)

	t.Run("RejectsSelfParent", func(t *testing.T) {
		params := CategoryParams{NameFr: "Racine", NameAr: "جذر", Slug: "racine", ParentID: &grandparentID}
		_, err := manager.UpdateCategory(ctx, grandparentID, params)
		assert.ErrorIs(t, err, ErrCategoryCycle)
	})

	t.Run("RejectsDescendantAsParent", func(t *testing.T) {
		params := CategoryParams{NameFr: "Racine", NameAr: "جذر", Slug: "racine", ParentID: &childID}
		_, err := manager.UpdateCategory(ctx, grandparentID, params)
		assert.ErrorIs(t, err, ErrCategoryCycle)
	})

	t.Run("AllowsReparentingToSibling", func(t *testing.T) {
		params := CategoryParams{NameFr: "Enfant", NameAr: "ابن", Slug: "enfant", ParentID: &grandparentID}
		category, err := manager.UpdateCategory(ctx, childID, params)
		require.NoError(t, err)
		require.NotNil(t, category)
	})
}

func TestManager_CreateUser(t *testing.T) {
	ctx := context.Background()
	journalistRole := &db.Role{ID: uuid.New(), Name: db.RoleJournalist}

	t.Run("HashesPasswordWithBcrypt", func(t *testing.T) {
		var persisted *db.User
		store := &stubStore{
			roleByNameFunc: func(ctx context.Context, name string) (*db.Role, error) {
				return journalistRole, nil
			},
			createUserFunc: func(ctx context.Context, user *db.User) error {
				persisted = user
				return nil
			},
		}
		manager := NewManager(store)

		roleName := db.RoleJournalist
		user, err := manager.CreateUser(ctx, UserParams{
			Email:    "r@example.com",
			Name:     "Rim",
			Password: "secret-password",
			RoleName: &roleName,
		})
		require.NoError(t, err)
		require.NotNil(t, user)
		require.NotNil(t, persisted)

		assert.NotEqual(t, "secret-password", persisted.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.PasswordHash), []byte("secret-password")))
		require.NotNil(t, persisted.RoleID)
		assert.Equal(t, journalistRole.ID, *persisted.RoleID)
	})

	t.Run("RejectsUnknownRole", func(t *testing.T) {
		manager := NewManager(&stubStore{})

		roleName := "publisher"
		_, err := manager.CreateUser(ctx, UserParams{
			Email:    "r@example.com",
			Name:     "Rim",
			Password: "secret",
			RoleName: &roleName,
		})
		assert.ErrorIs(t, err, ErrUnknownRole)
	})

	t.Run("RejectsUnknownLocalePreference", func(t *testing.T) {
		manager := NewManager(&stubStore{})

		locale := "en"
		_, err := manager.CreateUser(ctx, UserParams{
			Email:            "r@example.com",
			Name:             "Rim",
			Password:         "secret",
			LocalePreference: &locale,
		})
		assert.ErrorIs(t, err, ErrInvalidLocale)
	})

	t.Run("TranslatesEmailUniqueViolation", func(t *testing.T) {
		store := &stubStore{
			createUserFunc: func(ctx context.Context, user *db.User) error {
				return fakePGError{code: "23505", constraint: db.ConstraintUserEmail}
			},
		}
		manager := NewManager(store)

		_, err := manager.CreateUser(ctx, UserParams{Email: "r@example.com", Name: "Rim", Password: "secret"})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestManager_DisableUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	var persisted *db.User
	store := &stubStore{
		userByIDFunc: func(ctx context.Context, id uuid.UUID) (*db.User, error) {
			return &db.User{ID: userID, Email: "r@example.com", Status: db.UserStatusActive}, nil
		},
		updateUserFunc: func(ctx context.Context, user *db.User) error {
			persisted = user
			return nil
		},
	}
	manager := NewManager(store)

	user, err := manager.DisableUser(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, db.UserStatusDisabled, persisted.Status)
}

func TestUserAllowed(t *testing.T) {
	editor := &User{
		User: db.User{Status: db.UserStatusActive},
		Role: &Role{Role: db.Role{Name: db.RoleEditor}},
	}

	assert.True(t, UserAllowed(editor, ResourceArticle, ActionPublish))
	assert.False(t, UserAllowed(editor, ResourceUser, ActionDelete))

	disabled := &User{
		User: db.User{Status: db.UserStatusDisabled},
		Role: &Role{Role: db.Role{Name: db.RoleEditor}},
	}
	assert.False(t, UserAllowed(disabled, ResourceArticle, ActionView))

	assert.False(t, UserAllowed(nil, ResourceArticle, ActionView))
	assert.False(t, UserAllowed(&User{User: db.User{Status: db.UserStatusActive}}, ResourceArticle, ActionView))
}

func TestTranslateUnique(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{"ArticleSlug", db.ConstraintArticleSlug, ErrSlugTaken},
		{"CategorySlug", db.ConstraintCategorySlug, ErrSlugTaken},
		{"RegionSlug", db.ConstraintRegionSlug, ErrSlugTaken},
		{"TagSlug", db.ConstraintTagSlug, ErrSlugTaken},
		{"HreflangPeer", db.ConstraintArticlePeer, ErrPeerTaken},
		{"UserEmail", db.ConstraintUserEmail, ErrEmailTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translateUnique(fakePGError{code: "23505", constraint: tt.constraint})
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("OtherErrorsPassThrough", func(t *testing.T) {
		sentinel := errors.New("connection refused")
		assert.Same(t, sentinel, translateUnique(sentinel))
	})
}

func TestManager_CreateMediaAsset(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(&stubStore{})

	t.Run("RejectsUnknownLicense", func(t *testing.T) {
		_, err := manager.CreateMediaAsset(ctx, MediaAssetParams{
			AssetName:  "hero.jpg",
			Type:       db.AssetTypeImage,
			StorageURL: "https://cdn.example.com/hero.jpg",
			License:    "public_domain",
		})
		assert.ErrorIs(t, err, ErrInvalidLicense)
	})

	t.Run("EmptyLicenseUsesModelDefault", func(t *testing.T) {
		asset, err := manager.CreateMediaAsset(ctx, MediaAssetParams{
			AssetName:  "hero.jpg",
			Type:       db.AssetTypeImage,
			StorageURL: "https://cdn.example.com/hero.jpg",
		})
		require.NoError(t, err)
		require.NotNil(t, asset)
	})

	t.Run("AcceptsKnownLicense", func(t *testing.T) {
		asset, err := manager.CreateMediaAsset(ctx, MediaAssetParams{
			AssetName:  "hero.jpg",
			Type:       db.AssetTypeImage,
			StorageURL: "https://cdn.example.com/hero.jpg",
			License:    db.LicenseCCBY,
		})
		require.NoError(t, err)
		require.NotNil(t, asset)
	})
}

func TestManager_CreateRegion(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(&stubStore{})

	t.Run("RejectsUnknownRegionType", func(t *testing.T) {
		_, err := manager.CreateRegion(ctx, RegionParams{
			NameFr:     "Tunis",
			NameAr:     "تونس",
			Slug:       "tunis",
			RegionType: "district",
		})
		assert.ErrorIs(t, err, ErrInvalidRegionType)
	})

	t.Run("EmptyRegionTypeUsesModelDefault", func(t *testing.T) {
		region, err := manager.CreateRegion(ctx, RegionParams{
			NameFr: "Tunis",
			NameAr: "تونس",
			Slug:   "tunis",
		})
		require.NoError(t, err)
		require.NotNil(t, region)
	})

	t.Run("AcceptsKnownRegionType", func(t *testing.T) {
		region, err := manager.CreateRegion(ctx, RegionParams{
			NameFr:     "Tunisie",
			NameAr:     "تونس",
			Slug:       "tunisie",
			RegionType: db.RegionTypeNational,
		})
		require.NoError(t, err)
		require.NotNil(t, region)
	})
}

// fakePGError mimics a Postgres error surfaced by go-pg.
type fakePGError struct {
	code       string
	constraint string
}

func (e fakePGError) Error() string { return "pg error " + e.code }

func (e fakePGError) Field(field byte) string {
	switch field {
	case 'C':
		return e.code
	case 'n':
		return e.constraint
	}
	return ""
}

func (e fakePGError) IntegrityViolation() bool { return e.code == "23505" }
