package db

import (
	"errors"

	"github.com/go-pg/pg/v10"
)

const (
	pgUniqueViolation = "23505"

	// constraint names from the schema migrations
	ConstraintArticleSlug  = "articles_slug_key"
	ConstraintArticlePeer  = "articles_hreflangPeerId_key"
	ConstraintCategorySlug = "categories_slug_key"
	ConstraintRegionSlug   = "regions_slug_key"
	ConstraintTagSlug      = "tags_slug_key"
	ConstraintUserEmail    = "users_email_key"
	ConstraintRoleName     = "roles_name_key"
)

// UniqueViolation reports whether err is a Postgres unique-constraint
// violation and, if so, which constraint was hit.
func UniqueViolation(err error) (constraint string, ok bool) {
	var pgErr pg.Error
	if errors.As(err, &pgErr) && pgErr.Field('C') == pgUniqueViolation {
		return pgErr.Field('n'), true
	}
	return "", false
}
