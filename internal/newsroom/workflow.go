package newsroom

import "github.com/sahelmedia/newsroom/internal/db"

// statusTransitions declares the legal editorial workflow edges. Re-saving
// with the same status is always allowed; an archived article may be put
// back online, but published content never reverts straight to draft.
var statusTransitions = map[string][]string{
	db.StatusDraft:     {db.StatusInReview},
	db.StatusInReview:  {db.StatusApproved, db.StatusDraft},
	db.StatusApproved:  {db.StatusPublished, db.StatusInReview},
	db.StatusPublished: {db.StatusArchived},
	db.StatusArchived:  {db.StatusPublished},
}

// ValidStatus reports whether s is a known workflow status.
func ValidStatus(s string) bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransition reports whether the workflow allows moving from one status
// to another.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidLocale reports whether s is a supported content locale.
func ValidLocale(s string) bool {
	return s == db.LocaleAr || s == db.LocaleFr
}
