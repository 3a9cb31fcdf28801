package services

import (
	"sort"

	"github.com/anastluc/gdocs-participation-statistics/internal/core/domain"
)

// getOrInsert returns the map entry for key, inserting a zeroed value
// on first touch. It makes the "first touch creates the entry" behavior
// of the accumulator maps explicit.
func getOrInsert[V any](m map[string]*V, key string) *V {
	v, ok := m[key]
	if !ok {
		v = new(V)
		m[key] = v
	}
	return v
}

// sortRevisionsByTime returns a copy of revisions sorted ascending by
// modification time. The input slice is never mutated.
func sortRevisionsByTime(revisions []domain.Revision) []domain.Revision {
	sorted := make([]domain.Revision, len(revisions))
	copy(sorted, revisions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ModifiedTime.Before(sorted[j].ModifiedTime)
	})
	return sorted
}

// AggregateContributions folds the revision history into per-user
// summary statistics keyed by display name. Revisions are processed in
// ascending time order, so FirstModified is set on first occurrence and
// LastModified advances monotonically. The email is the last value the
// API reported for the name; revisions without a modifying user land in
// the "Unknown User" bucket.
func AggregateContributions(revisions []domain.Revision) map[string]*domain.UserContribution {
	contributions := make(map[string]*domain.UserContribution)

	for _, rev := range sortRevisionsByTime(revisions) {
		user := rev.LastModifyingUser
		entry := getOrInsert(contributions, user.Name())

		entry.RevisionCount++
		entry.Email = revisionEmail(user)

		if entry.FirstModified.IsZero() {
			entry.FirstModified = rev.ModifiedTime
		}
		entry.LastModified = rev.ModifiedTime
	}

	return contributions
}

// revisionEmail resolves the email for a revision's modifying user.
// Unlike comment authors, revision users are never reported with the
// synthetic "me" placeholder.
func revisionEmail(u *domain.User) string {
	if u == nil || u.EmailAddress == "" {
		return domain.EmailUnavailable
	}
	return u.EmailAddress
}
