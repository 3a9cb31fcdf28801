package services

import "github.com/anastluc/gdocs-participation-statistics/internal/core/domain"

// Calibration weights for the heuristic word-contribution estimate.
// These are arbitrary constants, not measured values: a document change
// is assumed to move more words than a deletion, which moves more than
// a generic edit.
const (
	wordsPerDocumentChange = 10
	wordsPerDelete         = 3
	wordsPerOtherEdit      = 5
)

// EstimateWordContributions weighs edit activities into an approximate
// per-actor word contribution count. Only edits targeting the document
// itself count, and suggestion edits (proposed but not accepted) are
// excluded.
func EstimateWordContributions(activities []domain.Activity) map[string]int {
	estimates := make(map[string]int)

	for _, activity := range activities {
		if !activity.HasDriveItemTarget || activity.Edit == nil {
			continue
		}
		if activity.Edit.Suggestion {
			continue
		}

		actor := activity.ActorName
		if actor == "" {
			actor = domain.UnknownUserName
		}

		switch activity.Edit.Kind {
		case domain.EditDocumentChange:
			estimates[actor] += wordsPerDocumentChange
		case domain.EditDelete:
			estimates[actor] += wordsPerDelete
		default:
			estimates[actor] += wordsPerOtherEdit
		}
	}

	return estimates
}
