package domain

import "time"

// UserContribution summarizes one user's revision activity. Keyed by
// display name in the aggregate map; Email carries the last value the
// API reported for that name.
type UserContribution struct {
	Email         string
	RevisionCount int
	FirstModified time.Time
	LastModified  time.Time
}

// CommentStats summarizes one user's comment activity, keyed by display
// name in the aggregate map.
type CommentStats struct {
	Email            string
	CommentsMade     int
	RepliesMade      int
	ResolvedComments int
}

// WordGrowthPoint is one retained sample of the document word count
// over the revision sequence. WordChange is the signed delta from the
// previous retained point.
type WordGrowthPoint struct {
	Timestamp  time.Time
	TotalWords int
	WordChange int
	User       string
	Email      string
}

// WordUserStats is the per-user rollup derived from retained word
// growth points.
type WordUserStats struct {
	User            string
	Email           string
	WordsAdded      int
	WordsRemoved    int
	NetWordsAdded   int
	Edits           int
	AvgWordsPerEdit float64
}

// DailyMetrics holds the four activity counters for one calendar day.
// Date is midnight UTC of the day it describes.
type DailyMetrics struct {
	Date     time.Time
	Edits    int
	Comments int
	Replies  int
	Resolved int
}

// SummaryStats are the report-wide totals computed from the daily
// series and the word growth series.
type SummaryStats struct {
	TotalEdits    int
	TotalComments int
	TotalReplies  int
	TotalResolved int

	// ResolutionRate is resolved/comments as a percentage; zero when no
	// comments exist.
	ResolutionRate float64

	// Word counters are zero when word growth analysis did not run.
	CurrentWordCount int
	TotalWordChanges int
	AvgWordsPerEdit  float64
}
