package repositories

import (
	"context"
	"time"

	"github.com/mkopo/chama_management_app/internal/core/domain"
)

// HistoryReader defines read operations over the performance archive.
type HistoryReader interface {
	// ListHistories retrieves all archival headers, newest first.
	ListHistories(ctx context.Context) ([]domain.History, error)

	// FindFormRecordsByHistoryID retrieves the snapshots owned by a history
	// entry. Returns apperrors.ErrNotFound when the history has no records.
	FindFormRecordsByHistoryID(ctx context.Context, historyID int64) ([]domain.FormRecord, error)
}

// HistoryArchiver performs the period rollover for one group.
type HistoryArchiver interface {
	// ArchiveGroupPerformance creates the history header, bulk-inserts the
	// snapshots, deletes the group's live rows and bulk-inserts the
	// carry-forward replacements, all in one database transaction. It returns
	// the new history identifier. On any failure nothing is applied.
	ArchiveGroupPerformance(ctx context.Context, history domain.History, records []domain.FormRecord, resets []domain.GroupMonthlyPerformance, groupID int64) (int64, error)
}

// HistoryRepositoryFacade combines all performance archive repository interfaces
type HistoryRepositoryFacade interface {
	HistoryReader
	HistoryArchiver
}

// AdvanceArchiveReader defines read operations over the advance archive.
type AdvanceArchiveReader interface {
	// ListAdvanceHistoryByGroup retrieves archived advance copies for a group.
	ListAdvanceHistoryByGroup(ctx context.Context, groupID int64) ([]domain.AdvanceHistory, error)

	// ListAdvanceSummaries retrieves summaries filtered by optional group name
	// and date.
	ListAdvanceSummaries(ctx context.Context, groupName string, date *time.Time) ([]domain.AdvanceSummary, error)
}

// AdvanceArchiver performs the point-in-time advance export for one group.
type AdvanceArchiver interface {
	// ArchiveAdvances bulk-inserts the advance copies and upserts the summary
	// keyed by (group_name, date) in one database transaction. It returns the
	// stored summary.
	ArchiveAdvances(ctx context.Context, entries []domain.AdvanceHistory, summary domain.AdvanceSummary) (*domain.AdvanceSummary, error)
}

// AdvanceArchiveRepositoryFacade combines all advance archive repository interfaces
type AdvanceArchiveRepositoryFacade interface {
	AdvanceArchiveReader
	AdvanceArchiver
}
