package services

import (
	"context"
	"time"

	"github.com/mkopo/chama_management_app/internal/core/domain"
	"github.com/mkopo/chama_management_app/internal/dto"
)

// ArchiveReaderSvc defines read operations over archived data
type ArchiveReaderSvc interface {
	// ListHistories retrieves all archival headers.
	ListHistories(ctx context.Context) ([]domain.History, error)

	// GetFormRecords retrieves the snapshots owned by a history entry.
	GetFormRecords(ctx context.Context, historyID int64) ([]domain.FormRecord, error)

	// QueryAdvanceHistory retrieves archived advance copies for a group.
	QueryAdvanceHistory(ctx context.Context, groupID int64) ([]domain.AdvanceHistory, error)

	// QueryAdvanceSummaries retrieves summaries filtered by optional group
	// name and date.
	QueryAdvanceSummaries(ctx context.Context, groupName string, date *time.Time) ([]domain.AdvanceSummary, error)
}

// ArchiveWriterSvc defines the rollover and export operations
type ArchiveWriterSvc interface {
	// GenerateForm archives a group's current period into History/FormRecords
	// and resets the live table to carry-forward values.
	GenerateForm(ctx context.Context, groupID int64, actingUserID int64) (*dto.GenerateFormResponse, error)

	// GenerateMonthlyAdvanceForm exports a group's advances into the advance
	// archive and upserts the day's summary. Live advances are not reset.
	GenerateMonthlyAdvanceForm(ctx context.Context, groupID int64, actingUserID int64) (*domain.AdvanceSummary, error)
}

// ArchiveSvcFacade combines all archive-related service interfaces
type ArchiveSvcFacade interface {
	ArchiveReaderSvc
	ArchiveWriterSvc
}
