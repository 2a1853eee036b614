package dto

import "github.com/mkopo/chama_management_app/internal/core/domain"

// GenerateFormRequest names the group whose period should be archived.
type GenerateFormRequest struct {
	GroupID int64 `json:"group_id" binding:"required"`
}

// GenerateFormResponse reports the archival run that was committed.
type GenerateFormResponse struct {
	HistoryID            int64 `json:"history_id"`
	RecordsArchivedCount int   `json:"records_archived_count"`
}

// GenerateMonthlyAdvanceFormResponse reports the advance export summary.
type GenerateMonthlyAdvanceFormResponse struct {
	Summary domain.AdvanceSummary `json:"summary"`
}

// AdvanceHistoryResponse lists archived advance copies for a group.
type AdvanceHistoryResponse struct {
	AdvanceHistory []domain.AdvanceHistory `json:"advance_history"`
}
