package mapping

import (
	"github.com/mkopo/chama_management_app/internal/core/domain"
	"github.com/mkopo/chama_management_app/internal/models"
)

// ToModelUser converts a domain user to its database model.
func ToModelUser(u domain.User) models.User {
	return models.User{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		Active:       u.Active,
	}
}

// ToDomainUser converts a database model to its domain user.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		Active:       m.Active,
	}
}

// ToModelTransaction converts a domain transaction to its database model.
func ToModelTransaction(t domain.Transaction) models.Transaction {
	return models.Transaction{
		ID:             t.ID,
		Amount:         t.Amount,
		Description:    t.Description,
		Timestamp:      t.Timestamp,
		UserID:         t.UserID,
		AdvanceID:      t.AdvanceID,
		IsFlagged:      t.IsFlagged,
		TransactionRef: t.TransactionRef,
	}
}

// ToDomainTransaction converts a database model to its domain transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:             m.ID,
		Amount:         m.Amount,
		Description:    m.Description,
		Timestamp:      m.Timestamp,
		UserID:         m.UserID,
		AdvanceID:      m.AdvanceID,
		IsFlagged:      m.IsFlagged,
		TransactionRef: m.TransactionRef,
	}
}

// ToDomainTransactionSlice converts a slice of database models.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToModelNotification converts a domain notification to its database model.
func ToModelNotification(n domain.Notification) models.Notification {
	return models.Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// ToDomainNotification converts a database model to its domain notification.
func ToDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Message:   m.Message,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainNotificationSlice converts a slice of database models.
func ToDomainNotificationSlice(ms []models.Notification) []domain.Notification {
	ds := make([]domain.Notification, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainNotification(m)
	}
	return ds
}
