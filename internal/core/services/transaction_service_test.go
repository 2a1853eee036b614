package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mkopo/chama_management_app/internal/apperrors"
	"github.com/mkopo/chama_management_app/internal/core/domain"
	portssvc "github.com/mkopo/chama_management_app/internal/core/ports/services"
	"github.com/mkopo/chama_management_app/internal/core/services"
	"github.com/mkopo/chama_management_app/internal/dto"
	"github.com/mkopo/chama_management_app/internal/utils/pagination"
)

// MockTransactionRepository mocks the transaction repository facade.
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if txn, ok := args.Get(0).(*domain.Transaction); ok {
		return txn, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByUser(ctx context.Context, userID int64, before time.Time, beforeID int64, limit int32) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, before, beforeID, limit)
	if txns, ok := args.Get(0).([]domain.Transaction); ok {
		return txns, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error) {
	args := m.Called(ctx, txn)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
	ctx      context.Context
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockTransactionRepository)
	s.service = services.NewTransactionService(s.mockRepo)
	s.ctx = context.Background()
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	req := dto.CreateTransactionRequest{
		Amount:      dec(250),
		Description: "Office banking deposit",
	}

	s.mockRepo.On("SaveTransaction", s.ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Amount.Equal(dec(250)) &&
			txn.Description == "Office banking deposit" &&
			txn.UserID == int64(7) &&
			txn.TransactionRef != ""
	})).Return(int64(31), nil).Once()

	txn, err := s.service.CreateTransaction(s.ctx, req, 7)

	s.Require().NoError(err)
	s.Equal(int64(31), txn.ID)
	s.NotEmpty(txn.TransactionRef)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	req := dto.CreateTransactionRequest{Amount: dec(0), Description: "nothing"}

	txn, err := s.service.CreateTransaction(s.ctx, req, 7)

	s.Require().Error(err)
	s.Nil(txn)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestListTransactions_FirstPageWithMore() {
	// Repo is asked for limit+1 rows; returning exactly limit+1 signals
	// another page exists.
	txns := make([]domain.Transaction, 3)
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	for i := range txns {
		txns[i] = domain.Transaction{
			ID:        int64(10 - i),
			Amount:    dec(100),
			Timestamp: base.Add(-time.Duration(i) * time.Hour),
			UserID:    7,
		}
	}

	s.mockRepo.On("ListTransactionsByUser", s.ctx, int64(7), time.Time{}, int64(0), int32(3)).
		Return(txns, nil).Once()

	page, err := s.service.ListTransactions(s.ctx, 7, "", 2)

	s.Require().NoError(err)
	s.Len(page.Transactions, 2)
	s.NotEmpty(page.NextCursor)

	ts, id, decodeErr := pagination.DecodeCursor(page.NextCursor)
	s.Require().NoError(decodeErr)
	s.Equal(int64(9), id)
	s.True(txns[1].Timestamp.Equal(ts))
	s.mockRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestListTransactions_LastPage() {
	txns := []domain.Transaction{
		{ID: 5, Amount: dec(50), Timestamp: time.Now().UTC(), UserID: 7},
	}

	s.mockRepo.On("ListTransactionsByUser", s.ctx, int64(7), time.Time{}, int64(0), int32(51)).
		Return(txns, nil).Once()

	page, err := s.service.ListTransactions(s.ctx, 7, "", 0)

	s.Require().NoError(err)
	s.Len(page.Transactions, 1)
	s.Empty(page.NextCursor)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestListTransactions_CursorPassedToRepo() {
	before := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	cursor := pagination.EncodeCursor(before, 42)

	s.mockRepo.On("ListTransactionsByUser", s.ctx, int64(7), mock.MatchedBy(func(ts time.Time) bool {
		return ts.Equal(before)
	}), int64(42), int32(51)).Return([]domain.Transaction{}, nil).Once()

	page, err := s.service.ListTransactions(s.ctx, 7, cursor, 0)

	s.Require().NoError(err)
	s.Empty(page.Transactions)
	s.Empty(page.NextCursor)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestListTransactions_BadCursor() {
	page, err := s.service.ListTransactions(s.ctx, 7, "not-a-cursor", 0)

	s.Require().Error(err)
	s.Nil(page)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "ListTransactionsByUser",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestGetTransaction_NotFound() {
	s.mockRepo.On("FindTransactionByID", s.ctx, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	txn, err := s.service.GetTransaction(s.ctx, 99)

	s.Require().Error(err)
	s.Nil(txn)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockRepo.AssertExpectations(s.T())
}
