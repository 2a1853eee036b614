package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mkopo/chama_management_app/internal/apperrors"
	"github.com/mkopo/chama_management_app/internal/core/domain"
	portssvc "github.com/mkopo/chama_management_app/internal/core/ports/services"
	"github.com/mkopo/chama_management_app/internal/core/services"
	"github.com/mkopo/chama_management_app/internal/dto"
)

// --- Mock GroupPerformanceRepository ---
type MockGroupPerformanceRepository struct {
	mock.Mock
}

func (m *MockGroupPerformanceRepository) FindPerformanceByID(ctx context.Context, id int64) (*domain.GroupMonthlyPerformance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GroupMonthlyPerformance), args.Error(1)
}

func (m *MockGroupPerformanceRepository) FindPerformanceByPeriod(ctx context.Context, groupID int64, memberDetails, month string, year int) (*domain.GroupMonthlyPerformance, error) {
	args := m.Called(ctx, groupID, memberDetails, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GroupMonthlyPerformance), args.Error(1)
}

func (m *MockGroupPerformanceRepository) ListPerformancesByGroup(ctx context.Context, groupID int64) ([]domain.GroupMonthlyPerformance, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroupMonthlyPerformance), args.Error(1)
}

func (m *MockGroupPerformanceRepository) FilterPerformances(ctx context.Context, month, groupName string, year int) ([]domain.GroupMonthlyPerformance, error) {
	args := m.Called(ctx, month, groupName, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroupMonthlyPerformance), args.Error(1)
}

func (m *MockGroupPerformanceRepository) HasPerformancesForGroup(ctx context.Context, groupID int64) (bool, error) {
	args := m.Called(ctx, groupID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGroupPerformanceRepository) ListMemberNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGroupPerformanceRepository) SummarizeMembers(ctx context.Context) (*domain.MemberSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MemberSummary), args.Error(1)
}

func (m *MockGroupPerformanceRepository) SavePerformance(ctx context.Context, p domain.GroupMonthlyPerformance) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGroupPerformanceRepository) UpdatePerformance(ctx context.Context, p domain.GroupMonthlyPerformance) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// --- Mock MonthlyPerformanceRepository ---
type MockMonthlyPerformanceRepository struct {
	mock.Mock
}

func (m *MockMonthlyPerformanceRepository) FindGroupByID(ctx context.Context, groupID int64) (*domain.MonthlyPerformance, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyPerformance), args.Error(1)
}

func (m *MockMonthlyPerformanceRepository) FindGroupByPeriod(ctx context.Context, groupName, month string, year int) (*domain.MonthlyPerformance, error) {
	args := m.Called(ctx, groupName, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyPerformance), args.Error(1)
}

func (m *MockMonthlyPerformanceRepository) ListGroups(ctx context.Context) ([]domain.MonthlyPerformance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyPerformance), args.Error(1)
}

func (m *MockMonthlyPerformanceRepository) FilterGroups(ctx context.Context, month, groupName string, year int) ([]domain.MonthlyPerformance, error) {
	args := m.Called(ctx, month, groupName, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyPerformance), args.Error(1)
}

func (m *MockMonthlyPerformanceRepository) SaveGroup(ctx context.Context, p domain.MonthlyPerformance) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMonthlyPerformanceRepository) UpdateGroup(ctx context.Context, p domain.MonthlyPerformance) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) CountActiveUsers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type PerformanceServiceTestSuite struct {
	suite.Suite
	mockPerfRepo    *MockGroupPerformanceRepository
	mockMonthlyRepo *MockMonthlyPerformanceRepository
	mockUserRepo    *MockUserRepository
	service         portssvc.PerformanceSvcFacade
}

func (suite *PerformanceServiceTestSuite) SetupTest() {
	suite.mockPerfRepo = new(MockGroupPerformanceRepository)
	suite.mockMonthlyRepo = new(MockMonthlyPerformanceRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewPerformanceService(suite.mockPerfRepo, suite.mockMonthlyRepo, suite.mockUserRepo)
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// --- Test Cases ---

func (suite *PerformanceServiceTestSuite) TestCreateGroupPerformance_LoanRepayment() {
	ctx := context.Background()
	req := dto.CreateGroupPerformanceRequest{
		GroupID:         1,
		MemberDetails:   "Jane Wanjiku",
		TotalPaid:       dec(500),
		ThisMonthShares: dec(200),
		SavingsSharesBF: dec(1000),
		LoanBalanceBF:   dec(1000),
		Month:           "January",
		Year:            2025,
	}

	suite.mockMonthlyRepo.On("FindGroupByID", ctx, int64(1)).Return(&domain.MonthlyPerformance{ID: 1, GroupName: "Umoja"}, nil).Once()
	suite.mockPerfRepo.On("FindPerformanceByPeriod", ctx, int64(1), "Jane Wanjiku", "January", 2025).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPerfRepo.On("SavePerformance", ctx, mock.MatchedBy(func(p domain.GroupMonthlyPerformance) bool {
		// interest = round5(1000 * 0.015) = 15
		// principal = round5(500 - 200 - 15) = 285
		// loan_cf = round5(1000 - 285) = 715
		// savings_cf = round5(1000 + 200) = 1200
		return p.LoanInterest.Equal(dec(15)) &&
			p.Principal.Equal(dec(285)) &&
			p.LoanCF.Equal(dec(715)) &&
			p.SavingsSharesCF.Equal(dec(1200)) &&
			p.ThisMonthShares.Equal(dec(200))
	})).Return(int64(42), nil).Once()

	result, err := suite.service.CreateOrUpdateGroupPerformance(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(int64(42), result.ID)
	suite.True(result.Principal.Equal(dec(285)))
	suite.True(result.LoanCF.Equal(dec(715)))
	suite.mockPerfRepo.AssertExpectations(suite.T())
	suite.mockMonthlyRepo.AssertExpectations(suite.T())
}

func (suite *PerformanceServiceTestSuite) TestCreateGroupPerformance_NewMemberShortCircuit() {
	ctx := context.Background()
	req := dto.CreateGroupPerformanceRequest{
		GroupID:         1,
		MemberDetails:   "New Member",
		TotalPaid:       dec(500),
		ThisMonthShares: dec(200),
		Month:           "March",
		Year:            2025,
	}

	suite.mockMonthlyRepo.On("FindGroupByID", ctx, int64(1)).Return(&domain.MonthlyPerformance{ID: 1}, nil).Once()
	suite.mockPerfRepo.On("FindPerformanceByPeriod", ctx, int64(1), "New Member", "March", 2025).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPerfRepo.On("SavePerformance", ctx, mock.MatchedBy(func(p domain.GroupMonthlyPerformance) bool {
		return p.SavingsSharesCF.Equal(dec(500)) &&
			p.LoanInterest.IsZero() &&
			p.Principal.IsZero() &&
			p.LoanCF.IsZero() &&
			p.ThisMonthShares.Equal(dec(200))
	})).Return(int64(7), nil).Once()

	result, err := suite.service.CreateOrUpdateGroupPerformance(ctx, req)

	suite.Require().NoError(err)
	suite.True(result.SavingsSharesCF.Equal(dec(500)))
	suite.mockPerfRepo.AssertExpectations(suite.T())
}

func (suite *PerformanceServiceTestSuite) TestCreateGroupPerformance_NegativePrincipalClamp() {
	ctx := context.Background()
	req := dto.CreateGroupPerformanceRequest{
		GroupID:         1,
		MemberDetails:   "Jane Wanjiku",
		TotalPaid:       dec(100),
		ThisMonthShares: dec(90),
		SavingsSharesBF: dec(500),
		LoanBalanceBF:   dec(1000),
		Month:           "February",
		Year:            2025,
	}

	suite.mockMonthlyRepo.On("FindGroupByID", ctx, int64(1)).Return(&domain.MonthlyPerformance{ID: 1}, nil).Once()
	suite.mockPerfRepo.On("FindPerformanceByPeriod", ctx, int64(1), "Jane Wanjiku", "February", 2025).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPerfRepo.On("SavePerformance", ctx, mock.MatchedBy(func(p domain.GroupMonthlyPerformance) bool {
		// interest 15 leaves 100-90-15 = -5: principal clamps to zero and the
		// payment net of interest becomes shares.
		return p.Principal.IsZero() &&
			p.ThisMonthShares.Equal(dec(85)) &&
			p.LoanCF.Equal(dec(1000)) &&
			p.SavingsSharesCF.Equal(dec(585))
	})).Return(int64(8), nil).Once()

	result, err := suite.service.CreateOrUpdateGroupPerformance(ctx, req)

	suite.Require().NoError(err)
	suite.True(result.Principal.IsZero())
	suite.mockPerfRepo.AssertExpectations(suite.T())
}

func (suite *PerformanceServiceTestSuite) TestCreateGroupPerformance_LoanOverpaymentClamp() {
	ctx := context.Background()
	req := dto.CreateGroupPerformanceRequest{
		GroupID:         1,
		MemberDetails:   "Jane Wanjiku",
		TotalPaid:       dec(1000),
		ThisMonthShares: dec(0),
		SavingsSharesBF: dec(0),
		LoanBalanceBF:   dec(100),
		Month:           "April",
		Year:            2025,
	}

	suite.mockMonthlyRepo.On("FindGroupByID", ctx, int64(1)).Return(&domain.MonthlyPerformance{ID: 1}, nil).Once()
	suite.mockPerfRepo.On("FindPerformanceByPeriod", ctx, int64(1), "Jane Wanjiku", "April", 2025).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPerfRepo.On("SavePerformance", ctx, mock.MatchedBy(func(p domain.GroupMonthlyPerformance) bool {
		// interest = round5(1.5) = 5; principal would exceed the loan, so it
		// clamps to the balance and the excess folds into shares.
		return p.LoanInterest.Equal(dec(5)) &&
			p.Principal.Equal(dec(100)) &&
			p.LoanCF.IsZero() &&
			p.ThisMonthShares.Equal(dec(895)) &&
			p.SavingsSharesCF.Equal(dec(895))
	})).Return(int64(9), nil).Once()

	result, err := suite.service.CreateOrUpdateGroupPerformance(ctx, req)

	suite.Require().NoError(err)
	suite.True(result.LoanCF.IsZero())
	suite.mockPerfRepo.AssertExpectations(suite.T())
}

func (suite *PerformanceServiceTestSuite) TestCreateGroupPerformance_UpdateReloadsFromStoredCF() {
	ctx := context.Background()
	req := dto.CreateGroupPerformanceRequest{
		GroupID:         1,
		MemberDetails:   "Jane Wanjiku",
		TotalPaid:       dec(500),
		ThisMonthShares: dec(200),
		SavingsSharesBF: dec(9999), // ignored on the update path
		LoanBalanceBF:   dec(9999),
		Month:           "January",
		Year:            2025,
	}
	existing := &domain.GroupMonthlyPerformance{
		ID:              42,
		GroupID:         1,
		MemberDetails:   "Jane Wanjiku",
		SavingsSharesCF: dec(1200),
		LoanCF:          dec(715),
		Month:           "January",
		Year:            2025,
	}

	suite.mockMonthlyRepo.On("FindGroupByID", ctx, int64(1)).Return(&domain.MonthlyPerformance{ID: 1}, nil).Once()
	suite.mockPerfRepo.On("FindPerformanceByPeriod", ctx, int64(1), "Jane Wanjiku", "January", 2025).Return(existing, nil).Once()
	suite.mockPerfRepo.On("UpdatePerformance", ctx, mock.MatchedBy(func(p domain.GroupMonthlyPerformance) bool {
		// bf reloads from stored cf: savings 1200, loan 715
		// interest = round5(715 * 0.015 = 10.725) = 15
		// principal = round5(500 - 200 - 15) = 285
		// loan_cf = round5(715 - 285) = 430
		// savings_cf = round5(1200 + 200) = 1400
		return p.ID == 42 &&
			p.SavingsSharesBF.Equal(dec(1200)) &&
			p.LoanBalanceBF.Equal(dec(715)) &&
			p.LoanInterest.Equal(dec(15)) &&
			p.Principal.Equal(dec(285)) &&
			p.LoanCF.Equal(dec(430)) &&
			p.SavingsSharesCF.Equal(dec(1400))
	})).Return(nil).Once()

	result, err := suite.service.CreateOrUpdateGroupPerformance(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(42), result.ID)
	suite.True(result.LoanCF.Equal(dec(430)))
	suite.mockPerfRepo.AssertExpectations(suite.T())
}

func (suite *PerformanceServiceTestSuite) TestCreateGroupPerformance_RoundsInputs() {
	ctx := context.Background()
	req := dto.CreateGroupPerformanceRequest{
		GroupID:         1,
		MemberDetails:   "New Member",
		TotalPaid:       decimal.RequireFromString("497.5"),
		ThisMonthShares: decimal.RequireFromString("201"),
		Month:           "May",
		Year:            2025,
	}

	suite.mockMonthlyRepo.On("FindGroupByID", ctx, int64(1)).Return(&domain.MonthlyPerformance{ID: 1}, nil).Once()
	suite.mockPerfRepo.On("FindPerformanceByPeriod", ctx, int64(1), "New Member", "May", 2025).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPerfRepo.On("SavePerformance", ctx, mock.MatchedBy(func(p domain.GroupMonthlyPerformance) bool {
		return p.TotalPaid.Equal(dec(500)) && p.ThisMonthShares.Equal(dec(205))
	})).Return(int64(3), nil).Once()

	_, err := suite.service.CreateOrUpdateGroupPerformance(ctx, req)

	suite.Require().NoError(err)
	suite.mockPerfRepo.AssertExpectations(suite.T())
}

func (suite *PerformanceServiceTestSuite) TestCreateGroupPerformance_InvalidMonth() {
	ctx := context.Background()
	req := dto.CreateGroupPerformanceRequest{
		GroupID:       1,
		MemberDetails: "Jane Wanjiku",
		TotalPaid:     dec(500),
		Month:         "Januray",
		Year:          2025,
	}

	result, err := suite.service.CreateOrUpdateGroupPerformance(ctx, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PerformanceServiceTestSuite) TestCreateGroupPerformance_NegativeTotalPaid() {
	ctx := context.Background()
	req := dto.CreateGroupPerformanceRequest{
		GroupID:       1,
		MemberDetails: "Jane Wanjiku",
		TotalPaid:     dec(-100),
		Month:         "January",
		Year:          2025,
	}

	result, err := suite.service.CreateOrUpdateGroupPerformance(ctx, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PerformanceServiceTestSuite) TestCreateGroupPerformance_SharesExceedTotalPaid() {
	ctx := context.Background()
	req := dto.CreateGroupPerformanceRequest{
		GroupID:         1,
		MemberDetails:   "Jane Wanjiku",
		TotalPaid:       dec(100),
		ThisMonthShares: dec(200),
		Month:           "January",
		Year:            2025,
	}

	result, err := suite.service.CreateOrUpdateGroupPerformance(ctx, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PerformanceServiceTestSuite) TestCreateGroupPerformance_UnknownGroup() {
	ctx := context.Background()
	req := dto.CreateGroupPerformanceRequest{
		GroupID:       99,
		MemberDetails: "Jane Wanjiku",
		TotalPaid:     dec(500),
		Month:         "January",
		Year:          2025,
	}

	suite.mockMonthlyRepo.On("FindGroupByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.CreateOrUpdateGroupPerformance(ctx, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMonthlyRepo.AssertExpectations(suite.T())
}

func (suite *PerformanceServiceTestSuite) TestUpsertMonthlyPerformance_CreatesWhenMissing() {
	ctx := context.Background()
	req := dto.UpsertMonthlyPerformanceRequest{
		GroupName: "Umoja",
		Banking:   dec(500),
		Month:     "January",
		Year:      2025,
	}

	suite.mockMonthlyRepo.On("FindGroupByPeriod", ctx, "Umoja", "January", 2025).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockMonthlyRepo.On("SaveGroup", ctx, mock.MatchedBy(func(p domain.MonthlyPerformance) bool {
		return p.GroupName == "Umoja" && p.Banking.Equal(dec(500))
	})).Return(int64(5), nil).Once()

	sheet, err := suite.service.UpsertMonthlyPerformance(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(5), sheet.ID)
	suite.mockMonthlyRepo.AssertExpectations(suite.T())
}

func (suite *PerformanceServiceTestSuite) TestUpsertMonthlyPerformance_UpdatesExisting() {
	ctx := context.Background()
	req := dto.UpsertMonthlyPerformanceRequest{
		GroupName: "Umoja",
		Banking:   dec(700),
		Month:     "January",
		Year:      2025,
	}
	existing := &domain.MonthlyPerformance{ID: 5, GroupName: "Umoja", Month: "January", Year: 2025}

	suite.mockMonthlyRepo.On("FindGroupByPeriod", ctx, "Umoja", "January", 2025).Return(existing, nil).Once()
	suite.mockMonthlyRepo.On("UpdateGroup", ctx, mock.MatchedBy(func(p domain.MonthlyPerformance) bool {
		return p.ID == 5 && p.Banking.Equal(dec(700))
	})).Return(nil).Once()

	sheet, err := suite.service.UpsertMonthlyPerformance(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(5), sheet.ID)
	suite.mockMonthlyRepo.AssertExpectations(suite.T())
}

func (suite *PerformanceServiceTestSuite) TestListGroupPerformances_Success() {
	ctx := context.Background()
	records := []domain.GroupMonthlyPerformance{{ID: 1, GroupID: 1}, {ID: 2, GroupID: 1}}

	suite.mockMonthlyRepo.On("FindGroupByID", ctx, int64(1)).Return(&domain.MonthlyPerformance{ID: 1, GroupName: "Umoja"}, nil).Once()
	suite.mockPerfRepo.On("ListPerformancesByGroup", ctx, int64(1)).Return(records, nil).Once()

	resp, err := suite.service.ListGroupPerformances(ctx, 1)

	suite.Require().NoError(err)
	suite.Equal("Umoja", resp.GroupName)
	suite.Len(resp.Performances, 2)
	suite.mockPerfRepo.AssertExpectations(suite.T())
}

func (suite *PerformanceServiceTestSuite) TestListGroupPerformances_Empty() {
	ctx := context.Background()

	suite.mockMonthlyRepo.On("FindGroupByID", ctx, int64(1)).Return(&domain.MonthlyPerformance{ID: 1, GroupName: "Umoja"}, nil).Once()
	suite.mockPerfRepo.On("ListPerformancesByGroup", ctx, int64(1)).Return([]domain.GroupMonthlyPerformance{}, nil).Once()

	resp, err := suite.service.ListGroupPerformances(ctx, 1)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PerformanceServiceTestSuite) TestFilterGroupPerformances_NoParamsRejected() {
	ctx := context.Background()

	records, err := suite.service.FilterGroupPerformances(ctx, dto.PerformanceFilterRequest{})

	suite.Require().Error(err)
	suite.Nil(records)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPerfRepo.AssertNotCalled(suite.T(), "FilterPerformances", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PerformanceServiceTestSuite) TestFilterGroupPerformances_PassesCriteria() {
	ctx := context.Background()
	matches := []domain.GroupMonthlyPerformance{{ID: 4, GroupID: 1, Month: "March", Year: 2026}}

	suite.mockPerfRepo.On("FilterPerformances", ctx, "Mar", "Umoja", 2026).Return(matches, nil).Once()

	records, err := suite.service.FilterGroupPerformances(ctx, dto.PerformanceFilterRequest{
		Month:     "Mar",
		Year:      2026,
		GroupName: "Umoja",
	})

	suite.Require().NoError(err)
	suite.Len(records, 1)
	suite.Equal(int64(4), records[0].ID)
	suite.mockPerfRepo.AssertExpectations(suite.T())
}

func (suite *PerformanceServiceTestSuite) TestFilterMonthlyPerformances_EmptyResultIsNotAnError() {
	ctx := context.Background()

	suite.mockMonthlyRepo.On("FilterGroups", ctx, "", "", 2031).Return([]domain.MonthlyPerformance(nil), nil).Once()

	sheets, err := suite.service.FilterMonthlyPerformances(ctx, dto.PerformanceFilterRequest{Year: 2031})

	suite.Require().NoError(err)
	suite.NotNil(sheets)
	suite.Empty(sheets)
	suite.mockMonthlyRepo.AssertExpectations(suite.T())
}

func (suite *PerformanceServiceTestSuite) TestUpdateGroupPerformance_PartialEdit() {
	ctx := context.Background()
	existing := &domain.GroupMonthlyPerformance{
		ID:            9,
		GroupID:       1,
		MemberDetails: "Grace Njeri",
		TotalPaid:     dec(500),
		LoanCF:        dec(200),
		Month:         "March",
		Year:          2026,
	}
	newPaid := dec(755)

	suite.mockPerfRepo.On("FindPerformanceByID", ctx, int64(9)).Return(existing, nil).Once()
	suite.mockPerfRepo.On("UpdatePerformance", ctx, mock.MatchedBy(func(p domain.GroupMonthlyPerformance) bool {
		// 755 lands on 760; untouched fields survive
		return p.TotalPaid.Equal(dec(760)) &&
			p.LoanCF.Equal(dec(200)) &&
			p.MemberDetails == "Grace Njeri" &&
			p.Month == "March"
	})).Return(nil).Once()

	record, err := suite.service.UpdateGroupPerformance(ctx, 9, dto.UpdateGroupPerformanceRequest{TotalPaid: &newPaid})

	suite.Require().NoError(err)
	suite.True(record.TotalPaid.Equal(dec(760)))
	suite.mockPerfRepo.AssertExpectations(suite.T())
}

func (suite *PerformanceServiceTestSuite) TestUpdateGroupPerformance_InvalidMonth() {
	ctx := context.Background()
	badMonth := "Marchember"

	record, err := suite.service.UpdateGroupPerformance(ctx, 9, dto.UpdateGroupPerformanceRequest{Month: &badMonth})

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPerfRepo.AssertNotCalled(suite.T(), "FindPerformanceByID", mock.Anything, mock.Anything)
}

func (suite *PerformanceServiceTestSuite) TestUpdateGroupPerformance_NotFound() {
	ctx := context.Background()

	suite.mockPerfRepo.On("FindPerformanceByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	record, err := suite.service.UpdateGroupPerformance(ctx, 99, dto.UpdateGroupPerformanceRequest{})

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPerfRepo.AssertExpectations(suite.T())
}

func (suite *PerformanceServiceTestSuite) TestUpdateMonthlyPerformance_PartialEdit() {
	ctx := context.Background()
	existing := &domain.MonthlyPerformance{
		ID:        3,
		GroupName: "Umoja Group",
		Banking:   dec(1000),
		Month:     "April",
		Year:      2026,
	}
	newBanking := dec(1500)
	newMonth := "May"

	suite.mockMonthlyRepo.On("FindGroupByID", ctx, int64(3)).Return(existing, nil).Once()
	suite.mockMonthlyRepo.On("UpdateGroup", ctx, mock.MatchedBy(func(p domain.MonthlyPerformance) bool {
		return p.Banking.Equal(dec(1500)) && p.Month == "May" && p.GroupName == "Umoja Group" && p.Year == 2026
	})).Return(nil).Once()

	sheet, err := suite.service.UpdateMonthlyPerformance(ctx, 3, dto.UpdateMonthlyPerformanceRequest{
		Banking: &newBanking,
		Month:   &newMonth,
	})

	suite.Require().NoError(err)
	suite.Equal("May", sheet.Month)
	suite.mockMonthlyRepo.AssertExpectations(suite.T())
}

func (suite *PerformanceServiceTestSuite) TestGetMemberSummary_Success() {
	ctx := context.Background()
	summary := &domain.MemberSummary{
		TotalMembers:         12,
		TotalSavingsSharesBF: dec(24000),
		TotalLoanBalanceBF:   dec(8000),
	}

	suite.mockPerfRepo.On("SummarizeMembers", ctx).Return(summary, nil).Once()
	suite.mockPerfRepo.On("ListMemberNames", ctx).Return([]string{"Grace Njeri", "John Otieno"}, nil).Once()
	suite.mockUserRepo.On("CountActiveUsers", ctx).Return(3, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(1)).Return(&domain.User{ID: 1, Username: "Grace Njeri"}, nil).Once()

	resp, err := suite.service.GetMemberSummary(ctx, 1)

	suite.Require().NoError(err)
	suite.Equal(12, resp.TotalMemberDetails)
	suite.Equal([]string{"Grace Njeri", "John Otieno"}, resp.MemberNames)
	suite.Equal(3, resp.TotalActiveUsers)
	suite.Equal("Grace", resp.CurrentFirstName)
	suite.mockPerfRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *PerformanceServiceTestSuite) TestGetMemberSummary_UnknownUser() {
	ctx := context.Background()
	summary := &domain.MemberSummary{TotalMembers: 1}

	suite.mockPerfRepo.On("SummarizeMembers", ctx).Return(summary, nil).Once()
	suite.mockPerfRepo.On("ListMemberNames", ctx).Return([]string(nil), nil).Once()
	suite.mockUserRepo.On("CountActiveUsers", ctx).Return(0, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(9)).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.GetMemberSummary(ctx, 9)

	suite.Require().NoError(err)
	suite.Equal("Unknown", resp.CurrentFirstName)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *PerformanceServiceTestSuite) TestGetGroupPerformance_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockPerfRepo.On("FindPerformanceByID", ctx, int64(4)).Return(nil, expectedErr).Once()

	record, err := suite.service.GetGroupPerformance(ctx, 4)

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, expectedErr)
	suite.mockPerfRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestPerformanceService(t *testing.T) {
	suite.Run(t, new(PerformanceServiceTestSuite))
}
