package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/mkopo/chama_management_app/internal/apperrors"
	"github.com/mkopo/chama_management_app/internal/core/domain"
	portssvc "github.com/mkopo/chama_management_app/internal/core/ports/services"
	"github.com/mkopo/chama_management_app/internal/dto"
	"github.com/mkopo/chama_management_app/internal/handlers"
	"github.com/mkopo/chama_management_app/internal/middleware"
	"github.com/mkopo/chama_management_app/internal/platform/config"
)

// --- Mock PerformanceService ---
type MockPerformanceService struct {
	mock.Mock
}

func (m *MockPerformanceService) CreateOrUpdateGroupPerformance(ctx context.Context, req dto.CreateGroupPerformanceRequest) (*domain.GroupMonthlyPerformance, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GroupMonthlyPerformance), args.Error(1)
}
func (m *MockPerformanceService) UpsertMonthlyPerformance(ctx context.Context, req dto.UpsertMonthlyPerformanceRequest) (*domain.MonthlyPerformance, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyPerformance), args.Error(1)
}
func (m *MockPerformanceService) ListGroupPerformances(ctx context.Context, groupID int64) (*dto.GroupPerformancesResponse, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GroupPerformancesResponse), args.Error(1)
}
func (m *MockPerformanceService) GetGroupPerformance(ctx context.Context, id int64) (*domain.GroupMonthlyPerformance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GroupMonthlyPerformance), args.Error(1)
}
func (m *MockPerformanceService) ListMonthlyPerformances(ctx context.Context) ([]domain.MonthlyPerformance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyPerformance), args.Error(1)
}
func (m *MockPerformanceService) FilterGroupPerformances(ctx context.Context, req dto.PerformanceFilterRequest) ([]domain.GroupMonthlyPerformance, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroupMonthlyPerformance), args.Error(1)
}
func (m *MockPerformanceService) FilterMonthlyPerformances(ctx context.Context, req dto.PerformanceFilterRequest) ([]domain.MonthlyPerformance, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyPerformance), args.Error(1)
}
func (m *MockPerformanceService) UpdateGroupPerformance(ctx context.Context, id int64, req dto.UpdateGroupPerformanceRequest) (*domain.GroupMonthlyPerformance, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GroupMonthlyPerformance), args.Error(1)
}
func (m *MockPerformanceService) UpdateMonthlyPerformance(ctx context.Context, id int64, req dto.UpdateMonthlyPerformanceRequest) (*domain.MonthlyPerformance, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyPerformance), args.Error(1)
}
func (m *MockPerformanceService) GetMemberSummary(ctx context.Context, requestingUserID int64) (*dto.MemberSummaryResponse, error) {
	args := m.Called(ctx, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MemberSummaryResponse), args.Error(1)
}

var _ portssvc.PerformanceSvcFacade = (*MockPerformanceService)(nil)

// --- Mock AdvanceService ---
type MockAdvanceService struct {
	mock.Mock
}

func (m *MockAdvanceService) CreateAdvance(ctx context.Context, req dto.CreateAdvanceRequest, creatorUserID int64) (*domain.Advance, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Advance), args.Error(1)
}
func (m *MockAdvanceService) MakePayment(ctx context.Context, advanceID int64, paymentAmount decimal.Decimal, payerUserID int64) (*domain.Advance, error) {
	args := m.Called(ctx, advanceID, paymentAmount, payerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Advance), args.Error(1)
}
func (m *MockAdvanceService) UpdateAdvance(ctx context.Context, advanceID int64, req dto.UpdateAdvanceRequest) (*domain.Advance, error) {
	args := m.Called(ctx, advanceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Advance), args.Error(1)
}
func (m *MockAdvanceService) GetAdvance(ctx context.Context, advanceID int64) (*domain.Advance, error) {
	args := m.Called(ctx, advanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Advance), args.Error(1)
}
func (m *MockAdvanceService) RemainingBalance(ctx context.Context, advanceID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, advanceID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockAdvanceService) ListAdvancesByGroup(ctx context.Context, groupID int64) (*dto.GroupAdvancesResponse, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GroupAdvancesResponse), args.Error(1)
}
func (m *MockAdvanceService) ListAdvancesForUser(ctx context.Context, userID int64) ([]domain.Advance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Advance), args.Error(1)
}
func (m *MockAdvanceService) CreateAdvanceCredit(ctx context.Context, req dto.CreateAdvanceCreditRequest) (*domain.MonthlyAdvanceCredit, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyAdvanceCredit), args.Error(1)
}
func (m *MockAdvanceService) ListAdvanceCredits(ctx context.Context) ([]domain.MonthlyAdvanceCredit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyAdvanceCredit), args.Error(1)
}

var _ portssvc.AdvanceSvcFacade = (*MockAdvanceService)(nil)

// --- Mock ArchiveService ---
type MockArchiveService struct {
	mock.Mock
}

func (m *MockArchiveService) GenerateForm(ctx context.Context, groupID int64, actingUserID int64) (*dto.GenerateFormResponse, error) {
	args := m.Called(ctx, groupID, actingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GenerateFormResponse), args.Error(1)
}
func (m *MockArchiveService) GenerateMonthlyAdvanceForm(ctx context.Context, groupID int64, actingUserID int64) (*domain.AdvanceSummary, error) {
	args := m.Called(ctx, groupID, actingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdvanceSummary), args.Error(1)
}
func (m *MockArchiveService) ListHistories(ctx context.Context) ([]domain.History, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.History), args.Error(1)
}
func (m *MockArchiveService) GetFormRecords(ctx context.Context, historyID int64) ([]domain.FormRecord, error) {
	args := m.Called(ctx, historyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FormRecord), args.Error(1)
}
func (m *MockArchiveService) QueryAdvanceHistory(ctx context.Context, groupID int64) ([]domain.AdvanceHistory, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdvanceHistory), args.Error(1)
}
func (m *MockArchiveService) QueryAdvanceSummaries(ctx context.Context, groupName string, date *time.Time) ([]domain.AdvanceSummary, error) {
	args := m.Called(ctx, groupName, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdvanceSummary), args.Error(1)
}

var _ portssvc.ArchiveSvcFacade = (*MockArchiveService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetOrCreateOAuthUser(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock OAuthService ---
type MockOAuthService struct {
	mock.Mock
}

func (m *MockOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}
func (m *MockOAuthService) ValidateIDToken(ctx context.Context, idToken string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

var _ portssvc.OAuthSvcFacade = (*MockOAuthService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) GetTransaction(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactions(ctx context.Context, userID int64, cursor string, limit int32) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, userID, cursor, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock NotificationService ---
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) CreateNotification(ctx context.Context, req dto.CreateNotificationRequest) (*domain.Notification, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}
func (m *MockNotificationService) ListNotifications(ctx context.Context, userID int64) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockNotificationService) UpdateNotification(ctx context.Context, notificationID int64, req dto.UpdateNotificationRequest) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}
func (m *MockNotificationService) DeleteNotification(ctx context.Context, notificationID int64) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}

var _ portssvc.NotificationSvcFacade = (*MockNotificationService)(nil)

// --- Test Suite ---
type PerformanceHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockPerformance *MockPerformanceService
	mockAdvance     *MockAdvanceService
	cfg             *config.Config
}

func (suite *PerformanceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
	}

	suite.mockPerformance = new(MockPerformanceService)
	suite.mockAdvance = new(MockAdvanceService)

	container := &portssvc.ServiceContainer{
		Performance:  suite.mockPerformance,
		Advance:      suite.mockAdvance,
		Archive:      new(MockArchiveService),
		User:         new(MockUserService),
		OAuth:        new(MockOAuthService),
		Transaction:  new(MockTransactionService),
		Notification: new(MockNotificationService),
	}

	handlers.RegisterRoutes(suite.router, suite.cfg, container)
}

// generateTestToken creates a signed JWT for the given user.
func (suite *PerformanceHandlerTestSuite) generateTestToken(userID int64, role string) string {
	token, err := middleware.GenerateJWT(domain.User{ID: userID, Role: role}, suite.cfg.JWTSecret, suite.cfg.JWTExpiryDuration)
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *PerformanceHandlerTestSuite) doJSON(method, url, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *PerformanceHandlerTestSuite) TestCreateGroupPerformance_Success() {
	body := map[string]any{
		"group_id":          1,
		"member_details":    "Grace Njeri",
		"total_paid":        "500",
		"this_month_shares": "200",
		"savings_shares_bf": "1000",
		"loan_balance_bf":   "1000",
		"month":             "March",
		"year":              2026,
	}

	suite.mockPerformance.On("CreateOrUpdateGroupPerformance",
		mock.Anything,
		mock.MatchedBy(func(req dto.CreateGroupPerformanceRequest) bool {
			return req.GroupID == int64(1) && req.MemberDetails == "Grace Njeri" && req.Month == "March"
		}),
	).Return(&domain.GroupMonthlyPerformance{ID: 17}, nil).Once()

	token := suite.generateTestToken(7, domain.RoleAdmin)
	w := suite.doJSON(http.MethodPost, "/api/v1/group_performances", token, body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.GroupPerformanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(17), resp.ID)
	suite.Equal("Record saved successfully", resp.Message)
	suite.mockPerformance.AssertExpectations(suite.T())
}

func (suite *PerformanceHandlerTestSuite) TestCreateGroupPerformance_RequiresAdmin() {
	token := suite.generateTestToken(7, domain.RoleMember)
	w := suite.doJSON(http.MethodPost, "/api/v1/group_performances", token, map[string]any{
		"group_id":       1,
		"member_details": "Grace Njeri",
		"month":          "March",
		"year":           2026,
	})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockPerformance.AssertNotCalled(suite.T(), "CreateOrUpdateGroupPerformance", mock.Anything, mock.Anything)
}

func (suite *PerformanceHandlerTestSuite) TestCreateGroupPerformance_InvalidMonthRejectedAtBinding() {
	token := suite.generateTestToken(7, domain.RoleAdmin)
	w := suite.doJSON(http.MethodPost, "/api/v1/group_performances", token, map[string]any{
		"group_id":       1,
		"member_details": "Grace Njeri",
		"month":          "Marchember",
		"year":           2026,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPerformance.AssertNotCalled(suite.T(), "CreateOrUpdateGroupPerformance", mock.Anything, mock.Anything)
}

func (suite *PerformanceHandlerTestSuite) TestCreateGroupPerformance_ValidationErrorMapsTo400() {
	suite.mockPerformance.On("CreateOrUpdateGroupPerformance", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrValidation).Once()

	token := suite.generateTestToken(7, domain.RoleAdmin)
	w := suite.doJSON(http.MethodPost, "/api/v1/group_performances", token, map[string]any{
		"group_id":       99,
		"member_details": "Grace Njeri",
		"month":          "March",
		"year":           2026,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPerformance.AssertExpectations(suite.T())
}

func (suite *PerformanceHandlerTestSuite) TestListGroupPerformances_Success() {
	expected := &dto.GroupPerformancesResponse{
		GroupName: "Umoja Group",
		Performances: []domain.GroupMonthlyPerformance{
			{ID: 1, GroupID: 3, MemberDetails: "Grace Njeri"},
		},
	}
	suite.mockPerformance.On("ListGroupPerformances", mock.Anything, int64(3)).
		Return(expected, nil).Once()

	token := suite.generateTestToken(7, domain.RoleMember)
	w := suite.doJSON(http.MethodGet, "/api/v1/group_performances?group_id=3", token, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.GroupPerformancesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Umoja Group", resp.GroupName)
	suite.Len(resp.Performances, 1)
	suite.mockPerformance.AssertExpectations(suite.T())
}

func (suite *PerformanceHandlerTestSuite) TestListGroupPerformances_NotFound() {
	suite.mockPerformance.On("ListGroupPerformances", mock.Anything, int64(3)).
		Return(nil, apperrors.ErrNotFound).Once()

	token := suite.generateTestToken(7, domain.RoleMember)
	w := suite.doJSON(http.MethodGet, "/api/v1/group_performances?group_id=3", token, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockPerformance.AssertExpectations(suite.T())
}

func (suite *PerformanceHandlerTestSuite) TestListGroupPerformances_MissingToken() {
	w := suite.doJSON(http.MethodGet, "/api/v1/group_performances?group_id=3", "", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPerformance.AssertNotCalled(suite.T(), "ListGroupPerformances", mock.Anything, mock.Anything)
}

func (suite *PerformanceHandlerTestSuite) TestFilterGroupPerformances_Success() {
	matches := []domain.GroupMonthlyPerformance{
		{ID: 4, GroupID: 3, MemberDetails: "Grace Njeri", Month: "March", Year: 2026},
	}
	suite.mockPerformance.On("FilterGroupPerformances", mock.Anything, dto.PerformanceFilterRequest{Month: "Mar", Year: 2026}).
		Return(matches, nil).Once()

	token := suite.generateTestToken(7, domain.RoleMember)
	w := suite.doJSON(http.MethodPost, "/api/v1/group_performances/filter", token, gin.H{"month": "Mar", "year": 2026})

	suite.Equal(http.StatusOK, w.Code)

	var resp []domain.GroupMonthlyPerformance
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
	suite.mockPerformance.AssertExpectations(suite.T())
}

func (suite *PerformanceHandlerTestSuite) TestFilterGroupPerformances_NoParamsMapsTo400() {
	suite.mockPerformance.On("FilterGroupPerformances", mock.Anything, dto.PerformanceFilterRequest{}).
		Return(nil, apperrors.ErrValidation).Once()

	token := suite.generateTestToken(7, domain.RoleMember)
	w := suite.doJSON(http.MethodPost, "/api/v1/group_performances/filter", token, gin.H{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPerformance.AssertExpectations(suite.T())
}

func (suite *PerformanceHandlerTestSuite) TestUpdateGroupPerformance_RequiresAdmin() {
	token := suite.generateTestToken(7, domain.RoleMember)
	w := suite.doJSON(http.MethodPut, "/api/v1/group_performances/4", token, gin.H{"total_paid": 500})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockPerformance.AssertNotCalled(suite.T(), "UpdateGroupPerformance", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PerformanceHandlerTestSuite) TestUpdateMonthlyPerformance_NotFound() {
	suite.mockPerformance.On("UpdateMonthlyPerformance", mock.Anything, int64(99), mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	token := suite.generateTestToken(7, domain.RoleAdmin)
	w := suite.doJSON(http.MethodPut, "/api/v1/monthly_performances/99", token, gin.H{"banking": 1500})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockPerformance.AssertExpectations(suite.T())
}

func (suite *PerformanceHandlerTestSuite) TestMakePayment_Success() {
	expected := &domain.Advance{
		ID:         5,
		PaidAmount: decimal.NewFromInt(400),
		Status:     domain.AdvancePending,
	}
	suite.mockAdvance.On("MakePayment", mock.Anything, int64(5), mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(400))
	}), int64(7)).Return(expected, nil).Once()

	token := suite.generateTestToken(7, domain.RoleMember)
	w := suite.doJSON(http.MethodPost, "/api/v1/advances/5/payment", token, map[string]any{
		"payment_amount": "400",
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockAdvance.AssertExpectations(suite.T())
}

func (suite *PerformanceHandlerTestSuite) TestMakePayment_AdvanceNotFound() {
	suite.mockAdvance.On("MakePayment", mock.Anything, int64(5), mock.Anything, int64(7)).
		Return(nil, apperrors.ErrNotFound).Once()

	token := suite.generateTestToken(7, domain.RoleMember)
	w := suite.doJSON(http.MethodPost, "/api/v1/advances/5/payment", token, map[string]any{
		"payment_amount": "400",
	})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockAdvance.AssertExpectations(suite.T())
}

func TestPerformanceHandler(t *testing.T) {
	suite.Run(t, new(PerformanceHandlerTestSuite))
}
