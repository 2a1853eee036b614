package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/mkopo/chama_management_app/internal/apperrors"
	"github.com/mkopo/chama_management_app/internal/core/domain"
	portssvc "github.com/mkopo/chama_management_app/internal/core/ports/services"
	"github.com/mkopo/chama_management_app/internal/core/services"
	"github.com/mkopo/chama_management_app/internal/dto"
)

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Username: "Grace Njeri",
		Password: "s3cret-pass",
		Role:     domain.RoleAdmin,
	}

	suite.mockRepo.On("FindUserByUsername", ctx, "Grace Njeri").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "Grace Njeri" &&
			u.Role == domain.RoleAdmin &&
			u.Active &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")) == nil
	})).Return(int64(1), nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(1), user.ID)
	suite.Equal(domain.RoleAdmin, user.Role)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_DefaultsToMemberRole() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Username: "Mary Atieno",
		Password: "s3cret-pass",
	}

	suite.mockRepo.On("FindUserByUsername", ctx, "Mary Atieno").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Role == domain.RoleMember
	})).Return(int64(2), nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleMember, user.Role)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateUsername() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Username: "Grace Njeri",
		Password: "s3cret-pass",
	}

	suite.mockRepo.On("FindUserByUsername", ctx, "Grace Njeri").Return(&domain.User{ID: 1, Username: "Grace Njeri"}, nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	suite.Require().NoError(err)
	stored := &domain.User{ID: 1, Username: "Grace Njeri", PasswordHash: string(hash), Active: true}

	suite.mockRepo.On("FindUserByUsername", ctx, "Grace Njeri").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "Grace Njeri", "s3cret-pass")

	suite.Require().NoError(err)
	suite.Equal(int64(1), user.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	suite.Require().NoError(err)
	stored := &domain.User{ID: 1, Username: "Grace Njeri", PasswordHash: string(hash)}

	suite.mockRepo.On("FindUserByUsername", ctx, "Grace Njeri").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "Grace Njeri", "wrong-pass")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownUser() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "nobody").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.Authenticate(ctx, "nobody", "whatever")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetOrCreateOAuthUser_ReturnsExisting() {
	ctx := context.Background()
	existing := &domain.User{ID: 4, Username: "grace@example.com", Role: domain.RoleMember, Active: true}

	suite.mockRepo.On("FindUserByUsername", ctx, "grace@example.com").Return(existing, nil).Once()

	user, err := suite.service.GetOrCreateOAuthUser(ctx, "grace@example.com")

	suite.Require().NoError(err)
	suite.Equal(int64(4), user.ID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetOrCreateOAuthUser_CreatesMemberWithoutPassword() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "new@example.com" &&
			u.Role == domain.RoleMember &&
			u.Active &&
			u.PasswordHash == ""
	})).Return(int64(8), nil).Once()

	user, err := suite.service.GetOrCreateOAuthUser(ctx, "new@example.com")

	suite.Require().NoError(err)
	suite.Equal(int64(8), user.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
