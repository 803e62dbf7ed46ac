package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/siteledger/backend/internal/apperrors"
	"github.com/siteledger/backend/internal/core/domain"
	portssvc "github.com/siteledger/backend/internal/core/ports/services"
	"github.com/siteledger/backend/internal/core/services"
	"github.com/siteledger/backend/internal/dto"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	args := m.Called(ctx, phone)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deleterUserID string) error {
	args := m.Called(ctx, userID, deletedAt, deleterUserID)
	return args.Error(0)
}

// --- Suite ---

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- CreateUser Tests ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Name:     "Rahim",
		Phone:    "01711111111",
		Password: "password123",
	}

	suite.mockUserRepo.On("FindUserByPhone", ctx, req.Phone).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		if user.UserID == "" || user.Name != req.Name || user.Phone != req.Phone {
			return false
		}
		// Password must be stored hashed, never in the clear.
		return user.PasswordHash != req.Password &&
			bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) == nil
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal(req.Name, user.Name)
	suite.NotEmpty(user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicatePhone() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Name:     "Rahim",
		Phone:    "01711111111",
		Password: "password123",
	}
	existing := &domain.User{UserID: "existing-id", Phone: req.Phone}

	suite.mockUserRepo.On("FindUserByPhone", ctx, req.Phone).Return(existing, nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(user)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

// --- AuthenticateUser Tests ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	password := "correct-horse"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	suite.Require().NoError(err)
	user := &domain.User{UserID: "user-1", Name: "Rahim", Phone: "01711111111", PasswordHash: string(hash)}

	suite.mockUserRepo.On("FindUserByPhone", ctx, user.Phone).Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, user.Phone, password)

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("real-password"), bcrypt.DefaultCost)
	suite.Require().NoError(err)
	user := &domain.User{UserID: "user-1", Phone: "01711111111", PasswordHash: string(hash)}

	suite.mockUserRepo.On("FindUserByPhone", ctx, user.Phone).Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, user.Phone, "wrong-password")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(got)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownPhone() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByPhone", ctx, "01700000000").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.AuthenticateUser(ctx, "01700000000", "whatever")

	suite.Require().Error(err)
	// Unknown phone must be indistinguishable from a bad password.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(got)
}

// --- UpdateUser / DeleteUser Tests ---

func (suite *UserServiceTestSuite) TestUpdateUser_ForbiddenForOtherUser() {
	ctx := context.Background()
	newName := "New Name"

	user, err := suite.service.UpdateUser(ctx, "user-1", dto.UpdateUserRequest{Name: &newName}, "user-2")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(user)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUser_Success() {
	ctx := context.Background()
	newName := "New Name"
	existing := &domain.User{UserID: "user-1", Name: "Old Name"}

	suite.mockUserRepo.On("FindUserByID", ctx, "user-1").Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == "user-1" && u.Name == newName && u.LastUpdatedBy == "user-1"
	})).Return(nil).Once()

	user, err := suite.service.UpdateUser(ctx, "user-1", dto.UpdateUserRequest{Name: &newName}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(newName, user.Name)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()
	existing := &domain.User{UserID: "user-1"}

	suite.mockUserRepo.On("FindUserByID", ctx, "user-1").Return(existing, nil).Once()
	suite.mockUserRepo.On("MarkUserDeleted", ctx, "user-1", mock.AnythingOfType("time.Time"), "user-1").Return(nil).Once()

	err := suite.service.DeleteUser(ctx, "user-1", "user-1")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
