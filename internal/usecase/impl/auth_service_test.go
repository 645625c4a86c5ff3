package impl

import (
	"context"
	"testing"
	"time"

	"sweetshop/internal/domain/entity"
	domainerrors "sweetshop/internal/domain/errors"
	"sweetshop/internal/domain/repository"
	mockRepo "sweetshop/internal/mocks/repository"
	mockSvc "sweetshop/internal/mocks/service"
	"sweetshop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	repoFactory  *mockRepo.MockRepositoryFactory
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		repoFactory:  repoFactory,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func newRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1",
		Mobile:   "9876543210",
		Address:  "12 Candy Lane",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := newRegisterInput()

	expectTransaction(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-secret", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 7
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, uint(7), user.ID)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, "hashed-secret", user.PasswordHash)
	assert.Equal(t, input.Mobile, user.Mobile)
	assert.Equal(t, input.Address, user.Address)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := newRegisterInput()

	expectTransaction(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.User{ID: 3, Email: input.Email}, nil)

	user, err := fx.service.Register(ctx, input)
	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := newRegisterInput()

	expectTransaction(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(&entity.User{ID: 3, Username: input.Username}, nil)

	_, err := fx.service.Register(ctx, input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := newRegisterInput()

	expectTransaction(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("cost out of range"))

	_, err := fx.service.Register(ctx, input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_Register_LookupFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := newRegisterInput()
	dbErr := errors.New("connection reset")

	expectTransaction(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, dbErr)

	_, err := fx.service.Register(ctx, input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dbErr))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: 5, Email: "alice@example.com", PasswordHash: "hashed", Role: entity.RoleUser}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(uint(5)).Return("signed-token", nil)
	fx.tokenService.EXPECT().AccessTokenTTL().Return(24 * time.Hour)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, entity.RoleUser, output.Role)
	assert.Equal(t, 24*time.Hour, output.ExpiresIn)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "secret1"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: 5, Email: "alice@example.com", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token resolves the user", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := testCustomer()

		fx.tokenService.EXPECT().ValidateToken("good").Return(user.ID, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

		got, err := fx.service.Authenticate(ctx, "good")
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.tokenService.EXPECT().ValidateToken("expired").Return(uint(0), errors.New("token is expired"))

		got, err := fx.service.Authenticate(ctx, "expired")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})

	t.Run("subject without a user is rejected", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.tokenService.EXPECT().ValidateToken("orphan").Return(uint(99), nil)
		fx.userRepo.EXPECT().FindByID(ctx, uint(99)).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Authenticate(ctx, "orphan")
		assert.ErrorIs(t, err, domainerrors.ErrTokenUserNotFound)
	})
}

func TestAuthService_RequireAdmin(t *testing.T) {
	fx := createTestAuthService(t)

	admin, err := fx.service.RequireAdmin(testAdmin())
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, admin.Role)

	_, err = fx.service.RequireAdmin(testCustomer())
	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)

	_, err = fx.service.RequireAdmin(nil)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}
