package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	mockRepo "taskboard/internal/mocks/repository"
	mockSvc "taskboard/internal/mocks/service"
	"taskboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Ana Gómez",
		Email:    "ana@x.com",
		Password: "secret1",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, input.Email, user.Email)
	assert.Equal(t, input.Name, user.Name)
	assert.Equal(t, "hashed_password", user.PasswordHash)
	assert.NotEqual(t, uuid.Nil, user.ID)

	// The public identity never exposes the hash
	public := user.Public()
	assert.Equal(t, user.ID, public.ID)
	assert.Equal(t, user.Email, public.Email)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Ana Gómez",
		Email:    "ana@x.com",
		Password: "another-secret",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

			return fn(mockFactory)
		})

	user, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Ana Gómez",
		Email:    "ana@x.com",
		Password: "secret1",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt failure"))

	user, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	storedUser := &entity.User{
		ID:           uuid.New(),
		Email:        "ana@x.com",
		Name:         "Ana Gómez",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, storedUser.Email).Return(storedUser, nil)
	fx.hasher.EXPECT().Check("secret1", storedUser.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Generate(storedUser.Public()).Return("signed-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    storedUser.Email,
		Password: "secret1",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, storedUser, output.User)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@x.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@x.com",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	storedUser := &entity.User{
		ID:           uuid.New(),
		Email:        "ana@x.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, storedUser.Email).Return(storedUser, nil)
	fx.hasher.EXPECT().Check("wrong-password", storedUser.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    storedUser.Email,
		Password: "wrong-password",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

// Unknown email and wrong password must surface the exact same message
// so callers cannot enumerate registered emails.
func TestAuthService_Login_UniformErrorMessage(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	storedUser := &entity.User{
		ID:           uuid.New(),
		Email:        "ana@x.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@x.com").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByEmail(ctx, storedUser.Email).Return(storedUser, nil)
	fx.hasher.EXPECT().Check("wrong-password", storedUser.PasswordHash).Return(false)

	_, unknownEmailErr := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@x.com",
		Password: "whatever",
	})
	_, wrongPasswordErr := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    storedUser.Email,
		Password: "wrong-password",
	})

	var appErr1 domainerrors.AppError
	var appErr2 domainerrors.AppError
	require.True(t, errors.As(unknownEmailErr, &appErr1))
	require.True(t, errors.As(wrongPasswordErr, &appErr2))
	assert.Equal(t, appErr1.Message(), appErr2.Message())
	assert.Equal(t, appErr1.HTTPCode(), appErr2.HTTPCode())
}
