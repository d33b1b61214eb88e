package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/festival-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/festival-manager-api/internal/config"
	"github.com/vfg2006/festival-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(userRepo *mocks.MockUserRepository) Authenticator {
	return NewService(userRepo, &config.Config{SecretKey: "chave-de-teste"})
}

func hashPassword(t *testing.T, password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestValidatePasswordStrength(t *testing.T) {
	testCases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "senha forte", password: "Fest!val2026", wantErr: false},
		{name: "muito curta", password: "Fe!2", wantErr: true},
		{name: "sem maiúscula", password: "fest!val2026", wantErr: true},
		{name: "sem minúscula", password: "FEST!VAL2026", wantErr: true},
		{name: "sem número", password: "Fest!valfest", wantErr: true},
		{name: "sem caractere especial", password: "Festival2026", wantErr: true},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(mocks.NewMockUserRepository(ctrl))

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tc.password)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrWeakPassword)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateUserDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := newTestService(mockRepo)

	mockRepo.EXPECT().GetUserByEmail("lucia@festival.app").Return(nil, nil)
	mockRepo.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) (*domain.User, error) {
			// Senha nunca chega em claro no repositório
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Fest!val2026")))
			assert.Equal(t, 3, user.RoleID)
			assert.False(t, user.Active)
			user.ID = 7
			return user, nil
		})

	user, err := service.CreateUser(&domain.User{
		Name:         "Lucía",
		Lastname:     "Pereira",
		Email:        " Lucia@Festival.app ",
		PasswordHash: "Fest!val2026",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, user.ID)
	assert.Equal(t, "lucia@festival.app", user.Email)
}

func TestCreateUserAlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := newTestService(mockRepo)

	mockRepo.EXPECT().
		GetUserByEmail("lucia@festival.app").
		Return(&domain.User{ID: 1, Email: "lucia@festival.app"}, nil)

	_, err := service.CreateUser(&domain.User{
		Name:         "Lucía",
		Lastname:     "Pereira",
		Email:        "lucia@festival.app",
		PasswordHash: "Fest!val2026",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := newTestService(mockRepo)

	user := &domain.User{
		ID:           7,
		Name:         "Lucía",
		Email:        "lucia@festival.app",
		PasswordHash: hashPassword(t, "Fest!val2026"),
		Active:       true,
		RoleID:       2,
	}

	mockRepo.EXPECT().GetUserByEmail("lucia@festival.app").Return(user, nil)

	token, err := service.LoginUser("lucia@festival.app", "Fest!val2026")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, 2, claims.UserRoleID)
}

func TestLoginUserFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := newTestService(mockRepo)

	t.Run("usuário não encontrado", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByEmail("nadie@festival.app").Return(nil, nil)

		_, err := service.LoginUser("nadie@festival.app", "Fest!val2026")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("conta desativada", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByEmail("lucia@festival.app").Return(&domain.User{
			ID:           7,
			Email:        "lucia@festival.app",
			PasswordHash: hashPassword(t, "Fest!val2026"),
			Active:       false,
		}, nil)

		_, err := service.LoginUser("lucia@festival.app", "Fest!val2026")
		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("senha incorreta", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByEmail("lucia@festival.app").Return(&domain.User{
			ID:           7,
			Email:        "lucia@festival.app",
			PasswordHash: hashPassword(t, "Fest!val2026"),
			Active:       true,
		}, nil)

		_, err := service.LoginUser("lucia@festival.app", "outra-senha")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)

	issuer := NewService(mockRepo, &config.Config{SecretKey: "outra-chave"})
	verifier := newTestService(mockRepo)

	mockRepo.EXPECT().GetUserByEmail("lucia@festival.app").Return(&domain.User{
		ID:           7,
		Email:        "lucia@festival.app",
		PasswordHash: hashPassword(t, "Fest!val2026"),
		Active:       true,
	}, nil)

	token, err := issuer.LoginUser("lucia@festival.app", "Fest!val2026")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateStrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := newTestService(mockRepo)

	admin := &domain.User{ID: 1, RoleID: 1, Active: true}
	target := &domain.User{ID: 9, RoleID: 3, Active: true, PasswordHash: "antiga"}

	mockRepo.EXPECT().GetUserByID(1).Return(admin, nil)
	mockRepo.EXPECT().GetUserByID(9).Return(target, nil)
	mockRepo.EXPECT().
		UpdateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) error {
			assert.NotEqual(t, "antiga", user.PasswordHash)
			return nil
		})

	password, err := service.GenerateStrongPassword(1, 9)
	require.NoError(t, err)

	// A senha gerada tem que passar no próprio critério de força
	assert.NoError(t, service.ValidatePasswordStrength(password))
}

func TestGenerateStrongPasswordRequiresAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := newTestService(mockRepo)

	mockRepo.EXPECT().GetUserByID(2).Return(&domain.User{ID: 2, RoleID: 2}, nil)

	_, err := service.GenerateStrongPassword(2, 9)
	assert.ErrorIs(t, err, ErrNoAdminPrivileges)
}

func TestChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := newTestService(mockRepo)

	hash := hashPassword(t, "Fest!val2026")

	t.Run("senha atual incorreta", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7, PasswordHash: hash}, nil)

		err := service.ChangePassword(7, "errada", "Nueva!2027ok")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("mesma senha", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7, PasswordHash: hash}, nil)

		err := service.ChangePassword(7, "Fest!val2026", "Fest!val2026")
		assert.ErrorIs(t, err, ErrSamePassword)
	})

	t.Run("senha nova fraca", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7, PasswordHash: hash}, nil)

		err := service.ChangePassword(7, "Fest!val2026", "fraca")
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("troca com sucesso", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7, PasswordHash: hash}, nil)
		mockRepo.EXPECT().
			UpdateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Nueva!2027ok")))
				return nil
			})

		err := service.ChangePassword(7, "Fest!val2026", "Nueva!2027ok")
		assert.NoError(t, err)
	})
}
