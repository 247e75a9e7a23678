package usecase

import (
	"context"
	"errors"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type RegisterUserInput struct {
	Name     string
	Username string
	Email    string
	Role     string
	Password string
}

//go:generate mockgen -source=auth_usecase.go -destination=../adapter/http/handlers/mocks/auth_usecase_mock.go -package=mocks
type IAuthUseCase interface {
	Authenticate(ctx context.Context, username, password string) (entities.User, error)
	RegisterUser(ctx context.Context, in RegisterUserInput) (entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
}

type AuthUseCase struct {
	users   interfaces.IUserRepository
	secrets interfaces.ICredentialStore
	writer  interfaces.IWriteSerializer
	logger  *zap.Logger
	cost    int
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(
	users interfaces.IUserRepository,
	secrets interfaces.ICredentialStore,
	writer interfaces.IWriteSerializer,
	logger *zap.Logger,
) *AuthUseCase {
	return &AuthUseCase{users: users, secrets: secrets, writer: writer, logger: orNop(logger), cost: bcrypt.DefaultCost}
}

// HashSecret hashes a plain password the way the credential store expects.
func HashSecret(password string, cost int) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(h), nil
}

// Authenticate checks username and password. An unknown user and a wrong
// password are indistinguishable to the caller.
func (u *AuthUseCase) Authenticate(ctx context.Context, username, password string) (entities.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return entities.User{}, ErrMissingCredentials
	}

	user, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		u.logger.Info("[auth][usecase] unknown username", zap.String("username", username))
		return entities.User{}, ErrInvalidCredentials
	}

	hash, found, err := u.secrets.GetSecret(ctx, user.Username)
	if err != nil {
		return entities.User{}, err
	}
	if !found {
		return entities.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			u.logger.Info("[auth][usecase] password mismatch", zap.String("user_id", user.ID))
			return entities.User{}, ErrInvalidCredentials
		}
		return entities.User{}, fmt.Errorf("compare secret: %w", err)
	}

	if user.Status == entities.UserStatusInactive {
		return entities.User{}, ErrUserInactive
	}
	return user, nil
}

func (u *AuthUseCase) RegisterUser(ctx context.Context, in RegisterUserInput) (entities.User, error) {
	user := entities.User{
		Name:     strings.TrimSpace(in.Name),
		Username: strings.TrimSpace(in.Username),
		Email:    strings.TrimSpace(in.Email),
		Role:     strings.TrimSpace(in.Role),
		Status:   entities.UserStatusActive,
	}
	if err := user.Validate(); err != nil {
		return entities.User{}, err
	}
	if in.Password != "" && user.Username == "" {
		return entities.User{}, invalidField("username is required when a password is set")
	}

	var hash string
	if in.Password != "" {
		var err error
		if hash, err = HashSecret(in.Password, u.cost); err != nil {
			return entities.User{}, err
		}
	}

	var created entities.User
	err := u.writer.Serialize(ctx, func(ctx context.Context) error {
		existing, err := u.users.List(ctx)
		if err != nil {
			return err
		}
		for _, e := range existing {
			if user.Username != "" && strings.EqualFold(e.Username, user.Username) {
				return ErrUsernameTaken
			}
			if strings.EqualFold(e.Email, user.Email) {
				return ErrEmailTaken
			}
		}

		user.ID = newID("user")
		if hash != "" {
			if err := u.secrets.SetSecret(ctx, user.Username, hash); err != nil {
				return err
			}
		}
		created, err = u.users.Create(ctx, user)
		if err != nil && hash != "" {
			if derr := u.secrets.DeleteSecret(ctx, user.Username); derr != nil {
				u.logger.Error("[auth][usecase] failed to drop secret of unregistered user",
					zap.String("username", user.Username), zap.Error(derr))
			}
		}
		return err
	})
	if err != nil {
		u.logger.Warn("[auth][usecase] register user failed", zap.String("username", user.Username), zap.Error(err))
		return entities.User{}, err
	}
	u.logger.Info("[auth][usecase] user registered", zap.String("user_id", created.ID))
	return created, nil
}

func (u *AuthUseCase) ListUsers(ctx context.Context) ([]entities.User, error) {
	return u.users.List(ctx)
}
