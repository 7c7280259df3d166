package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jawirlabs/topup-order-service/internal/domain"
	authdto "github.com/jawirlabs/topup-order-service/internal/usecase/dto/auth"
)

type AuthUsecase interface {
	Register(input *authdto.RegisterInput) (*domain.User, error)
	Login(input *authdto.LoginInput) (*domain.User, error)
}

type DefaultAuthUsecase struct {
	UserRepo domain.UserRepository
}

func NewDefaultAuthUsecase(userRepo domain.UserRepository) *DefaultAuthUsecase {
	return &DefaultAuthUsecase{UserRepo: userRepo}
}

func (uc *DefaultAuthUsecase) Register(input *authdto.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         domain.RoleMember,
		CreatedAt:    time.Now(),
	}
	if err := uc.UserRepo.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *DefaultAuthUsecase) Login(input *authdto.LoginInput) (*domain.User, error) {
	user, err := uc.UserRepo.GetUserByUsername(input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
