package usecase

import (
	"context"
	"errors"

	"parkease/internal/domain/user"
	"parkease/internal/infra"
	"parkease/internal/pkg/clock"
	"parkease/internal/pkg/jwt"
	"parkease/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidUserInput   = errors.New("invalid user input")
	ErrTokenValidation    = errors.New("token validation failed")
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User, passwordHash string) error
	FindByEmail(ctx context.Context, email string) (*user.User, string, error)
}

type AuthUseCase interface {
	SignUp(ctx context.Context, email, pass, name string) (*user.User, error)
	Login(ctx context.Context, email, pass string) (string, *user.User, error)
	ValidateToken(tokenString string) (uuid.UUID, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
	clk        clock.Clock
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service, clk clock.Clock) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		clk:        clk,
	}
}

func (a *authUseCaseImpl) SignUp(ctx context.Context, email, pass, name string) (*user.User, error) {
	u, err := user.New(email, name, a.clk.Now())
	if err != nil {
		return nil, ErrInvalidUserInput
	}

	hash, err := password.Hash(pass)
	if err != nil {
		return nil, ErrInvalidUserInput
	}

	if err := a.userRepo.Create(ctx, u, hash); err != nil {
		if infra.IsKind(err, infra.KindExists) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, pass string) (string, *user.User, error) {
	u, hash, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := password.Compare(hash, pass); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(u.ID, u.Email)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, ErrTokenValidation
	}
	return claims.UserID, nil
}
