package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"daynote/internal/dashboard/domain/entities"
	"daynote/internal/dashboard/ports/repositories"
	svc "daynote/internal/dashboard/ports/services"
	"daynote/pkg/logger"
)

const (
	methodRegister = "Register"
	methodLogin    = "Login"

	msgStartRegistration = "starting user registration"
	msgUserRegistered    = "user registered successfully"
	msgLoginUnknownUser  = "login attempt with unknown username"
	msgLoginBadPassword  = "invalid password provided"
	msgUserLoggedIn      = "user logged in successfully"

	errMsgHashPassword   = "failed to hash password"
	errMsgCreateUser     = "failed to create user"
	errMsgFindUser       = "failed to find user"
	errMsgVerifyPassword = "failed to verify password"
	errMsgGenerateToken  = "failed to generate access token"
	errMsgBadCredentials = "invalid credentials"
)

// AuthUseCase регистрация и выпуск access токенов.
type AuthUseCase struct {
	users       repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
	metrics     svc.Metrics
}

// NewAuthUseCase создает AuthUseCase.
func NewAuthUseCase(
	users repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
	metrics svc.Metrics,
) *AuthUseCase {
	return &AuthUseCase{users: users, passwordSvc: passwordSvc, tokenSvc: tokenSvc, metrics: metricsOrNop(metrics)}
}

// Register создает пользователя и возвращает его ID.
func (a *AuthUseCase) Register(ctx context.Context, in entities.RegisterInput) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("username", in.Username))
	log.Debug(ctx, msgStartRegistration)

	if err := in.Validate(); err != nil {
		return "", validationError(err)
	}

	hash, err := a.passwordSvc.Hash(ctx, in.Password)
	if err != nil {
		log.Error(ctx, errMsgHashPassword, zap.Error(err))
		return "", fmt.Errorf("%s: %w: %w", errMsgHashPassword, ErrPersistence, err)
	}

	user := &entities.User{Username: in.Username, PasswordHash: hash, Name: in.Username}
	err = a.users.Create(ctx, user)
	a.metrics.ObserveWrite(entityUser, opCreate, err)
	if err != nil {
		return "", storeError(errMsgCreateUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", user.ID))
	return user.ID, nil
}

// Login проверяет пароль и выпускает access токен.
func (a *AuthUseCase) Login(ctx context.Context, username, password string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("username", username))

	if username == "" || password == "" {
		return "", fmt.Errorf("%s: %w", errMsgBadCredentials, ErrUnauthorized)
	}

	user, err := a.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			log.Debug(ctx, msgLoginUnknownUser)
			return "", fmt.Errorf("%s: %w", errMsgBadCredentials, ErrUnauthorized)
		}
		return "", storeError(errMsgFindUser, err)
	}

	ok, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, errMsgVerifyPassword, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errMsgVerifyPassword, ErrUnauthorized)
	}
	if !ok {
		log.Debug(ctx, msgLoginBadPassword)
		return "", fmt.Errorf("%s: %w", errMsgBadCredentials, ErrUnauthorized)
	}

	token, err := a.tokenSvc.GenerateAccessToken(ctx, user.ID, user.Username)
	if err != nil {
		log.Error(ctx, errMsgGenerateToken, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errMsgGenerateToken, err)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID))
	return token, nil
}
