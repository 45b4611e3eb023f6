package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	svc "daynote/internal/dashboard/ports/services"
	"daynote/pkg/logger"
)

const (
	msgSigningToken   = "error signing token"
	msgParsingToken   = "error parsing token"
	msgTokenExpired   = "token has expired"
	msgTokenValidated = "token validated"
	errCtxGenerateJWT = "generating token"
	errCtxValidateJWT = "validating token"
	errEmptySecret    = "empty secret key"
	errEmptyUserClaim = "empty user_id"
	methodGenerateJWT = "GenerateAccessToken"
	methodValidateJWT = "ValidateAccessToken"
)

// ErrInvalidAlgorithm токен подписан не HMAC.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// Claims полезная нагрузка access токена.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// ServiceJWT реализует TokenService на HS256.
type ServiceJWT struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWT создает сервис токенов.
func NewJWT(secretKey string, accessTokenTTL time.Duration) *ServiceJWT {
	return &ServiceJWT{secret: []byte(secretKey), ttl: accessTokenTTL, now: time.Now}
}

var _ svc.TokenService = (*ServiceJWT)(nil)

// GenerateAccessToken подписывает токен с user_id и username.
func (s *ServiceJWT) GenerateAccessToken(ctx context.Context, userID, username string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGenerateJWT), zap.String("userID", userID))

	if len(s.secret) == 0 {
		log.Error(ctx, errEmptySecret)
		return "", fmt.Errorf("%s: %s", errCtxGenerateJWT, errEmptySecret)
	}

	now := s.now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		log.Error(ctx, msgSigningToken, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxGenerateJWT, err)
	}
	return signed, nil
}

// ValidateAccessToken проверяет подпись и срок, возвращает ID пользователя.
func (s *ServiceJWT) ValidateAccessToken(ctx context.Context, token string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodValidateJWT))

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return "", fmt.Errorf("%s: %w", errCtxValidateJWT, svc.ErrExpiredJWTToken)
		}
		log.Debug(ctx, msgParsingToken, zap.Error(err))
		return "", fmt.Errorf("%s: %w: %w", errCtxValidateJWT, svc.ErrInvalidJWTToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return "", fmt.Errorf("%s: %w", errCtxValidateJWT, svc.ErrInvalidJWTToken)
	}
	if claims.UserID == "" {
		return "", fmt.Errorf("%s: %w: %s", errCtxValidateJWT, svc.ErrInvalidJWTToken, errEmptyUserClaim)
	}

	log.Debug(ctx, msgTokenValidated, zap.String("userID", claims.UserID))
	return claims.UserID, nil
}
