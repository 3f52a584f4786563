package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/internal/service/auth/models"
)

const adminSubject = "admin"

// Service выдает и проверяет токены сессии администратора
type Service struct {
	secret       []byte
	passwordHash []byte
	issuer       string
	ttl          time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса авторизации
// passwordHash - bcrypt-хеш пароля администратора
func NewService(secret, passwordHash, issuer string, ttl time.Duration, logger Logger) *Service {
	return &Service{
		secret:       []byte(secret),
		passwordHash: []byte(passwordHash),
		issuer:       issuer,
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Login проверяет пароль и выдает подписанный HS256 токен
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if req.Password == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)); err != nil {
		s.logger.Warn("AdminLogin: rejected: %v", err)
		return nil, ErrInvalidCredentials
	}

	// в JWT время хранится с точностью до секунды
	now := s.timeProvider.Now().Truncate(time.Second)
	session := domain.NewAdminSession(uuid.NewString(), now, s.ttl)

	claims := jwt.RegisteredClaims{
		ID:        session.ID,
		Subject:   adminSubject,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("%w: Login - sign token: %v", ErrInternal, err)
	}

	s.logger.Info("AdminLogin: session %s issued until %s", session.ID, session.ExpiresAt.Format(time.RFC3339))
	return &models.LoginResponse{Token: signed, ExpiresAt: session.ExpiresAt}, nil
}

// Authenticate проверяет токен и восстанавливает из него сессию
func (s *Service) Authenticate(token string) (domain.AdminSession, error) {
	if token == "" {
		return domain.AdminSession{}, fmt.Errorf("%w: missing token", ErrUnauthorized)
	}

	now := s.timeProvider.Now()
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithSubject(adminSubject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.AdminSession{}, fmt.Errorf("%w: session expired", ErrUnauthorized)
		}
		return domain.AdminSession{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if claims.IssuedAt == nil {
		return domain.AdminSession{}, fmt.Errorf("%w: token without iat", ErrUnauthorized)
	}

	session := domain.AdminSession{
		ID:        claims.ID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if !session.IsValid(now) {
		return domain.AdminSession{}, fmt.Errorf("%w: session is not active", ErrUnauthorized)
	}
	return session, nil
}
