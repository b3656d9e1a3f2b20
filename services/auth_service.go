// Package services, business logic katmanını barındırır.
//
// Handler (HTTP) ile Repository (veri) arasında oturan katmandır.
// Tüm iş kuralları burada yaşar:
//   - Şifre hash'leme ve JWT token üretimi
//   - Admin yetki kontrolü ve iki aşamalı silme
//   - Değerlendirme/yorum gönderimi
//
// Service http.Request/Response bilmez, sadece domain modelleri alır/verir.
// Service doğrudan SQL çalıştırmaz, Repository interface'lerini kullanır.
package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg"
	"github.com/lezzetkesif/lezzetkesif/pkg/email"
	"github.com/lezzetkesif/lezzetkesif/repository"
)

// bcryptCost, şifre hash maliyeti.
const bcryptCost = 12

// tokenIssuer, access token'ların "iss" claim'i.
const tokenIssuer = "lezzetkesif"

// HashPassword, şifreyi bcrypt ile hash'ler. Seed kullanıcıları da bununla hash'lenir.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// AuthService, kimlik doğrulama işlemleri.
type AuthService interface {
	SignUp(ctx context.Context, req *models.SignUpRequest) (*models.AuthResult, error)
	SignIn(ctx context.Context, req *models.SignInRequest) (*models.AuthResult, error)
	// SignOut, refresh token'ın oturumunu siler. Bilinmeyen token hata değildir.
	SignOut(ctx context.Context, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (*models.AuthResult, error)
	ValidateAccessToken(tokenString string) (*models.TokenClaims, error)
	// UserFromToken, access token'ı doğrular ve kullanıcıyı getirir.
	UserFromToken(ctx context.Context, tokenString string) (*models.User, error)
}

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	mailer      email.Sender
	log         *zap.Logger
	jwtSecret   []byte
	accessExp   time.Duration
	refreshExp  time.Duration
}

// NewAuthService, constructor. mailer nil ise hoş geldin e-postası gönderilmez.
func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	mailer email.Sender,
	logger *zap.Logger,
	jwtSecret string,
	accessExpMinutes int,
	refreshExpDays int,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		mailer:      mailer,
		log:         logger.Named("auth"),
		jwtSecret:   []byte(jwtSecret),
		accessExp:   time.Duration(accessExpMinutes) * time.Minute,
		refreshExp:  time.Duration(refreshExpDays) * 24 * time.Hour,
	}
}

func (s *authService) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	var displayName *string
	if req.FullName != "" {
		name := req.FullName
		displayName = &name
	}

	user := &models.User{
		Email:        req.Email,
		DisplayName:  displayName,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err // ErrAlreadyExists olabilir
	}

	result, err := s.issue(ctx, user)
	if err != nil {
		return nil, err
	}

	s.sendWelcome(user)
	return result, nil
}

func (s *authService) SignIn(ctx context.Context, req *models.SignInRequest) (*models.AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", pkg.ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", pkg.ErrUnauthorized)
	}

	return s.issue(ctx, user)
}

func (s *authService) SignOut(ctx context.Context, refreshToken string) error {
	session, err := s.sessionRepo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil
		}
		return err
	}
	return s.sessionRepo.DeleteByID(ctx, session.ID)
}

// Refresh, refresh token'ı tek kullanımlık olarak tüketir ve yeni bir çift üretir.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*models.AuthResult, error) {
	session, err := s.sessionRepo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid refresh token", pkg.ErrUnauthorized)
		}
		return nil, err
	}

	if err := s.sessionRepo.DeleteByID(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("failed to delete old session: %w", err)
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, fmt.Errorf("%w: refresh token expired", pkg.ErrUnauthorized)
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: user no longer exists", pkg.ErrUnauthorized)
		}
		return nil, err
	}

	return s.issue(ctx, user)
}

func (s *authService) ValidateAccessToken(tokenString string) (*models.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.TokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token", pkg.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*models.TokenClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, fmt.Errorf("%w: invalid token claims", pkg.ErrUnauthorized)
	}
	return claims, nil
}

func (s *authService) UserFromToken(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := s.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, err
	}

	// Token geçerli ama kullanıcı silinmiş olabilir.
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", pkg.ErrUnauthorized)
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// ─── Private Helpers ───

// issue, access token + refresh session üretir.
func (s *authService) issue(ctx context.Context, user *models.User) (*models.AuthResult, error) {
	now := time.Now()
	claims := &models.TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessExp)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	accessString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshBytes := make([]byte, 32)
	if _, err := rand.Read(refreshBytes); err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	refreshString := hex.EncodeToString(refreshBytes)

	session := &models.Session{
		UserID:       user.ID,
		RefreshToken: refreshString,
		ExpiresAt:    now.Add(s.refreshExp),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	safe := *user
	safe.PasswordHash = ""

	return &models.AuthResult{
		User: &safe,
		Session: &models.AuthTokens{
			AccessToken:  accessString,
			RefreshToken: refreshString,
			ExpiresIn:    int(s.accessExp.Seconds()),
		},
	}, nil
}

// sendWelcome, e-postayı arka planda gönderir; kayıt isteği beklemez.
func (s *authService) sendWelcome(user *models.User) {
	if s.mailer == nil {
		return
	}
	to, name := user.Email, user.Name()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.mailer.SendWelcome(ctx, to, name); err != nil {
			s.log.Warn("failed to send welcome email", zap.String("email", to), zap.Error(err))
		}
	}()
}
