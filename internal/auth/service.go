package auth

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"biletsfera/internal/shared/config"
	"biletsfera/internal/shared/utils/apperrors"
	"biletsfera/internal/users"
	"biletsfera/pkg/logger"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	ChangePassword(ctx context.Context, userID string, req *ChangePasswordRequest) error
	UpdatePreferences(ctx context.Context, userID string, req *UpdatePreferencesRequest) (*UserResponse, error)
	GetUser(ctx context.Context, userID string) (*UserResponse, error)
	RemoveAccount(ctx context.Context, userID string) error
	ValidateToken(tokenString string) (*JWTClaims, error)
}

type service struct {
	repo   Repository
	config *config.Config
	log    *logger.Logger
}

func NewService(repo Repository, cfg *config.Config, log *logger.Logger) Service {
	return &service{
		repo:   repo,
		config: cfg,
		log:    log,
	}
}

// validatePasswordStrength enforces the signup password policy: at
// least 8 characters with an upper-case letter, a lower-case letter
// and a digit.
func validatePasswordStrength(password string) error {
	if len(password) < 8 {
		return apperrors.BadRequest("password must be at least 8 characters long")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit {
		return apperrors.BadRequest("password must contain upper-case, lower-case and numeric characters")
	}

	return nil
}

func (s *service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if err := validatePasswordStrength(req.Password); err != nil {
		return nil, err
	}

	emailTaken, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, apperrors.Conflict("email is already registered")
	}

	nameTaken, err := s.repo.NameExists(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if nameTaken {
		return nil, apperrors.Conflict("account name is already taken")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := strings.ToLower(req.Role)
	if !users.IsValidRole(role) {
		role = string(users.RoleUser)
	}

	user := &users.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     users.Role(role),
		Active:   true,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	tokenPair, err := s.generateTokenPair(user.ID.String(), user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	s.log.LogAuthSuccess(ctx, user.ID.String(), "register")

	return &AuthResponse{
		User:         toUserResponse(user),
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}

func (s *service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	user, err := s.repo.GetUserByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.log.LogAuthFailure(ctx, "unknown account", req.Login)
			return nil, apperrors.Unauthorized("invalid credentials")
		}
		return nil, err
	}

	if !user.Active {
		s.log.LogAuthFailure(ctx, "inactive account", req.Login)
		return nil, apperrors.Unauthorized("account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.log.LogAuthFailure(ctx, "wrong password", req.Login)
		return nil, apperrors.Unauthorized("invalid credentials")
	}

	tokenPair, err := s.generateTokenPair(user.ID.String(), user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	s.log.LogAuthSuccess(ctx, user.ID.String(), "login")

	return &AuthResponse{
		User:         toUserResponse(user),
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.validateToken(refreshToken)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid refresh token")
	}

	if claims.Type != "refresh" {
		return nil, apperrors.Unauthorized("invalid refresh token")
	}

	user, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.Unauthorized("account no longer exists")
	}

	return s.generateTokenPair(user.ID.String(), user.Email, string(user.Role))
}

func (s *service) ChangePassword(ctx context.Context, userID string, req *ChangePasswordRequest) error {
	if err := validatePasswordStrength(req.NewPassword); err != nil {
		return err
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return apperrors.NotFound("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return apperrors.Unauthorized("current password is incorrect")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.UpdateUserPassword(ctx, userID, string(hashedPassword))
}

func (s *service) UpdatePreferences(ctx context.Context, userID string, req *UpdatePreferencesRequest) (*UserResponse, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperrors.NotFound("user not found")
	}

	prefs := users.Preferences{
		SelectedCategories:    req.SelectedCategories,
		SelectedSubCategories: req.SelectedSubCategories,
		OneTimeMonitChecked:   user.Preferences.OneTimeMonitChecked,
	}
	if req.OneTimeMonitChecked != nil {
		prefs.OneTimeMonitChecked = *req.OneTimeMonitChecked
	}

	if err := s.repo.UpdatePreferences(ctx, userID, prefs); err != nil {
		return nil, err
	}

	user.Preferences = prefs
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *service) GetUser(ctx context.Context, userID string) (*UserResponse, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *service) RemoveAccount(ctx context.Context, userID string) error {
	err := s.repo.DeleteUser(ctx, userID)
	if errors.Is(err, ErrUserNotFound) {
		return apperrors.NotFound("user not found")
	}
	return err
}

func (s *service) ValidateToken(tokenString string) (*JWTClaims, error) {
	return s.validateToken(tokenString)
}

func (s *service) generateTokenPair(userID, email, role string) (*TokenPair, error) {
	now := time.Now()

	accessClaims := JWTClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		Type:   "access",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.JWT.JWTExpiresIn)),
			Issuer:    "biletsfera",
			Subject:   userID,
		},
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(s.config.JWT.Secret))
	if err != nil {
		return nil, err
	}

	refreshClaims := JWTClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		Type:   "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.JWT.RefreshExpiresIn)),
			Issuer:    "biletsfera",
			Subject:   userID,
		},
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(s.config.JWT.Secret))
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessTokenString,
		RefreshToken: refreshTokenString,
		ExpiresIn:    int64(s.config.JWT.JWTExpiresIn.Seconds()),
	}, nil
}

func (s *service) validateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.config.JWT.Secret), nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
