package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/rand"

	"beresinBack/internal/models"
	"beresinBack/utils"
)

const (
	accessTokenTTL  = 20 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
	resetCodeTTL    = 10 * time.Minute
)

type UserService struct {
	UserRepo UserStore
	Tokens   *utils.Manager
	Redis    *redis.Client
}

func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var msgs []string
	if strings.TrimSpace(req.Username) == "" {
		msgs = append(msgs, "Nama pengguna wajib diisi.")
	}
	if strings.TrimSpace(req.Email) == "" {
		msgs = append(msgs, "Email wajib diisi.")
	}
	if strings.TrimSpace(req.Phone) == "" {
		msgs = append(msgs, "Nomor telepon wajib diisi.")
	}
	if len(req.Password) < 8 {
		msgs = append(msgs, "Kata sandi minimal 8 karakter.")
	}
	if len(msgs) > 0 {
		return models.User{}, &models.ValidationError{Messages: msgs}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.UserRepo.Create(ctx, models.User{
		Username: strings.TrimSpace(req.Username),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:    strings.TrimSpace(req.Phone),
		Password: string(hashed),
		Role:     models.RoleUser,
	})
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

// Login verifies the credentials and issues an access token plus an opaque
// refresh token persisted as a session row. Unknown email and wrong password
// both map to ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Tokens, error) {
	user, err := s.UserRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return models.User{}, models.Tokens{}, models.ErrInvalidCredentials
		}
		return models.User{}, models.Tokens{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.User{}, models.Tokens{}, models.ErrInvalidCredentials
	}

	accessToken, err := s.Tokens.NewAccessToken(user.ID, user.Role, accessTokenTTL)
	if err != nil {
		return models.User{}, models.Tokens{}, err
	}
	refreshToken, err := s.Tokens.NewRefreshToken()
	if err != nil {
		return models.User{}, models.Tokens{}, err
	}

	err = s.UserRepo.CreateSession(ctx, models.Session{
		UserID:       user.ID,
		Role:         user.Role,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(refreshTokenTTL),
	})
	if err != nil {
		return models.User{}, models.Tokens{}, err
	}

	user.Password = ""
	return user, models.Tokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID int) (models.User, error) {
	user, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

// RequestPasswordReset stores a short-lived 6-digit code in Redis keyed by
// email. The code is returned so the caller can hand it to the SMS/email
// dispatcher.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := s.UserRepo.FindByEmail(ctx, email); err != nil {
		return "", err
	}

	code := fmt.Sprintf("%06d", rand.Intn(1000000))
	if err := s.Redis.Set(ctx, resetCodeKey(email), code, resetCodeTTL).Err(); err != nil {
		return "", err
	}
	return code, nil
}

func (s *UserService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	stored, err := s.Redis.Get(ctx, resetCodeKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.ErrResetCodeMismatch
		}
		return err
	}
	if stored != req.Code {
		return models.ErrResetCodeMismatch
	}

	if len(req.NewPassword) < 8 {
		return &models.ValidationError{Messages: []string{"Kata sandi minimal 8 karakter."}}
	}

	user, err := s.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.UserRepo.UpdatePassword(ctx, user.ID, string(hashed)); err != nil {
		return err
	}

	return s.Redis.Del(ctx, resetCodeKey(email)).Err()
}

func resetCodeKey(email string) string {
	return "reset_code:" + email
}
