package service

import (
	"context"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"linkmark/internal/model"
	appErr "linkmark/internal/pkg/errors"
	"linkmark/internal/pkg/jwt"
	"linkmark/internal/pkg/password"
	"linkmark/internal/pkg/timeutil"
	"linkmark/internal/repo"
)

type AuthService struct {
	users     *repo.UserRepo
	jwtSecret []byte
	jwtTTL    time.Duration
}

func NewAuthService(users *repo.UserRepo, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{users: users, jwtSecret: secret, jwtTTL: ttl}
}

// Signup creates the account and returns it. A taken email surfaces as
// ErrConflict straight from the unique constraint, so two racing signups
// resolve in the database, not here.
func (s *AuthService) Signup(ctx context.Context, email, plainPassword string) (*model.User, error) {
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, err
	}
	now := timeutil.NowUnix()
	user := &model.User{
		ID:           newID(),
		Email:        email,
		PasswordHash: hash,
		Ctime:        now,
		Mtime:        now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	logutil.GetLogger(ctx).Info("user signed up", zap.String("user_id", user.ID))
	return user, nil
}

// Signin collapses "no such user" and "wrong password" into a single
// ErrUnauthorized so the response never tells which one it was.
func (s *AuthService) Signin(ctx context.Context, email, plainPassword string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", appErr.ErrUnauthorized
	}
	if err := password.Compare(user.PasswordHash, plainPassword); err != nil {
		return "", appErr.ErrUnauthorized
	}
	token, err := jwt.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", err
	}
	return token, nil
}
