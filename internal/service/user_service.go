package service

import (
	"context"

	"linkmark/internal/model"
	"linkmark/internal/pkg/timeutil"
	"linkmark/internal/repo"
)

type UserService struct {
	users *repo.UserRepo
}

func NewUserService(users *repo.UserRepo) *UserService {
	return &UserService{users: users}
}

type UserPatch struct {
	FirstName *string
	LastName  *string
}

func (s *UserService) Get(ctx context.Context, userID string) (*model.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *UserService) Update(ctx context.Context, userID string, patch UserPatch) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if patch.FirstName == nil && patch.LastName == nil {
		return user, nil
	}
	update := map[string]interface{}{}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
		update["first_name"] = user.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
		update["last_name"] = user.LastName
	}
	user.Mtime = timeutil.NowUnix()
	update["mtime"] = user.Mtime
	if err := s.users.Update(ctx, userID, update); err != nil {
		return nil, err
	}
	return user, nil
}
