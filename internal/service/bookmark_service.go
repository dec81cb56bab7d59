package service

import (
	"context"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"linkmark/internal/model"
	"linkmark/internal/pkg/timeutil"
	"linkmark/internal/repo"
)

type BookmarkService struct {
	bookmarks *repo.BookmarkRepo
}

func NewBookmarkService(bookmarks *repo.BookmarkRepo) *BookmarkService {
	return &BookmarkService{bookmarks: bookmarks}
}

type BookmarkCreateInput struct {
	Title       string
	Description string
	Link        string
}

// BookmarkPatch carries the fields to change; nil means leave untouched.
type BookmarkPatch struct {
	Title       *string
	Description *string
	Link        *string
}

func (p BookmarkPatch) empty() bool {
	return p.Title == nil && p.Description == nil && p.Link == nil
}

func (s *BookmarkService) List(ctx context.Context, userID string) ([]model.Bookmark, error) {
	return s.bookmarks.List(ctx, userID)
}

func (s *BookmarkService) Create(ctx context.Context, userID string, input BookmarkCreateInput) (*model.Bookmark, error) {
	now := timeutil.NowUnix()
	bm := &model.Bookmark{
		ID:          newID(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Link:        input.Link,
		Ctime:       now,
		Mtime:       now,
	}
	if err := s.bookmarks.Create(ctx, bm); err != nil {
		return nil, err
	}
	logutil.GetLogger(ctx).Info("bookmark created",
		zap.String("user_id", userID),
		zap.String("bookmark_id", bm.ID),
	)
	return bm, nil
}

func (s *BookmarkService) Get(ctx context.Context, userID, bookmarkID string) (*model.Bookmark, error) {
	return s.bookmarks.GetByID(ctx, userID, bookmarkID)
}

func (s *BookmarkService) Update(ctx context.Context, userID, bookmarkID string, patch BookmarkPatch) (*model.Bookmark, error) {
	bm, err := s.bookmarks.GetByID(ctx, userID, bookmarkID)
	if err != nil {
		return nil, err
	}
	if patch.empty() {
		return bm, nil
	}
	update := map[string]interface{}{}
	if patch.Title != nil {
		bm.Title = *patch.Title
		update["title"] = bm.Title
	}
	if patch.Description != nil {
		bm.Description = *patch.Description
		update["description"] = bm.Description
	}
	if patch.Link != nil {
		bm.Link = *patch.Link
		update["link"] = bm.Link
	}
	bm.Mtime = timeutil.NowUnix()
	update["mtime"] = bm.Mtime
	if err := s.bookmarks.Update(ctx, userID, bookmarkID, update); err != nil {
		return nil, err
	}
	return bm, nil
}

func (s *BookmarkService) Delete(ctx context.Context, userID, bookmarkID string) error {
	if err := s.bookmarks.Delete(ctx, userID, bookmarkID); err != nil {
		return err
	}
	logutil.GetLogger(ctx).Info("bookmark deleted",
		zap.String("user_id", userID),
		zap.String("bookmark_id", bookmarkID),
	)
	return nil
}
