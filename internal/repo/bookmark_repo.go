package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"linkmark/internal/model"
	"linkmark/internal/pkg/dbutil"
	appErr "linkmark/internal/pkg/errors"
)

var bookmarkColumns = []string{"id", "user_id", "title", "description", "link", "ctime", "mtime"}

type BookmarkRepo struct {
	db *sql.DB
}

func NewBookmarkRepo(db *sql.DB) *BookmarkRepo {
	return &BookmarkRepo{db: db}
}

func (r *BookmarkRepo) Create(ctx context.Context, bm *model.Bookmark) error {
	data := map[string]interface{}{
		"id":          bm.ID,
		"user_id":     bm.UserID,
		"title":       bm.Title,
		"description": bm.Description,
		"link":        bm.Link,
		"ctime":       bm.Ctime,
		"mtime":       bm.Mtime,
	}
	sqlStr, args, err := builder.BuildInsert("bookmarks", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		if dbutil.IsConflict(err) {
			return appErr.ErrConflict
		}
		return err
	}
	return nil
}

// GetByID is owner-scoped: a bookmark belonging to another user is
// indistinguishable from a missing one.
func (r *BookmarkRepo) GetByID(ctx context.Context, userID, bookmarkID string) (*model.Bookmark, error) {
	where := map[string]interface{}{
		"id":      bookmarkID,
		"user_id": userID,
	}
	sqlStr, args, err := builder.BuildSelect("bookmarks", where, bookmarkColumns)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		return nil, appErr.ErrNotFound
	}
	var bm model.Bookmark
	if err := rows.Scan(&bm.ID, &bm.UserID, &bm.Title, &bm.Description, &bm.Link, &bm.Ctime, &bm.Mtime); err != nil {
		return nil, err
	}
	return &bm, nil
}

func (r *BookmarkRepo) List(ctx context.Context, userID string) ([]model.Bookmark, error) {
	where := map[string]interface{}{
		"user_id":  userID,
		"_orderby": "ctime desc, id desc",
	}
	sqlStr, args, err := builder.BuildSelect("bookmarks", where, bookmarkColumns)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	bms := make([]model.Bookmark, 0)
	for rows.Next() {
		var bm model.Bookmark
		if err := rows.Scan(&bm.ID, &bm.UserID, &bm.Title, &bm.Description, &bm.Link, &bm.Ctime, &bm.Mtime); err != nil {
			return nil, err
		}
		bms = append(bms, bm)
	}
	return bms, rows.Err()
}

func (r *BookmarkRepo) Update(ctx context.Context, userID, bookmarkID string, update map[string]interface{}) error {
	where := map[string]interface{}{
		"id":      bookmarkID,
		"user_id": userID,
	}
	sqlStr, args, err := builder.BuildUpdate("bookmarks", where, update)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}

func (r *BookmarkRepo) Delete(ctx context.Context, userID, bookmarkID string) error {
	where := map[string]interface{}{
		"id":      bookmarkID,
		"user_id": userID,
	}
	sqlStr, args, err := builder.BuildDelete("bookmarks", where)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}
