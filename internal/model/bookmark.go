package model

type Bookmark struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link"`
	Ctime       int64  `json:"ctime"`
	Mtime       int64  `json:"mtime"`
}
