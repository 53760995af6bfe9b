package models

// Topic is a discussion thread as rendered by the API: the row itself plus
// denormalized author fields and the reply count.
type Topic struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Content         string `json:"content"`
	UserID          int64  `json:"user_id"`
	AuthorName      string `json:"author_name"`
	AuthorAvatarURL string `json:"author_avatar_url"`
	// ISO-8601 UTC, e.g. 2025-12-22T14:57:10Z; formatted by the SQL layer.
	CreatedAt  string `json:"created_at"`
	ReplyCount int64  `json:"reply_count"`
}
