package models

type Reply struct {
	ID              int64  `json:"id"`
	TopicID         int64  `json:"topic_id"`
	Content         string `json:"content"`
	UserID          int64  `json:"user_id"`
	AuthorName      string `json:"author_name"`
	AuthorAvatarURL string `json:"author_avatar_url"`
	CreatedAt       string `json:"created_at"`
}
