package domain

import "time"

// Article is the cached copy of one news article as served by the backend.
// The comment list travels inside the article payload on fetch; the comments
// partition additionally keeps per-article comment lists that can be
// refreshed independently.
type Article struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	PublishTime string    `json:"publishTime"`
	ReadTime    string    `json:"readTime"`
	Views       int64     `json:"views"`
	Likes       int64     `json:"likes"`
	Image       string    `json:"image"`
	Featured    bool      `json:"featured"`
	Comments    []Comment `json:"comments"`
	CachedAt    time.Time `json:"-"`
}

type Comment struct {
	ID        string    `json:"_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// LikedMarker records that this client liked an article. It is local UI
// state only; the authoritative like count lives on the article.
type LikedMarker struct {
	ArticleID string
	LikedAt   time.Time
}
