package models

import "time"

// Comment is append-only; the author field is a plain display-name snapshot,
// not a reference to a live User.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
