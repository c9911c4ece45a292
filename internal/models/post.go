package models

import "time"

// PostType classifies a feed post.
type PostType string

const (
	PostGeneral  PostType = "general"
	PostQuestion PostType = "question"
	PostResource PostType = "resource"
)

// IsValid reports whether t is a known post type.
func (t PostType) IsValid() bool {
	switch t {
	case PostGeneral, PostQuestion, PostResource:
		return true
	}
	return false
}

// AuthorSnapshot is the author's display info captured at post-creation time.
// It is deliberately denormalized: later profile edits do not flow back into
// existing posts.
type AuthorSnapshot struct {
	DisplayName  string `json:"displayName"`
	Username     string `json:"username"`
	University   string `json:"university"`
	ProfileImage string `json:"profileImage,omitempty"`
}

type Post struct {
	ID            string               `json:"id"`
	UserID        string               `json:"userId"`
	Author        AuthorSnapshot       `json:"author"`
	Type          PostType             `json:"type"`
	Content       string               `json:"content"`
	Subject       string               `json:"subject"`
	Images        []string             `json:"images"`
	Video         string               `json:"video,omitempty"`
	Reactions     map[ReactionKind]int `json:"reactions"`
	UserReactions []ReactionKind       `json:"userReactions"`
	Comments      []*Comment           `json:"comments"`
	CreatedAt     time.Time            `json:"createdAt"`
	IsResolved    bool                 `json:"isResolved"`
}

// HasReacted reports whether the viewer's reaction set contains kind.
func (p *Post) HasReacted(kind ReactionKind) bool {
	for _, k := range p.UserReactions {
		if k == kind {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the post, including comments, so actor state
// never leaks to callers.
func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Images = append([]string(nil), p.Images...)
	cp.UserReactions = append([]ReactionKind(nil), p.UserReactions...)
	cp.Reactions = make(map[ReactionKind]int, len(p.Reactions))
	for k, v := range p.Reactions {
		cp.Reactions[k] = v
	}
	cp.Comments = make([]*Comment, len(p.Comments))
	for i, c := range p.Comments {
		cc := *c
		cp.Comments[i] = &cc
	}
	return &cp
}
