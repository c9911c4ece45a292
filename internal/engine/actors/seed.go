package actors

import (
	"time"

	"github.com/AkshatKumar38/Study-Hub/internal/models"
)

// SubjectDirectory is the fixed set of subjects the composer offers.
var SubjectDirectory = []string{
	"Computer Science",
	"Mathematics",
	"Physics",
	"Chemistry",
	"Biology",
	"Engineering",
	"Business",
	"Psychology",
}

// SeedPosts returns the demonstration feed, newest first. Timestamps are
// relative to now so the feed always looks recent. The seed is rebuilt on
// every start; the feed has no durability.
func SeedPosts(now time.Time) []*models.Post {
	return []*models.Post{
		{
			ID:     "1",
			UserID: "1",
			Author: models.AuthorSnapshot{
				DisplayName: "Sarah Chen",
				Username:    "sarahc",
				University:  "MIT",
			},
			Type:    models.PostQuestion,
			Content: "Can someone help me understand the difference between Big O and Big Theta notation? I keep getting confused during algorithm analysis.",
			Subject: "Computer Science",
			Images:  []string{},
			Reactions: map[models.ReactionKind]int{
				models.ReactionLike:       12,
				models.ReactionHelpful:    8,
				models.ReactionMotivating: 3,
				models.ReactionSolved:     1,
			},
			UserReactions: []models.ReactionKind{},
			Comments: []*models.Comment{
				{
					ID:        "1",
					Author:    "Alex Kim",
					Content:   "Big O is upper bound, Big Theta is tight bound. Think of it as worst case vs exact case.",
					CreatedAt: now.Add(-2 * time.Hour),
				},
			},
			CreatedAt:  now.Add(-4 * time.Hour),
			IsResolved: false,
		},
		{
			ID:     "2",
			UserID: "2",
			Author: models.AuthorSnapshot{
				DisplayName: "Mike Rodriguez",
				Username:    "miker",
				University:  "Stanford",
			},
			Type:    models.PostResource,
			Content: "Just finished creating comprehensive calculus notes for derivatives and integrals. Sharing with everyone who might find them helpful! 📚",
			Subject: "Mathematics",
			Images:  []string{"/placeholder.svg?height=300&width=400"},
			Reactions: map[models.ReactionKind]int{
				models.ReactionLike:       24,
				models.ReactionHelpful:    18,
				models.ReactionMotivating: 6,
				models.ReactionSolved:     0,
			},
			UserReactions: []models.ReactionKind{models.ReactionLike},
			Comments:      []*models.Comment{},
			CreatedAt:     now.Add(-6 * time.Hour),
		},
		{
			ID:     "3",
			UserID: "3",
			Author: models.AuthorSnapshot{
				DisplayName: "Emma Thompson",
				Username:    "emmat",
				University:  "Harvard",
			},
			Type:    models.PostGeneral,
			Content: "Late night study session at the library! Working on quantum mechanics problem sets. The dedication is real 💪 #StudyLife",
			Subject: "Physics",
			Images:  []string{"/placeholder.svg?height=300&width=400", "/placeholder.svg?height=300&width=400"},
			Reactions: map[models.ReactionKind]int{
				models.ReactionLike:       15,
				models.ReactionHelpful:    2,
				models.ReactionMotivating: 12,
				models.ReactionSolved:     0,
			},
			UserReactions: []models.ReactionKind{models.ReactionMotivating},
			Comments: []*models.Comment{
				{
					ID:        "2",
					Author:    "David Park",
					Content:   "Keep it up! Quantum mechanics is tough but so rewarding.",
					CreatedAt: now.Add(-1 * time.Hour),
				},
			},
			CreatedAt: now.Add(-8 * time.Hour),
		},
	}
}
