package models

// ReactionKind is one of the four categorical tags a viewer may toggle on a post.
type ReactionKind string

const (
	ReactionLike       ReactionKind = "like"
	ReactionHelpful    ReactionKind = "helpful"
	ReactionMotivating ReactionKind = "motivating"
	ReactionSolved     ReactionKind = "solved"
)

// ReactionKinds lists every valid kind in display order.
func ReactionKinds() []ReactionKind {
	return []ReactionKind{ReactionLike, ReactionHelpful, ReactionMotivating, ReactionSolved}
}

// IsValid reports whether k is one of the four fixed kinds.
func (k ReactionKind) IsValid() bool {
	switch k {
	case ReactionLike, ReactionHelpful, ReactionMotivating, ReactionSolved:
		return true
	}
	return false
}
