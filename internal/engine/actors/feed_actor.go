package actors

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/AkshatKumar38/Study-Hub/internal/models"
	"github.com/AkshatKumar38/Study-Hub/internal/utils"
	ws "github.com/AkshatKumar38/Study-Hub/internal/websocket"

	"github.com/asynkron/protoactor-go/actor"
)

// SubjectAll is the no-filter sentinel for the feed.
const SubjectAll = "all"

// PlaceholderAuthor is the comment author used when no one is logged in.
const PlaceholderAuthor = "You"

// maxPostImages bounds the composer's image attachments per post.
const maxPostImages = 5

// EventPublisher receives feed events after every mutation. A nil publisher
// is allowed; tests run without one.
type EventPublisher interface {
	BroadcastEvent(event ws.FeedEvent)
}

// Message types for feed operations
type (
	ListPostsMsg struct {
		Subject string
	}

	GetPostMsg struct {
		PostID string
	}

	ToggleReactionMsg struct {
		PostID string
		Kind   models.ReactionKind
	}

	AddCommentMsg struct {
		PostID  string
		Content string
		Author  string
	}

	CreatePostMsg struct {
		UserID  string
		Author  models.AuthorSnapshot
		Type    models.PostType
		Content string
		Subject string
		Images  []string
		Video   string
	}

	ResolveQuestionMsg struct {
		PostID string
	}

	SubjectCountsMsg struct{}

	GetCountsMsg struct{}
)

// SubjectCount pairs a subject label with its live post count.
type SubjectCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// FeedActor owns the ordered post collection. It is seeded with the fixed
// demonstration posts and holds no durable state: a restart reseeds.
type FeedActor struct {
	postsByID map[string]*models.Post
	order     []string // post IDs, newest first
	metrics   *utils.MetricsCollector
	publisher EventPublisher
}

func NewFeedActor(metrics *utils.MetricsCollector, publisher EventPublisher) actor.Actor {
	a := &FeedActor{
		postsByID: make(map[string]*models.Post),
		metrics:   metrics,
		publisher: publisher,
	}
	for _, post := range SeedPosts(time.Now()) {
		a.postsByID[post.ID] = post
		a.order = append(a.order, post.ID)
	}
	return a
}

func (a *FeedActor) Receive(context actor.Context) {
	switch msg := context.Message().(type) {
	case *actor.Started:
		log.Printf("FeedActor started with %d seed posts", len(a.order))

	case *actor.Stopped:
		log.Printf("FeedActor stopped")

	case *ListPostsMsg:
		a.handleListPosts(context, msg)

	case *GetPostMsg:
		a.handleGetPost(context, msg)

	case *ToggleReactionMsg:
		a.handleToggleReaction(context, msg)

	case *AddCommentMsg:
		a.handleAddComment(context, msg)

	case *CreatePostMsg:
		a.handleCreatePost(context, msg)

	case *ResolveQuestionMsg:
		a.handleResolveQuestion(context, msg)

	case *SubjectCountsMsg:
		a.handleSubjectCounts(context)

	case *GetCountsMsg:
		context.Respond(len(a.order))

	default:
		log.Printf("FeedActor: Unknown message type: %T", msg)
	}
}

// subjectMatches implements the filter contract: "all" (or empty) matches
// everything, anything else is a case-insensitive substring match against
// the post's subject label.
func subjectMatches(subject, filter string) bool {
	if filter == "" || filter == SubjectAll {
		return true
	}
	return strings.Contains(strings.ToLower(subject), strings.ToLower(filter))
}

func (a *FeedActor) handleListPosts(context actor.Context, msg *ListPostsMsg) {
	startTime := time.Now()

	// The stored order is newest-first by construction and is never
	// re-sorted here.
	posts := make([]*models.Post, 0, len(a.order))
	for _, id := range a.order {
		if post := a.postsByID[id]; post != nil && subjectMatches(post.Subject, msg.Subject) {
			posts = append(posts, post.Clone())
		}
	}

	a.metrics.AddOperationLatency("list_posts", time.Since(startTime))
	context.Respond(posts)
}

func (a *FeedActor) handleGetPost(context actor.Context, msg *GetPostMsg) {
	if post, exists := a.postsByID[msg.PostID]; exists {
		context.Respond(post.Clone())
	} else {
		context.Respond(utils.NewPostNotFoundError(msg.PostID))
	}
}

func (a *FeedActor) handleToggleReaction(context actor.Context, msg *ToggleReactionMsg) {
	startTime := time.Now()

	if !msg.Kind.IsValid() {
		context.Respond(utils.NewValidationError("unknown reaction kind: " + string(msg.Kind)))
		return
	}

	post, exists := a.postsByID[msg.PostID]
	if !exists {
		context.Respond(utils.NewPostNotFoundError(msg.PostID))
		return
	}

	// A viewer holds at most one active reaction per kind; toggling twice
	// restores both the count and the set membership.
	if post.HasReacted(msg.Kind) {
		kept := post.UserReactions[:0]
		for _, k := range post.UserReactions {
			if k != msg.Kind {
				kept = append(kept, k)
			}
		}
		post.UserReactions = kept
		post.Reactions[msg.Kind]--
	} else {
		post.UserReactions = append(post.UserReactions, msg.Kind)
		post.Reactions[msg.Kind]++
	}

	a.publish(ws.FeedEvent{Type: "reaction.toggled", PostID: post.ID, Payload: post.Reactions})

	a.metrics.AddOperationLatency("toggle_reaction", time.Since(startTime))
	context.Respond(post.Clone())
}

func (a *FeedActor) handleAddComment(context actor.Context, msg *AddCommentMsg) {
	startTime := time.Now()

	post, exists := a.postsByID[msg.PostID]
	if !exists {
		context.Respond(utils.NewPostNotFoundError(msg.PostID))
		return
	}

	// Whitespace-only comments are ignored without touching state.
	if strings.TrimSpace(msg.Content) == "" {
		context.Respond(post.Clone())
		return
	}

	author := msg.Author
	if author == "" {
		author = PlaceholderAuthor
	}

	comment := &models.Comment{
		ID:        newFeedID(),
		Author:    author,
		Content:   msg.Content,
		CreatedAt: time.Now(),
	}
	post.Comments = append(post.Comments, comment)

	a.publish(ws.FeedEvent{Type: "comment.added", PostID: post.ID, Payload: comment})

	a.metrics.AddOperationLatency("add_comment", time.Since(startTime))
	context.Respond(post.Clone())
}

func (a *FeedActor) handleCreatePost(context actor.Context, msg *CreatePostMsg) {
	startTime := time.Now()

	if strings.TrimSpace(msg.Content) == "" || strings.TrimSpace(msg.Subject) == "" {
		context.Respond(utils.NewValidationError("content and subject are required"))
		return
	}
	if len(msg.Images) > maxPostImages {
		context.Respond(utils.NewValidationError("a post can carry at most 5 images"))
		return
	}

	postType := msg.Type
	if postType == "" {
		postType = models.PostGeneral
	}
	if !postType.IsValid() {
		context.Respond(utils.NewValidationError("unknown post type: " + string(postType)))
		return
	}

	reactions := make(map[models.ReactionKind]int, 4)
	for _, kind := range models.ReactionKinds() {
		reactions[kind] = 0
	}

	newPost := &models.Post{
		ID:            newFeedID(),
		UserID:        msg.UserID,
		Author:        msg.Author,
		Type:          postType,
		Content:       msg.Content,
		Subject:       msg.Subject,
		Images:        append([]string(nil), msg.Images...),
		Video:         msg.Video,
		Reactions:     reactions,
		UserReactions: []models.ReactionKind{},
		Comments:      []*models.Comment{},
		CreatedAt:     time.Now(),
	}

	log.Printf("FeedActor: creating post %s in subject %q", newPost.ID, newPost.Subject)

	a.postsByID[newPost.ID] = newPost
	a.order = append([]string{newPost.ID}, a.order...)

	a.publish(ws.FeedEvent{Type: "post.created", PostID: newPost.ID, Payload: newPost.Clone()})

	a.metrics.AddOperationLatency("create_post", time.Since(startTime))
	context.Respond(newPost.Clone())
}

func (a *FeedActor) handleResolveQuestion(context actor.Context, msg *ResolveQuestionMsg) {
	post, exists := a.postsByID[msg.PostID]
	if !exists {
		context.Respond(utils.NewPostNotFoundError(msg.PostID))
		return
	}
	if post.Type != models.PostQuestion {
		context.Respond(utils.NewValidationError("only question posts can be resolved"))
		return
	}

	post.IsResolved = !post.IsResolved
	context.Respond(post.Clone())
}

func (a *FeedActor) handleSubjectCounts(context actor.Context) {
	counts := make([]SubjectCount, 0, len(SubjectDirectory)+1)
	counts = append(counts, SubjectCount{Name: "All Subjects", Count: len(a.order)})
	for _, subject := range SubjectDirectory {
		n := 0
		for _, id := range a.order {
			if post := a.postsByID[id]; post != nil && subjectMatches(post.Subject, subject) {
				n++
			}
		}
		counts = append(counts, SubjectCount{Name: subject, Count: n})
	}
	context.Respond(counts)
}

func (a *FeedActor) publish(event ws.FeedEvent) {
	if a.publisher != nil {
		a.publisher.BroadcastEvent(event)
	}
}

// newFeedID mints a time-based id so ids stay monotonically ordered by
// creation time.
func newFeedID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}
