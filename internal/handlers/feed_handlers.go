package handlers

import (
	"net/http"
	"time"

	"github.com/AkshatKumar38/Study-Hub/internal/engine/actors"
	"github.com/AkshatKumar38/Study-Hub/internal/models"
	"github.com/AkshatKumar38/Study-Hub/internal/utils"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// maxVideoBytes is the composer's upload ceiling for a video attachment.
const maxVideoBytes = 10 * 1024 * 1024

// Attachment describes a picked media file. Only metadata crosses the
// boundary; the bytes stay with the client and the core keeps an opaque
// ephemeral handle.
type Attachment struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

type CreatePostRequest struct {
	Type    string       `json:"type"`
	Content string       `json:"content"`
	Subject string       `json:"subject"`
	Images  []Attachment `json:"images"`
	Video   *Attachment  `json:"video"`
}

type ToggleReactionRequest struct {
	Kind string `json:"kind"`
}

type AddCommentRequest struct {
	Content string `json:"content"`
}

func (s *Server) HandleListPosts(w http.ResponseWriter, r *http.Request) {
	subject := r.URL.Query().Get("subject")

	result, err := s.ask(s.Engine.GetFeedActor(), &actors.ListPostsMsg{Subject: subject})
	if err != nil {
		s.respondError(w, err)
		return
	}

	posts, ok := result.([]*models.Post)
	if !ok {
		s.respondError(w, utils.NewAppError(utils.ErrInvalidInput, "unexpected feed response", nil))
		return
	}
	s.respondJSON(w, http.StatusOK, posts)
}

func (s *Server) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, err)
		return
	}

	session, err := s.currentSession()
	if err != nil {
		s.respondError(w, err)
		return
	}
	if session.User == nil {
		s.respondError(w, utils.NewAppError(utils.ErrUnauthorized, "login required to post", nil))
		return
	}

	if req.Video != nil && req.Video.Size > maxVideoBytes {
		s.respondError(w, utils.NewValidationError("video files must be under 10MB"))
		return
	}

	images := make([]string, 0, len(req.Images))
	for range req.Images {
		images = append(images, newAttachmentRef())
	}
	video := ""
	if req.Video != nil {
		video = newAttachmentRef()
	}

	user := session.User
	result, err := s.ask(s.Engine.GetFeedActor(), &actors.CreatePostMsg{
		UserID: user.ID,
		Author: models.AuthorSnapshot{
			DisplayName:  user.DisplayName,
			Username:     user.Username,
			University:   user.University,
			ProfileImage: user.ProfileImage,
		},
		Type:    models.PostType(req.Type),
		Content: req.Content,
		Subject: req.Subject,
		Images:  images,
		Video:   video,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	switch resp := result.(type) {
	case *models.Post:
		// Simulated network latency: the UI disables the composer while
		// this request is pending.
		if s.ComposerDelay > 0 {
			time.Sleep(s.ComposerDelay)
		}
		s.respondJSON(w, http.StatusCreated, resp)
	case *utils.AppError:
		s.respondError(w, resp)
	default:
		s.respondError(w, utils.NewAppError(utils.ErrInvalidInput, "unexpected feed response", nil))
	}
}

func (s *Server) HandleGetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	result, err := s.ask(s.Engine.GetFeedActor(), &actors.GetPostMsg{PostID: postID})
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondPost(w, http.StatusOK, result)
}

func (s *Server) HandleToggleReaction(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	var req ToggleReactionRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, err)
		return
	}

	result, err := s.ask(s.Engine.GetFeedActor(), &actors.ToggleReactionMsg{
		PostID: postID,
		Kind:   models.ReactionKind(req.Kind),
	})
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondPost(w, http.StatusOK, result)
}

func (s *Server) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	var req AddCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, err)
		return
	}

	// The comment author is the session's display name; the feed falls back
	// to its placeholder when nobody is logged in.
	author := ""
	if session, err := s.currentSession(); err == nil && session.User != nil {
		author = session.User.DisplayName
	}

	result, err := s.ask(s.Engine.GetFeedActor(), &actors.AddCommentMsg{
		PostID:  postID,
		Content: req.Content,
		Author:  author,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondPost(w, http.StatusOK, result)
}

func (s *Server) HandleResolveQuestion(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	result, err := s.ask(s.Engine.GetFeedActor(), &actors.ResolveQuestionMsg{PostID: postID})
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondPost(w, http.StatusOK, result)
}

func (s *Server) HandleSubjects(w http.ResponseWriter, r *http.Request) {
	result, err := s.ask(s.Engine.GetFeedActor(), &actors.SubjectCountsMsg{})
	if err != nil {
		s.respondError(w, err)
		return
	}

	counts, ok := result.([]actors.SubjectCount)
	if !ok {
		s.respondError(w, utils.NewAppError(utils.ErrInvalidInput, "unexpected feed response", nil))
		return
	}
	s.respondJSON(w, http.StatusOK, counts)
}

// respondPost writes a feed response that is either a post snapshot or an
// AppError.
func (s *Server) respondPost(w http.ResponseWriter, status int, result interface{}) {
	switch resp := result.(type) {
	case *models.Post:
		s.respondJSON(w, status, resp)
	case *utils.AppError:
		s.respondError(w, resp)
	default:
		s.respondError(w, utils.NewAppError(utils.ErrInvalidInput, "unexpected feed response", nil))
	}
}

// newAttachmentRef mints the opaque ephemeral handle standing in for a
// browser object URL. The core never owns media bytes.
func newAttachmentRef() string {
	return "mem://" + uuid.NewString()
}
