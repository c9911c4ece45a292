package handlers

import (
	"net/http"

	"github.com/AkshatKumar38/Study-Hub/internal/engine/actors"
	"github.com/AkshatKumar38/Study-Hub/internal/models"
	"github.com/AkshatKumar38/Study-Hub/internal/utils"
)

// ProfileStats are derived live from the feed rather than stored per user.
type ProfileStats struct {
	Posts             int `json:"posts"`
	CommentsReceived  int `json:"commentsReceived"`
	ReactionsReceived int `json:"reactionsReceived"`
}

type ProfileResponse struct {
	User  *models.User `json:"user"`
	Stats ProfileStats `json:"stats"`
}

type HealthResponse struct {
	Status    string         `json:"status"`
	Posts     int            `json:"posts"`
	WSClients int            `json:"wsClients"`
	LoggedIn  bool           `json:"loggedIn"`
	Metrics   utils.Snapshot `json:"metrics"`
}

func (s *Server) HandleProfile(w http.ResponseWriter, r *http.Request) {
	session, err := s.currentSession()
	if err != nil {
		s.respondError(w, err)
		return
	}
	if session.User == nil {
		s.respondError(w, utils.NewAppError(utils.ErrUnauthorized, "no active session", nil))
		return
	}

	result, err := s.ask(s.Engine.GetFeedActor(), &actors.ListPostsMsg{Subject: actors.SubjectAll})
	if err != nil {
		s.respondError(w, err)
		return
	}
	posts, ok := result.([]*models.Post)
	if !ok {
		s.respondError(w, utils.NewAppError(utils.ErrInvalidInput, "unexpected feed response", nil))
		return
	}

	stats := ProfileStats{}
	for _, post := range posts {
		if post.UserID != session.User.ID {
			continue
		}
		stats.Posts++
		stats.CommentsReceived += len(post.Comments)
		for _, count := range post.Reactions {
			stats.ReactionsReceived += count
		}
	}

	s.respondJSON(w, http.StatusOK, ProfileResponse{User: session.User, Stats: stats})
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	result, err := s.ask(s.Engine.GetFeedActor(), &actors.GetCountsMsg{})
	if err != nil {
		s.respondError(w, err)
		return
	}
	postCount, _ := result.(int)

	session, err := s.currentSession()
	if err != nil {
		s.respondError(w, err)
		return
	}

	wsClients := 0
	if s.Hub != nil {
		wsClients = s.Hub.ClientCount()
	}

	s.respondJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Posts:     postCount,
		WSClients: wsClients,
		LoggedIn:  session.User != nil,
		Metrics:   s.Metrics.GetSnapshot(),
	})
}
