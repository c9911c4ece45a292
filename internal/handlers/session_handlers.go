package handlers

import (
	"net/http"

	"github.com/AkshatKumar38/Study-Hub/internal/engine/actors"
	"github.com/AkshatKumar38/Study-Hub/internal/models"
	"github.com/AkshatKumar38/Study-Hub/internal/utils"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Username    string   `json:"username"`
	DisplayName string   `json:"displayName"`
	University  string   `json:"university"`
	Major       string   `json:"major"`
	Year        int      `json:"year"`
	Bio         string   `json:"bio"`
	Subjects    []string `json:"subjects"`
}

// SessionResponse mirrors the session contract the presentation layer
// consumes: the current user (if any) and the bootstrap loading flag.
type SessionResponse struct {
	User    *models.User `json:"user"`
	Loading bool         `json:"loading"`
}

func (s *Server) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, err)
		return
	}

	result, err := s.ask(s.Engine.GetSessionActor(), &actors.LoginMsg{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	switch resp := result.(type) {
	case *models.User:
		s.respondJSON(w, http.StatusOK, resp)
	case *utils.AppError:
		s.respondError(w, resp)
	default:
		s.respondError(w, utils.NewAppError(utils.ErrInvalidInput, "unexpected session response", nil))
	}
}

func (s *Server) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, err)
		return
	}

	result, err := s.ask(s.Engine.GetSessionActor(), &actors.RegisterMsg{
		Email:       req.Email,
		Password:    req.Password,
		Username:    req.Username,
		DisplayName: req.DisplayName,
		University:  req.University,
		Major:       req.Major,
		Year:        req.Year,
		Bio:         req.Bio,
		Subjects:    req.Subjects,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	switch resp := result.(type) {
	case *models.User:
		s.respondJSON(w, http.StatusCreated, resp)
	case *utils.AppError:
		s.respondError(w, resp)
	default:
		s.respondError(w, utils.NewAppError(utils.ErrInvalidInput, "unexpected session response", nil))
	}
}

func (s *Server) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if _, err := s.ask(s.Engine.GetSessionActor(), &actors.LogoutMsg{}); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) HandleSession(w http.ResponseWriter, r *http.Request) {
	state, err := s.currentSession()
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, SessionResponse{User: state.User, Loading: state.Loading})
}

// currentSession queries the session actor for its current snapshot.
func (s *Server) currentSession() (*actors.SessionState, error) {
	result, err := s.ask(s.Engine.GetSessionActor(), &actors.GetSessionMsg{})
	if err != nil {
		return nil, err
	}
	state, ok := result.(*actors.SessionState)
	if !ok {
		return nil, utils.NewAppError(utils.ErrInvalidInput, "unexpected session response", nil)
	}
	return state, nil
}
