package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/AkshatKumar38/Study-Hub/internal/engine"
	"github.com/AkshatKumar38/Study-Hub/internal/utils"
	ws "github.com/AkshatKumar38/Study-Hub/internal/websocket"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/gorilla/mux"
)

// Server holds all server dependencies, including the actor system and engine
type Server struct {
	System         *actor.ActorSystem
	Context        *actor.RootContext
	Engine         *engine.Engine
	Metrics        *utils.MetricsCollector
	Hub            *ws.Hub
	ComposerDelay  time.Duration
	RequestTimeout time.Duration
}

// NewServer creates a new Server instance with the given components
func NewServer(
	system *actor.ActorSystem,
	studyEngine *engine.Engine,
	metrics *utils.MetricsCollector,
	hub *ws.Hub,
	composerDelay time.Duration,
) *Server {
	return &Server{
		System:         system,
		Context:        system.Root,
		Engine:         studyEngine,
		Metrics:        metrics,
		Hub:            hub,
		ComposerDelay:  composerDelay,
		RequestTimeout: 5 * time.Second, // Default timeout for actor requests
	}
}

// Routes builds the UI-boundary router.
func (s *Server) Routes() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.HandleHealth).Methods(http.MethodGet)

	r.HandleFunc("/auth/login", s.HandleLogin).Methods(http.MethodPost)
	r.HandleFunc("/auth/register", s.HandleRegister).Methods(http.MethodPost)
	r.HandleFunc("/auth/logout", s.HandleLogout).Methods(http.MethodPost)
	r.HandleFunc("/auth/session", s.HandleSession).Methods(http.MethodGet)

	r.HandleFunc("/posts", s.HandleListPosts).Methods(http.MethodGet)
	r.HandleFunc("/posts", s.HandleCreatePost).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id}", s.HandleGetPost).Methods(http.MethodGet)
	r.HandleFunc("/posts/{id}/reactions", s.HandleToggleReaction).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id}/comments", s.HandleAddComment).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id}/resolve", s.HandleResolveQuestion).Methods(http.MethodPost)

	r.HandleFunc("/subjects", s.HandleSubjects).Methods(http.MethodGet)
	r.HandleFunc("/profile", s.HandleProfile).Methods(http.MethodGet)

	r.HandleFunc("/ws", s.HandleWebSocket)

	return r
}

// ask sends msg to the pid and waits for the response within the shared
// request timeout.
func (s *Server) ask(pid *actor.PID, msg interface{}) (interface{}, error) {
	future := s.Context.RequestFuture(pid, msg, s.RequestTimeout)
	result, err := future.Result()
	if err != nil {
		return nil, utils.NewAppError(utils.ErrActorTimeout, "actor request timed out", err)
	}
	return result, nil
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	s.Metrics.IncrementRequests()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// respondError maps AppErrors onto HTTP statuses; anything else is a 500.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	s.Metrics.IncrementErrors()

	status := http.StatusInternalServerError
	message := err.Error()
	code := "INTERNAL"
	if appErr, ok := err.(*utils.AppError); ok {
		status = utils.AppErrorToHTTPStatus(appErr.Code)
		code = appErr.Code
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
		"code":  code,
	})
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return utils.NewAppError(utils.ErrInvalidInput, "invalid request body", err)
	}
	return nil
}
