package actors

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/AkshatKumar38/Study-Hub/internal/database"
	"github.com/AkshatKumar38/Study-Hub/internal/models"
	"github.com/AkshatKumar38/Study-Hub/internal/utils"

	"github.com/asynkron/protoactor-go/actor"
)

// Message types for session operations
type (
	LoginMsg struct {
		Email    string
		Password string
	}

	RegisterMsg struct {
		Email       string
		Password    string
		Username    string
		DisplayName string
		University  string
		Major       string
		Year        int
		Bio         string
		Subjects    []string
	}

	LogoutMsg struct{}

	GetSessionMsg struct{}
)

// SessionState is the snapshot the session actor responds with. Loading is
// true only before the one-time bootstrap has completed.
type SessionState struct {
	User    *models.User
	Loading bool
}

// SessionActor owns the current authenticated user. Authentication is mocked:
// login always succeeds and no credentials are ever checked or stored. The
// user record is persisted under a single key in the local store and
// rehydrated on startup.
type SessionActor struct {
	store   database.LocalStore
	key     string
	metrics *utils.MetricsCollector

	current *models.User
	loading bool
}

func NewSessionActor(store database.LocalStore, key string, metrics *utils.MetricsCollector) actor.Actor {
	return &SessionActor{
		store:   store,
		key:     key,
		metrics: metrics,
		loading: true,
	}
}

func (a *SessionActor) Receive(context actor.Context) {
	switch msg := context.Message().(type) {
	case *actor.Started:
		log.Printf("SessionActor started")
		a.bootstrap()

	case *actor.Stopped:
		log.Printf("SessionActor stopped")

	case *LoginMsg:
		a.handleLogin(context, msg)

	case *RegisterMsg:
		a.handleRegister(context, msg)

	case *LogoutMsg:
		a.handleLogout(context)

	case *GetSessionMsg:
		context.Respond(&SessionState{User: a.current.Clone(), Loading: a.loading})
	}
}

// bootstrap rehydrates a previously persisted session. A corrupted record is
// treated as "no session", never as a fatal error.
func (a *SessionActor) bootstrap() {
	defer func() { a.loading = false }()

	raw, ok, err := a.store.Get(a.key)
	if err != nil {
		readErr := utils.NewAppError(utils.ErrStorageFailed, "failed to read persisted session", err)
		log.Printf("SessionActor: %v, starting unauthenticated", readErr)
		return
	}
	if !ok {
		return
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		parseErr := utils.NewAppError(utils.ErrStorageParse, "persisted session is not valid JSON", err)
		log.Printf("SessionActor: %v, starting unauthenticated", parseErr)
		return
	}

	a.current = &user
	log.Printf("SessionActor: restored session for %q", user.Username)
}

func (a *SessionActor) handleLogin(context actor.Context, msg *LoginMsg) {
	startTime := time.Now()

	// Mock login: any credentials succeed and a deterministic user is
	// synthesized from the email. The password is intentionally unused.
	username := msg.Email
	if at := strings.Index(msg.Email, "@"); at >= 0 {
		username = msg.Email[:at]
	}

	user := &models.User{
		ID:          "1",
		Email:       msg.Email,
		Username:    username,
		DisplayName: "John Doe",
		University:  "University of Technology",
		Major:       "Computer Science",
		Year:        3,
		Bio:         "Passionate about coding and helping fellow students",
		Subjects:    []string{"Computer Science", "Mathematics", "Physics"},
	}

	a.setCurrent(user)

	a.metrics.AddOperationLatency("login", time.Since(startTime))
	context.Respond(user.Clone())
}

func (a *SessionActor) handleRegister(context actor.Context, msg *RegisterMsg) {
	startTime := time.Now()

	if reason, ok := validateRegistration(msg); !ok {
		context.Respond(utils.NewValidationError(reason))
		return
	}

	subjects := msg.Subjects
	if subjects == nil {
		subjects = []string{}
	}

	user := &models.User{
		ID:          strconv.FormatInt(time.Now().UnixMilli(), 10),
		Email:       msg.Email,
		Username:    msg.Username,
		DisplayName: msg.DisplayName,
		University:  msg.University,
		Major:       msg.Major,
		Year:        msg.Year,
		Bio:         msg.Bio,
		Subjects:    subjects,
	}

	a.setCurrent(user)

	a.metrics.AddOperationLatency("register", time.Since(startTime))
	context.Respond(user.Clone())
}

func (a *SessionActor) handleLogout(context actor.Context) {
	a.current = nil
	if err := a.store.Delete(a.key); err != nil {
		log.Printf("SessionActor: failed to remove persisted session: %v", err)
	}
	context.Respond(true)
}

// setCurrent installs the user as the active session and persists it. The
// mock contract never fails, so a storage error degrades to an in-memory
// session instead of failing the login.
func (a *SessionActor) setCurrent(user *models.User) {
	a.current = user

	raw, err := json.Marshal(user)
	if err != nil {
		log.Printf("SessionActor: failed to serialize session: %v", err)
		return
	}
	if err := a.store.Put(a.key, raw); err != nil {
		log.Printf("SessionActor: %v", utils.NewAppError(utils.ErrStorageFailed, "failed to persist session", err))
	}
}

func validateRegistration(msg *RegisterMsg) (string, bool) {
	switch {
	case strings.TrimSpace(msg.Email) == "":
		return "email is required", false
	case strings.TrimSpace(msg.Username) == "":
		return "username is required", false
	case strings.TrimSpace(msg.DisplayName) == "":
		return "displayName is required", false
	case strings.TrimSpace(msg.University) == "":
		return "university is required", false
	case strings.TrimSpace(msg.Major) == "":
		return "major is required", false
	case msg.Year <= 0:
		return "year must be a positive integer", false
	}
	return "", true
}
