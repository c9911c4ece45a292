package actors

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/AkshatKumar38/Study-Hub/internal/database"
	"github.com/AkshatKumar38/Study-Hub/internal/models"
	"github.com/AkshatKumar38/Study-Hub/internal/utils"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/stretchr/testify/assert"
)

const testSessionKey = "study-buddy-user"

func spawnSessionActor(t *testing.T, system *actor.ActorSystem, store database.LocalStore) *actor.PID {
	t.Helper()
	props := actor.PropsFromProducer(func() actor.Actor {
		return NewSessionActor(store, testSessionKey, utils.NewMetricsCollector())
	})
	return system.Root.Spawn(props)
}

func askSession(t *testing.T, system *actor.ActorSystem, pid *actor.PID, msg interface{}) interface{} {
	t.Helper()
	future := system.Root.RequestFuture(pid, msg, 5*time.Second)
	result, err := future.Result()
	if err != nil {
		t.Fatalf("session request failed: %v", err)
	}
	return result
}

func TestLoginSynthesizesMockUser(t *testing.T) {
	system := actor.NewActorSystem()
	store := database.NewMemoryStore()
	pid := spawnSessionActor(t, system, store)

	result := askSession(t, system, pid, &LoginMsg{Email: "jane@uni.edu", Password: "whatever"})

	user, ok := result.(*models.User)
	if !ok {
		t.Fatalf("expected *models.User, got %T", result)
	}
	assert.Equal(t, "1", user.ID)
	assert.Equal(t, "jane@uni.edu", user.Email)
	assert.Equal(t, "jane", user.Username)
	assert.Equal(t, "John Doe", user.DisplayName)
	assert.Equal(t, "University of Technology", user.University)
	assert.Equal(t, 3, user.Year)

	// Login persists the session record.
	_, found, err := store.Get(testSessionKey)
	assert.NoError(t, err)
	assert.True(t, found)
}

func TestRegisterValidatesRequiredFields(t *testing.T) {
	system := actor.NewActorSystem()
	pid := spawnSessionActor(t, system, database.NewMemoryStore())

	result := askSession(t, system, pid, &RegisterMsg{
		Email:    "a@x.edu",
		Username: "a",
		// DisplayName missing
		University: "X",
		Major:      "CS",
		Year:       1,
	})

	appErr, ok := result.(*utils.AppError)
	if !ok {
		t.Fatalf("expected *utils.AppError, got %T", result)
	}
	assert.Equal(t, utils.ErrValidation, appErr.Code)
	assert.Contains(t, appErr.Message, "displayName")

	// A rejected registration must not create a session.
	state := askSession(t, system, pid, &GetSessionMsg{}).(*SessionState)
	assert.Nil(t, state.User)
}

func TestRegisterRoundTripThroughStore(t *testing.T) {
	system := actor.NewActorSystem()
	store := database.NewMemoryStore()
	pid := spawnSessionActor(t, system, store)

	result := askSession(t, system, pid, &RegisterMsg{
		Email:       "a@x.edu",
		Username:    "a",
		DisplayName: "A B",
		University:  "X",
		Major:       "CS",
		Year:        1,
	})
	registered, ok := result.(*models.User)
	if !ok {
		t.Fatalf("registration failed: %v", result)
	}
	assert.NotEmpty(t, registered.ID)
	assert.Equal(t, "", registered.Bio)
	assert.Empty(t, registered.Subjects)

	// A fresh actor over the same store must rehydrate the user.
	fresh := spawnSessionActor(t, system, store)
	state := askSession(t, system, fresh, &GetSessionMsg{}).(*SessionState)
	if state.User == nil {
		t.Fatal("expected restored session after re-bootstrap")
	}
	assert.False(t, state.Loading)
	assert.Equal(t, "A B", state.User.DisplayName)
	assert.Equal(t, registered.ID, state.User.ID)
}

func TestLogoutIsIdempotent(t *testing.T) {
	system := actor.NewActorSystem()
	store, err := database.NewSQLiteStore(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()
	pid := spawnSessionActor(t, system, store)

	askSession(t, system, pid, &LoginMsg{Email: "jane@uni.edu", Password: "pw"})

	askSession(t, system, pid, &LogoutMsg{})
	askSession(t, system, pid, &LogoutMsg{})

	state := askSession(t, system, pid, &GetSessionMsg{}).(*SessionState)
	assert.Nil(t, state.User)

	_, found, err := store.Get(testSessionKey)
	assert.NoError(t, err)
	assert.False(t, found)
}

// failingStore errors on every operation, standing in for a broken disk.
type failingStore struct{}

func (failingStore) Get(string) ([]byte, bool, error) { return nil, false, errors.New("disk gone") }
func (failingStore) Put(string, []byte) error         { return errors.New("disk gone") }
func (failingStore) Delete(string) error              { return errors.New("disk gone") }

func TestBootstrapDegradesOnStorageFailure(t *testing.T) {
	system := actor.NewActorSystem()
	pid := spawnSessionActor(t, system, failingStore{})

	state := askSession(t, system, pid, &GetSessionMsg{}).(*SessionState)
	assert.Nil(t, state.User)
	assert.False(t, state.Loading)

	// Logins still succeed in memory when persistence is unavailable.
	user := askSession(t, system, pid, &LoginMsg{Email: "jane@uni.edu", Password: "pw"}).(*models.User)
	assert.Equal(t, "jane", user.Username)

	state = askSession(t, system, pid, &GetSessionMsg{}).(*SessionState)
	assert.Equal(t, "jane", state.User.Username)
}

func TestBootstrapIgnoresCorruptedRecord(t *testing.T) {
	system := actor.NewActorSystem()
	store := database.NewMemoryStore()
	if err := store.Put(testSessionKey, []byte("{definitely not json")); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	pid := spawnSessionActor(t, system, store)
	state := askSession(t, system, pid, &GetSessionMsg{}).(*SessionState)

	assert.Nil(t, state.User)
	assert.False(t, state.Loading)
}
