package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AkshatKumar38/Study-Hub/internal/database"
	"github.com/AkshatKumar38/Study-Hub/internal/engine"
	"github.com/AkshatKumar38/Study-Hub/internal/utils"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func newTestServer(t *testing.T) *mux.Router {
	t.Helper()

	system := actor.NewActorSystem()
	metrics := utils.NewMetricsCollector()
	store := database.NewMemoryStore()
	studyEngine := engine.NewEngine(system, metrics, store, "study-buddy-user", nil)

	// Zero composer delay: tests should not wait out the simulated latency.
	server := NewServer(system, studyEngine, metrics, nil, 0)
	return server.Routes()
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if len(w.Body.Bytes()) > 0 && w.Body.Bytes()[0] == '{' {
		json.Unmarshal(w.Body.Bytes(), &decoded)
	}
	return w, decoded
}

func TestIntegrationFlow(t *testing.T) {
	router := newTestServer(t)

	// Step 1: no session before anyone logs in.
	w, session := doJSON(t, router, "GET", "/auth/session", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, session["user"])
	assert.Equal(t, false, session["loading"])

	// Step 2: register a student.
	w, user := doJSON(t, router, "POST", "/auth/register", map[string]interface{}{
		"email":       "a@x.edu",
		"password":    "pw",
		"username":    "a",
		"displayName": "A B",
		"university":  "X",
		"major":       "CS",
		"year":        1,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "A B", user["displayName"])
	userID := user["id"].(string)
	t.Logf("registered user %s", userID)

	// Step 3: create a post with media attachments.
	w, post := doJSON(t, router, "POST", "/posts", map[string]interface{}{
		"type":    "question",
		"content": "How do I prove this by induction?",
		"subject": "Mathematics",
		"images": []map[string]interface{}{
			{"name": "scan1.png", "size": 1024},
			{"name": "scan2.png", "size": 2048},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	postID := post["id"].(string)
	author := post["author"].(map[string]interface{})
	assert.Equal(t, "A B", author["displayName"])
	images := post["images"].([]interface{})
	assert.Len(t, images, 2)
	assert.Contains(t, images[0].(string), "mem://")

	// Step 4: the feed is newest-first and filterable.
	req := httptest.NewRequest("GET", "/posts?subject=all", nil)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)
	var posts []map[string]interface{}
	json.Unmarshal(w2.Body.Bytes(), &posts)
	assert.Len(t, posts, 4)
	assert.Equal(t, postID, posts[0]["id"])

	req = httptest.NewRequest("GET", "/posts?subject=physics", nil)
	w2 = httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	json.Unmarshal(w2.Body.Bytes(), &posts)
	assert.Len(t, posts, 1)

	// Step 5: toggle a reaction on a seed post.
	w, post = doJSON(t, router, "POST", "/posts/1/reactions", map[string]interface{}{"kind": "helpful"})
	assert.Equal(t, http.StatusOK, w.Code)
	reactions := post["reactions"].(map[string]interface{})
	assert.Equal(t, float64(9), reactions["helpful"])

	// Step 6: comment as the logged-in student.
	w, post = doJSON(t, router, "POST", "/posts/1/comments", map[string]interface{}{"content": "Try a tight bound."})
	assert.Equal(t, http.StatusOK, w.Code)
	comments := post["comments"].([]interface{})
	newest := comments[len(comments)-1].(map[string]interface{})
	assert.Equal(t, "A B", newest["author"])
	assert.Equal(t, "Try a tight bound.", newest["content"])

	// Step 7: unknown post ids surface as 404s.
	w, _ = doJSON(t, router, "POST", "/posts/nonexistent/comments", map[string]interface{}{"content": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Step 8: oversized videos are rejected at the boundary.
	w, _ = doJSON(t, router, "POST", "/posts", map[string]interface{}{
		"content": "lecture recording",
		"subject": "Physics",
		"video":   map[string]interface{}{"name": "lecture.mp4", "size": 11 * 1024 * 1024},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Step 9: profile stats are derived from the feed.
	w, profile := doJSON(t, router, "GET", "/profile", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	stats := profile["stats"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["posts"])

	// Step 10: subject directory reflects the new post.
	req = httptest.NewRequest("GET", "/subjects", nil)
	w2 = httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	var counts []map[string]interface{}
	json.Unmarshal(w2.Body.Bytes(), &counts)
	byName := map[string]float64{}
	for _, c := range counts {
		byName[c["name"].(string)] = c["count"].(float64)
	}
	assert.Equal(t, float64(4), byName["All Subjects"])
	assert.Equal(t, float64(2), byName["Mathematics"])

	// Step 11: logout clears the session and posting requires login again.
	w, _ = doJSON(t, router, "POST", "/auth/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, session = doJSON(t, router, "GET", "/auth/session", nil)
	assert.Nil(t, session["user"])

	w, _ = doJSON(t, router, "POST", "/posts", map[string]interface{}{
		"content": "should fail",
		"subject": "Physics",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// An anonymous comment falls back to the placeholder author.
	w, post = doJSON(t, router, "POST", "/posts/1/comments", map[string]interface{}{"content": "drive-by tip"})
	assert.Equal(t, http.StatusOK, w.Code)
	comments = post["comments"].([]interface{})
	newest = comments[len(comments)-1].(map[string]interface{})
	assert.Equal(t, "You", newest["author"])
}

func TestGetPostEndpoint(t *testing.T) {
	router := newTestServer(t)

	w, post := doJSON(t, router, "GET", "/posts/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", post["id"])
	author := post["author"].(map[string]interface{})
	assert.Equal(t, "Sarah Chen", author["displayName"])

	w, body := doJSON(t, router, "GET", "/posts/nonexistent", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "POST_NOT_FOUND", body["code"])
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestServer(t)

	w, health := doJSON(t, router, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, float64(3), health["posts"])
	assert.Equal(t, false, health["loggedIn"])
}

func TestLoginEndpointMocksUser(t *testing.T) {
	router := newTestServer(t)

	w, user := doJSON(t, router, "POST", "/auth/login", map[string]interface{}{
		"email":    "jane@uni.edu",
		"password": "anything",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jane", user["username"])
	assert.Equal(t, "John Doe", user["displayName"])
}
