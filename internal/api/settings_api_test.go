package api

import (
	"net/http"
	"testing"
)

func TestUpdateUsernameRejectsTakenName(t *testing.T) {
	app := newTestApp(t)
	aliceCookie := registerTestUser(t, app, "alice", "secret123")
	registerTestUser(t, app, "bob", "secret456")

	response := jsonRequest(t, app, http.MethodPost, "/api/settings/username", aliceCookie,
		`{"username":"bob"}`)
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409 for taken username, got %d", response.StatusCode)
	}
	response.Body.Close()

	response = jsonRequest(t, app, http.MethodPost, "/api/settings/username", aliceCookie,
		`{"username":"alicia"}`)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for free username, got %d", response.StatusCode)
	}
	payload := decodeBody(t, response)
	user := payload["user"].(map[string]any)
	if user["username"] != "alicia" {
		t.Fatalf("expected renamed profile in response, got %v", user["username"])
	}

	// The session keeps working after a rename: the cookie carries the id, not the name.
	response = jsonRequest(t, app, http.MethodGet, "/api/dashboard", aliceCookie, "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected dashboard to work after rename, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestUpdateAvatarChecksCatalog(t *testing.T) {
	app := newTestApp(t)
	authCookie := registerTestUser(t, app, "alice", "secret123")

	response := jsonRequest(t, app, http.MethodPost, "/api/settings/avatar", authCookie,
		`{"avatar_id":"spaceship"}`)
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown avatar, got %d", response.StatusCode)
	}
	response.Body.Close()

	response = jsonRequest(t, app, http.MethodPost, "/api/settings/avatar", authCookie,
		`{"avatar_id":"fox"}`)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for catalog avatar, got %d", response.StatusCode)
	}
	payload := decodeBody(t, response)
	user := payload["user"].(map[string]any)
	if user["avatar"] != "fox" {
		t.Fatalf("expected avatar fox, got %v", user["avatar"])
	}
}

func TestSettingsListsAvatarCatalog(t *testing.T) {
	app := newTestApp(t)
	authCookie := registerTestUser(t, app, "alice", "secret123")

	response := jsonRequest(t, app, http.MethodGet, "/api/settings", authCookie, "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	payload := decodeBody(t, response)

	avatars, ok := payload["avatars"].([]any)
	if !ok || len(avatars) == 0 {
		t.Fatalf("expected avatar catalog in settings payload")
	}
}
