package api

import (
	"net/http"
	"strings"
	"testing"
)

func TestSharedRecordIsPublic(t *testing.T) {
	app := newTestApp(t)
	authCookie := registerTestUser(t, app, "alice", "secret123")

	response := jsonRequest(t, app, http.MethodPost, "/api/records", authCookie,
		`{"subject":"Math","content":"Quadratic equations","difficulty":3,"learning_time":30}`)
	created := decodeBody(t, response)
	recordID := formatID(created["record"].(map[string]any)["id"].(float64))

	response = jsonRequest(t, app, http.MethodPost, "/api/records/"+recordID+"/share", authCookie, "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("share expected status 200, got %d", response.StatusCode)
	}
	shared := decodeBody(t, response)

	token, ok := shared["token"].(string)
	if !ok || token == "" {
		t.Fatalf("expected share token, got %v", shared)
	}
	shareURL, ok := shared["share_url"].(string)
	if !ok || !strings.HasSuffix(shareURL, "/shared/"+token) {
		t.Fatalf("unexpected share url %v", shared["share_url"])
	}

	// No cookie: share pages are public.
	response = jsonRequest(t, app, http.MethodGet, "/shared/"+token, "", "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("shared record expected status 200, got %d", response.StatusCode)
	}
	payload := decodeBody(t, response)

	record := payload["record"].(map[string]any)
	if record["subject"] != "Math" {
		t.Fatalf("expected shared record subject Math, got %v", record["subject"])
	}
	owner := payload["owner"].(map[string]any)
	if owner["username"] != "alice" {
		t.Fatalf("expected owner alice, got %v", owner["username"])
	}
}

func TestSharedRecordUnknownTokenMisses(t *testing.T) {
	app := newTestApp(t)

	response := jsonRequest(t, app, http.MethodGet, "/shared/not-a-token", "", "")
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown token, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestShareQRIsStubbed(t *testing.T) {
	app := newTestApp(t)
	authCookie := registerTestUser(t, app, "alice", "secret123")

	response := jsonRequest(t, app, http.MethodGet, "/api/records/1/share/qr", authCookie, "")
	if response.StatusCode != http.StatusNotImplemented {
		t.Fatalf("expected status 501 for qr stub, got %d", response.StatusCode)
	}
	response.Body.Close()
}
