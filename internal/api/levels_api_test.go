package api

import (
	"net/http"
	"testing"
)

func TestLevelHistoryTracksRealLevelUps(t *testing.T) {
	app := newTestApp(t)
	authCookie := registerTestUser(t, app, "alice", "secret123")

	// 460 minutes at difficulty 4 grants 250 XP: level 1 -> 3 with 50 left.
	response := jsonRequest(t, app, http.MethodPost, "/api/records", authCookie,
		`{"subject":"Math","content":"marathon session","difficulty":4,"learning_time":460}`)
	created := decodeBody(t, response)

	progress := created["progress"].(map[string]any)
	if progress["xp_earned"] != float64(250) {
		t.Fatalf("expected 250 XP earned, got %v", progress["xp_earned"])
	}
	if progress["leveled_up"] != true {
		t.Fatalf("expected level-up from 250 XP grant")
	}
	if progress["level"] != float64(3) || progress["xp"] != float64(50) {
		t.Fatalf("expected level 3 with 50 XP, got level %v with %v XP", progress["level"], progress["xp"])
	}

	response = jsonRequest(t, app, http.MethodGet, "/api/levels/history", authCookie, "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("level history expected status 200, got %d", response.StatusCode)
	}
	payload := decodeBody(t, response)

	if payload["total_level_ups"] != float64(1) {
		t.Fatalf("expected 1 level-up event, got %v", payload["total_level_ups"])
	}
	if payload["current_level"] != float64(3) {
		t.Fatalf("expected current level 3, got %v", payload["current_level"])
	}

	events := payload["events"].([]any)
	event := events[0].(map[string]any)
	if event["old_level"] != float64(1) || event["new_level"] != float64(3) {
		t.Fatalf("expected event 1 -> 3, got %v -> %v", event["old_level"], event["new_level"])
	}
}

func TestFriendsReturnsPlaceholderList(t *testing.T) {
	app := newTestApp(t)
	authCookie := registerTestUser(t, app, "alice", "secret123")

	response := jsonRequest(t, app, http.MethodGet, "/api/friends", authCookie, "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	payload := decodeBody(t, response)

	friends, ok := payload["friends"].([]any)
	if !ok || len(friends) != 5 {
		t.Fatalf("expected 5 placeholder friends, got %v", payload["friends"])
	}
}
