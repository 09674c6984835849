package services

import (
	"testing"

	"github.com/terraincognita07/studyquest/internal/models"
	"github.com/terraincognita07/studyquest/internal/store"
)

func newShareServiceFixture(t *testing.T) (*ShareService, *RecordService, models.User) {
	t.Helper()

	stores := store.NewStores()
	user := models.User{Username: "alice", PasswordHash: "x", Level: 3, Avatar: "fox"}
	if err := stores.Users.Create(&user); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return NewShareService(stores), NewRecordService(stores), user
}

func TestCreateLinkMintsStableTokenPerRecord(t *testing.T) {
	shares, records, user := newShareServiceFixture(t)

	added, err := records.Add(user.ID, AddRecordInput{Subject: "Math", Content: "c", Difficulty: 2, LearningTime: 20})
	if err != nil {
		t.Fatalf("add record failed: %v", err)
	}

	token, ok := shares.CreateLink(user.ID, added.Record.ID)
	if !ok {
		t.Fatalf("expected share link for owned record")
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	again, ok := shares.CreateLink(user.ID, added.Record.ID)
	if !ok || again != token {
		t.Fatalf("expected stable token on re-share, got %q vs %q", again, token)
	}
}

func TestCreateLinkRefusesForeignRecords(t *testing.T) {
	shares, records, owner := newShareServiceFixture(t)

	other := models.User{Username: "bob", PasswordHash: "x", Level: 1, Avatar: models.DefaultAvatarID}
	if err := shares.users.Create(&other); err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	added, err := records.Add(owner.ID, AddRecordInput{Subject: "s", Content: "c", Difficulty: 1, LearningTime: 10})
	if err != nil {
		t.Fatalf("add record failed: %v", err)
	}

	if _, ok := shares.CreateLink(other.ID, added.Record.ID); ok {
		t.Fatalf("expected share of a foreign record to fail")
	}
}

func TestResolveReturnsRecordWithOwnerProfile(t *testing.T) {
	shares, records, user := newShareServiceFixture(t)

	added, err := records.Add(user.ID, AddRecordInput{Subject: "Math", Content: "c", Difficulty: 2, LearningTime: 20})
	if err != nil {
		t.Fatalf("add record failed: %v", err)
	}
	token, _ := shares.CreateLink(user.ID, added.Record.ID)

	shared, found := shares.Resolve(token)
	if !found {
		t.Fatalf("expected token to resolve")
	}
	if shared.Record.ID != added.Record.ID {
		t.Fatalf("expected record %d, got %d", added.Record.ID, shared.Record.ID)
	}
	if shared.OwnerUsername != "alice" || shared.OwnerLevel != 3 {
		t.Fatalf("unexpected owner profile: %q level %d", shared.OwnerUsername, shared.OwnerLevel)
	}
	if shared.OwnerAvatarURL == "" {
		t.Fatalf("expected owner avatar URL")
	}

	if _, found := shares.Resolve("no-such-token"); found {
		t.Fatalf("expected unknown token to miss")
	}
}

func TestDeletingRecordInvalidatesShareLink(t *testing.T) {
	shares, records, user := newShareServiceFixture(t)

	added, err := records.Add(user.ID, AddRecordInput{Subject: "s", Content: "c", Difficulty: 1, LearningTime: 10})
	if err != nil {
		t.Fatalf("add record failed: %v", err)
	}
	token, _ := shares.CreateLink(user.ID, added.Record.ID)

	if !records.Delete(user.ID, added.Record.ID) {
		t.Fatalf("delete failed")
	}
	if _, found := shares.Resolve(token); found {
		t.Fatalf("expected token to stop resolving after record deletion")
	}
}
