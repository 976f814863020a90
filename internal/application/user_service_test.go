package application

import (
	"context"
	"testing"

	"github.com/mathomas/bookit-api/internal/testfixtures"
)

func TestUserService_Register_CreatesUnknownUser(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepository()
	service := NewUserService(repo, testfixtures.NewIDGenerator("user").NextFunc())

	got, err := service.Register(context.Background(), Identity{
		ExternalID: "new@example.com",
		GivenName:  "Ada",
		FamilyName: "Lovelace",
	})
	if err != nil {
		t.Fatalf("expected registration to succeed, got %v", err)
	}
	if got.ID != "user-1" {
		t.Fatalf("expected generated ID user-1, got %q", got.ID)
	}
	if got.Name != "Ada Lovelace" {
		t.Fatalf("expected display name from identity parts, got %q", got.Name)
	}
	if got.ExternalID != "new@example.com" {
		t.Fatalf("expected external ID to be kept, got %q", got.ExternalID)
	}
}

func TestUserService_Register_ReturnsExistingUserUnchanged(t *testing.T) {
	t.Parallel()

	existing := User{ID: "user-1", Name: "Original Name", ExternalID: "known@example.com"}
	repo := newStubUserRepository(existing)
	service := NewUserService(repo, testfixtures.NewIDGenerator("user").NextFunc())

	// Fresh name parts on the request do not update the stored record.
	got, err := service.Register(context.Background(), Identity{
		ExternalID: "known@example.com",
		GivenName:  "Changed",
		FamilyName: "Name",
	})
	if err != nil {
		t.Fatalf("expected registration to succeed, got %v", err)
	}
	if got != existing {
		t.Fatalf("expected stored user unchanged, got %+v", got)
	}
	if repo.createCalls != 0 {
		t.Fatalf("expected no create for a known user, got %d calls", repo.createCalls)
	}
}

func TestUserService_Register_RecoversFromDuplicateInsert(t *testing.T) {
	t.Parallel()

	winner := User{ID: "user-0", Name: "First Writer", ExternalID: "raced@example.com"}
	repo := newStubUserRepository(winner)
	service := NewUserService(repo, testfixtures.NewIDGenerator("user").NextFunc())

	// Simulate losing the first-registration race: the initial lookup misses,
	// the insert is rejected by the uniqueness constraint because the winner's
	// row landed in between, and the re-read finds it.
	repo.missOnce = true
	repo.duplicateOnce = true

	got, err := service.Register(context.Background(), Identity{
		ExternalID: "raced@example.com",
		GivenName:  "Second",
		FamilyName: "Writer",
	})
	if err != nil {
		t.Fatalf("expected the loser to recover by re-reading, got %v", err)
	}
	if got != winner {
		t.Fatalf("expected the winner's record, got %+v", got)
	}
}

func TestUserService_Register_BlankNameParts(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepository()
	service := NewUserService(repo, testfixtures.NewIDGenerator("user").NextFunc())

	got, err := service.Register(context.Background(), Identity{ExternalID: "anonymous@example.com"})
	if err != nil {
		t.Fatalf("expected registration to succeed, got %v", err)
	}
	if got.Name != "" {
		t.Fatalf("expected empty display name, got %q", got.Name)
	}
}
