package booking

import "testing"

func TestPresent_OwnerSeesSubject(t *testing.T) {
	t.Parallel()

	b := existingBooking("room-1", naive(14, 0), naive(15, 0))

	got := Present(b, b.User.ExternalID)
	if got.Subject != "standup" {
		t.Fatalf("expected owner to see the subject, got %q", got.Subject)
	}
}

func TestPresent_OtherUserSeesRedactedSubject(t *testing.T) {
	t.Parallel()

	b := existingBooking("room-1", naive(14, 0), naive(15, 0))

	got := Present(b, "someone-else@example.com")
	if got.Subject != RedactedSubject {
		t.Fatalf("expected redacted subject, got %q", got.Subject)
	}
	// Everything except the subject stays visible.
	if got.ID != b.ID || got.BookableID != b.BookableID || !got.Start.Equal(b.Start) || !got.End.Equal(b.End) {
		t.Fatal("expected slot details to survive redaction")
	}
	if got.User.ExternalID != b.User.ExternalID {
		t.Fatal("expected owner identity to survive redaction")
	}
}

func TestPresentAll_AppliesPolicyPerBooking(t *testing.T) {
	t.Parallel()

	mine := existingBooking("room-1", naive(14, 0), naive(15, 0))
	theirs := existingBooking("room-1", naive(15, 0), naive(16, 0))
	theirs.ID = "other"
	theirs.User = User{ID: "user-2", Name: "Other", ExternalID: "other@example.com"}

	got := PresentAll([]Booking{mine, theirs}, mine.User.ExternalID)
	if len(got) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(got))
	}
	if got[0].Subject != mine.Subject {
		t.Fatalf("expected own booking to keep its subject, got %q", got[0].Subject)
	}
	if got[1].Subject != RedactedSubject {
		t.Fatalf("expected foreign booking to be redacted, got %q", got[1].Subject)
	}
}

func TestPresentAll_NilIn(t *testing.T) {
	t.Parallel()

	if got := PresentAll(nil, "anyone"); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
