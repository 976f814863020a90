package testfixtures

import (
	"testing"
	"time"
)

func TestClock(t *testing.T) {
	t.Parallel()

	clock := NewClock(time.Time{})
	if !clock.Now().Equal(ReferenceTime()) {
		t.Fatalf("expected zero start to default to ReferenceTime, got %v", clock.Now())
	}

	updated := clock.Advance(90 * time.Minute)
	if !updated.Equal(ReferenceTime().Add(90 * time.Minute)) {
		t.Fatalf("unexpected time after advance: %v", updated)
	}
	if !clock.Now().Equal(updated) {
		t.Fatalf("expected Now to track Advance, got %v", clock.Now())
	}

	target := time.Date(2030, time.June, 1, 12, 0, 0, 0, time.UTC)
	clock.Set(target)
	if !clock.Now().Equal(target) {
		t.Fatalf("expected Set to override, got %v", clock.Now())
	}
}

func TestClock_NowFuncOnNil(t *testing.T) {
	t.Parallel()

	var clock *Clock
	if clock.NowFunc() == nil {
		t.Fatal("expected a usable fallback for a nil clock")
	}
}

func TestIDGenerator(t *testing.T) {
	t.Parallel()

	gen := NewIDGenerator("booking")
	if got := gen.Next(); got != "booking-1" {
		t.Fatalf("expected booking-1, got %q", got)
	}
	if got := gen.Next(); got != "booking-2" {
		t.Fatalf("expected booking-2, got %q", got)
	}

	anon := NewIDGenerator("")
	if got := anon.Next(); got != "id-1" {
		t.Fatalf("expected id-1, got %q", got)
	}
}

func TestFixtures_UniqueIdentifiers(t *testing.T) {
	t.Parallel()

	a := NewLocationFixture()
	b := NewLocationFixture()
	if a.ID == b.ID {
		t.Fatalf("expected distinct location IDs, got %q twice", a.ID)
	}

	owner := NewUserFixture()
	first := NewBookingFixture("bookable-1", owner)
	second := NewBookingFixture("bookable-1", owner)
	if first.ID == second.ID {
		t.Fatalf("expected distinct booking IDs, got %q twice", first.ID)
	}
	if !first.End.After(first.Start) {
		t.Fatalf("expected a valid default interval, got %v-%v", first.Start, first.End)
	}
}
