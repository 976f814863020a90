package http

import (
	"context"

	"github.com/mathomas/bookit-api/internal/application"
)

type contextKey string

const (
	identityContextKey   contextKey = "identity"
	locationIDContextKey contextKey = "location_id"
	bookableIDContextKey contextKey = "bookable_id"
	bookingIDContextKey  contextKey = "booking_id"
)

// ContextWithIdentity returns a derived context containing the authenticated
// identity.
func ContextWithIdentity(ctx context.Context, identity application.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// IdentityFromContext extracts the authenticated identity from context if
// available.
func IdentityFromContext(ctx context.Context) (application.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(application.Identity)
	return identity, ok
}

// ContextWithLocationID injects the location identifier resolved from the
// request path.
func ContextWithLocationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, locationIDContextKey, id)
}

// LocationIDFromContext extracts a location identifier previously associated
// with the context.
func LocationIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(locationIDContextKey).(string)
	return id, ok
}

// ContextWithBookableID injects the bookable identifier resolved from the
// request path.
func ContextWithBookableID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, bookableIDContextKey, id)
}

// BookableIDFromContext extracts a bookable identifier previously associated
// with the context.
func BookableIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(bookableIDContextKey).(string)
	return id, ok
}

// ContextWithBookingID injects the booking identifier resolved from the
// request path.
func ContextWithBookingID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, bookingIDContextKey, id)
}

// BookingIDFromContext extracts a booking identifier previously associated
// with the context.
func BookingIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(bookingIDContextKey).(string)
	return id, ok
}
