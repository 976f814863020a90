package booking

// RedactedSubject replaces the subject of bookings presented to users other
// than the owner. The slot itself stays visible; only what it is for is
// hidden.
const RedactedSubject = ""

// Present applies the visibility policy to a booking for the requesting
// user. The owner, matched by external identifier, sees the booking
// unmodified; everyone else sees the subject redacted with identifiers,
// bookable, and interval intact.
func Present(b Booking, requesterExternalID string) Booking {
	if b.User.ExternalID == requesterExternalID {
		return b
	}
	b.Subject = RedactedSubject
	return b
}

// PresentAll applies Present to every booking in the collection, preserving
// order.
func PresentAll(bookings []Booking, requesterExternalID string) []Booking {
	if bookings == nil {
		return nil
	}
	out := make([]Booking, len(bookings))
	for i, b := range bookings {
		out[i] = Present(b, requesterExternalID)
	}
	return out
}
