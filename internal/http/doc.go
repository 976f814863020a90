// Package http provides HTTP handlers and middleware for the bookit API.
//
// The router exposes the following endpoints under /v1:
//   - GET /v1/ping: liveness probe.
//   - GET /v1/location, GET /v1/location/{id}: read-only location catalog.
//   - GET /v1/location/{id}/bookable: the location's bookables; with `start`
//     and `end` query bounds (naive date-times, supplied together) each entry
//     carries derived availability for that window.
//   - GET /v1/location/{id}/bookable/{id}: one bookable.
//   - GET /v1/booking: all bookings, subject-masked for non-owners; optional
//     `start`/`end` date bounds narrow to bookings overlapping the window.
//   - POST /v1/booking: creates a booking for the authenticated identity.
//   - GET /v1/booking/{id}, DELETE /v1/booking/{id}: lookup (masked) and
//     owner-only deletion.
//
// All endpoints except /v1/ping require an authenticated identity resolved
// by the RequireIdentity middleware from the Bearer token's claims. DTOs
// live alongside their handlers.
package http
