// Package client contains the REST client of the stockkeeper inventory API.
//
// # Overview
//
// The package provides:
//  1. Narrow contracts per resource (AuthClient, EntryClient, UnitClient)
//     combined into Client, so consumers depend only on what they call.
//  2. HTTPClient, the JSON-over-HTTP implementation. It attaches the bearer
//     token from a TokenSource, tags every request with an X-Request-ID,
//     spans it with OpenTelemetry and optionally rate-limits outbound calls.
//     Entry writes that carry an image go out as multipart/form-data; updates
//     use POST with a _method=PUT override field.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Authenticated calls without a token fail with ErrUnauthenticated before any
// I/O. Transport failures wrap ErrUnavailable. Non-2xx responses, and 2xx
// bodies that cannot be decoded, are *RequestError values matching
// ErrRequestFailed and carrying the server's message when one was present.
// UserMessage turns any of these into the single line shown to users.
//
// All operations accept context.Context and honor cancellation. HTTPClient is
// safe for concurrent use.
package client
