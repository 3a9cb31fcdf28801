// Package googledocs adapts the Google Drive, Docs, and Drive Activity
// APIs to the analysis core's driven ports.
//
// The adapter owns all API concerns the core must not see:
//   - service construction from an oauth2.TokenSource
//   - pagination (every lister loops until no next page token remains)
//   - mapping loosely-typed API records onto the typed domain records,
//     including skip-and-log handling of malformed timestamps
//   - pacing of revision content exports against the export endpoint's
//     unstated rate limit (a fixed delay between fetches, not backoff)
//
// All calls take a context and stop early on cancellation.
package googledocs
