// Package ingest reads SNAP-style edge-list text streams.
//
// What
//
//   - Opens a path, skips a leading block of comment lines (lines whose
//     first non-whitespace rune is '#'), and records the byte offset
//     immediately following that block as data-start.
//   - Yields (u, v) integer pairs parsed from whitespace-separated
//     tokens, in input order.
//   - Supports Rewind, which seeks the underlying file back to
//     data-start without reopening it, so a caller can traverse the
//     same edge stream more than once (the csr package's three-pass
//     builder does exactly this).
//
// Why
//
//   - The CSR builder needs three independent passes over the same
//     edge stream without paying the cost of reopening and re-parsing
//     the comment header each time.
//
// Errors
//
//   - ErrMalformedToken  a token is present but is not a decimal integer.
//   - ErrTruncatedPair   the stream ends after a lone u with no matching v.
//   - ErrUnexpectedComment  a '#' token appears after data-start.
//
// A clean EOF with no pending tokens ends iteration without error.
package ingest
