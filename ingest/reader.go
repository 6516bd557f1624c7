package ingest

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Sentinel errors for edge-stream parsing.
var (
	// ErrMalformedToken is returned when a token cannot be parsed as a decimal integer.
	ErrMalformedToken = errors.New("ingest: malformed integer token")

	// ErrTruncatedPair is returned when the stream ends after a lone u with no matching v.
	ErrTruncatedPair = errors.New("ingest: truncated edge pair at end of stream")

	// ErrUnexpectedComment is returned when a '#' token appears after data-start.
	ErrUnexpectedComment = errors.New("ingest: comment line appears mid-stream, after data-start")
)

// Reader yields (u, v) edge pairs from a SNAP-style text file.
//
// Reader is not safe for concurrent use: it holds a single cursor into
// a single open file handle.
type Reader struct {
	f         *os.File
	scanner   *bufio.Scanner
	dataStart int64
}

// Open opens path, skips the leading comment block, and positions the
// reader at data-start.
//
// Complexity: O(length of the comment block) to locate data-start.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "ingest: open %q", path)
	}

	r := &Reader{f: f}
	if err := r.locateDataStart(); err != nil {
		f.Close()
		return nil, err
	}
	if err := r.Rewind(); err != nil {
		f.Close()
		return nil, err
	}

	return r, nil
}

// locateDataStart scans leading lines, advancing past comment lines and
// blank lines, and records the byte offset of the first data line (or
// of EOF, if the file is all comments).
func (r *Reader) locateDataStart() error {
	br := bufio.NewReader(r.f)
	var offset int64
	for {
		line, err := br.ReadString('\n')
		trimmed := strings.TrimSpace(line)
		isComment := len(trimmed) > 0 && trimmed[0] == '#'
		isBlank := len(trimmed) == 0

		if isComment || isBlank {
			offset += int64(len(line))
			if err == io.EOF {
				break
			}
			if err != nil {
				return errors.Wrap(err, "ingest: scanning leading comments")
			}
			continue
		}
		// First data (or non-comment) line: data-start is right before it.
		break
	}
	r.dataStart = offset
	return nil
}

// Rewind seeks the underlying file back to data-start and resets the
// token scanner, without reopening the file.
//
// Complexity: O(1).
func (r *Reader) Rewind() error {
	if _, err := r.f.Seek(r.dataStart, io.SeekStart); err != nil {
		return errors.Wrap(err, "ingest: rewind seek")
	}
	r.scanner = bufio.NewScanner(r.f)
	r.scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	r.scanner.Split(bufio.ScanWords)

	return nil
}

// Next returns the next (u, v) pair in the stream. ok is false on a
// clean EOF with no pending tokens; err is non-nil on any malformed
// input (a stray comment, a non-integer token, or a truncated pair).
//
// Negative integers are accepted here and surfaced to the caller
// unchanged; rejecting them is the CSR builder's responsibility.
func (r *Reader) Next() (u, v int64, ok bool, err error) {
	uTok, ok, err := r.nextToken()
	if err != nil || !ok {
		return 0, 0, false, err
	}
	u, err = parseToken(uTok)
	if err != nil {
		return 0, 0, false, err
	}

	vTok, ok, err := r.nextToken()
	if err != nil {
		return 0, 0, false, err
	}
	if !ok {
		return 0, 0, false, errors.Wrapf(ErrTruncatedPair, "after u=%d", u)
	}
	v, err = parseToken(vTok)
	if err != nil {
		return 0, 0, false, err
	}

	return u, v, true, nil
}

// nextToken returns the next whitespace-delimited token, or ok=false on EOF.
func (r *Reader) nextToken() (string, bool, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", false, errors.Wrap(err, "ingest: reading token")
		}
		return "", false, nil
	}
	tok := r.scanner.Text()
	if strings.HasPrefix(tok, "#") {
		return "", false, errors.Wrapf(ErrUnexpectedComment, "token %q", tok)
	}

	return tok, true, nil
}

// parseToken parses a decimal integer token, signed to let negative
// vertex IDs pass through for the builder to reject.
func parseToken(tok string) (int64, error) {
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedToken, "token %q", tok)
	}

	return n, nil
}

// Close releases the underlying file handle. Safe to call once; the
// Reader must not be used afterward.
func (r *Reader) Close() error {
	return r.f.Close()
}
