package autosplit

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Signature is a byte pattern parsed from a hex string with "?" (or "??")
// wildcards, plus a precomputed Boyer-Moore-Horspool skip table.
type Signature struct {
	bytes     []byte
	wildcard  []bool
	skipTable [256]int
}

// ParseSignature parses a hex string such as "48 8B ?? 89" (one byte per
// whitespace-separated field) into a Signature. "?" or "??" marks a
// wildcard byte.
func ParseSignature(pattern string) (*Signature, error) {
	fields := strings.Fields(pattern)
	if len(fields) == 0 {
		return nil, fmt.Errorf("autosplit: empty signature")
	}

	s := &Signature{
		bytes:    make([]byte, len(fields)),
		wildcard: make([]bool, len(fields)),
	}
	for i, f := range fields {
		if f == "?" || f == "??" {
			s.wildcard[i] = true
			continue
		}
		b, err := hex.DecodeString(f)
		if err != nil || len(b) != 1 {
			return nil, fmt.Errorf("autosplit: bad signature byte %q: %w", f, err)
		}
		s.bytes[i] = b[0]
	}
	s.buildSkipTable()
	return s, nil
}

// buildSkipTable computes, for each possible byte b, the largest shift s
// such that every position within [end-s, end] of the pattern is either b
// or a wildcard — the classic Horspool skip table, generalized to tolerate
// wildcards (a wildcard matches any byte, so it caps the shift for every b).
func (s *Signature) buildSkipTable() {
	n := len(s.bytes)
	for b := 0; b < 256; b++ {
		shift := n
		for i := n - 2; i >= 0; i-- {
			if s.wildcard[i] || s.bytes[i] == byte(b) {
				shift = n - 1 - i
				break
			}
		}
		s.skipTable[b] = shift
	}
}

func (s *Signature) matchesAt(data []byte, pos int) bool {
	for i, want := range s.bytes {
		if s.wildcard[i] {
			continue
		}
		if data[pos+i] != want {
			return false
		}
	}
	return true
}

// Scan returns the offset of the first match of s within data at or after
// start, or -1 if none. Uses the precomputed skip table to advance past
// mismatches faster than a naive byte-by-byte substring scan.
func (s *Signature) Scan(data []byte, start int) int {
	n := len(s.bytes)
	if n == 0 || n > len(data) {
		return -1
	}
	pos := start
	last := len(data) - n
	for pos <= last {
		if s.matchesAt(data, pos) {
			return pos
		}
		end := pos + n - 1
		pos += s.skipTable[data[end]]
	}
	return -1
}

// ScanAll returns every non-overlapping match offset within data.
func (s *Signature) ScanAll(data []byte) []int {
	var out []int
	pos := 0
	for {
		idx := s.Scan(data, pos)
		if idx < 0 {
			return out
		}
		out = append(out, idx)
		pos = idx + len(s.bytes)
	}
}

// Len returns the pattern length in bytes.
func (s *Signature) Len() int { return len(s.bytes) }
