package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Snapshot is the exact, transitively resolved dependency tree produced by npm shrinkwrap.
// It is opaque to npmbridge beyond equality checks and is passed through as decoded JSON.
type Snapshot map[string]any

// Empty reports whether the snapshot pins nothing.
func (s Snapshot) Empty() bool {
	return len(s) == 0
}

// PackagesLayout reports whether the snapshot is a lockfileVersion 2/3 `packages` tree.
// Those trees are keyed by install path and always carry the root entry under "",
// which no npm package name can be.
func (s Snapshot) PackagesLayout() bool {
	_, ok := s[""]
	return ok
}

// Equal reports whether both snapshots describe the same tree.
// Equality is structural: both sides are compared in canonical JSON form,
// so key order and map identity do not matter.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.Empty() || other.Empty() {
		return s.Empty() && other.Empty()
	}

	a, err := s.canonical()
	if err != nil {
		return false
	}
	b, err := other.canonical()
	if err != nil {
		return false
	}
	return bytes.Equal(a, b)
}

// Fingerprint returns a short hex digest of the canonical snapshot, used for logs and telemetry.
// An empty snapshot has an empty fingerprint.
func (s Snapshot) Fingerprint() string {
	if s.Empty() {
		return ""
	}
	data, err := s.canonical()
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// canonical encodes the snapshot with sorted keys and no insignificant whitespace.
func (s Snapshot) canonical() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(map[string]any(s)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
