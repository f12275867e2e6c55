// Package frontier defines the Priority contract and implementation selector.
package frontier

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Infinity is the key of a member that has not been reached.
const Infinity = math.MaxInt

// ErrUnknownKind is returned by ParseKind for names other than "scan" and "heap".
var ErrUnknownKind = errors.New("frontier: unknown frontier kind")

// Key reports the current priority of an item. Smaller keys are extracted first.
type Key[T comparable] func(item T) int

// Priority is an unvisited set with minimum-key extraction.
//
// Keys are read through the Key function supplied at construction. Callers must
// call Update after changing the key of a member; updating a non-member is a no-op.
type Priority[T comparable] interface {
	// InsertAll adds items in order; items already present are skipped.
	InsertAll(items []T)
	// ExtractMin removes and returns the member with the smallest key together with
	// that key. Ties go to the earliest-inserted member. ok is false when empty.
	ExtractMin() (item T, key int, ok bool)
	// Update signals that the key of item has changed.
	Update(item T)
	// Remove drops item if present.
	Remove(item T)
	// Contains reports membership.
	Contains(item T) bool
	// IsEmpty reports whether no members remain.
	IsEmpty() bool
	// Len returns the number of members.
	Len() int
}

// Kind selects a Priority implementation.
type Kind int

const (
	// Scan selects MinSet, the linear-scan reference.
	Scan Kind = iota
	// Heap selects MinHeap.
	Heap
)

// String returns "scan" or "heap".
func (k Kind) String() string {
	switch k {
	case Scan:
		return "scan"
	case Heap:
		return "heap"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps "scan" / "heap" (case-insensitive) to a Kind.
// The empty string maps to Scan.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "scan":
		return Scan, nil
	case "heap":
		return Heap, nil
	default:
		return Scan, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// New builds an empty Priority of the given kind ordered by key.
// Unknown kinds fall back to Scan.
func New[T comparable](kind Kind, key Key[T]) Priority[T] {
	if kind == Heap {
		return NewMinHeap(key)
	}

	return NewMinSet(key)
}
