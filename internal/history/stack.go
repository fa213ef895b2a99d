// Package history implements a bounded linear undo/redo stack.
//
// The stack holds entries with a cursor pointing at the current one.
// Pushing while the cursor is not at the top discards every entry above it
// (the redo branch). When the bound is exceeded the oldest entries are
// evicted and the cursor shifts down with them.
package history

// Stack is a bounded undo/redo stack of T.
//
// Invariant: 0 <= cursor < len(entries) whenever entries is non-empty.
type Stack[T any] struct {
	entries []T
	cursor  int
	limit   int

	// OnDiscard, if set, is called for every entry dropped by truncation
	// or eviction.
	OnDiscard func(T)
}

// New creates an empty stack that keeps at most limit entries.
// A limit below 1 is treated as 1.
func New[T any](limit int) *Stack[T] {
	if limit < 1 {
		limit = 1
	}
	return &Stack[T]{cursor: -1, limit: limit}
}

// Push appends v after the cursor, truncating the redo branch, and makes it
// current. Entries beyond the limit are evicted oldest first.
func (s *Stack[T]) Push(v T) {
	if s.cursor < len(s.entries)-1 {
		for _, e := range s.entries[s.cursor+1:] {
			s.discard(e)
		}
		clear(s.entries[s.cursor+1:])
		s.entries = s.entries[:s.cursor+1]
	}
	s.entries = append(s.entries, v)
	s.cursor = len(s.entries) - 1

	if over := len(s.entries) - s.limit; over > 0 {
		for _, e := range s.entries[:over] {
			s.discard(e)
		}
		n := copy(s.entries, s.entries[over:])
		clear(s.entries[n:])
		s.entries = s.entries[:n]
		s.cursor = min(max(s.cursor-over, 0), len(s.entries)-1)
	}
}

// Undo moves the cursor back one entry and returns the new current entry.
// It reports false, leaving the cursor alone, at the oldest entry.
func (s *Stack[T]) Undo() (T, bool) {
	if s.cursor <= 0 {
		var zero T
		return zero, false
	}
	s.cursor--
	return s.entries[s.cursor], true
}

// Redo moves the cursor forward one entry and returns the new current entry.
// It reports false at the newest entry.
func (s *Stack[T]) Redo() (T, bool) {
	if s.cursor >= len(s.entries)-1 {
		var zero T
		return zero, false
	}
	s.cursor++
	return s.entries[s.cursor], true
}

// Current returns the entry under the cursor.
func (s *Stack[T]) Current() (T, bool) {
	if s.cursor < 0 {
		var zero T
		return zero, false
	}
	return s.entries[s.cursor], true
}

// CanUndo reports whether Undo would move the cursor.
func (s *Stack[T]) CanUndo() bool { return s.cursor > 0 }

// CanRedo reports whether Redo would move the cursor.
func (s *Stack[T]) CanRedo() bool { return s.cursor < len(s.entries)-1 }

// Len returns the number of stored entries.
func (s *Stack[T]) Len() int { return len(s.entries) }

// Cursor returns the index of the current entry, or -1 when empty.
func (s *Stack[T]) Cursor() int { return s.cursor }

// Limit returns the maximum number of entries.
func (s *Stack[T]) Limit() int { return s.limit }

// Reset drops every entry.
func (s *Stack[T]) Reset() {
	for _, e := range s.entries {
		s.discard(e)
	}
	clear(s.entries)
	s.entries = s.entries[:0]
	s.cursor = -1
}

func (s *Stack[T]) discard(v T) {
	if s.OnDiscard != nil {
		s.OnDiscard(v)
	}
}
