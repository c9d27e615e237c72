// Package strbuilder implements a slice/owned-string hybrid fragment
// builder: a way to accumulate output fragments that stays
// allocation-free as long as fragments are adjacent slices of the
// original input, and only falls back to an owned string once a rewrite
// is emitted or two non-adjacent slices must be joined.
//
// This is a direct translation of the ABCdb Rust core's RString type
// (original_source/src/visitors.rs): a slice variant carrying [start,end)
// bounds into the input, an owned variant carrying a materialized string,
// and an Add operation that coalesces two adjacent slices into one.
package strbuilder

// Fragment is either a slice into the original input or an owned string.
// The zero value is an empty slice fragment.
type Fragment struct {
	owned      string
	start, end int
	isOwned    bool
}

// FromSlice builds a Fragment referencing input[start:end] without
// copying.
func FromSlice(start, end int) Fragment {
	return Fragment{start: start, end: end}
}

// FromOwned builds a Fragment that owns s directly, bypassing the input
// buffer entirely (used by rewrites that synthesize new text).
func FromOwned(s string) Fragment {
	return Fragment{owned: s, isOwned: true}
}

// Add concatenates left and right in that order. Two adjacent slices
// (left.end == right.start) coalesce into a single wider slice with no
// allocation; any other combination materializes an owned string.
func Add(left, right Fragment, input string) Fragment {
	if !left.isOwned && !right.isOwned && left.end == right.start {
		return Fragment{start: left.start, end: right.end}
	}
	var b []byte
	b = append(b, left.text(input)...)
	b = append(b, right.text(input)...)
	return Fragment{owned: string(b), isOwned: true}
}

func (f Fragment) text(input string) string {
	if f.isOwned {
		return f.owned
	}
	return input[f.start:f.end]
}

// Materialize reduces f to a concrete string, slicing input only when f is
// still a slice fragment.
func (f Fragment) Materialize(input string) string {
	return f.text(input)
}

// Builder accumulates Fragments left to right via Add, offering an
// imperative interface over the functional Fragment/Add pair above for
// callers (the tree walker) that build up a result incrementally.
type Builder struct {
	input string
	acc   Fragment
	empty bool
}

// New creates a Builder over input. Fragments passed to Append must be
// slices of input or owned strings; mixing in slices of a different
// string produces incorrect output (the coalescing check compares
// offsets, not buffer identity).
func New(input string) *Builder {
	return &Builder{input: input, empty: true}
}

// Append adds f to the accumulated result.
func (b *Builder) Append(f Fragment) {
	if b.empty {
		b.acc = f
		b.empty = false
		return
	}
	b.acc = Add(b.acc, f, b.input)
}

// AppendSlice is shorthand for Append(FromSlice(start, end)).
func (b *Builder) AppendSlice(start, end int) {
	if start == end {
		return
	}
	b.Append(FromSlice(start, end))
}

// AppendString is shorthand for Append(FromOwned(s)).
func (b *Builder) AppendString(s string) {
	if s == "" {
		return
	}
	b.Append(FromOwned(s))
}

// String materializes the accumulated result.
func (b *Builder) String() string {
	if b.empty {
		return ""
	}
	return b.acc.Materialize(b.input)
}

// Fragment returns the accumulated result as a Fragment rather than a
// materialized string, so a caller combining several sub-builders (the
// tree walker, recursing into a parent's children) can keep chaining Add
// without forcing an allocation at every nesting level — only the
// outermost call to String ever needs to touch a byte.
func (b *Builder) Fragment() Fragment {
	if b.empty {
		return FromSlice(0, 0)
	}
	return b.acc
}
