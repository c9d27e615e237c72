package strbuilder

import "testing"

func TestAddCoalescesAdjacentSlices(t *testing.T) {
	input := "abcdef"
	got := Add(FromSlice(0, 2), FromSlice(2, 4), input)
	if got.isOwned {
		t.Fatalf("expected coalesced slice, got owned fragment")
	}
	if got.start != 0 || got.end != 4 {
		t.Fatalf("expected slice[0,4), got slice[%d,%d)", got.start, got.end)
	}
}

func TestAddNonAdjacentSlicesMaterialize(t *testing.T) {
	input := "abcdef"
	got := Add(FromSlice(0, 2), FromSlice(3, 5), input)
	if !got.isOwned {
		t.Fatalf("expected owned fragment for non-adjacent slices")
	}
	if got.owned != "ab"+"de" {
		t.Fatalf("unexpected owned text %q", got.owned)
	}
}

func TestAddWithOwnedSideAlwaysMaterializes(t *testing.T) {
	input := "abcdef"
	got := Add(FromSlice(0, 2), FromOwned("X"), input)
	if !got.isOwned || got.owned != "abX" {
		t.Fatalf("expected owned \"abX\", got %+v", got)
	}
	got = Add(FromOwned("X"), FromSlice(2, 4), input)
	if !got.isOwned || got.owned != "Xcd" {
		t.Fatalf("expected owned \"Xcd\", got %+v", got)
	}
}

func TestBuilderPassthroughIsOneCoalescedSlice(t *testing.T) {
	input := "A B  C"
	b := New(input)
	b.AppendSlice(0, 1)
	b.AppendSlice(1, 2)
	b.AppendSlice(2, len(input))
	if b.acc.isOwned {
		t.Fatalf("expected a single coalesced slice fragment for pure pass-through")
	}
	if got := b.String(); got != input {
		t.Fatalf("expected %q, got %q", input, got)
	}
}

func TestBuilderWithRewriteMaterializes(t *testing.T) {
	input := "a1 b2"
	b := New(input)
	b.AppendSlice(0, 1) // "a"
	b.AppendString("")  // note_length_bigger(1) -> empty
	b.AppendSlice(2, 5) // " b2"
	if got, want := b.String(), "a b2"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
