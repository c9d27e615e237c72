package tables

import "testing"

func TestMnemonicsSpotCheck(t *testing.T) {
	cases := map[string]rune{
		"AA": 'Å',
		"ss": 'ß',
		`"A`: 'Ä',
	}
	for k, want := range cases {
		got, ok := Mnemonics[k]
		if !ok {
			t.Errorf("Mnemonics[%q]: missing", k)
			continue
		}
		if got != want {
			t.Errorf("Mnemonics[%q] = %q, want %q", k, got, want)
		}
	}
}

func TestEntitiesSpotCheck(t *testing.T) {
	cases := map[string]rune{
		"eacute": 'é',
		"hellip": '…',
		"amp":    '&',
		"lt":     '<',
	}
	for k, want := range cases {
		got, ok := Entities[k]
		if !ok {
			t.Errorf("Entities[%q]: missing", k)
			continue
		}
		if got != want {
			t.Errorf("Entities[%q] = %q, want %q", k, got, want)
		}
	}
}

func TestTableEntryCounts(t *testing.T) {
	// Mnemonics and Entities are looked up in different syntactic contexts
	// (two-character sequences vs. "&name;" words) so overlap wouldn't be
	// a bug, but a spot count guards against a transcription error
	// collapsing the tables.
	if len(Mnemonics) != 215 {
		t.Errorf("len(Mnemonics) = %d, want 215", len(Mnemonics))
	}
	if len(Entities) != 252 {
		t.Errorf("len(Entities) = %d, want 252", len(Entities))
	}
}
