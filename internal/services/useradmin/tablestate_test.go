package useradmin

import "testing"

func TestParseSortStateDefault(t *testing.T) {
	t.Parallel()

	state, err := ParseSortState("")
	if err != nil {
		t.Fatalf("ParseSortState: %v", err)
	}
	if state.Field != "created_at" || !state.Desc {
		t.Fatalf("default sort = %+v, want created_at desc", state)
	}
}

func TestParseSortStateRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw   string
		field string
		desc  bool
	}{
		{"email", "email", false},
		{"email desc", "email", true},
		{"created_at desc", "created_at", true},
		{"display_name", "display_name", false},
	}
	for _, tc := range cases {
		state, err := ParseSortState(tc.raw)
		if err != nil {
			t.Fatalf("ParseSortState(%q): %v", tc.raw, err)
		}
		if state.Field != tc.field || state.Desc != tc.desc {
			t.Fatalf("ParseSortState(%q) = %+v", tc.raw, state)
		}
		if got := state.OrderBy(); got != tc.raw {
			t.Fatalf("OrderBy() = %q, want %q", got, tc.raw)
		}
	}
}

func TestParseSortStateRejectsUnknownField(t *testing.T) {
	t.Parallel()

	if _, err := ParseSortState("password desc"); err == nil {
		t.Fatal("expected error for unsortable field")
	}
}

func TestParseSortStateRejectsMultipleFields(t *testing.T) {
	t.Parallel()

	if _, err := ParseSortState("email, role desc"); err == nil {
		t.Fatal("expected error for multi-field order_by")
	}
}

func TestNextForTogglesDirection(t *testing.T) {
	t.Parallel()

	state := SortState{Field: "email"}

	next := state.NextFor("email")
	if next.Field != "email" || !next.Desc {
		t.Fatalf("second click = %+v, want email desc", next)
	}

	next = next.NextFor("email")
	if next.Field != "email" || next.Desc {
		t.Fatalf("third click = %+v, want email asc", next)
	}
}

func TestNextForNewColumnStartsAscending(t *testing.T) {
	t.Parallel()

	state := SortState{Field: "email", Desc: true}
	next := state.NextFor("role")
	if next.Field != "role" || next.Desc {
		t.Fatalf("NextFor(role) = %+v, want role asc", next)
	}
}
