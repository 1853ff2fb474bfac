package semantic

import "testing"

func TestInferExpected(t *testing.T) {
	cases := []struct {
		column string
		want   Type
	}{
		{"age", Numeric},
		{"Prix Unitaire", Numeric},
		{"total_amount", Numeric},
		{"quantity", Numeric},
		{"birth_date", Date},
		{"created_at", Date},
		{"Date de naissance", Date},
		{"is_active", Boolean},
		{"has_children", Boolean},
		{"actif", Boolean},
		{"customer_id", Identifier},
		{"Code Postal", Identifier},
		{"reference", Identifier},
		{"status", Categorical},
		{"category", Categorical},
		{"genre", Categorical},
		{"comment", Text},
		{"free_form_notes", Text},
		{"", Text},
	}
	for _, c := range cases {
		if got := InferExpected(c.column); got != c.want {
			t.Errorf("InferExpected(%q) = %s, want %s", c.column, got, c.want)
		}
	}
}

func TestInferExpectedCaseInsensitive(t *testing.T) {
	if got := InferExpected("AGE"); got != Numeric {
		t.Fatalf("InferExpected(AGE) = %s, want numeric", got)
	}
	if got := InferExpected("Is_Active"); got != Boolean {
		t.Fatalf("InferExpected(Is_Active) = %s, want boolean", got)
	}
}

func TestInferExpectedPriorityOrder(t *testing.T) {
	// "date_id" matches both date and identifier keywords; date wins because
	// its rule group comes first.
	if got := InferExpected("date_id"); got != Date {
		t.Fatalf("InferExpected(date_id) = %s, want date", got)
	}
	// "date_montant" matches both numeric and date keywords; numeric wins
	// because its rule group comes first.
	if got := InferExpected("date_montant"); got != Numeric {
		t.Fatalf("InferExpected(date_montant) = %s, want numeric", got)
	}
}
