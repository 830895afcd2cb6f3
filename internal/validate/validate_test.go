package validate

import "testing"

func TestErrors(t *testing.T) {
	var errs Errors
	if !errs.Ok() {
		t.Error("empty Errors should be Ok")
	}

	errs.MinLen("username", "ab", 3)
	errs.MinLen("password", "longenough", 6)
	errs.Required("date", "")

	if errs.Ok() {
		t.Fatal("expected validation failures")
	}
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2", len(errs))
	}
	if errs[0].Field != "username" || errs[1].Field != "date" {
		t.Errorf("fields = %q, %q", errs[0].Field, errs[1].Field)
	}
}

func TestMinLenCountsRunes(t *testing.T) {
	tests := []struct {
		name  string
		value string
		min   int
		ok    bool
	}{
		{"ten devanagari runes", "१२ एमजी रोड पुणे", 10, true},
		{"three runes over min bytes", "पुणे", 10, false},
		{"ascii exact", "12 MG Road", 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errs Errors
			errs.MinLen("address", tt.value, tt.min)
			if errs.Ok() != tt.ok {
				t.Errorf("MinLen(%q, %d) ok = %v, want %v", tt.value, tt.min, errs.Ok(), tt.ok)
			}
		})
	}
}
