package model

import (
	"encoding/json"
	"testing"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"iso date", `"2026-01-15"`, "2026-01-15", false},
		{"slash date", `"2026/01/15"`, "2026-01-15", false},
		{"rfc3339", `"2026-01-15T10:30:00Z"`, "2026-01-15", false},
		{"empty string", `""`, "", false},
		{"garbage", `"next tuesday"`, "", true},
		{"not a string", `42`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.want == "" {
				if !d.IsZero() {
					t.Errorf("expected zero date, got %v", d.Time)
				}
				return
			}
			if got := d.Format("2006-01-02"); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	var zero Date
	b, err := json.Marshal(zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "null" {
		t.Errorf("expected null for zero date, got %s", b)
	}
}
