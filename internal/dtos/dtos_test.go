package dtos

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
		check   func(time.Time) bool
	}{
		{
			"rfc3339", "2026-09-03T14:30:00+02:00", false,
			func(tm time.Time) bool { return tm.Minute() == 30 },
		},
		{
			"date only", "2026-09-03", false,
			func(tm time.Time) bool {
				return tm.Year() == 2026 && tm.Month() == time.September && tm.Day() == 3 && tm.Hour() == 0
			},
		},
		{"garbage", "next tuesday", true, nil},
		{"empty", "", true, nil},
		{"wrong order", "03-09-2026", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) failed: %v", tt.in, err)
			}
			if !tt.check(got) {
				t.Errorf("ParseDate(%q) = %v", tt.in, got)
			}
		})
	}
}
