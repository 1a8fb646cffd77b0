package remind

import (
	"testing"
	"time"
)

func TestParseDelay(t *testing.T) {
	tests := []struct {
		token   string
		want    time.Duration
		wantErr bool
	}{
		{"10m", 10 * time.Minute, false},
		{"90s", 90 * time.Second, false},
		{"2h", 2 * time.Hour, false},
		{"1d", 24 * time.Hour, false},
		{"30d", 30 * 24 * time.Hour, false},
		{"5M", 5 * time.Minute, false}, // units are case-insensitive
		{"31d", 0, true},               // past the 30 day ceiling
		{"m", 0, true},
		{"0s", 0, true},
		{"-5m", 0, true},
		{"10x", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := parseDelay(tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDelay(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("parseDelay(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}
