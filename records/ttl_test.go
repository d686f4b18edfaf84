package records_test

import (
	"testing"

	"github.com/resolvesip/rfc3263dns/records"
)

func TestMinTTL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []uint32
		want uint32
	}{
		{"empty defaults", nil, records.DefaultTTL},
		{"single", []uint32{42}, 42},
		{"picks min", []uint32{300, 60, 120}, 60},
		{"min first", []uint32{10, 300}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := records.MinTTL(tt.in...); got != tt.want {
				t.Errorf("MinTTL(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
