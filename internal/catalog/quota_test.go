package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanUpload(t *testing.T) {
	tests := []struct {
		name  string
		count int
		limit int
		want  bool
	}{
		{"empty catalog", 0, 3, true},
		{"below limit", 2, 3, true},
		{"at limit", 3, 3, false},
		{"above limit", 4, 3, false},
		{"zero limit disables uploads", 0, 0, false},
		{"negative limit disables uploads", 0, -1, false},
		{"limit of one", 0, 1, true},
		{"limit of one reached", 1, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanUpload(tt.count, tt.limit))
		})
	}
}
