package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit *int
		want  int
	}{
		{"nil uses default", nil, DefaultDepartmentLimit},
		{"zero clamps to one", intPtr(0), 1},
		{"negative clamps to one", intPtr(-7), 1},
		{"in range passes through", intPtr(25), 25},
		{"ceiling passes through", intPtr(MaxDepartmentLimit), MaxDepartmentLimit},
		{"above ceiling clamps down", intPtr(1000), MaxDepartmentLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampLimit(tt.limit, DefaultDepartmentLimit, MaxDepartmentLimit)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClampOffset(t *testing.T) {
	assert.Equal(t, 0, ClampOffset(nil))
	assert.Equal(t, 0, ClampOffset(intPtr(-3)))
	assert.Equal(t, 0, ClampOffset(intPtr(0)))
	assert.Equal(t, 40, ClampOffset(intPtr(40)))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(-10, 1, 50))
	assert.Equal(t, 50, Clamp(99, 1, 50))
	assert.Equal(t, 20, Clamp(20, 1, 50))
}
