package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitlePattern(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{text: "matrix", expected: "(matrix)"},
		{text: "the  matrix reloaded", expected: "(the|matrix|reloaded)"},
		{text: "a.b", expected: `(a\.b)`},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.expected, titlePattern(tt.text))
		})
	}
}
