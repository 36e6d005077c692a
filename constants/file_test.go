package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapExtToFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ext  string
		want Format
	}{
		{"txt", TXT},
		{".txt", TXT},
		{"PDF", PDF},
		{"png", IMAGE},
		{"jpg", IMAGE},
		{"JPEG", IMAGE},
		{"csv", OFFICE},
		{"xlsx", OFFICE},
		{"exe", ""},
		{"docx", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapExtToFormat(tt.ext), "ext %q", tt.ext)
	}
}

func TestIsAllowedExt(t *testing.T) {
	t.Parallel()

	assert.True(t, IsAllowedExt(".TXT"))
	assert.True(t, IsAllowedExt("jpeg"))
	assert.False(t, IsAllowedExt("zip"))
	assert.False(t, IsAllowedExt(""))
}
