package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSplitPart(t *testing.T) {
	part, err := GetSplitPart("https://torob.com/p/abc123/title", "/", 4)
	assert.NoError(t, err)
	assert.Equal(t, "abc123", part)

	_, err = GetSplitPart("a/b", "/", 5)
	assert.Error(t, err)
}

func TestFormatGrouped(t *testing.T) {
	assert.Equal(t, "45,000,000", FormatGrouped(45000000))
	assert.Equal(t, "1,500", FormatGrouped(1500))
	assert.Equal(t, "999", FormatGrouped(999))
	assert.Equal(t, "0", FormatGrouped(0))
	assert.Equal(t, "12.50", FormatGrouped(12.5))
	assert.Equal(t, "1,299.99", FormatGrouped(1299.99))
}
