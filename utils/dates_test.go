package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2024-01-01"))
	assert.True(t, ValidDate("1990-12-31"))

	assert.False(t, ValidDate("2024-13-01"))
	assert.False(t, ValidDate("2024-1-1"))
	assert.False(t, ValidDate("01/01/2024"))
	assert.False(t, ValidDate(""))
}

func TestTodayShape(t *testing.T) {
	assert.True(t, ValidDate(Today()))
}
