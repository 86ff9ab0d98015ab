package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNumberFormat(t *testing.T) {
	orderNumber := GenerateOrderNumber()

	pattern := regexp.MustCompile(`^ORD-\d{8}-\d{6}-\d{4}$`)
	assert.True(t, pattern.MatchString(orderNumber), "got %s", orderNumber)
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 3, ParseInt("3", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 10, ParseInt("0", 10))
	assert.Equal(t, 10, ParseInt("-5", 10))
}

func TestParseInt64(t *testing.T) {
	assert.Equal(t, int64(42), ParseInt64("42"))
	assert.Equal(t, int64(0), ParseInt64(""))
	assert.Equal(t, int64(0), ParseInt64("x"))
	assert.Equal(t, int64(-3), ParseInt64("-3"))
}
