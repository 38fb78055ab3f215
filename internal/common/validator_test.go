package common

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	v := NewValidator()
	assert.True(t, v.Valid())

	v.Check(true, "ok", "should not be recorded")
	assert.True(t, v.Valid())

	v.Check(false, "field", "first message")
	v.Check(false, "field", "second message is ignored")
	assert.False(t, v.Valid())
	assert.Equal(t, "first message", v.Errors["field"])

	err := v.ValidationError()
	assert.ErrorAs(t, err, &ValidationError{})
}

func TestValidatorHelpers(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.CheckMinLength("123456", 6))
	assert.False(t, v.CheckMinLength("12345", 6))

	rx := regexp.MustCompile("^[a-z]+$")
	assert.True(t, v.Matches("abc", rx))
	assert.False(t, v.Matches("abc1", rx))
}
