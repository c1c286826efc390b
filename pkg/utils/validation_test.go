package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSlug(t *testing.T) {
	valid := []string{"movies", "sci-fi", "top_10", "a", "2024"}
	for _, s := range valid {
		assert.True(t, IsSlug(s), "expected %q to be a slug", s)
	}

	invalid := []string{"", "Sci-Fi", "with space", "ünïcode", "slash/y", "dot."}
	for _, s := range invalid {
		assert.False(t, IsSlug(s), "expected %q to be rejected", s)
	}
}

func TestValidateStructSlugTag(t *testing.T) {
	type payload struct {
		Slug string `validate:"required,slug"`
	}

	assert.Nil(t, ValidateStruct(payload{Slug: "sci-fi"}))

	errs := ValidateStruct(payload{Slug: "Sci Fi"})
	assert.Contains(t, errs, "Slug")
}

func TestValidateStructMessages(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Name  string `validate:"min=3"`
	}

	errs := ValidateStruct(payload{Email: "nope", Name: "ab"})
	assert.Equal(t, "Invalid email format", errs["Email"])
	assert.Equal(t, "Minimum is 3", errs["Name"])

	assert.Nil(t, ValidateStruct(payload{Email: "a@b.io", Name: "abc"}))
}
