package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func engine(t *testing.T) *validator.Validate {
	t.Helper()
	Register()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return v
}

func TestCategoryValidator(t *testing.T) {
	v := engine(t)

	valid := []string{"History", "General Knowledge", "a", "Pop Culture"}
	for _, s := range valid {
		assert.NoError(t, v.Var(s, "category"), s)
	}

	invalid := []string{"", "01010101", "one two three", "History!", " History", "History "}
	for _, s := range invalid {
		assert.Error(t, v.Var(s, "category"), s)
	}
}

func TestAlphaNameValidator(t *testing.T) {
	v := engine(t)

	assert.NoError(t, v.Var("Darragh", "alphaname"))
	assert.Error(t, v.Var("Name12@!", "alphaname"))
	assert.Error(t, v.Var("two words", "alphaname"))
	assert.Error(t, v.Var("", "alphaname"))
}
