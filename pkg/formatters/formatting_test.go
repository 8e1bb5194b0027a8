package formatters_test

import (
	"testing"

	"github.com/arthur-debert/capstyle/pkg/formatters"
	"github.com/stretchr/testify/assert"
)

func TestFormattingString(t *testing.T) {
	t.Run("with sequence", func(t *testing.T) {
		fs := formatters.NewFormattingString("attr", "norm")

		assert.Equal(t, "norm", fs.Normal)
		assert.Equal(t, "attr", fs.String())
		assert.Equal(t, "attrtextnorm", fs.Wrap("text"))
		assert.Equal(t, "attrtext1norm", fs.Call("text", 1))
		assert.Equal(t, formatters.KindFormatting, fs.Kind())
	})

	t.Run("without sequence", func(t *testing.T) {
		fs := formatters.NewFormattingString("", "norm")

		assert.Equal(t, "text", fs.Wrap("text"))
		assert.Equal(t, "text", fs.Call("text"))
	})

	t.Run("equality ignores the reset sequence", func(t *testing.T) {
		a := formatters.NewFormattingString("attr", "norm")
		b := formatters.NewFormattingString("attr", "other")

		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(formatters.NewFormattingString("attr2", "norm")))
		assert.False(t, a.Equal(nil))
	})
}

func TestNullCallableString(t *testing.T) {
	null := formatters.NullCallableString{}

	assert.Equal(t, "", null.String())
	assert.Equal(t, formatters.KindNull, null.Kind())

	tests := []struct {
		name     string
		args     []any
		expected string
	}{
		{name: "lone text", args: []any{"text"}, expected: "text"},
		{name: "text and number", args: []any{"text", 1}, expected: ""},
		{name: "two strings", args: []any{"text", "moretext"}, expected: ""},
		{name: "two numbers", args: []any{99, 1}, expected: ""},
		{name: "no arguments", args: nil, expected: ""},
		{name: "zero", args: []any{0}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, null.Call(tt.args...))
		})
	}

	t.Run("wrap keeps text", func(t *testing.T) {
		assert.Equal(t, "text", null.Wrap("text"))
	})

	t.Run("equals any empty attribute", func(t *testing.T) {
		assert.True(t, null.Equal(formatters.NewFormattingString("", "norm")))
		assert.False(t, null.Equal(formatters.NewFormattingString("x", "norm")))
	})
}

func TestAttributeKindString(t *testing.T) {
	assert.Equal(t, "null", formatters.KindNull.String())
	assert.Equal(t, "formatting", formatters.KindFormatting.String())
	assert.Equal(t, "parameterizing", formatters.KindParameterizing.String())
	assert.Equal(t, "unknown", formatters.AttributeKind(42).String())
}
