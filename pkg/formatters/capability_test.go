package formatters_test

import (
	"testing"

	"github.com/arthur-debert/capstyle/pkg/formatters"
	"github.com/arthur-debert/capstyle/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestResolveCapability(t *testing.T) {
	t.Run("sugar is applied before lookup", func(t *testing.T) {
		term := testutil.NewStubTerminal()
		term.Aliases = map[string]string{"mnemonic": "xyz"}

		assert.Equal(t, "seq-xyz", formatters.ResolveCapability(term, "mnemonic"))
		assert.Equal(t, "seq-natural", formatters.ResolveCapability(term, "natural"))
		assert.Equal(t, []string{"xyz", "natural"}, term.Lookups)
	})

	t.Run("missing capability is empty", func(t *testing.T) {
		term := testutil.NewStubTerminal()
		term.LookupFunc = func(string) ([]byte, bool) { return nil, false }

		assert.Equal(t, "", formatters.ResolveCapability(term, "natural"))
	})

	t.Run("bytes are preserved", func(t *testing.T) {
		term := testutil.NewStubTerminal()
		term.LookupFunc = func(string) ([]byte, bool) { return []byte{0x1b, '[', 0x9b, 0xff}, true }

		assert.Equal(t, "\x1b[\x9b\xff", formatters.ResolveCapability(term, "odd"))
	})

	t.Run("no styling never queries the terminal", func(t *testing.T) {
		term := new(testutil.MockTerminal)
		term.On("DoesStyling").Return(false)

		assert.Equal(t, "", formatters.ResolveCapability(term, "natural"))
		term.AssertNotCalled(t, "Lookup", mock.Anything)
		term.AssertNotCalled(t, "Sugar")
		term.AssertExpectations(t)
	})
}
