package formatters_test

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/capstyle/pkg/errors"
	"github.com/arthur-debert/capstyle/pkg/formatters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParameterizingStringRoundTrip(t *testing.T) {
	pstr := formatters.NewParameterizingString("seqname", "norm", "cap-name", nil)

	t.Run("json", func(t *testing.T) {
		data, err := json.Marshal(pstr)
		require.NoError(t, err)

		var decoded formatters.ParameterizingString
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, pstr, decoded)
		assert.True(t, pstr.Equal(decoded))
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := yaml.Marshal(pstr)
		require.NoError(t, err)

		var decoded formatters.ParameterizingString
		require.NoError(t, yaml.Unmarshal(data, &decoded))
		assert.Equal(t, pstr, decoded)
	})

	t.Run("gob", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, gob.NewEncoder(&buf).Encode(pstr))

		var decoded formatters.ParameterizingString
		require.NoError(t, gob.NewDecoder(&buf).Decode(&decoded))
		assert.Equal(t, pstr, decoded)
	})

	t.Run("decoded value is still callable", func(t *testing.T) {
		data, err := json.Marshal(formatters.NewParameterizingString("\x1b[%p1%dC", "\x1b[m", "cuf", nil))
		require.NoError(t, err)

		var decoded formatters.ParameterizingString
		require.NoError(t, json.Unmarshal(data, &decoded))

		right, err := decoded.Call(4)
		require.NoError(t, err)
		assert.Equal(t, "\x1b[4C", right.String())
	})
}

func TestFormattingStringRoundTrip(t *testing.T) {
	pstr := formatters.NewParameterizingString("seqname", "norm", "cap-name", joinParams)
	zero, err := pstr.Call(0)
	require.NoError(t, err)

	t.Run("json", func(t *testing.T) {
		data, err := json.Marshal(zero)
		require.NoError(t, err)

		var decoded formatters.FormattingString
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, zero, decoded)
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := yaml.Marshal(zero)
		require.NoError(t, err)

		var decoded formatters.FormattingString
		require.NoError(t, yaml.Unmarshal(data, &decoded))
		assert.Equal(t, zero, decoded)
	})

	t.Run("gob", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, gob.NewEncoder(&buf).Encode(zero))

		var decoded formatters.FormattingString
		require.NoError(t, gob.NewDecoder(&buf).Decode(&decoded))
		assert.Equal(t, zero, decoded)
	})
}

func TestMarshalEnvelope(t *testing.T) {
	tests := []struct {
		name string
		attr formatters.Attribute
	}{
		{name: "formatting", attr: formatters.NewFormattingString("\x1b[1m", "\x1b(B\x1b[m")},
		{name: "high bytes", attr: formatters.NewFormattingString("\x9b1m\xff", "\x9bm")},
		{name: "parameterizing", attr: formatters.NewParameterizingString("\x1b[%i%p1%dG", "\x1b[m", "hpa", nil)},
		{name: "null", attr: formatters.NullCallableString{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := formatters.Marshal(tt.attr)
			require.NoError(t, err)

			decoded, err := formatters.Unmarshal(data)
			require.NoError(t, err)
			assert.Equal(t, tt.attr, decoded)
			assert.Equal(t, tt.attr.Kind(), decoded.Kind())
		})
	}
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{"},
		{name: "unknown kind", data: `{"kind":"sparkly"}`},
		{name: "outside latin-1", data: `{"kind":"formatting","sequence":"☃"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := formatters.Unmarshal([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrSerialize))
		})
	}

	t.Run("kind mismatch", func(t *testing.T) {
		var fs formatters.FormattingString
		err := json.Unmarshal([]byte(`{"kind":"null"}`), &fs)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected formatting attribute")
	})
}
