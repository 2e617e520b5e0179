package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func mapLookup(env map[string]string) lookupFunc {
	return func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}
}

func TestExpandString(t *testing.T) {
	env := mapLookup(map[string]string{
		"HOST":  "plc-01",
		"PORT":  "4840",
		"EMPTY": "",
		"NUL":   "a\x00b",
	})

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"braces", "${HOST}", "plc-01", false},
		{"no braces", "$HOST", "plc-01", false},
		{"embedded", "opc.tcp://${HOST}:$PORT/ua", "opc.tcp://plc-01:4840/ua", false},
		{"name stops at punctuation", "$HOST.local", "plc-01.local", false},
		{"default when unset", "${MISSING:-fallback}", "fallback", false},
		{"default not used when set", "${HOST:-fallback}", "plc-01", false},
		{"default not used when empty", "${EMPTY:-fallback}", "", false},
		{"default is not expanded", "${MISSING:-${FOO}}", "${FOO}", false},
		{"empty default", "${MISSING:-}", "", false},
		{"double dollar escapes", "$$HOST", "$HOST", false},
		{"lone dollar", "cost: 5$", "cost: 5$", false},
		{"dollar before punctuation", "$-x", "$-x", false},
		{"unclosed brace is literal", "${HOST", "${HOST", false},
		{"no references", "plain", "plain", false},
		{"unset braces", "${MISSING}", "", true},
		{"unset bare", "$MISSING", "", true},
		{"empty name", "${}", "", true},
		{"default if unset form", "${MISSING-x}", "", true},
		{"required form", "${MISSING:?must be set}", "", true},
		{"required unset only form", "${MISSING?must be set}", "", true},
		{"alternate form", "${HOST:+replacement}", "", true},
		{"alternate if set form", "${HOST+replacement}", "", true},
		{"value with null byte", "$NUL", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandString(tt.input, env)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandEnv_Retyping(t *testing.T) {
	env := mapLookup(map[string]string{
		"NULL":  "null",
		"TILDE": "~",
		"BOOL":  "true",
		"INT":   "-42",
		"OCTAL": "0755",
		"BIG":   "18446744073709551615",
		"FLOAT": "2.5",
		"INF":   "inf",
		"TEXT":  "hello",
	})

	tests := []struct {
		name  string
		input string
		want  any
	}{
		{"null", "v: $NULL", nil},
		{"tilde", "v: $TILDE", nil},
		{"bool", "v: $BOOL", true},
		{"int", "v: $INT", -42},
		{"leading zeros are decimal", "v: $OCTAL", 755},
		{"uint64", "v: $BIG", uint64(18446744073709551615)},
		{"float", "v: $FLOAT", 2.5},
		{"text", "v: $TEXT", "hello"},
		{"quoted is re-typed too", `v: "${INT}"`, -42},
		{"unexpanded quoted number stays string", `v: "42"`, "42"},
		{"unexpanded plain number stays int", "v: 42", 42},
		{"unset becomes null", "v: $MISSING", nil},
		{"unsupported form becomes null", "v: ${TEXT:+x}", nil},
		{"composite stays string", "v: ${INT}px", "-42px"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc yaml.Node
			require.NoError(t, yaml.Unmarshal([]byte(tt.input), &doc))
			expandEnv(&doc, env)

			var out map[string]any
			require.NoError(t, doc.Decode(&out))
			assert.Equal(t, tt.want, out["v"])
		})
	}

	t.Run("infinity", func(t *testing.T) {
		var doc yaml.Node
		require.NoError(t, yaml.Unmarshal([]byte("v: $INF"), &doc))
		expandEnv(&doc, env)

		var out struct{ V float64 }
		require.NoError(t, doc.Decode(&out))
		assert.True(t, out.V > 1e308)
	})
}

func TestExpandEnv_Tree(t *testing.T) {
	input := `
name: $NAME
list:
  - ${A}
  - literal
  - $MISSING
nested:
  deep:
    value: ${B:-dflt}
$KEY: keys are not expanded
`
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(input), &doc))

	failed := expandEnv(&doc, mapLookup(map[string]string{"NAME": "n", "A": "a", "KEY": "k"}))
	assert.Equal(t, 1, failed)

	var out map[string]any
	require.NoError(t, doc.Decode(&out))
	assert.Equal(t, "n", out["name"])
	assert.Equal(t, []any{"a", "literal", nil}, out["list"])
	assert.Equal(t, map[string]any{"deep": map[string]any{"value": "dflt"}}, out["nested"])
	assert.Equal(t, "keys are not expanded", out["$KEY"])
}
