package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// lookupFunc resolves an environment variable, reporting whether it is set.
type lookupFunc func(name string) (string, bool)

// expandEnv rewrites every string scalar value of the tree that references
// an environment variable. Supported forms are $NAME, ${NAME},
// ${NAME:-default} (the default is used verbatim when NAME is unset) and $$
// for a literal dollar. A scalar whose expansion fails becomes null.
// Expanded scalars are re-typed: null and ~ become null, true and false
// become booleans, decimal integers and floats become numbers.
// It returns the number of scalars that could not be expanded.
func expandEnv(n *yaml.Node, lookup lookupFunc) int {
	failed := 0
	switch n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, child := range n.Content {
			failed += expandEnv(child, lookup)
		}
	case yaml.MappingNode:
		for i := 1; i < len(n.Content); i += 2 {
			failed += expandEnv(n.Content[i], lookup)
		}
	case yaml.ScalarNode:
		if n.ShortTag() != "!!str" || !strings.Contains(n.Value, "$") {
			return 0
		}
		expanded, err := expandString(n.Value, lookup)
		if err != nil {
			setScalar(n, "!!null", "null")
			return 1
		}
		retype(n, expanded)
	}
	return failed
}

// expandString substitutes environment references in s.
func expandString(s string, lookup lookupFunc) (string, error) {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		c := s[i]
		if c != '$' || i+1 == len(s) {
			b.WriteByte(c)
			i++
			continue
		}

		switch next := s[i+1]; {
		case next == '$':
			b.WriteByte('$')
			i += 2

		case next == '{':
			end := strings.IndexByte(s[i+2:], '}')
			if end < 0 {
				// unclosed brace stays literal
				b.WriteString(s[i:])
				return b.String(), nil
			}
			body := s[i+2 : i+2+end]
			name, fallback, hasFallback := strings.Cut(body, ":-")
			value, ok := lookupVar(lookup, name)
			switch {
			case ok:
				b.WriteString(value)
			case hasFallback:
				b.WriteString(fallback)
			default:
				return "", fmt.Errorf("environment variable %q not set", name)
			}
			i += end + 3

		default:
			j := i + 1
			for j < len(s) && isNameByte(s[j]) {
				j++
			}
			if j == i+1 {
				b.WriteByte('$')
				i++
				continue
			}
			name := s[i+1 : j]
			value, ok := lookupVar(lookup, name)
			if !ok {
				return "", fmt.Errorf("environment variable %q not set", name)
			}
			b.WriteString(value)
			i = j
		}
	}
	return b.String(), nil
}

// lookupVar resolves name and rejects values that fail validateEnvVar.
func lookupVar(lookup lookupFunc, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	value, ok := lookup(name)
	if !ok || validateEnvVar(name, value) != nil {
		return "", false
	}
	return value, true
}

func isNameByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// retype sets the YAML tag of an expanded scalar from its text.
func retype(n *yaml.Node, s string) {
	if s == "null" || s == "~" {
		setScalar(n, "!!null", "null")
		return
	}
	if s == "true" || s == "false" {
		setScalar(n, "!!bool", s)
		return
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		setScalar(n, "!!int", strconv.FormatInt(v, 10))
		return
	}
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		setScalar(n, "!!int", strconv.FormatUint(v, 10))
		return
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		setScalar(n, "!!float", formatFloat(f))
		return
	}
	setScalar(n, "!!str", s)
}

// formatFloat renders f in a form the YAML resolver reads back as a float.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func setScalar(n *yaml.Node, tag, value string) {
	n.Tag = tag
	n.Value = value
	n.Style = 0
}
