package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360/semstreams-opcua/config"
	"github.com/c360/semstreams-opcua/errors"
	"github.com/c360/semstreams-opcua/ids"
	"github.com/c360/semstreams-opcua/nodeid"
)

// commands maps command names to their implementation.
var commands = map[string]func(a *app, args []string) error{
	"parse":  (*app).parse,
	"encode": (*app).encode,
	"decode": (*app).decode,
	"next":   (*app).next,
	"lookup": (*app).lookup,
	"config": (*app).config,
}

func requireArgs(args []string, what string) error {
	if len(args) == 0 {
		return errors.WrapInvalid(errors.ErrInvalidData, "nodeidctl", "requireArgs", "missing "+what)
	}
	return nil
}

// parse prints the canonical form, type and wire layout of each argument.
func (a *app) parse(args []string) error {
	if err := requireArgs(args, "node id"); err != nil {
		return err
	}
	for _, arg := range args {
		id, err := a.resolve(arg)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(a.out, "%s\tns=%d\ttype=%s\tencoding=%s\tbytes=%d\n",
			id, id.Namespace, id.Identifier.Type(), id.Encoding(), id.ByteLen(a.codecCtx))
	}
	return nil
}

// encode prints the binary encoding of each argument as hex.
func (a *app) encode(args []string) error {
	if err := requireArgs(args, "node id"); err != nil {
		return err
	}
	for _, arg := range args {
		id, err := a.resolve(arg)
		if err != nil {
			return err
		}
		data, err := id.AppendBinary(nil)
		if err != nil {
			return err
		}
		a.metrics.Metrics.RecordEncode(id.Encoding().String(), len(data))
		_, _ = fmt.Fprintln(a.out, hex.EncodeToString(data))
	}
	return nil
}

// decode reads hex frames holding one or more concatenated binary node ids.
// A single "-" argument reads one frame per line from stdin.
func (a *app) decode(args []string) error {
	if err := requireArgs(args, "hex frame"); err != nil {
		return err
	}
	if len(args) == 1 && args[0] == "-" {
		return a.decodeLines(a.in)
	}
	for _, arg := range args {
		if err := a.decodeFrame(arg); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) decodeLines(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := a.decodeFrame(line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.WrapTransient(err, "nodeidctl", "decodeLines", "read stdin")
	}
	return nil
}

func (a *app) decodeFrame(text string) error {
	data, err := hex.DecodeString(strings.ReplaceAll(text, " ", ""))
	if err != nil {
		return errors.WrapInvalid(err, "nodeidctl", "decodeFrame", "decode hex")
	}

	for offset := 0; offset < len(data); {
		frame := data[offset:]
		ref, n, err := nodeid.DecodeRef(frame, a.codecCtx)
		a.metrics.Metrics.RecordDecode(nodeid.Encoding(frame[0]).String(), err)
		if err != nil {
			return fmt.Errorf("offset %d: %w", offset, err)
		}

		if alias := a.aliasOf(ref); alias != "" {
			_, _ = fmt.Fprintf(a.out, "%s\t%s\n", ref.NodeID(), alias)
		} else {
			_, _ = fmt.Fprintln(a.out, ref.NodeID())
		}
		offset += n
	}
	return nil
}

// next allocates numeric node ids in a namespace.
func (a *app) next(args []string) error {
	fs := flag.NewFlagSet("next", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	start := fs.Uint64("start", 0, "first value; 0 uses the process allocator")
	count := fs.Int("count", 1, "number of ids to allocate")
	if err := fs.Parse(args); err != nil {
		return errors.WrapInvalid(err, "nodeidctl", "next", "parse flags")
	}
	if fs.NArg() != 1 {
		return errors.WrapInvalid(errors.ErrInvalidData, "nodeidctl", "next", "expected exactly one namespace")
	}
	ns, err := a.namespace(fs.Arg(0))
	if err != nil {
		return err
	}
	if *start > 0xFFFFFFFF {
		return errors.WrapInvalid(errors.ErrInvalidData, "nodeidctl", "next", "start exceeds 4294967295")
	}

	alloc := nodeid.DefaultAllocator()
	if *start > 0 {
		alloc = nodeid.NewAllocator(uint32(*start))
	}
	for i := 0; i < *count; i++ {
		id, err := alloc.Next(ns)
		if err != nil {
			return err
		}
		a.metrics.Metrics.RecordAllocation()
		_, _ = fmt.Fprintln(a.out, id)
	}
	return nil
}

// namespace accepts a namespace index or a URI from the namespace table.
func (a *app) namespace(arg string) (uint16, error) {
	if v, err := strconv.ParseUint(arg, 10, 16); err == nil {
		return uint16(v), nil
	}
	if ns, ok := a.settings.NamespaceIndex(arg); ok {
		return ns, nil
	}
	return 0, errors.WrapInvalid(errors.ErrInvalidData, "nodeidctl", "namespace",
		fmt.Sprintf("%q is neither an index nor a configured namespace URI", arg))
}

// lookup resolves node ids to well-known names and names to node ids.
func (a *app) lookup(args []string) error {
	if err := requireArgs(args, "node id or name"); err != nil {
		return err
	}
	for _, arg := range args {
		if id, err := a.settings.Resolve(arg); err == nil {
			if err := a.lookupID(id); err != nil {
				return err
			}
			continue
		}
		if err := a.lookupName(arg); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) lookupID(id nodeid.NodeID) error {
	conversions := []struct {
		target  string
		convert func() (ids.WellKnown, error)
	}{
		{"object", func() (ids.WellKnown, error) { return asWellKnown(id.AsObjectID()) }},
		{"variable", func() (ids.WellKnown, error) { return asWellKnown(id.AsVariableID()) }},
		{"method", func() (ids.WellKnown, error) { return asWellKnown(id.AsMethodID()) }},
		{"reference_type", func() (ids.WellKnown, error) { return asWellKnown(id.AsReferenceTypeID()) }},
		{"data_type", func() (ids.WellKnown, error) { return asWellKnown(id.AsDataTypeID()) }},
	}

	var lastErr error
	found := false
	for _, c := range conversions {
		e, err := c.convert()
		a.metrics.Metrics.RecordConversion(c.target, err)
		if err != nil {
			lastErr = err
			continue
		}
		found = true
		_, _ = fmt.Fprintf(a.out, "%s\t%s\t%s\n", id, c.target, e)
	}
	if !found {
		return lastErr
	}
	return nil
}

func asWellKnown[E ids.WellKnown](e E, err error) (ids.WellKnown, error) {
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (a *app) lookupName(name string) error {
	var matches []ids.WellKnown
	kinds := []string{}
	if e, ok := ids.ParseObjectID(name); ok {
		matches, kinds = append(matches, e), append(kinds, "object")
	}
	if e, ok := ids.ParseVariableID(name); ok {
		matches, kinds = append(matches, e), append(kinds, "variable")
	}
	if e, ok := ids.ParseMethodID(name); ok {
		matches, kinds = append(matches, e), append(kinds, "method")
	}
	if e, ok := ids.ParseReferenceTypeID(name); ok {
		matches, kinds = append(matches, e), append(kinds, "reference_type")
	}
	if e, ok := ids.ParseDataTypeID(name); ok {
		matches, kinds = append(matches, e), append(kinds, "data_type")
	}
	if len(matches) == 0 {
		return errors.WrapInvalid(errors.ErrKeyNotFound, "nodeidctl", "lookupName",
			fmt.Sprintf("%q is not a node id, alias or well-known name", name))
	}
	for i, e := range matches {
		_, _ = fmt.Fprintf(a.out, "%s\t%s\t%s\n", nodeid.FromWellKnown(e), kinds[i], e)
	}
	return nil
}

// config inspects the loaded settings.
func (a *app) config(args []string) error {
	action := "validate"
	if len(args) > 0 {
		action = args[0]
	}

	switch action {
	case "validate":
		if err := a.settings.Validate(); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(a.out, "settings are valid")
	case "describe":
		return yaml.NewEncoder(a.out).Encode(a.settings.Description())
	case "aliases":
		for _, name := range a.settings.Aliases() {
			_, _ = fmt.Fprintf(a.out, "%s\t%s\n", name, a.settings.Nodes[name])
		}
	case "schema":
		_, _ = a.out.Write(config.SettingsSchema())
	default:
		return errors.WrapInvalid(errors.ErrInvalidData, "nodeidctl", "config",
			fmt.Sprintf("unknown action %q", action))
	}
	return nil
}
