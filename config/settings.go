package config

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/c360/semstreams-opcua/codec"
	"github.com/c360/semstreams-opcua/errors"
	"github.com/c360/semstreams-opcua/nodeid"
	"github.com/c360/semstreams-opcua/pkg/cache"
)

// StandardNamespaceURI is the URI every namespace table carries at index 0.
const StandardNamespaceURI = "http://opcfoundation.org/UA/"

// ApplicationType is the role an application plays.
type ApplicationType string

// Application types
const (
	ApplicationServer          ApplicationType = "server"
	ApplicationClient          ApplicationType = "client"
	ApplicationClientAndServer ApplicationType = "client_and_server"
	ApplicationDiscoveryServer ApplicationType = "discovery_server"
)

// IsValid reports whether t is one of the known application types.
func (t ApplicationType) IsValid() bool {
	switch t {
	case ApplicationServer, ApplicationClient, ApplicationClientAndServer, ApplicationDiscoveryServer:
		return true
	}
	return false
}

// LoggingConfig selects the slog handler used by commands.
type LoggingConfig struct {
	Level  string `json:"level" yaml:"level"`   // debug, info, warn, error
	Format string `json:"format" yaml:"format"` // json, text
}

// Settings is the application configuration file.
type Settings struct {
	ApplicationName string          `json:"application_name" yaml:"application_name"`
	ApplicationURI  string          `json:"application_uri" yaml:"application_uri"`
	ProductURI      string          `json:"product_uri" yaml:"product_uri"`
	ApplicationType ApplicationType `json:"application_type" yaml:"application_type"`
	DiscoveryURLs   []string        `json:"discovery_urls,omitempty" yaml:"discovery_urls,omitempty"`

	// Namespaces is the namespace table. Index 0 is always StandardNamespaceURI.
	Namespaces []string `json:"namespaces,omitempty" yaml:"namespaces,omitempty"`

	Decoding codec.DecodingOptions `json:"decoding" yaml:"decoding"`

	// Nodes maps aliases to node ids written in textual form, e.g. "ns=2;s=Boiler".
	Nodes map[string]nodeid.NodeID `json:"nodes,omitempty" yaml:"nodes,omitempty"`

	Cache   cache.Config  `json:"cache" yaml:"cache"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// DefaultSettings returns the values a settings file is decoded on top of.
func DefaultSettings() *Settings {
	return &Settings{
		ApplicationType: ApplicationClient,
		Namespaces:      []string{StandardNamespaceURI},
		Decoding:        codec.DefaultDecodingOptions(),
		Cache:           cache.DefaultConfig(),
		Logging:         LoggingConfig{Level: "info", Format: "text"},
	}
}

// ValidationError lists every problem found in a settings value.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%d problem(s): %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e *ValidationError) Unwrap() error {
	return errors.ErrInvalidConfig
}

// Validate checks the settings and reports all problems at once as a
// *ValidationError.
func (s *Settings) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if strings.TrimSpace(s.ApplicationName) == "" {
		add("application_name is required")
	}
	if s.ApplicationURI == "" {
		add("application_uri is required")
	}
	if !s.ApplicationType.IsValid() {
		add("application_type %q is not one of server, client, client_and_server, discovery_server", s.ApplicationType)
	}

	for i, raw := range s.DiscoveryURLs {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			add("discovery_urls[%d] %q is not an absolute URL", i, raw)
		}
	}

	if len(s.Namespaces) > 0 && s.Namespaces[0] != StandardNamespaceURI {
		add("namespaces[0] must be %s", StandardNamespaceURI)
	}
	if len(s.Namespaces) > 1<<16 {
		add("namespaces has %d entries, at most 65536 are addressable", len(s.Namespaces))
	}
	seen := make(map[string]int, len(s.Namespaces))
	for i, uri := range s.Namespaces {
		if uri == "" {
			add("namespaces[%d] is empty", i)
			continue
		}
		if first, dup := seen[uri]; dup {
			add("namespaces[%d] duplicates namespaces[%d]", i, first)
			continue
		}
		seen[uri] = i
	}

	if s.Decoding.MaxStringLength < 0 {
		add("decoding.max_string_length must not be negative")
	}
	if s.Decoding.MaxByteStringLength < 0 {
		add("decoding.max_byte_string_length must not be negative")
	}

	for _, alias := range s.Aliases() {
		id := s.Nodes[alias]
		switch {
		case alias == "":
			add("nodes: alias must not be empty")
		case id.IsNull():
			add("nodes.%s is the null node id", alias)
		case len(s.Namespaces) > 0 && int(id.Namespace) >= len(s.Namespaces):
			add("nodes.%s uses namespace %d, table has %d entries", alias, id.Namespace, len(s.Namespaces))
		}
	}

	if err := s.Cache.Validate(); err != nil {
		add("cache: %v", err)
	}

	switch s.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		add("logging.level %q is not one of debug, info, warn, error", s.Logging.Level)
	}
	switch s.Logging.Format {
	case "", "json", "text":
	default:
		add("logging.format %q is not one of json, text", s.Logging.Format)
	}

	if len(problems) > 0 {
		return errors.WrapInvalid(&ValidationError{Problems: problems}, "Settings", "Validate", "validate settings")
	}
	return nil
}

// Context returns a codec context carrying the configured decoding limits.
func (s *Settings) Context() *codec.Context {
	return codec.NewContext(s.Decoding)
}

// Resolve returns the node id for an alias, or parses ref as a node id
// when no alias matches.
func (s *Settings) Resolve(ref string) (nodeid.NodeID, error) {
	if id, ok := s.Nodes[ref]; ok {
		return id, nil
	}
	id, err := nodeid.Parse(ref)
	if err != nil {
		return nodeid.NodeID{}, errors.WrapInvalid(err, "Settings", "Resolve",
			fmt.Sprintf("resolve %q as alias or node id", ref))
	}
	return id, nil
}

// NamespaceIndex returns the index of uri in the namespace table.
func (s *Settings) NamespaceIndex(uri string) (uint16, bool) {
	i := slices.Index(s.Namespaces, uri)
	if i < 0 || i > 0xFFFF {
		return 0, false
	}
	return uint16(i), true
}

// Aliases returns the configured alias names in sorted order.
func (s *Settings) Aliases() []string {
	return slices.Sorted(maps.Keys(s.Nodes))
}

// ApplicationDescription describes an application to its peers.
type ApplicationDescription struct {
	ApplicationURI  string          `json:"application_uri" yaml:"application_uri"`
	ApplicationName string          `json:"application_name" yaml:"application_name"`
	ApplicationType ApplicationType `json:"application_type" yaml:"application_type"`
	ProductURI      string          `json:"product_uri" yaml:"product_uri"`
	DiscoveryURLs   []string        `json:"discovery_urls,omitempty" yaml:"discovery_urls,omitempty"`
}

// Description builds the application description advertised for these settings.
func (s *Settings) Description() ApplicationDescription {
	return ApplicationDescription{
		ApplicationURI:  s.ApplicationURI,
		ApplicationName: s.ApplicationName,
		ApplicationType: s.ApplicationType,
		ProductURI:      s.ProductURI,
		DiscoveryURLs:   slices.Clone(s.DiscoveryURLs),
	}
}

// Marshal validates the settings and renders them as YAML.
func (s *Settings) Marshal() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Settings", "Marshal", "encode YAML")
	}
	return data, nil
}

// Save validates the settings and writes them to a YAML file.
// Nothing is written when validation fails.
func (s *Settings) Save(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	if err := safeWriteFile(path, data); err != nil {
		return errors.WrapTransient(err, "Settings", "Save", "write settings file")
	}
	return nil
}

// Clone creates a deep copy of the settings.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return DefaultSettings()
	}
	c := *s
	c.DiscoveryURLs = slices.Clone(s.DiscoveryURLs)
	c.Namespaces = slices.Clone(s.Namespaces)
	c.Nodes = maps.Clone(s.Nodes)
	return &c
}

// SafeSettings provides thread-safe access to settings.
type SafeSettings struct {
	mu       sync.RWMutex
	settings *Settings
}

// NewSafeSettings creates a new thread-safe settings wrapper.
func NewSafeSettings(s *Settings) *SafeSettings {
	if s == nil {
		s = DefaultSettings()
	}
	return &SafeSettings{settings: s}
}

// Get returns a deep copy of the current settings.
func (ss *SafeSettings) Get() *Settings {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.settings.Clone()
}

// Update atomically replaces the settings after validation.
func (ss *SafeSettings) Update(s *Settings) error {
	if s == nil {
		return errors.WrapInvalid(errors.ErrMissingConfig, "SafeSettings", "Update", "settings cannot be nil")
	}
	if err := s.Validate(); err != nil {
		return err
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.settings = s
	return nil
}
