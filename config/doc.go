// Package config loads, validates and saves application settings.
//
// Settings are YAML documents describing the application (name, URIs, type,
// discovery URLs), its namespace table, codec decoding limits, named node id
// aliases, the node cache and logging.
//
// # Basic Usage
//
//	loader := config.NewLoader(logger)
//	settings, err := loader.LoadFile("settings.yaml")
//	if err != nil {
//		var verr *config.ValidationError
//		if errors.As(err, &verr) {
//			for _, p := range verr.Problems {
//				logger.Error("invalid setting", "problem", p)
//			}
//		}
//		return err
//	}
//
//	boiler, err := settings.Resolve("boiler")
//	ctx := settings.Context() // codec limits
//
// # Document Format
//
//	application_name: Boiler Gateway
//	application_uri: urn:example:boiler-gateway
//	product_uri: urn:example:products:gateway
//	application_type: client
//	discovery_urls:
//	  - opc.tcp://${OPCUA_HOST:-localhost}:4840
//	namespaces:
//	  - http://opcfoundation.org/UA/
//	  - urn:example:boiler
//	decoding:
//	  max_string_length: 65535
//	  max_byte_string_length: 65535
//	nodes:
//	  boiler: ns=1;s=Boiler
//	  server_status: i=2256
//	cache:
//	  enabled: true
//	  strategy: lru
//	  max_size: 1000
//	logging:
//	  level: info
//	  format: json
//
// Node ids are written in their textual form. Unknown options are rejected
// by the embedded JSON schema (see SettingsSchema).
//
// # Environment Expansion
//
// When enabled (the default), string values may reference environment
// variables:
//   - $NAME and ${NAME} expand to the variable's value
//   - ${NAME:-default} uses default, verbatim, when NAME is unset
//   - $$ is a literal dollar sign
//
// Other shell forms such as ${NAME-default}, ${NAME:?message} or
// ${NAME:+alternate} are not supported. Like an unset variable they make
// the whole value null. An unclosed ${ is kept literally.
//
// Expanded values are re-typed, so "${PORT}" with PORT=4840 decodes as the
// integer 4840 and "null" or "~" as null. Values without a reference keep
// their original type.
//
// # Validation
//
// Settings.Validate collects every problem and returns them together as a
// *ValidationError, which matches errors.ErrInvalidConfig. Save validates
// before writing, so an invalid value never reaches disk.
//
// # Security
//
// The package includes security validation:
//   - File size limits (10MB max) to prevent memory exhaustion
//   - YAML depth validation (100 levels max)
//   - Path validation to prevent directory traversal
//   - Regular file checks (no symlinks or device files)
//   - Only .yaml and .yml files are read or written
package config
