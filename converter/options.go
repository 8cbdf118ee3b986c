package converter

import (
	"fmt"
	"slices"

	"github.com/erraggy/oas2jsonschema/oaserrors"
	"github.com/erraggy/oas2jsonschema/parser"
)

// DraftSchemaURI is the dialect marker written to the "$schema" key of every
// converted top-level schema and document.
const DraftSchemaURI = "http://json-schema.org/draft-04/schema#"

// PatternPropertiesExtension is the vendor extension carrying pattern
// properties in the source dialect.
const PatternPropertiesExtension = "x-patternProperties"

// DefaultNotSupported returns the keywords removed from every converted node
// unless listed in Options.KeepNotSupported.
func DefaultNotSupported() []string {
	return []string{
		"nullable", "discriminator", "readOnly", "writeOnly",
		"xml", "externalDocs", "example", "deprecated",
	}
}

// DefaultStructuralKeys returns the combinator and containment keywords
// whose values are converted recursively.
func DefaultStructuralKeys() []string {
	return []string{"allOf", "anyOf", "oneOf", "not", "items", "additionalProperties"}
}

// Options configures a conversion. The zero value is not the default;
// start from DefaultOptions.
type Options struct {
	// DateToDateTime rewrites {"type": "string", "format": "date"} to format "date-time".
	DateToDateTime bool
	// CloneSchema deep-copies the input before mutating it.
	// When false the caller's tree is converted in place.
	CloneSchema bool
	// SupportPatternProperties translates x-patternProperties to patternProperties.
	SupportPatternProperties bool
	// KeepNotSupported lists keywords from DefaultNotSupported that must be kept.
	KeepNotSupported []string
	// RemoveReadOnly drops every property marked readOnly: true.
	RemoveReadOnly bool
	// RemoveWriteOnly drops every property marked writeOnly: true.
	RemoveWriteOnly bool
	// StructuralKeys are the keywords whose node or list-of-node values are
	// converted recursively, in this order.
	StructuralKeys []string
	// RemoveProps lists boolean keywords that, when true on a property's own
	// node, cause the whole property to be dropped.
	RemoveProps []string
	// EnumToInteger removes "enum" from every node under "properties" and
	// widens its type with "integer".
	EnumToInteger bool
	// NullableEverywhere widens the type of every node under "properties"
	// with "null".
	NullableEverywhere bool
	// StringAcceptsInteger widens every string-typed node under
	// "properties" with "integer".
	StringAcceptsInteger bool
	// Logger receives debug output. Defaults to parser.NopLogger.
	Logger parser.Logger
}

// DefaultOptions returns the default conversion options.
func DefaultOptions() Options {
	return Options{
		CloneSchema:              true,
		SupportPatternProperties: true,
		StructuralKeys:           DefaultStructuralKeys(),
		Logger:                   parser.NopLogger{},
	}
}

// Option is a function that configures a conversion
type Option func(*Options) error

// WithOptions replaces the whole configuration with o. Options applied
// after it still take effect.
func WithOptions(o Options) Option {
	return func(cfg *Options) error {
		*cfg = o
		if cfg.Logger == nil {
			cfg.Logger = parser.NopLogger{}
		}
		return nil
	}
}

// WithDateToDateTime enables or disables rewriting "date" formats to "date-time".
// Default: false
func WithDateToDateTime(enabled bool) Option {
	return func(cfg *Options) error {
		cfg.DateToDateTime = enabled
		return nil
	}
}

// WithCloneSchema enables or disables deep-copying the input before conversion.
// Default: true
func WithCloneSchema(enabled bool) Option {
	return func(cfg *Options) error {
		cfg.CloneSchema = enabled
		return nil
	}
}

// WithPatternProperties enables or disables x-patternProperties translation.
// Default: true
func WithPatternProperties(enabled bool) Option {
	return func(cfg *Options) error {
		cfg.SupportPatternProperties = enabled
		return nil
	}
}

// WithKeepNotSupported keeps the named keywords that would otherwise be
// stripped. Repeated calls accumulate.
func WithKeepNotSupported(keys ...string) Option {
	return func(cfg *Options) error {
		for _, k := range keys {
			if !slices.Contains(DefaultNotSupported(), k) {
				return &oaserrors.ConfigError{
					Option:  "KeepNotSupported",
					Value:   k,
					Message: fmt.Sprintf("must be one of %v", DefaultNotSupported()),
				}
			}
		}
		cfg.KeepNotSupported = append(cfg.KeepNotSupported, keys...)
		return nil
	}
}

// WithRemoveReadOnly drops properties marked readOnly: true.
// Default: false
func WithRemoveReadOnly(enabled bool) Option {
	return func(cfg *Options) error {
		cfg.RemoveReadOnly = enabled
		return nil
	}
}

// WithRemoveWriteOnly drops properties marked writeOnly: true.
// Default: false
func WithRemoveWriteOnly(enabled bool) Option {
	return func(cfg *Options) error {
		cfg.RemoveWriteOnly = enabled
		return nil
	}
}

// WithStructuralKeys replaces the set of keywords converted recursively.
func WithStructuralKeys(keys ...string) Option {
	return func(cfg *Options) error {
		for _, k := range keys {
			if k == "" {
				return &oaserrors.ConfigError{Option: "StructuralKeys", Message: "keys cannot be empty"}
			}
		}
		cfg.StructuralKeys = slices.Clone(keys)
		return nil
	}
}

// WithRemoveProps adds boolean keywords that cause a property to be dropped
// when set to true on it. Repeated calls accumulate.
func WithRemoveProps(keys ...string) Option {
	return func(cfg *Options) error {
		for _, k := range keys {
			if k == "" {
				return &oaserrors.ConfigError{Option: "RemoveProps", Message: "keys cannot be empty"}
			}
		}
		cfg.RemoveProps = append(cfg.RemoveProps, keys...)
		return nil
	}
}

// WithEnumToInteger enables the enum-to-integer widening pass.
// Default: false
func WithEnumToInteger(enabled bool) Option {
	return func(cfg *Options) error {
		cfg.EnumToInteger = enabled
		return nil
	}
}

// WithNullableEverywhere enables the pass that makes every property nullable.
// Default: false
func WithNullableEverywhere(enabled bool) Option {
	return func(cfg *Options) error {
		cfg.NullableEverywhere = enabled
		return nil
	}
}

// WithStringAcceptsInteger enables the pass that lets string properties
// accept integers.
// Default: false
func WithStringAcceptsInteger(enabled bool) Option {
	return func(cfg *Options) error {
		cfg.StringAcceptsInteger = enabled
		return nil
	}
}

// LegacyExceptions enables EnumToInteger, NullableEverywhere and
// StringAcceptsInteger together, the behavior of the schema-set entry point
// in earlier releases.
func LegacyExceptions() Option {
	return func(cfg *Options) error {
		cfg.EnumToInteger = true
		cfg.NullableEverywhere = true
		cfg.StringAcceptsInteger = true
		return nil
	}
}

// WithLogger sets the structured logger used for debug output.
// Default: no logging
func WithLogger(l parser.Logger) Option {
	return func(cfg *Options) error {
		if l == nil {
			return &oaserrors.ConfigError{Option: "Logger", Message: "logger cannot be nil"}
		}
		cfg.Logger = l
		return nil
	}
}

// ResolveNotSupported returns defaults minus keep, preserving the order of
// defaults.
func ResolveNotSupported(defaults, keep []string) []string {
	resolved := make([]string, 0, len(defaults))
	for _, k := range defaults {
		if !slices.Contains(keep, k) {
			resolved = append(resolved, k)
		}
	}
	return resolved
}

// resolveRemoveProps returns a copy of o.RemoveProps extended with readOnly
// and writeOnly when the matching flags are set. The caller's slice is never
// appended to.
func resolveRemoveProps(o Options) []string {
	props := slices.Clone(o.RemoveProps)
	if o.RemoveReadOnly && !slices.Contains(props, "readOnly") {
		props = append(props, "readOnly")
	}
	if o.RemoveWriteOnly && !slices.Contains(props, "writeOnly") {
		props = append(props, "writeOnly")
	}
	return props
}

// applyOptions applies option functions on top of DefaultOptions.
func applyOptions(opts ...Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return Options{}, err
		}
	}
	return cfg, nil
}
