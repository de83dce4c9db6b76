package toon

import "strconv"

// Supported delimiters for primitive arrays and tabular rows.
const (
	DelimiterComma = ","
	DelimiterTab   = "\t"
	DelimiterPipe  = "|"
)

// DefaultIndent is the number of spaces per nesting level when none is set.
const DefaultIndent = 2

// EncodeOptions configures TOON encoding behavior.
type EncodeOptions struct {
	Indent       int    // Number of spaces per indentation level; 0 keeps every line flush left
	Delimiter    string // Delimiter for arrays and tabular data (default: ",")
	LengthMarker bool   // Prefix array lengths with '#'
}

// DefaultEncodeOptions returns the options used by Encode and by a nil
// *EncodeOptions.
func DefaultEncodeOptions() *EncodeOptions {
	return &EncodeOptions{Indent: DefaultIndent, Delimiter: DelimiterComma}
}

// Validate reports a *ConfigError when the options cannot be used.
func (o *EncodeOptions) Validate() error {
	_, err := o.resolve()
	return err
}

// resolve returns a validated copy of the options. An empty delimiter means
// comma. The receiver is never modified.
func (o *EncodeOptions) resolve() (EncodeOptions, error) {
	if o == nil {
		return *DefaultEncodeOptions(), nil
	}

	resolved := *o
	if resolved.Indent < 0 {
		return EncodeOptions{}, &ConfigError{
			Field:   "indent",
			Value:   strconv.Itoa(resolved.Indent),
			Message: "must not be negative",
		}
	}

	switch resolved.Delimiter {
	case "":
		resolved.Delimiter = DelimiterComma
	case DelimiterComma, DelimiterTab, DelimiterPipe:
	default:
		return EncodeOptions{}, &ConfigError{
			Field:   "delimiter",
			Value:   resolved.Delimiter,
			Message: "use comma, tab, or pipe",
		}
	}

	return resolved, nil
}

// ParseDelimiter maps a delimiter name (comma, tab, pipe) or the delimiter
// character itself to the delimiter string.
func ParseDelimiter(token string) (string, error) {
	switch token {
	case "comma", DelimiterComma:
		return DelimiterComma, nil
	case "tab", DelimiterTab:
		return DelimiterTab, nil
	case "pipe", DelimiterPipe:
		return DelimiterPipe, nil
	}
	return "", &ConfigError{
		Field:   "delimiter",
		Value:   token,
		Message: "use comma, tab, or pipe",
	}
}

// Option adjusts the options used by Marshal and NewEncoder.
type Option func(*EncodeOptions)

// WithIndent sets the number of spaces per indentation level.
func WithIndent(n int) Option {
	return func(o *EncodeOptions) { o.Indent = n }
}

// WithDelimiter sets the array and row delimiter.
func WithDelimiter(d string) Option {
	return func(o *EncodeOptions) { o.Delimiter = d }
}

// WithLengthMarker enables the '#' prefix on array lengths.
func WithLengthMarker(enabled bool) Option {
	return func(o *EncodeOptions) { o.LengthMarker = enabled }
}

func applyOptions(opts []Option) *EncodeOptions {
	o := DefaultEncodeOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}
