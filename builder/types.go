package builder

import (
	"errors"
	"fmt"
)

var (
	// ErrNilTarget indicates a nil Set or MultiSet target.
	ErrNilTarget = errors.New("builder: target is nil")

	// ErrNilReader indicates a nil input reader.
	ErrNilReader = errors.New("builder: reader is nil")

	// ErrBadYAML indicates a YAML document that failed to decode.
	ErrBadYAML = errors.New("builder: bad YAML document")

	// ErrStrict indicates a warning was promoted to an error by WithStrict.
	ErrStrict = errors.New("builder: strict mode violation")
)

// Option configures the input adapters.
type Option func(*options)

// options holds adapter settings.
type options struct {
	strict bool // promote the first warning to an error
}

// defaultOptions returns the default adapter settings: lenient reads,
// warnings collected in the Report.
func defaultOptions() options {
	return options{}
}

// WithStrict returns an Option that aborts a read at its first
// diagnostic, returning it wrapped in ErrStrict instead of collecting
// it in the Report.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// Report collects the diagnostics of one read.
type Report struct {
	// Records is the number of non-blank records seen.
	Records int

	// Applied is the number of records applied, fully or — when some
	// parts were unknown — partially.
	Applied int

	// Warnings lists the line-numbered diagnostics of skipped or
	// partially applied records.
	Warnings []string
}

// Ok reports whether the read produced no warnings.
func (r *Report) Ok() bool { return len(r.Warnings) == 0 }

// warnf records one line-numbered diagnostic. Under strict mode the
// caller receives it back as an error wrapping ErrStrict.
func (r *Report) warnf(o *options, line int, format string, args ...interface{}) error {
	msg := fmt.Sprintf("line %d: %s", line, fmt.Sprintf(format, args...))
	if o.strict {
		return fmt.Errorf("%w: %s", ErrStrict, msg)
	}
	r.Warnings = append(r.Warnings, msg)

	return nil
}
