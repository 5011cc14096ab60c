package layout

import "fmt"

// ConfigError reports page geometry that cannot produce a usable layout,
// for example margins and gutters that leave a non-positive column size.
// It aborts the run before any layout work begins.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("layout: invalid configuration: %s", e.Reason)
}

// EncodingError reports input bytes that cannot be interpreted in the
// expected encoding. It is fatal unless PageConfig.RecoverEncoding is set,
// in which case the segmenter treats the offending byte as a paragraph
// boundary and keeps scanning.
type EncodingError struct {
	Offset int
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("layout: encoding error at byte %d: %s", e.Offset, e.Reason)
}

// ShapingError wraps a failure reported by the shaping backend while
// measuring a text run. It is always fatal; the layout core does not retry.
type ShapingError struct {
	Text string
	Err  error
}

func (e *ShapingError) Error() string {
	text := e.Text
	if len(text) > 32 {
		text = text[:32] + "..."
	}
	return fmt.Sprintf("layout: shaping %q failed: %v", text, e.Err)
}

func (e *ShapingError) Unwrap() error { return e.Err }
