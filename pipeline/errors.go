package pipeline

import "fmt"

// ConfigError reports a missing or unreadable data source location. It is
// fatal for the refresh that hit it and is surfaced to the caller as-is;
// there is no retry.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("data configuration error at %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// DataError reports a source row or column that failed to parse. The whole
// load is aborted: silently dropping rows would change aggregate totals
// with no signal. File and row context travel with the error so a failed
// refresh can report exactly where the bad cell was.
type DataError struct {
	File   string
	Row    int    // 1-based data row, 0 when the failure is header-level
	Column string // offending column, when known
	Err    error
}

func (e *DataError) Error() string {
	switch {
	case e.Row > 0 && e.Column != "":
		return fmt.Sprintf("%s row %d column %q: %v", e.File, e.Row, e.Column, e.Err)
	case e.Row > 0:
		return fmt.Sprintf("%s row %d: %v", e.File, e.Row, e.Err)
	case e.Column != "":
		return fmt.Sprintf("%s column %q: %v", e.File, e.Column, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.File, e.Err)
	}
}

func (e *DataError) Unwrap() error { return e.Err }
