package report

import "fmt"

// NotYetAvailableError is returned when report generation is requested before
// the availability window opens. Callers may retry later or pass Force.
type NotYetAvailableError struct {
	EventID string
	Message string
}

func (e *NotYetAvailableError) Error() string {
	return fmt.Sprintf("report for event %s not yet available: %s", e.EventID, e.Message)
}
