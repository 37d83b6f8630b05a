package sprakvakt

import (
	"fmt"
	"strings"

	"github.com/sprakvakt/sprakvakt/srcscan"
)

// ReviewLogError aggregates the scanner's parse diagnostics into one error
// value, one file:line:col row per entry.
type ReviewLogError struct {
	Entries []srcscan.LogEntry
}

func (e ReviewLogError) Error() string {
	var msg strings.Builder
	msg.WriteString("sprakvakt parse diagnostics:\n\n")
	for _, entry := range e.Entries {
		msg.WriteString(fmt.Sprintf("%s:%d:%d: %s\n", entry.File, entry.Pos.Line, entry.Pos.Col, entry.Message))
	}
	return msg.String()
}
