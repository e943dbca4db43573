package domain

import (
	"fmt"
	"strings"
)

// IncompleteRecordError reports which required fields were missing when a log
// save was attempted. Recovered by re-prompting; never a crash.
type IncompleteRecordError struct {
	Missing []string
}

func (e *IncompleteRecordError) Error() string {
	return fmt.Sprintf("incomplete voyage log: missing %s", strings.Join(e.Missing, ", "))
}
