package normalizer

import (
	"fmt"
	"strings"
)

// ProtocolError is returned when the document carries an upstream
// error block. Normalization short-circuits and produces no partial
// entities.
type ProtocolError struct {
	Codes    []string
	Messages []string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("upstream protocol error [%s]: %s",
		strings.Join(e.Codes, ","), strings.Join(e.Messages, "; "))
}
