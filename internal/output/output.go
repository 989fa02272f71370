package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dshills/cerascan/internal/audit"
)

// WriteRaw writes the sanitized model reply as the run's result. The reply is
// passed through as-is; its shape is defined by the upstream model, not
// validated here.
func WriteRaw(w io.Writer, raw string) error {
	_, err := fmt.Fprintln(w, raw)
	return err
}

// WriteError writes the error envelope {"error": "<message>"}.
func WriteError(w io.Writer, runErr error) error {
	data, err := json.Marshal(audit.Envelope{Error: runErr.Error()})
	if err != nil {
		return fmt.Errorf("marshaling error envelope: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
