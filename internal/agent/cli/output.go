package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// printJSON печатает значение с отступами.
func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
