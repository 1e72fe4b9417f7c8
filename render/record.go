package render

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasttemplate"
)

// DefaultFormat mirrors the sha256sum output layout.
const DefaultFormat = "{digest}  {name}"

// Record is one rendered digest result.
type Record struct {
	Name     string   `json:"name"`
	Variant  string   `json:"variant"`
	Encoding Encoding `json:"encoding"`
	Digest   string   `json:"digest"`
}

// Line substitutes {digest}, {name}, {variant} and
// {encoding} in format. Unknown placeholders are kept
// as-is. An empty format falls back to DefaultFormat.
func Line(format string, rec Record) string {
	if format == "" {
		format = DefaultFormat
	}

	return fasttemplate.ExecuteStringStd(
		format, "{", "}", map[string]interface{}{
			"digest":   rec.Digest,
			"name":     rec.Name,
			"variant":  rec.Variant,
			"encoding": string(rec.Encoding),
		},
	)
}

// JSON marshals rec as a single JSON object.
func JSON(rec Record) ([]byte, error) {
	const errCtx = "marshaling record"

	buf, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return buf, nil
}
