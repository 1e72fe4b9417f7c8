package selftest

import (
	"log/slog"
	"strings"

	"github.com/byte4ever/sha2sum/sha2"
)

// Result is the outcome of one vector.
type Result struct {
	Name    string `json:"name"`
	Variant string `json:"variant"`
	Want    string `json:"want"`
	Got     string `json:"got"`
	Passed  bool   `json:"passed"`
	Error   string `json:"error,omitempty"`
}

// Report aggregates the results of a run.
type Report struct {
	Passed  int      `json:"passed"`
	Failed  int      `json:"failed"`
	Results []Result `json:"results"`
}

// OK reports whether every vector passed.
func (rp Report) OK() bool {
	return rp.Failed == 0
}

type options struct {
	logger *slog.Logger
}

// Option configures Run.
type Option func(*options)

// WithLogger sets the logger used for failed vectors.
func WithLogger(lg *slog.Logger) Option {
	return func(o *options) {
		o.logger = lg
	}
}

// Run hashes every vector and compares it with the
// expected digest. Failures are logged at warn level.
func Run(vectors []Vector, opts ...Option) Report {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	rp := Report{Results: make([]Result, 0, len(vectors))}

	for _, vc := range vectors {
		res := runOne(vc)

		if res.Passed {
			rp.Passed++
		} else {
			rp.Failed++

			o.logger.Warn(
				"vector failed",
				"name", res.Name,
				"variant", res.Variant,
				"want", res.Want,
				"got", res.Got,
				"error", res.Error,
			)
		}

		rp.Results = append(rp.Results, res)
	}

	return rp
}

func runOne(vc Vector) Result {
	res := Result{
		Name:    vc.Name,
		Variant: vc.Variant,
		Want:    strings.ToLower(vc.Want),
	}

	v, err := sha2.ParseVariant(vc.Variant)
	if err != nil {
		res.Error = err.Error()

		return res
	}

	msg, err := vc.Message()
	if err != nil {
		res.Error = err.Error()

		return res
	}

	dg, err := sha2.Sum(msg, v)
	if err != nil {
		res.Error = err.Error()

		return res
	}

	res.Variant = v.String()
	res.Got = dg.Hex()
	res.Passed = res.Got == res.Want

	return res
}
