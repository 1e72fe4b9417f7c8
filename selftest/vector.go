package selftest

import (
	"bytes"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/byte4ever/sha2sum/sha2"
)

// ErrInvalidVector is returned by Load for a vector that
// cannot be run.
var ErrInvalidVector = errors.New("invalid vector")

//go:embed vectors.yaml
var defaultVectors []byte

// Vector is one known-answer test case.
type Vector struct {
	Name     string `yaml:"name"     json:"name"`
	Variant  string `yaml:"variant"  json:"variant"`
	Input    string `yaml:"input"    json:"input,omitempty"`
	InputHex string `yaml:"input_hex" json:"input_hex,omitempty"`
	Repeat   int    `yaml:"repeat"   json:"repeat,omitempty"`
	Want     string `yaml:"want"     json:"want"`
}

// Message returns the bytes the vector hashes.
func (vc Vector) Message() ([]byte, error) {
	const errCtx = "building message"

	unit := []byte(vc.Input)

	if vc.InputHex != "" {
		raw, err := hex.DecodeString(vc.InputHex)
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %w: %s: %w",
				errCtx, ErrInvalidVector, vc.Name, err,
			)
		}

		unit = raw
	}

	if vc.Repeat > 1 {
		return bytes.Repeat(unit, vc.Repeat), nil
	}

	return unit, nil
}

// validate checks that vc can be run.
func (vc Vector) validate() error {
	const errCtx = "validating vector"

	if vc.Input != "" && vc.InputHex != "" {
		return fmt.Errorf(
			"%s: %w: %s: both input and input_hex set",
			errCtx, ErrInvalidVector, vc.Name,
		)
	}

	if vc.Repeat < 0 {
		return fmt.Errorf(
			"%s: %w: %s: negative repeat",
			errCtx, ErrInvalidVector, vc.Name,
		)
	}

	v, err := sha2.ParseVariant(vc.Variant)
	if err != nil {
		return fmt.Errorf(
			"%s: %w: %s: %w",
			errCtx, ErrInvalidVector, vc.Name, err,
		)
	}

	want := strings.ToLower(vc.Want)
	if _, err := hex.DecodeString(want); err != nil ||
		len(want) != v.Size()*2 {
		return fmt.Errorf(
			"%s: %w: %s: want must be %d hex chars",
			errCtx, ErrInvalidVector, vc.Name, v.Size()*2,
		)
	}

	if _, err := vc.Message(); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// Load reads multi-document YAML from in. Each document
// is a single vector or a list of vectors; empty
// documents are skipped.
func Load(in io.Reader) ([]Vector, error) {
	const errCtx = "loading vectors"

	decoder := yaml.NewDecoder(in)

	var vectors []Vector

	for {
		var doc interface{}

		err := decoder.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf(
				"%s: decoding yaml: %w", errCtx, err,
			)
		}

		if doc == nil {
			continue
		}

		batch, err := toVectors(doc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		vectors = append(vectors, batch...)
	}

	for _, vc := range vectors {
		if err := vc.validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	return vectors, nil
}

// toVectors converts one decoded document into vectors
// by re-marshaling it into the typed shape it matches.
func toVectors(doc interface{}) ([]Vector, error) {
	const errCtx = "converting document"

	buf, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	switch doc.(type) {
	case []interface{}:
		var list []Vector
		if err := yaml.Unmarshal(buf, &list); err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		return list, nil
	case map[string]interface{}:
		var one Vector
		if err := yaml.Unmarshal(buf, &one); err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		return []Vector{one}, nil
	default:
		return nil, fmt.Errorf(
			"%s: %w: document is %T",
			errCtx, ErrInvalidVector, doc,
		)
	}
}

// Default returns the embedded published vectors.
func Default() []Vector {
	vectors, err := Load(bytes.NewReader(defaultVectors))
	if err != nil {
		panic(fmt.Sprintf("embedded vectors: %v", err))
	}

	return vectors
}
