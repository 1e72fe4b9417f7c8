package render

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-multihash"

	"github.com/byte4ever/sha2sum/sha2"
)

// ErrUnknownEncoding is returned for an encoding name
// that Encode does not support.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Encoding names a textual digest representation.
type Encoding string

// Supported encodings.
const (
	Hex       Encoding = "hex"
	Base64    Encoding = "base64"
	Multibase Encoding = "multibase"
	Multihash Encoding = "multihash"
	CID       Encoding = "cid"
)

// Encodings lists every supported encoding in display
// order.
var Encodings = []Encoding{
	Hex, Base64, Multibase, Multihash, CID,
}

// ParseEncoding maps a case-insensitive name to an
// Encoding.
func ParseEncoding(s string) (Encoding, error) {
	const errCtx = "parsing encoding"

	enc := Encoding(strings.ToLower(strings.TrimSpace(s)))

	for _, known := range Encodings {
		if enc == known {
			return enc, nil
		}
	}

	return "", fmt.Errorf(
		"%s: %w: %q", errCtx, ErrUnknownEncoding, s,
	)
}

// MultihashCode returns the multicodec code for the
// digest function of v.
func MultihashCode(v sha2.Variant) (uint64, error) {
	const errCtx = "selecting multihash code"

	switch v {
	case sha2.SHA224:
		return uint64(multicodec.Sha2_224), nil
	case sha2.SHA256:
		return uint64(multicodec.Sha2_256), nil
	default:
		return 0, fmt.Errorf(
			"%s: %w: %d",
			errCtx, sha2.ErrUnsupportedVariant, int(v),
		)
	}
}

// ToMultihash wraps d in a multihash envelope tagged
// with the code for v.
func ToMultihash(
	d sha2.Digest,
	v sha2.Variant,
) (multihash.Multihash, error) {
	const errCtx = "encoding multihash"

	if !v.Valid() {
		return nil, fmt.Errorf(
			"%s: %w: %d",
			errCtx, sha2.ErrUnsupportedVariant, int(v),
		)
	}

	if len(d) != v.Size() {
		return nil, fmt.Errorf(
			"%s: digest length %d does not match %s",
			errCtx, len(d), v,
		)
	}

	code, err := MultihashCode(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	mh, err := multihash.Encode(d, code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return mh, nil
}

// Encode renders d, produced for variant v, using enc.
func Encode(
	d sha2.Digest,
	v sha2.Variant,
	enc Encoding,
) (string, error) {
	const errCtx = "rendering digest"

	switch enc {
	case Hex:
		return hex.EncodeToString(d), nil
	case Base64:
		s, err := multibase.Encode(multibase.Base64pad, d)
		if err != nil {
			return "", fmt.Errorf("%s: %w", errCtx, err)
		}

		// Plain base64 is the multibase Base64pad form
		// minus its one-byte 'M' prefix; all non-hex
		// encodings go through the multiformats codecs.
		return s[1:], nil
	}

	mh, err := ToMultihash(d, v)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	switch enc {
	case Multihash:
		return hex.EncodeToString(mh), nil
	case Multibase:
		s, err := multibase.Encode(multibase.Base16, mh)
		if err != nil {
			return "", fmt.Errorf("%s: %w", errCtx, err)
		}

		return s, nil
	case CID:
		return cid.NewCidV1(cid.Raw, mh).String(), nil
	default:
		return "", fmt.Errorf(
			"%s: %w: %q", errCtx, ErrUnknownEncoding, enc,
		)
	}
}
