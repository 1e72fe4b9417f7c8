package digester

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/byte4ever/sha2sum/sha2"
)

// Suffix is appended to a file path to name its sidecar.
const Suffix = ".digest"

// CalculateDigest computes the lowercase hex digest of
// the file at path for variant v. Returns empty string
// with no error if the file does not exist.
func CalculateDigest(
	path string,
	v sha2.Variant,
) (string, error) {
	const errCtx = "calculating digest"

	content, err := os.ReadFile(path) //nolint:gosec // path is caller-provided by design
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	dg, err := sha2.Sum(content, v)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return dg.Hex(), nil
}

// GetDigest reads a stored digest from the sidecar file
// of path. Returns empty string with no error if the
// sidecar does not exist.
func GetDigest(path string) (string, error) {
	const errCtx = "getting stored digest"

	digest, err := os.ReadFile(path + Suffix) //nolint:gosec // path is caller-provided by design
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return strings.TrimSpace(string(digest)), nil
}

// VerifyDigest compares the calculated digest of the file
// against its stored sidecar digest. A missing file and a
// missing sidecar never verify.
func VerifyDigest(
	path string,
	v sha2.Variant,
) (bool, error) {
	const errCtx = "verifying digest"

	calc, err := CalculateDigest(path, v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errCtx, err)
	}

	stored, err := GetDigest(path)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errCtx, err)
	}

	if calc == "" || stored == "" {
		return false, nil
	}

	return calc == stored, nil
}

// SaveDigest calculates the digest of a file and writes
// it to the sidecar file. It returns the digest written.
func SaveDigest(
	path string,
	v sha2.Variant,
) (string, error) {
	const errCtx = "saving digest"

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	digest, err := CalculateDigest(path, v)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := WriteDigest(path, digest); err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return digest, nil
}

// WriteDigest stores an already computed hex digest in
// the sidecar file of path.
func WriteDigest(path string, digest string) error {
	const errCtx = "writing digest"

	if err := os.WriteFile(
		path+Suffix, []byte(digest), 0o600,
	); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}
