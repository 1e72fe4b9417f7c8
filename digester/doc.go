// Package digester calculates and verifies SHA-224/SHA-256 file digests
// with the sha2 package. It stores digests in companion .digest files
// alongside the original so that an unchanged file can be recognized
// without keeping any other state.
package digester
