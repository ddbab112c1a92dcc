// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters recommended by OWASP (2024). Changing them does not
// invalidate stored hashes: every hash carries its own parameters in the
// encoded string and is verified with those.
const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024 // 64 MiB
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32 // 256 bits
	argonSaltLen        = 16
)

// ErrMalformedPasswordHash is returned when a stored hash is neither a
// parseable Argon2id encoded string nor a legacy hex SHA-256 digest.
var ErrMalformedPasswordHash = errors.New("malformed password hash")

// HashPassword derives an Argon2id hash of password with a fresh random
// salt and returns it in the standard encoded form
// "$argon2id$v=19$m=...,t=...,p=...$<salt>$<hash>" (base64, no padding).
//
// Returns an error only if the OS CSPRNG read fails.
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error generating password salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory,
		argonTime,
		argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword checks a plaintext password against a stored hash.
//
// Two storage forms are accepted:
//   - Argon2id encoded strings produced by HashPassword - verified with the
//     parameters embedded in the hash, constant-time comparison;
//   - legacy hex SHA-256 digests from the first release - verified by
//     re-hashing the candidate.
//
// Returns ErrMalformedPasswordHash if stored matches neither form.
func VerifyPassword(password, stored string) (bool, error) {
	if IsLegacyHash(stored) {
		candidate := LegacyHashString(password)
		return subtle.ConstantTimeCompare([]byte(candidate), []byte(stored)) == 1, nil
	}

	salt, key, timeCost, memory, threads, err := decodeArgon2Hash(stored)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, timeCost, memory, threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(candidate, key) == 1, nil
}

// IsLegacyHash reports whether stored is a first-release bare SHA-256
// digest rather than an Argon2id encoded string. Login uses this to
// upgrade legacy rows in place after a successful verification.
func IsLegacyHash(stored string) bool {
	return !strings.HasPrefix(stored, "$argon2id$")
}

// LegacyHashString computes the first-release password digest: unsalted
// hex-encoded SHA-256. Kept only to verify and migrate old rows; new
// hashes always go through HashPassword.
func LegacyHashString(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// decodeArgon2Hash splits an encoded Argon2id string into its salt, key
// and cost parameters.
func decodeArgon2Hash(encoded string) (salt, key []byte, timeCost, memory uint32, threads uint8, err error) {
	parts := strings.Split(encoded, "$")
	// "", "argon2id", "v=19", "m=...,t=...,p=...", salt, hash
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, ErrMalformedPasswordHash
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, nil, 0, 0, 0, ErrMalformedPasswordHash
	}

	var p uint8
	var m, t uint32
	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &m, &t, &p); err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedPasswordHash
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedPasswordHash
	}
	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedPasswordHash
	}

	return salt, key, t, m, p, nil
}
