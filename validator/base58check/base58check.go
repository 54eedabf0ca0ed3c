// Package base58check validates Base58Check encoded cryptocurrency
// addresses: base58 decoding with an optional alphabet override,
// version byte matching, double-SHA256 checksum verification and a
// canonical re-encoding check.
package base58check

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"sort"

	"github.com/mr-tron/base58"
)

// Address length bounds in base58 characters. The lower bound is
// inclusive and the upper bound exclusive: 25 characters is the
// shortest accepted address, 35 the shortest rejected one.
const (
	MinAddressLen = 25
	MaxAddressLen = 35
)

// ChecksumLen is the number of checksum bytes trailing the decoded payload.
const ChecksumLen = 4

// Decode decodes a base58 address. An empty charset selects the
// standard bitcoin alphabet.
func Decode(address string, charset string) ([]byte, error) {
	if charset == "" {
		return base58.Decode(address)
	}
	return base58.DecodeAlphabet(address, base58.NewAlphabet(charset))
}

// Encode encodes raw bytes with the given alphabet override, or the
// standard bitcoin alphabet if charset is empty.
func Encode(raw []byte, charset string) string {
	if charset == "" {
		return base58.Encode(raw)
	}
	return base58.EncodeAlphabet(raw, base58.NewAlphabet(charset))
}

// Checksum returns the Base58Check checksum of payload, the first 4
// bytes of SHA256(SHA256(payload)).
func Checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:ChecksumLen]
}

// ValidateAddress checks address against versions, the set of version
// bytes accepted across all of the currency's networks. A nil return
// means the address is well formed and checksum-correct.
func ValidateAddress(address string, charset string, versions []byte) error {
	if len(address) < MinAddressLen {
		return fmt.Errorf("invalid address %s: too short (%d chars)", address, len(address))
	}
	if len(address) >= MaxAddressLen {
		return fmt.Errorf("invalid address %s: too long (%d chars)", address, len(address))
	}

	decoded, err := Decode(address, charset)
	if err != nil {
		return fmt.Errorf("invalid address %s: invalid base58 encoding: %w", address, err)
	}
	if len(decoded) <= ChecksumLen {
		return fmt.Errorf("invalid address %s: decoded payload too short (%d bytes)", address, len(decoded))
	}

	if bytes.IndexByte(versions, decoded[0]) < 0 {
		return fmt.Errorf("invalid address %s: unknown version byte 0x%02x", address, decoded[0])
	}

	payload, checksum := decoded[:len(decoded)-ChecksumLen], decoded[len(decoded)-ChecksumLen:]
	if !bytes.Equal(checksum, Checksum(payload)) {
		return fmt.Errorf("invalid address %s: checksum mismatch", address)
	}

	// Guard against non-canonical encodings that would decode to the
	// same payload but render differently.
	if canonical := Encode(decoded, charset); canonical != address {
		return fmt.Errorf("invalid address %s: non-canonical encoding (canonical form is %s)", address, canonical)
	}
	return nil
}

// Network resolves the network label whose version byte set contains
// the address's leading version byte. Labels are scanned in sorted
// order so resolution is deterministic when sets overlap. Only
// meaningful for addresses that already passed ValidateAddress.
func Network(address string, charset string, networks map[string][]byte) (string, bool) {
	decoded, err := Decode(address, charset)
	if err != nil || len(decoded) == 0 {
		return "", false
	}

	labels := make([]string, 0, len(networks))
	for label := range networks {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		if bytes.IndexByte(networks[label], decoded[0]) >= 0 {
			return label, true
		}
	}
	return "", false
}
