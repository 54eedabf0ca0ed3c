// Package ethereum validates Ethereum style account addresses: plain
// hex addresses are accepted in all-lowercase or all-uppercase form,
// mixed-case addresses must carry a correct EIP-55 checksum.
package ethereum

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// NetworkLabel applies to every valid address. Ethereum addresses carry
// no version byte, so the same address exists on main and test networks.
const NetworkLabel = "both"

var (
	lowerPattern = regexp.MustCompile(`^(0x)?[0-9a-f]{40}$`)
	upperPattern = regexp.MustCompile(`^(0x)?[0-9A-F]{40}$`)
	hexPattern   = regexp.MustCompile(`^[0-9a-fA-F]{40}$`)
)

// TrimPrefix removes a single leading "0x" or "0X" marker. Leading zero
// digits of the address itself are kept.
func TrimPrefix(address string) string {
	if len(address) >= 2 && address[0] == '0' && (address[1] == 'x' || address[1] == 'X') {
		return address[2:]
	}
	return address
}

// ValidateAddress checks that address is a well formed Ethereum address.
// Uniformly cased addresses carry no checksum and are accepted as-is;
// anything else must pass EIP-55 verification.
func ValidateAddress(address string) error {
	if lowerPattern.MatchString(address) || upperPattern.MatchString(address) {
		return nil
	}
	return VerifyChecksum(address)
}

// VerifyChecksum checks the EIP-55 mixed-case checksum of address: each
// hex letter must be uppercase exactly when the corresponding digit of
// the Keccak-256 digest of the lowercased address is greater than 7.
func VerifyChecksum(address string) error {
	addr := TrimPrefix(address)
	if !hexPattern.MatchString(addr) {
		return fmt.Errorf("invalid address %s: not a 40 digit hex string", address)
	}

	digest := hex.EncodeToString(crypto.Keccak256([]byte(strings.ToLower(addr))))
	for i := 0; i < len(addr); i++ {
		c := addr[i]
		if c >= '0' && c <= '9' {
			continue
		}
		if hexDigitValue(digest[i]) > 7 {
			if c < 'A' || c > 'F' {
				return fmt.Errorf("invalid address %s: checksum requires uppercase at position %d", address, i)
			}
		} else {
			if c < 'a' || c > 'f' {
				return fmt.Errorf("invalid address %s: checksum requires lowercase at position %d", address, i)
			}
		}
	}
	return nil
}

func hexDigitValue(c byte) int {
	if c >= '0' && c <= '9' {
		return int(c - '0')
	}
	return int(c-'a') + 10
}
