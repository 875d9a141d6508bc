package movebind

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// AddressLength is the size of an on-chain address in bytes.
const AddressLength = 32

// Address is a 32-byte account or object address.
type Address [AddressLength]byte

// ParseAddress accepts 0x-prefixed or bare hex in either case. Inputs shorter
// than 64 hex digits are left-padded with zeros.
func ParseAddress(s string) (Address, error) {
	var a Address
	digits := strings.TrimSpace(s)
	if hasHexPrefix(digits) {
		digits = digits[2:]
	}
	if digits == "" || len(digits) > 2*AddressLength {
		return a, issueWithParams(CodeInvalidFormat, fmt.Sprintf("invalid address %q", s), "got", s)
	}
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	raw, err := hex.DecodeString(digits)
	if err != nil {
		return a, wrapIssue(CodeInvalidFormat, err, "invalid address %q", s)
	}
	copy(a[AddressLength-len(raw):], raw)
	return a, nil
}

// MustParseAddress is like ParseAddress but panics on malformed input.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns the long form: 0x followed by 64 lowercase hex digits.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// ShortString returns the form used inside type strings, with leading zeros
// stripped (0x2, 0x0, 0xdee9).
func (a Address) ShortString() string {
	s := strings.TrimLeft(hex.EncodeToString(a[:]), "0")
	if s == "" {
		s = "0"
	}
	return "0x" + s
}

// IsZero reports whether every byte of a is zero.
func (a Address) IsZero() bool { return a == Address{} }

func (a Address) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Address) UnmarshalText(text []byte) error {
	v, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// CompressAddress normalizes a hex address to its short form.
func CompressAddress(s string) (string, error) {
	a, err := ParseAddress(s)
	if err != nil {
		return "", err
	}
	return a.ShortString(), nil
}

func hasHexPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
