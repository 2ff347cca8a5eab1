// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package meter

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Address an account identity, 20 bytes.
type Address [20]byte

// BytesToAddress converts a byte slice to an address, left-truncating or
// zero-padding on the left when the length does not match.
func BytesToAddress(b []byte) (addr Address) {
	if len(b) > len(addr) {
		b = b[len(b)-len(addr):]
	}
	copy(addr[len(addr)-len(b):], b)
	return
}

// ParseAddress parses a "0x" prefixed, 40 hex digit string.
func ParseAddress(s string) (Address, error) {
	if len(s) != 40+2 {
		return Address{}, fmt.Errorf("address must have 40 hex digits with 0x prefix")
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return Address{}, fmt.Errorf("address must have 0x prefix")
	}
	var addr Address
	if _, err := hex.Decode(addr[:], []byte(s[2:])); err != nil {
		return Address{}, err
	}
	return addr, nil
}

// MustParseAddress parses an address or panics. Meant for well-known constants.
func MustParseAddress(s string) Address {
	addr, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return addr
}

func (addr Address) Bytes() []byte {
	return addr[:]
}

// IsZero reports whether the address is the null sentinel.
func (addr Address) IsZero() bool {
	return addr == Address{}
}

func (addr Address) String() string {
	return "0x" + hex.EncodeToString(addr[:])
}

// AbbrevString returns the shortened form used in logs.
func (addr Address) AbbrevString() string {
	s := hex.EncodeToString(addr[:])
	return "0x" + s[:4] + "..." + s[len(s)-4:]
}
