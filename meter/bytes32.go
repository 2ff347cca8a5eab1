// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package meter

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Bytes32 a 32 byte value, used for storage keys and identifiers.
type Bytes32 [32]byte

// BytesToBytes32 converts a byte slice, left-truncating or zero-padding on
// the left when the length does not match.
func BytesToBytes32(b []byte) (b32 Bytes32) {
	if len(b) > len(b32) {
		b = b[len(b)-len(b32):]
	}
	copy(b32[len(b32)-len(b):], b)
	return
}

// ParseBytes32 parses a "0x" prefixed, 64 hex digit string.
func ParseBytes32(s string) (Bytes32, error) {
	if len(s) != 64+2 {
		return Bytes32{}, fmt.Errorf("bytes32 must have 64 hex digits with 0x prefix")
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return Bytes32{}, fmt.Errorf("bytes32 must have 0x prefix")
	}
	var b32 Bytes32
	if _, err := hex.Decode(b32[:], []byte(s[2:])); err != nil {
		return Bytes32{}, err
	}
	return b32, nil
}

// MustParseBytes32 parses or panics. Meant for well-known constants.
func MustParseBytes32(s string) Bytes32 {
	b32, err := ParseBytes32(s)
	if err != nil {
		panic(err)
	}
	return b32
}

func (b32 Bytes32) Bytes() []byte {
	return b32[:]
}

func (b32 Bytes32) IsZero() bool {
	return b32 == Bytes32{}
}

func (b32 Bytes32) String() string {
	return "0x" + hex.EncodeToString(b32[:])
}

// AbbrevString returns the shortened form used in logs.
func (b32 Bytes32) AbbrevString() string {
	s := hex.EncodeToString(b32[:])
	return "0x" + s[:4] + "..." + s[len(s)-4:]
}
