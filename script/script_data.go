// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package script

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
)

// ScriptPattern marks the start of a script envelope on the wire.
var ScriptPattern = [4]byte{0xde, 0xad, 0xbe, 0xef}

// ScriptHeader routes a payload to a module.
type ScriptHeader struct {
	Version uint32
	ModID   uint32
}

func (sh *ScriptHeader) GetVersion() uint32 { return sh.Version }
func (sh *ScriptHeader) GetModID() uint32   { return sh.ModID }

func (sh *ScriptHeader) ToString() string {
	return fmt.Sprintf("ScriptHeader::: Version: %v, ModID: %v", sh.Version, sh.ModID)
}

// ScriptData is the envelope: header plus the module's RLP payload.
type ScriptData struct {
	Header  ScriptHeader
	Payload []byte
}

// EncodeScriptData wraps an already encoded module body into a pattern-prefixed
// envelope addressed to modID.
func EncodeScriptData(modID uint32, payload []byte) ([]byte, error) {
	s := &ScriptData{
		Header:  ScriptHeader{Version: uint32(0), ModID: modID},
		Payload: payload,
	}
	data, err := rlp.EncodeToBytes(s)
	if err != nil {
		return nil, errors.WithMessage(err, "encode script data")
	}
	return append(ScriptPattern[:], data...), nil
}

// DecodeScriptData decodes an envelope with its pattern prefix already stripped.
func DecodeScriptData(data []byte) (*ScriptData, error) {
	sd := ScriptData{}
	if err := rlp.DecodeBytes(data, &sd); err != nil {
		return nil, errors.WithMessage(err, "decode script data")
	}
	return &sd, nil
}
