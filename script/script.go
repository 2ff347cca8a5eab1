// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package script

import (
	"bytes"
	"encoding/hex"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/meterio/nft-auction/meter"
	setypes "github.com/meterio/nft-auction/script/types"
	"github.com/meterio/nft-auction/state"
)

var ScriptGlobInst *ScriptEngine

// ScriptEngine is the hub of all modules sharing this state region. It owns
// the registry, decodes envelopes and dispatches payloads to module handlers
// under a state checkpoint, so a failed transition leaves no partial effects.
type ScriptEngine struct {
	stateCreator *state.Creator
	logger       *slog.Logger
	modReg       Registry
}

// GetScriptGlobInst returns the global engine instance.
func GetScriptGlobInst() *ScriptEngine {
	return ScriptGlobInst
}

func SetScriptGlobInst(inst *ScriptEngine) {
	ScriptGlobInst = inst
}

func NewScriptEngine(stateCreator *state.Creator) *ScriptEngine {
	se := &ScriptEngine{
		stateCreator: stateCreator,
		logger:       slog.Default().With("pkg", "se"),
	}
	SetScriptGlobInst(se)

	se.StartAllModules()
	return se
}

func (se *ScriptEngine) StartAllModules() {
	ModuleAuctionInit(se)
}

// StateCreator exposes the creator so tooling can build states over the
// same store the engine runs on.
func (se *ScriptEngine) StateCreator() *state.Creator {
	return se.stateCreator
}

// HandleScriptData decodes a pattern-prefixed envelope and runs the addressed
// module handler. The handler runs inside a checkpoint; any error reverts all
// of its staged writes before propagating.
func (se *ScriptEngine) HandleScriptData(senv *setypes.ScriptEnv, data []byte, to *meter.Address, gas uint64) (seOutput *setypes.ScriptEngineOutput, leftOverGas uint64, err error) {
	if len(data) < len(ScriptPattern) || !bytes.Equal(data[:len(ScriptPattern)], ScriptPattern[:]) {
		return nil, gas, errors.Errorf("pattern mismatch, pattern = %v", hex.EncodeToString(data))
	}
	script, err := DecodeScriptData(data[len(ScriptPattern):])
	if err != nil {
		se.logger.Error("decode script message failed", "err", err)
		return nil, gas, err
	}

	header := script.Header
	mod, found := se.modReg.Find(header.GetModID())
	if !found {
		err := errors.Errorf("could not address module %v", header.GetModID())
		se.logger.Error("module not found", "err", err)
		return nil, gas, err
	}

	checkpoint := senv.GetState().NewCheckpoint()
	seOutput, leftOverGas, err = mod.modHandler(senv, script.Payload, to, gas)
	if err != nil {
		senv.GetState().RevertTo(checkpoint)
		return nil, leftOverGas, err
	}
	return
}
