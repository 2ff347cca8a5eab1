// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package script

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/meterio/nft-auction/meter"
	setypes "github.com/meterio/nft-auction/script/types"
)

// ModuleHandler is the single entry point of a registered module. The engine
// guarantees whole-call atomicity around it: a returned error reverts every
// state write the handler staged.
type ModuleHandler func(env *setypes.ScriptEnv, payload []byte, to *meter.Address, gas uint64) (*setypes.ScriptEngineOutput, uint64, error)

// Module one registered module of the system.
type Module struct {
	modName    string
	modID      uint32
	modHandler ModuleHandler
}

func (m *Module) ToString() string {
	return fmt.Sprintf("Module::: Name: %v, ID: %v", m.modName, m.modID)
}

// Registry is the hub of all modules sharing this state region.
type Registry struct {
	modules sync.Map
}

// Register registers a module under a unique ID.
func (r *Registry) Register(modID uint32, m *Module) error {
	if _, loaded := r.modules.LoadOrStore(modID, *m); loaded {
		return errors.Errorf("module with ID %v is already registered", modID)
	}
	return nil
}

// Find looks up a module by ID.
func (r *Registry) Find(modID uint32) (*Module, bool) {
	value, ok := r.modules.Load(modID)
	if !ok {
		return nil, false
	}
	m, ok := value.(Module)
	if !ok {
		panic("registry stores an item which is not a Module")
	}
	return &m, true
}

// All returns all registered modules.
func (r *Registry) All() []Module {
	all := make([]Module, 0)
	r.modules.Range(func(_, value interface{}) bool {
		m, ok := value.(Module)
		if !ok {
			panic("registry stores an item which is not a Module")
		}
		all = append(all, m)
		return true
	})
	return all
}
