package dao

import (
	msig "github.com/vortex-hue/multisig-dao-wallet"
	"github.com/vortex-hue/multisig-dao-wallet/errors"
)

// Executor carries out a single proposal instruction. Implementations
// are registered per target address and receive the opaque payload of
// the instruction.
type Executor interface {
	Execute(ctx msig.Context, db msig.KVStore, instruction InstructionData) error
}

// ExecutorFunc provides Executor interface support for plain
// functions.
type ExecutorFunc func(ctx msig.Context, db msig.KVStore, instruction InstructionData) error

func (f ExecutorFunc) Execute(ctx msig.Context, db msig.KVStore, instruction InstructionData) error {
	return f(ctx, db, instruction)
}

// ExecutorRegistry routes instructions to executors by target
// address. It is itself an Executor so handlers do not care whether
// they talk to one executor or many.
type ExecutorRegistry struct {
	execs map[string]Executor
}

var _ Executor = (*ExecutorRegistry)(nil)

// NewExecutorRegistry returns an empty registry.
func NewExecutorRegistry() *ExecutorRegistry {
	return &ExecutorRegistry{
		execs: make(map[string]Executor),
	}
}

// Register binds an executor to a target address. Registering the
// same target twice panics, so wiring mistakes surface at startup.
func (r *ExecutorRegistry) Register(target msig.Address, exec Executor) {
	if err := target.Validate(); err != nil {
		panic(err)
	}
	key := string(target)
	if _, ok := r.execs[key]; ok {
		panic("executor already registered for " + target.String())
	}
	r.execs[key] = exec
}

// Execute dispatches the instruction to the executor registered for
// its target.
func (r *ExecutorRegistry) Execute(ctx msig.Context, db msig.KVStore, instruction InstructionData) error {
	exec, ok := r.execs[string(instruction.Target)]
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "no executor for target %s", instruction.Target)
	}
	return exec.Execute(ctx, db, instruction)
}
