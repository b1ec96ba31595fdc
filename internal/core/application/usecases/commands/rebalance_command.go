package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrRebalanceCommandIsNotConstructed = errors.New(
	"RebalanceCommand must be created via NewRebalanceCommand constructor",
)

// RebalanceCommand asks for a full recomputation of the fleet.
// This is a parameterless command: the whole fleet is always rebalanced.
type RebalanceCommand struct {
	guard guard.ConstructorGuard
}

func NewRebalanceCommand() RebalanceCommand {
	return RebalanceCommand{guard: guard.NewConstructorGuard()}
}

func (c RebalanceCommand) Validate() error {
	return c.guard.Validate(ErrRebalanceCommandIsNotConstructed)
}
