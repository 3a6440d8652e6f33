package command

import (
	"context"
	"fmt"

	"github.com/Domenick1991/journeys/internal/domain"
)

// Command is a typed request routed by the bus. Name must be stable: it is
// the registry key.
type Command interface {
	Name() string
}

// Handler executes one command kind.
type Handler func(ctx context.Context, cmd Command) ([]domain.Journey, error)

// Bus maps command names to handlers. Registration happens once at startup;
// dispatching an unregistered command is a wiring bug surfaced as
// ErrUnregisteredCommand.
type Bus struct {
	handlers map[string]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string]Handler)}
}

func (b *Bus) Register(name string, handler Handler) {
	b.handlers[name] = handler
}

func (b *Bus) Dispatch(ctx context.Context, cmd Command) ([]domain.Journey, error) {
	handler, ok := b.handlers[cmd.Name()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnregisteredCommand, cmd.Name())
	}
	return handler(ctx, cmd)
}
