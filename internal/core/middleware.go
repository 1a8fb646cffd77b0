package core

// Middleware wraps a command with a precondition gate or other cross-cutting
// behavior. The wrapped value is still a Command, so middlewares stack.
type Middleware func(Command) Command

type wrappedCommand struct {
	Command
	wrap func(ctx *Context) error
}

func (w *wrappedCommand) Run(ctx *Context) error {
	if w.wrap != nil {
		return w.wrap(ctx)
	}
	return w.Command.Run(ctx)
}

// ApplyMiddlewares wraps cmd so that the first middleware in the list is the
// first to run.
func ApplyMiddlewares(cmd Command, mws ...Middleware) Command {
	for i := len(mws) - 1; i >= 0; i-- {
		cmd = mws[i](cmd)
	}
	return cmd
}

// Preconditions is the gate chain every command is registered behind, in its
// fixed evaluation order. A failed gate replies to the actor itself and
// short-circuits everything after it, including the command body.
func Preconditions(tracker *CooldownTracker) []Middleware {
	return []Middleware{
		WithDevGate(),
		WithGuildOnly(),
		WithPermissionCheck(),
		WithArgsCheck(),
		WithCooldown(tracker),
	}
}
