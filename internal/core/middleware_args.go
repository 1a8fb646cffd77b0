package core

import (
	"fmt"
	"strings"
)

// WithArgsCheck rejects an argument-less invocation of a command that
// declares RequiresArgs, replying with the command's declared usage
// patterns. It sits before the cooldown gate so a malformed invocation never
// consumes a cooldown.
func WithArgsCheck() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx *Context) error {
				d := cmd.Describe()
				if d.RequiresArgs && len(ctx.Args) == 0 {
					return ctx.Reject(Deny{
						Reason:      DenyMissingArguments,
						Explanation: usageText(ctx.Prefix, d),
					})
				}
				return cmd.Run(ctx)
			},
		}
	}
}

func usageText(prefix string, d Descriptor) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**: %s\n\nThis command requires arguments:\n", d.QualifiedName(), d.Description)
	for _, u := range d.Usages {
		fmt.Fprintf(&b, "`%s%s`\n", prefix, u)
	}
	return strings.TrimRight(b.String(), "\n")
}
