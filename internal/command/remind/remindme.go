// Package remind holds the reminder command.
package remind

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/eliasrilegard/chronos/internal/core"
)

// Explicit unit table: the delay token is <number><unit>.
var units = map[string]time.Duration{
	"s": time.Second,
	"m": time.Minute,
	"h": time.Hour,
	"d": 24 * time.Hour,
}

const maxDelay = 30 * 24 * time.Hour

// parseDelay parses tokens like "90s", "10m", "2h", "1d".
func parseDelay(token string) (time.Duration, error) {
	if len(token) < 2 {
		return 0, fmt.Errorf("delay %q is too short", token)
	}
	unit, ok := units[strings.ToLower(token[len(token)-1:])]
	if !ok {
		return 0, fmt.Errorf("unknown time unit in %q", token)
	}
	n, err := strconv.Atoi(token[:len(token)-1])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("bad delay amount in %q", token)
	}
	d := time.Duration(n) * unit
	if d > maxDelay {
		return 0, fmt.Errorf("delay %q exceeds the 30 day maximum", token)
	}
	return d, nil
}

type RemindCommand struct{}

func (c *RemindCommand) Describe() core.Descriptor {
	return core.Descriptor{
		Name:         "remindme",
		Description:  "Send yourself a reminder after a delay",
		Usages:       []string{"remindme <number><s|m|h|d> [message]"},
		RequiresArgs: true,
	}
}

func (c *RemindCommand) Run(ctx *core.Context) error {
	delay, err := parseDelay(ctx.Args[0])
	if err != nil {
		_, serr := ctx.Replier.Send(fmt.Sprintf("Couldn't read that delay. Try `%sremindme 10m take a break`.", ctx.Prefix))
		return serr
	}

	message := strings.Join(ctx.Args[1:], " ")
	if message == "" {
		message = "Reminder!"
	}

	mention := ctx.Event.Author.Mention()
	replier := ctx.Replier
	err = ctx.Jobs.After("remind:"+ctx.Event.ID, delay, func(context.Context) error {
		_, err := replier.Send(fmt.Sprintf("%s %s", mention, message))
		return err
	})
	if err != nil {
		return err
	}

	_, err = ctx.Replier.Send(fmt.Sprintf("Alright, I'll remind you in %s.", delay))
	return err
}

// Commands returns the package's registration table.
func Commands() []core.Command {
	return []core.Command{&RemindCommand{}}
}
