package core

import (
	"time"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"

	"github.com/eliasrilegard/chronos/internal/storage"
	"github.com/eliasrilegard/chronos/pkg/jobmgr"
)

// Descriptor is the static metadata a command declares once at registration.
// A command sets at most one of Category or BelongsTo: Category marks it as a
// category root owning a group of subcommands, BelongsTo attaches it to such
// a root. With neither set it is a plain top-level command.
type Descriptor struct {
	Name               string
	Description        string
	Usages             []string
	Category           string
	BelongsTo          string
	RequiresArgs       bool
	DevOnly            bool
	GuildOnly          bool
	RequiredPermission int64 // discordgo permission bit, 0 = open command
	Cooldown           time.Duration
}

// QualifiedName is the full invocation path of the command, e.g. "mod kick"
// for a subcommand and just the name for everything else.
func (d Descriptor) QualifiedName() string {
	if d.BelongsTo != "" {
		return d.BelongsTo + " " + d.Name
	}
	return d.Name
}

// Command is a named unit of behavior invoked by dispatch: a plain command,
// a category root, or a subcommand.
type Command interface {
	Describe() Descriptor
	Run(ctx *Context) error
}

// Replier is the transport-provided capability for sending replies into the
// channel an invocation came from. SendTemporary deletes the notice again
// after ttl.
type Replier interface {
	Send(content string) (*discordgo.Message, error)
	SendEmbed(e *discordgo.MessageEmbed) (*discordgo.Message, error)
	SendTemporary(content string, ttl time.Duration) error
}

// PermissionResolver reports the effective permission bits of a user in a
// channel, or an error if they cannot be resolved (e.g. the user is not a
// member of the guild).
type PermissionResolver func(userID, channelID string) (int64, error)

// DenyReason classifies a precondition rejection.
type DenyReason string

const (
	DenyNotAuthorized          DenyReason = "not-authorized"
	DenyWrongContext           DenyReason = "wrong-context"
	DenyInsufficientPermission DenyReason = "insufficient-permission"
	DenyMissingArguments       DenyReason = "missing-arguments"
	DenyCoolingDown            DenyReason = "cooling-down"
)

// Deny is the structured rejection produced by a failed gate.
type Deny struct {
	Reason      DenyReason
	Explanation string
	TTL         time.Duration // >0 means the notice is deleted after this long
	Remaining   time.Duration // set for cooling-down
}

// Context carries everything a command (and the gates in front of it) needs
// for one incoming message. It is built by the dispatcher and discarded when
// dispatch completes.
type Context struct {
	Session *discordgo.Session
	Event   *discordgo.MessageCreate
	Args    []string
	Prefix  string

	// Operator marks an actor on the privileged allowlist. Operators bypass
	// the permission and cooldown gates, never the guild-only gate.
	Operator bool

	Storage     *storage.Storage
	Registry    *Registry
	Cooldowns   *CooldownTracker
	Jobs        *jobmgr.Manager
	Replier     Replier
	Permissions PermissionResolver

	// Denied is set by the first gate that rejects the invocation.
	Denied *Deny
}

// Reject records d on the context and renders it to the actor. A
// not-authorized rejection stays silent so the command is indistinguishable
// from an unknown one; a cooling-down rejection is sent as a temporary
// notice; everything else is an embed.
func (c *Context) Reject(d Deny) error {
	c.Denied = &d
	switch d.Reason {
	case DenyNotAuthorized:
		return nil
	case DenyCoolingDown:
		return c.Replier.SendTemporary(d.Explanation, d.TTL)
	default:
		_, err := c.Replier.SendEmbed(embed.NewEmbed().
			SetColor(EmbedColorWarn).
			SetDescription(d.Explanation).
			MessageEmbed)
		return err
	}
}
