package core

import (
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
)

type fakeReplier struct {
	sent      []string
	embeds    []*discordgo.MessageEmbed
	temporary []string
}

func (f *fakeReplier) Send(content string) (*discordgo.Message, error) {
	f.sent = append(f.sent, content)
	return &discordgo.Message{ID: "1"}, nil
}

func (f *fakeReplier) SendEmbed(e *discordgo.MessageEmbed) (*discordgo.Message, error) {
	f.embeds = append(f.embeds, e)
	return &discordgo.Message{ID: "1"}, nil
}

func (f *fakeReplier) SendTemporary(content string, ttl time.Duration) error {
	f.temporary = append(f.temporary, content)
	return nil
}

func (f *fakeReplier) replies() int {
	return len(f.sent) + len(f.embeds) + len(f.temporary)
}

func newTestContext(guildID string, args ...string) (*Context, *fakeReplier) {
	r := &fakeReplier{}
	ctx := &Context{
		Event: &discordgo.MessageCreate{Message: &discordgo.Message{
			GuildID:   guildID,
			ChannelID: "chan",
			Author:    &discordgo.User{ID: "user", Username: "user"},
		}},
		Args:    args,
		Prefix:  ".",
		Replier: r,
	}
	return ctx, r
}

func denyReason(t *testing.T, ctx *Context, want DenyReason) {
	t.Helper()
	if ctx.Denied == nil {
		t.Fatal("expected a denial, got none")
	}
	if ctx.Denied.Reason != want {
		t.Fatalf("deny reason = %s, want %s", ctx.Denied.Reason, want)
	}
}

func TestDevGateSilentForNonOperators(t *testing.T) {
	cmd := &testCommand{desc: Descriptor{Name: "debug", DevOnly: true}}
	wrapped := ApplyMiddlewares(cmd, WithDevGate())

	ctx, r := newTestContext("guild")
	if err := wrapped.Run(ctx); err != nil {
		t.Fatal(err)
	}

	denyReason(t, ctx, DenyNotAuthorized)
	if cmd.runs != 0 {
		t.Error("command body must not run")
	}
	if r.replies() != 0 {
		t.Error("not-authorized must be silent, indistinguishable from an unknown command")
	}
}

func TestDevGatePassesOperators(t *testing.T) {
	cmd := &testCommand{desc: Descriptor{Name: "debug", DevOnly: true}}
	wrapped := ApplyMiddlewares(cmd, WithDevGate())

	ctx, _ := newTestContext("guild")
	ctx.Operator = true
	if err := wrapped.Run(ctx); err != nil {
		t.Fatal(err)
	}
	if cmd.runs != 1 {
		t.Error("operator invocation should reach the command body")
	}
}

func TestGuildOnlyRejectsDirectMessages(t *testing.T) {
	cmd := &testCommand{desc: Descriptor{Name: "kick", GuildOnly: true}}
	wrapped := ApplyMiddlewares(cmd, WithGuildOnly())

	ctx, r := newTestContext("") // empty guild = DM
	ctx.Operator = true          // operators are not exempt from this gate
	if err := wrapped.Run(ctx); err != nil {
		t.Fatal(err)
	}

	denyReason(t, ctx, DenyWrongContext)
	if cmd.runs != 0 {
		t.Error("command body must not run from a DM")
	}
	if len(r.embeds) != 1 {
		t.Error("wrong-context denial should explain itself")
	}
}

func TestPermissionGate(t *testing.T) {
	tests := []struct {
		name       string
		perms      int64
		permErr    error
		operator   bool
		wantRun    bool
		wantReason DenyReason
	}{
		{"insufficient", discordgo.PermissionSendMessages, nil, false, false, DenyInsufficientPermission},
		{"sufficient", discordgo.PermissionKickMembers, nil, false, true, ""},
		{"administrator implies all", discordgo.PermissionAdministrator, nil, false, true, ""},
		{"unresolvable", 0, errResolve, false, false, DenyInsufficientPermission},
		{"operator bypass", 0, nil, true, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &testCommand{desc: Descriptor{
				Name:               "kick",
				RequiredPermission: discordgo.PermissionKickMembers,
			}}
			wrapped := ApplyMiddlewares(cmd, WithPermissionCheck())

			ctx, _ := newTestContext("guild")
			ctx.Operator = tt.operator
			ctx.Permissions = func(userID, channelID string) (int64, error) {
				return tt.perms, tt.permErr
			}

			if err := wrapped.Run(ctx); err != nil {
				t.Fatal(err)
			}
			if tt.wantRun && cmd.runs != 1 {
				t.Error("command body should have run")
			}
			if !tt.wantRun {
				if cmd.runs != 0 {
					t.Error("command body must not run")
				}
				denyReason(t, ctx, tt.wantReason)
			}
		})
	}
}

var errResolve = errors.New("not a member of this guild")

func TestArgsGateRunsBeforeCooldownGate(t *testing.T) {
	tracker, _ := newTestTracker()
	cmd := &testCommand{desc: Descriptor{
		Name:         "kick",
		RequiresArgs: true,
		Cooldown:     3 * time.Second,
	}}
	wrapped := ApplyMiddlewares(cmd, Preconditions(tracker)...)

	// No arguments: denied before the cooldown gate, so nothing is armed.
	ctx, _ := newTestContext("guild")
	if err := wrapped.Run(ctx); err != nil {
		t.Fatal(err)
	}
	denyReason(t, ctx, DenyMissingArguments)
	if got := tracker.Remaining("kick", "user"); got != 0 {
		t.Fatalf("cooldown consumed on a missing-arguments rejection: %v", got)
	}

	// With arguments the invocation passes and arms the cooldown.
	ctx, _ = newTestContext("guild", "@target")
	if err := wrapped.Run(ctx); err != nil {
		t.Fatal(err)
	}
	if cmd.runs != 1 {
		t.Fatal("command body should have run")
	}

	ctx, r := newTestContext("guild", "@target")
	if err := wrapped.Run(ctx); err != nil {
		t.Fatal(err)
	}
	denyReason(t, ctx, DenyCoolingDown)
	if ctx.Denied.Remaining != 3*time.Second {
		t.Errorf("Remaining = %v, want 3s", ctx.Denied.Remaining)
	}
	if len(r.temporary) != 1 {
		t.Error("cooling-down notice should be temporary")
	}
	if cmd.runs != 1 {
		t.Error("command body must not run while cooling down")
	}
}

func TestCooldownGateSkipsOperators(t *testing.T) {
	tracker, _ := newTestTracker()
	cmd := &testCommand{desc: Descriptor{Name: "kick", Cooldown: time.Minute}}
	wrapped := ApplyMiddlewares(cmd, WithCooldown(tracker))

	ctx, _ := newTestContext("guild")
	ctx.Operator = true
	for i := 0; i < 3; i++ {
		if err := wrapped.Run(ctx); err != nil {
			t.Fatal(err)
		}
	}
	if cmd.runs != 3 {
		t.Errorf("runs = %d, want 3: operators never cool down", cmd.runs)
	}
}

func TestCooldownGateSkipsCategoryRoots(t *testing.T) {
	tracker, _ := newTestTracker()
	cmd := &testCommand{desc: Descriptor{Name: "mod", Category: "mod", Cooldown: time.Minute}}
	wrapped := ApplyMiddlewares(cmd, WithCooldown(tracker))

	for i := 0; i < 2; i++ {
		ctx, _ := newTestContext("guild")
		if err := wrapped.Run(ctx); err != nil {
			t.Fatal(err)
		}
	}
	if cmd.runs != 2 {
		t.Errorf("runs = %d, want 2: category roots are dispatch hubs, never cooled", cmd.runs)
	}
}

func TestCooldownKeysAreQualified(t *testing.T) {
	tracker, _ := newTestTracker()
	sub := &testCommand{desc: Descriptor{Name: "kick", BelongsTo: "mod", Cooldown: time.Minute}}
	flat := &testCommand{desc: Descriptor{Name: "kick", Cooldown: time.Minute}}

	ctx, _ := newTestContext("guild")
	if err := ApplyMiddlewares(sub, WithCooldown(tracker)).Run(ctx); err != nil {
		t.Fatal(err)
	}
	ctx, _ = newTestContext("guild")
	if err := ApplyMiddlewares(flat, WithCooldown(tracker)).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if sub.runs != 1 || flat.runs != 1 {
		t.Error("same leaf name in different scopes must cool down independently")
	}
}

func TestGateOrderWrongContextWinsOverPermissions(t *testing.T) {
	tracker, _ := newTestTracker()
	cmd := &testCommand{desc: Descriptor{
		Name:               "kick",
		GuildOnly:          true,
		RequiredPermission: discordgo.PermissionKickMembers,
		RequiresArgs:       true,
	}}
	wrapped := ApplyMiddlewares(cmd, Preconditions(tracker)...)

	ctx, _ := newTestContext("") // DM, no args, no resolver wired
	if err := wrapped.Run(ctx); err != nil {
		t.Fatal(err)
	}
	denyReason(t, ctx, DenyWrongContext)
}
