package view

import (
	"fmt"
	"strings"
)

// CommandKind enumerates the user commands.
type CommandKind int

const (
	CmdToggleOverlay CommandKind = iota + 1
	CmdResetView
	CmdSelectZone
)

// Command is one user command. Zone is set only for CmdSelectZone.
type Command struct {
	Kind CommandKind
	Zone ZoneKind
}

func (c Command) String() string {
	switch c.Kind {
	case CmdToggleOverlay:
		return "toggle-overlay"
	case CmdResetView:
		return "reset-view"
	case CmdSelectZone:
		return "select-zone:" + c.Zone.Key()
	}
	return fmt.Sprintf("command(%d)", int(c.Kind))
}

// ParseCommand parses "toggle-overlay", "reset-view" or
// "select-zone:<zone>". "select-zone(<zone>)" is accepted too.
func ParseCommand(s string) (Command, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "toggle-overlay", "toggle":
		return Command{Kind: CmdToggleOverlay}, nil
	case "reset-view", "reset":
		return Command{Kind: CmdResetView}, nil
	}
	for _, prefix := range []string{"select-zone:", "select-zone(", "zone:"} {
		if !strings.HasPrefix(s, prefix) {
			continue
		}
		arg := strings.TrimPrefix(s, prefix)
		if prefix == "select-zone(" {
			if !strings.HasSuffix(arg, ")") {
				return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
			}
			arg = strings.TrimSuffix(arg, ")")
		}
		z, err := ParseZone(arg)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdSelectZone, Zone: z}, nil
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
}

// ParseScript parses a comma-separated command list. Empty items are skipped.
func ParseScript(s string) ([]Command, error) {
	var out []Command
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		cmd, err := ParseCommand(part)
		if err != nil {
			return nil, err
		}
		out = append(out, cmd)
	}
	return out, nil
}
