package commands

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownType = errors.New("unknown command type")

// Command is a typed request to change the world. Id is the trace key that
// threads through every event the command produces.
type Command struct {
	Id   string      `json:"id"`
	Type CommandType `json:"type"`
	// Actor is empty or game.SystemActorID for system commands.
	Actor    string `json:"actor,omitempty"`
	Location string `json:"location,omitempty"`
	Session  string `json:"session,omitempty"`
	Args     Args   `json:"args"`
}

// NewCommand builds a command whose type follows from its args.
func NewCommand(id, actor string, args Args) Command {
	return Command{Id: id, Type: args.commandType(), Actor: actor, Args: args}
}

// UnmarshalJSON decodes args into the struct registered for the type.
func (c *Command) UnmarshalJSON(b []byte) error {
	var raw struct {
		Id       string          `json:"id"`
		Type     CommandType     `json:"type"`
		Actor    string          `json:"actor"`
		Location string          `json:"location"`
		Session  string          `json:"session"`
		Args     json.RawMessage `json:"args"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	args, ok := NewArgs(raw.Type)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownType, raw.Type)
	}
	if len(raw.Args) > 0 && string(raw.Args) != "null" {
		if err := json.Unmarshal(raw.Args, args); err != nil {
			return fmt.Errorf("decoding %s args: %w", raw.Type, err)
		}
	}

	*c = Command{
		Id:       raw.Id,
		Type:     raw.Type,
		Actor:    raw.Actor,
		Location: raw.Location,
		Session:  raw.Session,
		Args:     args,
	}
	return nil
}
