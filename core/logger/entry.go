package logger

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// Event is a typed payload of a LogEntry.
type Event interface {
	// EventType names the event in the log, e.g. "run_command".
	EventType() string

	fields() map[string]interface{}
}

// RunCommand is logged when a command's arguments bound and it was started.
type RunCommand struct {
	Command string
	// Args are the expressions after the command, rendered as text.
	Args []string
}

func (*RunCommand) EventType() string { return "run_command" }

func (e *RunCommand) fields() map[string]interface{} {
	return map[string]interface{}{
		"command": e.Command,
		"args":    stringList(e.Args),
	}
}

// BindFailure is logged when a line couldn't be bound to a signature.
type BindFailure struct {
	Command string
	// Kind is the diag kind name, e.g. "too_many_positional".
	Kind  string
	Error string
}

func (*BindFailure) EventType() string { return "bind_failure" }

func (e *BindFailure) fields() map[string]interface{} {
	return map[string]interface{}{
		"command": e.Command,
		"kind":    e.Kind,
		"error":   e.Error,
	}
}

// UnknownCommand is logged when no signature is registered for a name.
type UnknownCommand struct {
	Command string
}

func (*UnknownCommand) EventType() string { return "unknown_command" }

func (e *UnknownCommand) fields() map[string]interface{} {
	return map[string]interface{}{"command": e.Command}
}

// SessionStart is logged once when a shell session opens.
type SessionStart struct {
	Interactive bool
	StartDir    string
}

func (*SessionStart) EventType() string { return "session_start" }

func (e *SessionStart) fields() map[string]interface{} {
	return map[string]interface{}{
		"interactive": e.Interactive,
		"start_dir":   e.StartDir,
	}
}

// LogEntry is one line of the event log.
type LogEntry struct {
	TimestampMicros int64
	SessionID       string
	// Type is the event type as written, kept even if Event couldn't be decoded.
	Type  string
	Event Event
}

const (
	keyTimestamp = "timestamp_micros"
	keySession   = "session_id"
	keyType      = "type"
	keyEvent     = "event"
)

func (le *LogEntry) toStruct() (*structpb.Struct, error) {
	var fields map[string]interface{}
	if le.Event != nil {
		fields = le.Event.fields()
	}

	return structpb.NewStruct(map[string]interface{}{
		keyTimestamp: le.TimestampMicros,
		keySession:   le.SessionID,
		keyType:      le.Type,
		keyEvent:     fields,
	})
}

func entryFromStruct(s *structpb.Struct) (*LogEntry, error) {
	f := s.GetFields()

	typeVal, ok := f[keyType]
	if !ok {
		return nil, fmt.Errorf("log entry missing %q", keyType)
	}

	le := &LogEntry{
		TimestampMicros: int64(f[keyTimestamp].GetNumberValue()),
		SessionID:       f[keySession].GetStringValue(),
		Type:            typeVal.GetStringValue(),
	}
	le.Event = decodeEvent(le.Type, f[keyEvent].GetStructValue().GetFields())
	return le, nil
}

func decodeEvent(eventType string, f map[string]*structpb.Value) Event {
	str := func(key string) string {
		return f[key].GetStringValue()
	}

	switch eventType {
	case "run_command":
		var args []string
		for _, v := range f["args"].GetListValue().GetValues() {
			args = append(args, v.GetStringValue())
		}
		return &RunCommand{Command: str("command"), Args: args}
	case "bind_failure":
		return &BindFailure{Command: str("command"), Kind: str("kind"), Error: str("error")}
	case "unknown_command":
		return &UnknownCommand{Command: str("command")}
	case "session_start":
		return &SessionStart{Interactive: f["interactive"].GetBoolValue(), StartDir: str("start_dir")}
	}
	return nil
}

// structpb only accepts []interface{} for lists.
func stringList(in []string) []interface{} {
	out := make([]interface{}, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
