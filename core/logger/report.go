package logger

import (
	"encoding/json"
	"io"
	"sort"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var rawEntry json.RawMessage
		if err := decoder.Decode(&rawEntry); err != nil {
			return err
		}

		var msg structpb.Struct
		if err := protojson.Unmarshal(rawEntry, &msg); err != nil {
			return err
		}

		logEntry, err := entryFromStruct(&msg)
		if err != nil {
			return err
		}

		handler(logEntry)
	}
	return nil
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{
		BindFailure: BindFailureReport{
			Failures: NewPathCounter("command", "kind"),
		},
	}
}

// Report holds statistics about the logged events.
type Report struct {
	LogEntries     int        `json:"log_entries"`
	Sessions       int        `json:"sessions"`
	InvalidEntries StrCounter `json:"unknown_log_entries,omitempty"`

	RunCommand     RunCommandReport     `json:"run_command_report"`
	BindFailure    BindFailureReport    `json:"bind_failure_report"`
	UnknownCommand UnknownCommandReport `json:"unknown_command_report"`
}

func (r *Report) Update(le *LogEntry) {
	r.LogEntries++

	switch event := le.Event.(type) {
	case *SessionStart:
		r.Sessions++
	case *RunCommand:
		r.RunCommand.update(event)
	case *BindFailure:
		r.BindFailure.update(event)
	case *UnknownCommand:
		r.UnknownCommand.update(event)
	default:
		r.InvalidEntries.Increment(le.Type)
	}
}

type RunCommandReport struct {
	// Name of the command
	CommandNames StrCounter `json:"command_names"`
}

func (r *RunCommandReport) update(rc *RunCommand) {
	r.CommandNames.Increment(rc.Command)
}

type BindFailureReport struct {
	Kinds    StrCounter   `json:"kinds"`
	Failures *PathCounter `json:"failures"`
}

func (r *BindFailureReport) update(bf *BindFailure) {
	r.Kinds.Increment(bf.Kind)
	if r.Failures == nil {
		r.Failures = NewPathCounter("command", "kind")
	}
	r.Failures.Increment(bf.Command, bf.Kind)
}

type UnknownCommandReport struct {
	CommandNames StrCounter `json:"command_names"`
}

func (r *UnknownCommandReport) update(uc *UnknownCommand) {
	r.CommandNames.Increment(uc.Command)
}

// SessionReport groups what happened in each session.
type SessionReport struct {
	// Map of sessionID -> interactions
	interactions map[string]*InteractiveSession
}

type InteractiveSession struct {
	StartDir    string `json:"start_dir"`
	Interactive bool   `json:"interactive"`
	LogEntries  int    `json:"log_entries"`

	Commands []string `json:"commands"`
	Failures []string `json:"failures,omitempty"`
}

func (i *InteractiveSession) Update(le *LogEntry) {
	i.LogEntries++

	switch event := le.Event.(type) {
	case *SessionStart:
		i.StartDir = event.StartDir
		i.Interactive = event.Interactive
	case *RunCommand:
		i.Commands = append(i.Commands, strings.Join(append([]string{event.Command}, event.Args...), " "))
	case *BindFailure:
		i.Failures = append(i.Failures, event.Command+": "+event.Error)
	case *UnknownCommand:
		i.Failures = append(i.Failures, event.Command+": command not found")
	}
}

func (s *SessionReport) init() {
	if s.interactions == nil {
		s.interactions = make(map[string]*InteractiveSession)
	}
}

// MarshalJSON implements custom JSON marshaler.
func (s *SessionReport) MarshalJSON() ([]byte, error) {
	s.init()

	return json.Marshal(s.interactions)
}

func (s *SessionReport) Update(le *LogEntry) {
	s.init()

	sessionID := le.SessionID
	if sessionID == "" {
		return
	}
	report, ok := s.interactions[sessionID]
	if !ok {
		report = &InteractiveSession{}
		s.interactions[sessionID] = report
	}

	report.Update(le)
}

// Session returns the interactions recorded for a session.
func (s *SessionReport) Session(id string) (*InteractiveSession, bool) {
	s.init()

	out, ok := s.interactions[id]
	return out, ok
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// Count returns how many times key was seen.
func (s StrCounter) Count(key string) int {
	return s.internal[key]
}

// MarshalJSON implements custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.internal)
}

func NewPathCounter(cols ...string) *PathCounter {
	return &PathCounter{
		cols:     cols,
		internal: make(map[string]int),
	}
}

// PathCounter counts the number of tuples seen.
type PathCounter struct {
	cols     []string
	internal map[string]int
}

// Increment adds one to the given key.
func (ctr *PathCounter) Increment(toAdd ...string) {
	if len(toAdd) != len(ctr.cols) {
		panic("wrong number of columns to add")
	}

	ctr.internal[toKey(toAdd...)]++
}

// Count returns how many times the tuple was seen.
func (ctr *PathCounter) Count(vals ...string) int {
	return ctr.internal[toKey(vals...)]
}

// MarshalJSON implements custom JSON marshaler.
func (ctr *PathCounter) MarshalJSON() ([]byte, error) {
	type Count struct {
		Count  int               `json:"count"`
		Fields map[string]string `json:"event"`
		Path   string            `json:"-"`
	}

	var out []Count
	for k, v := range ctr.internal {
		count := Count{
			Count:  v,
			Path:   k,
			Fields: make(map[string]string),
		}

		splitPath := fromKey(k)
		for colNum, colVal := range ctr.cols {
			count.Fields[colVal] = splitPath[colNum]
		}

		out = append(out, count)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Path < out[j].Path
		}
		return out[i].Count > out[j].Count
	})

	return json.Marshal(out)
}

func toKey(vals ...string) string {
	key, _ := json.Marshal(vals)
	return string(key)
}

func fromKey(key string) (out []string) {
	json.Unmarshal([]byte(key), &out)
	return
}
