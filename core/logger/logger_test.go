package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

func recordAll(t *testing.T, session *SessionLogger, events ...Event) {
	t.Helper()
	for _, e := range events {
		require.NoError(t, session.Record(e))
	}
}

func TestJSONLinesRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	session := NewJSONLinesLogRecorder(&buf).NewSession()

	_, err := uuid.Parse(session.ID())
	require.NoError(t, err)

	recordAll(t, session,
		&SessionStart{Interactive: true, StartDir: "/home"},
		&RunCommand{Command: "where", Args: []string{"size > 10"}},
		&BindFailure{Command: "seq", Kind: "missing_mandatory_named", Error: "Expected mandatory argument range, but it was missing"},
		&UnknownCommand{Command: "frobnicate"},
	)

	assert.Equal(t, 4, strings.Count(buf.String(), "\n"))

	var entries []*LogEntry
	require.NoError(t, ReadJSONLinesLog(&buf, func(le *LogEntry) {
		entries = append(entries, le)
	}))

	require.Len(t, entries, 4)
	for _, le := range entries {
		assert.Equal(t, session.ID(), le.SessionID)
		assert.NotZero(t, le.TimestampMicros)
	}

	assert.Equal(t, &SessionStart{Interactive: true, StartDir: "/home"}, entries[0].Event)
	assert.Equal(t, &RunCommand{Command: "where", Args: []string{"size > 10"}}, entries[1].Event)
	assert.Equal(t, "bind_failure", entries[2].Type)
	assert.Equal(t, &UnknownCommand{Command: "frobnicate"}, entries[3].Event)
}

func TestReadJSONLinesLog_errors(t *testing.T) {
	err := ReadJSONLinesLog(strings.NewReader(`{"session_id": "x"}`), func(*LogEntry) {})
	assert.EqualError(t, err, `log entry missing "type"`)

	err = ReadJSONLinesLog(strings.NewReader(`[1, 2]`), func(*LogEntry) {})
	assert.Error(t, err)
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLinesLogRecorder(&buf)
	first, second := log.NewSession(), log.NewSession()

	recordAll(t, first,
		&SessionStart{StartDir: "/"},
		&RunCommand{Command: "ls"},
		&RunCommand{Command: "ls", Args: []string{"--all"}},
		&BindFailure{Command: "view", Kind: "too_many_positional", Error: "Too many arguments, extras: [b]"},
	)
	recordAll(t, second,
		&SessionStart{Interactive: true},
		&UnknownCommand{Command: "nope"},
		&BindFailure{Command: "view", Kind: "too_many_positional", Error: "Too many arguments, extras: [c]"},
	)
	buf.WriteString(`{"type": "from_the_future", "event": {}}` + "\n")

	report := NewReport()
	sessions := &SessionReport{}
	require.NoError(t, ReadJSONLinesLog(&buf, func(le *LogEntry) {
		report.Update(le)
		sessions.Update(le)
	}))

	assert.Equal(t, 8, report.LogEntries)
	assert.Equal(t, 2, report.Sessions)
	assert.Equal(t, 2, report.RunCommand.CommandNames.Count("ls"))
	assert.Equal(t, 1, report.UnknownCommand.CommandNames.Count("nope"))
	assert.Equal(t, 2, report.BindFailure.Kinds.Count("too_many_positional"))
	assert.Equal(t, 2, report.BindFailure.Failures.Count("view", "too_many_positional"))
	assert.Equal(t, 1, report.InvalidEntries.Count("from_the_future"))

	firstSession, ok := sessions.Session(first.ID())
	require.True(t, ok)
	assert.Equal(t, []string{"ls", "ls --all"}, firstSession.Commands)
	assert.Equal(t, []string{"view: Too many arguments, extras: [b]"}, firstSession.Failures)

	secondSession, ok := sessions.Session(second.ID())
	require.True(t, ok)
	assert.True(t, secondSession.Interactive)
	assert.Equal(t, "nope: command not found", secondSession.Failures[0])

	out, err := yaml.Marshal(report)
	require.NoError(t, err)
	assert.Contains(t, string(out), "too_many_positional: 2")

	raw, err := json.Marshal(sessions)
	require.NoError(t, err)
	assert.Contains(t, string(raw), first.ID())
}

func TestLogger_recordError(t *testing.T) {
	failing := &Logger{Record: func(*LogEntry) error { return errors.New("disk full") }}
	assert.EqualError(t, failing.Sessionless().Record(&UnknownCommand{Command: "x"}), "disk full")

	assert.NoError(t, Discard().NewSession().Record(&RunCommand{Command: "ls"}))
}
