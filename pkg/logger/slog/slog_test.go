package slog_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	rawslog "log/slog"

	"github.com/stretchr/testify/require"

	"github.com/Subhi2012/fireman/pkg/logger/slog"
)

type logLine struct {
	Level   string `json:"level"`
	Msg     string `json:"msg"`
	Project string `json:"project"`
}

func TestSlogHandlerLevels(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})

	// level needs to be set to debug to log everything
	handler := rawslog.NewJSONHandler(buff, &rawslog.HandlerOptions{Level: rawslog.LevelDebug})
	log := slog.New(handler)

	methods := []struct {
		fn    func(msg string, args ...any)
		level rawslog.Level
	}{
		{fn: log.Error, level: rawslog.LevelError},
		{fn: log.Warn, level: rawslog.LevelWarn},
		{fn: log.Info, level: rawslog.LevelInfo},
		{fn: log.Debug, level: rawslog.LevelDebug},
	}

	for _, m := range methods {
		t.Run(fmt.Sprintf("level %s", m.level.String()), func(t *testing.T) {
			buff.Reset()
			m.fn("connection established", "project", "demo")

			var line logLine
			require.NoError(t, json.Unmarshal(buff.Bytes(), &line))
			require.Equal(t, m.level.String(), line.Level)
			require.Equal(t, "connection established", line.Msg)
			require.Equal(t, "demo", line.Project)
		})
	}
}
