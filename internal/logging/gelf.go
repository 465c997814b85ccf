package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

const gelfVersion = "1.1"

// gelfSeverity maps zerolog levels to syslog severities.
var gelfSeverity = map[zerolog.Level]int8{
	zerolog.PanicLevel: 1,
	zerolog.FatalLevel: 2,
	zerolog.ErrorLevel: 3,
	zerolog.WarnLevel:  4,
	zerolog.InfoLevel:  6,
	zerolog.DebugLevel: 7,
	zerolog.TraceLevel: 7,
}

// gelfWriter rewrites zerolog JSON events into GELF messages.
//
// The message becomes short_message, the level becomes a numeric severity
// plus _level_name, and every other field is sent as an additional field
// prefixed with an underscore.
type gelfWriter struct {
	out  io.Writer
	host string
	now  func() time.Time
}

func newGelfWriter(out io.Writer, host string) *gelfWriter {
	return &gelfWriter{out: out, host: host, now: time.Now}
}

func (w *gelfWriter) Write(p []byte) (int, error) {
	var event map[string]json.RawMessage
	if err := json.Unmarshal(p, &event); err != nil {
		return 0, fmt.Errorf("logging: gelf: %w", err)
	}

	msg := make(map[string]any, len(event)+4) //nolint:mnd
	msg["version"] = gelfVersion
	msg["host"] = w.host
	msg["timestamp"] = float64(w.now().UnixMilli()) / 1e3 //nolint:mnd

	for key, raw := range event {
		switch key {
		case zerolog.MessageFieldName:
			msg["short_message"] = raw
		case zerolog.LevelFieldName:
			var name string
			if err := json.Unmarshal(raw, &name); err != nil {
				return 0, fmt.Errorf("logging: gelf level: %w", err)
			}
			if level, err := zerolog.ParseLevel(name); err == nil {
				if severity, ok := gelfSeverity[level]; ok {
					msg["level"] = severity
				}
			}
			msg["_level_name"] = strings.ToUpper(name)
		default:
			msg["_"+key] = raw
		}
	}

	if _, ok := msg["short_message"]; !ok {
		msg["short_message"] = ""
	}

	line, err := json.Marshal(msg)
	if err != nil {
		return 0, fmt.Errorf("logging: gelf: %w", err)
	}

	if _, err = w.out.Write(append(line, '\n')); err != nil {
		return 0, err
	}

	return len(p), nil
}
