package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

type Logger = *slog.Logger

// Writer receives the text handler's output; os.Stderr unless a test
// forks in a buffer.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}

var level = new(slog.LevelVar)

func init() {
	// LAM_LOG takes the levels slog understands: debug, info, warn, error
	if text := os.Getenv("LAM_LOG"); text != "" {
		_ = level.UnmarshalText([]byte(text))
	}
}

// Logger fans records out to a text handler on Writer and to the systemd
// journal. Under a systemd service the text handler is dropped, the journal
// already captures stderr there.
func (Module) Logger(
	writer Writer,
) Logger {
	var handlers []slog.Handler

	var textHandler slog.Handler
	if !runningAsSystemdService() {
		textHandler = slog.NewTextHandler(writer, &slog.HandlerOptions{
			Level: level,
		})
		handlers = append(handlers, textHandler)
	}

	journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
		ReplaceGroup: toJournalKey,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
	if err == nil {
		handlers = append(handlers, journalHandler)
	} else if textHandler != nil {
		record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
		record.Add("error", err)
		_ = textHandler.Handle(context.Background(), record)
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

// journal field names are uppercase ASCII, digits and underscores
func toJournalKey(str string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9':
			return r
		}
		return '_'
	}, str)
}

func runningAsSystemdService() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	parts := strings.Split(string(content), ":")
	if len(parts) < 3 {
		return false
	}
	return strings.HasSuffix(path.Dir(parts[2]), ".service")
}
