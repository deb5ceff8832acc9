package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type StdoutLogger struct {
	logger *slog.Logger
	file   *lumberjack.Logger
	exit   func(code int)
}

func initStdoutLogger(serviceName, filePath string) (Logger, error) {
	l := &StdoutLogger{exit: os.Exit}

	var out io.Writer = os.Stdout
	if filePath != "" {
		l.file = &lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		}
		out = io.MultiWriter(os.Stdout, l.file)
	}

	l.logger = newSlogLogger(out, serviceName)
	return l, nil
}

func newSlogLogger(out io.Writer, serviceName string) *slog.Logger {
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	return slog.New(handler.WithAttrs([]slog.Attr{
		slog.String("service", serviceName),
	}))
}

func (l *StdoutLogger) Log(ctx context.Context, entry LogEntry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	attrs := make([]any, 0, len(entry.Attributes)*2+2)
	for key, value := range entry.Attributes {
		attrs = append(attrs, key, value)
	}
	if entry.Error != nil {
		attrs = append(attrs, "error", entry.Error.Error())
	}

	switch entry.Level {
	case LogLevelDebug:
		l.logger.DebugContext(ctx, entry.Message, attrs...)
	case LogLevelInfo:
		l.logger.InfoContext(ctx, entry.Message, attrs...)
	case LogLevelWarn:
		l.logger.WarnContext(ctx, entry.Message, attrs...)
	case LogLevelError:
		l.logger.ErrorContext(ctx, entry.Message, attrs...)
	case LogLevelFatal:
		l.logger.ErrorContext(ctx, entry.Message, attrs...)
		_ = l.Shutdown(ctx)
		l.exit(1)
	}
}

func (l *StdoutLogger) Shutdown(context.Context) error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
