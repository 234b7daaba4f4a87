package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
	defaultMaxAgeDays = 28
)

// Logger логгер сервиса с printf-подобным API.
// Пишет в stderr и, если указан файл, в файл с ротацией.
type Logger struct {
	log  *log.Logger
	file *lumberjack.Logger
}

// New создает логгер. filePath может быть пустым - тогда только stderr.
// level: debug, info, warn, error.
func New(filePath string, level string) (*Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("logger: invalid level %q: %w", level, err)
		}
		lvl = parsed
	}

	var (
		writer io.Writer = os.Stderr
		file   *lumberjack.Logger
	)

	if filePath != "" {
		if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
			return nil, fmt.Errorf("logger: create log dir: %w", err)
		}
		file = &lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
			MaxAge:     defaultMaxAgeDays,
			Compress:   true,
		}
		writer = io.MultiWriter(os.Stderr, file)
	}

	return &Logger{
		log: log.NewWithOptions(writer, log.Options{
			ReportTimestamp: true,
			Level:           lvl,
			Prefix:          "salon",
		}),
		file: file,
	}, nil
}

// NewWriter создает логгер поверх произвольного writer (для тестов и CLI)
func NewWriter(w io.Writer, level string) *Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return &Logger{
		log: log.NewWithOptions(w, log.Options{Level: lvl}),
	}
}

// Nop возвращает логгер, который ничего не пишет
func Nop() *Logger {
	return NewWriter(io.Discard, "error")
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.log.Debugf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.log.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.log.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.log.Errorf(format, v...)
}

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log.Errorf(format, v...)
	l.Close()
	os.Exit(1)
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
