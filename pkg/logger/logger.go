package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel парсит уровень логирования из строки
// Неизвестный уровень трактуется как info
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger файловый логгер с уровнями
// Пишет одновременно в файл и stdout
type Logger struct {
	out   *log.Logger
	file  *os.File
	level Level
}

// New создает новый логгер
// filePath - путь к файлу логов (файл создается при отсутствии)
// level - минимальный уровень логирования (debug/info/warn/error)
func New(filePath string, level string) (*Logger, error) {
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logger: failed to open log file %s: %w", filePath, err)
	}

	return &Logger{
		out:   log.New(io.MultiWriter(os.Stdout, file), "", log.LstdFlags|log.Lmicroseconds),
		file:  file,
		level: ParseLevel(level),
	}, nil
}

// Debug логирует сообщение с уровнем DEBUG
func (l *Logger) Debug(format string, v ...interface{}) {
	l.write(LevelDebug, "DEBUG", format, v...)
}

// Info логирует сообщение с уровнем INFO
func (l *Logger) Info(format string, v ...interface{}) {
	l.write(LevelInfo, "INFO", format, v...)
}

// Warn логирует сообщение с уровнем WARN
func (l *Logger) Warn(format string, v ...interface{}) {
	l.write(LevelWarn, "WARN", format, v...)
}

// Error логирует сообщение с уровнем ERROR
func (l *Logger) Error(format string, v ...interface{}) {
	l.write(LevelError, "ERROR", format, v...)
}

// Fatal логирует сообщение с уровнем FATAL и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.write(LevelError, "FATAL", format, v...)
	l.Close()
	os.Exit(1)
}

// Close закрывает файл логов
func (l *Logger) Close() error {
	return l.file.Close()
}

func (l *Logger) write(level Level, tag string, format string, v ...interface{}) {
	if level < l.level {
		return
	}
	l.out.Printf("[%s] %s", tag, fmt.Sprintf(format, v...))
}
