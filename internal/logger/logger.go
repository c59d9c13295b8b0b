package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gzhole/aishell/internal/redact"
)

// defaultMaxLogBytes is the size at which the audit log is rotated to
// <path>.1 before the next write.
const defaultMaxLogBytes = 10 * 1024 * 1024

// AuditEvent is one line of the JSONL audit log.
type AuditEvent struct {
	ID         string   `json:"id"`
	Timestamp  string   `json:"timestamp"`
	Command    string   `json:"command"`
	Final      string   `json:"final,omitempty"`
	Result     string   `json:"result"`
	Mode       string   `json:"mode"`
	Fixes      []string `json:"fixes,omitempty"`
	Errors     []string `json:"errors,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
	Env        []string `json:"env,omitempty"`
	UserAction string   `json:"user_action,omitempty"`
	ExitCode   *int     `json:"exit_code,omitempty"`
	DurationMS float64  `json:"duration_ms"`
	Slow       bool     `json:"slow,omitempty"`
	Error      string   `json:"error,omitempty"`
}

type AuditLogger struct {
	path     string
	file     *os.File
	maxBytes int64
	mu       sync.Mutex
}

func New(path string) (*AuditLogger, error) {
	l := &AuditLogger{path: path, maxBytes: defaultMaxLogBytes}
	if err := l.open(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *AuditLogger) open() error {
	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	l.file = file
	return nil
}

// Log fills in ID and Timestamp when empty, redacts every free-text field
// and appends the event.
func (l *AuditLogger) Log(event AuditEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp == "" {
		event.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	event.Command = redact.Redact(event.Command)
	event.Final = redact.Redact(event.Final)
	event.Fixes = redact.RedactAll(event.Fixes)
	event.Errors = redact.RedactAll(event.Errors)
	event.Warnings = redact.RedactAll(event.Warnings)
	if event.Env != nil {
		event.Env = redact.RedactAll(redact.RedactEnvVars(event.Env))
	}
	if event.Error != "" {
		event.Error = redact.Redact(event.Error)
	}

	if err := l.rotateIfNeeded(); err != nil {
		return fmt.Errorf("rotate audit log: %w", err)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = l.file.Write(data)
	return err
}

func (l *AuditLogger) rotateIfNeeded() error {
	info, err := l.file.Stat()
	if err != nil {
		return err
	}
	if info.Size() < l.maxBytes {
		return nil
	}

	if err := l.file.Close(); err != nil {
		return err
	}
	if err := os.Rename(l.path, l.path+".1"); err != nil {
		return err
	}
	return l.open()
}

func (l *AuditLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Timer measures one validation against a latency budget.
type Timer struct {
	start  time.Time
	budget time.Duration
}

func StartTimer(budget time.Duration) Timer {
	return Timer{start: time.Now(), budget: budget}
}

// Stop records the elapsed time on event.
func (t Timer) Stop(event *AuditEvent) {
	elapsed := time.Since(t.start)
	event.DurationMS = float64(elapsed.Microseconds()) / 1000
	event.Slow = elapsed > t.budget
}
