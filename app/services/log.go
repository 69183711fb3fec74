package services

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"smart-stock-insider/pkg/format"
	"smart-stock-insider/pkg/fsutil"
)

// maxLogEntries bounds the in-memory buffer; older entries are dropped.
const maxLogEntries = 1000

// LogService collects log entries for the frontend and can export them to
// the application logs directory.
type LogService struct {
	ctx    context.Context
	logger *log.Logger
	logs   []LogEntry
	mu     sync.Mutex
}

// NewLogService creates a new LogService.
func NewLogService(ctx context.Context, logger *log.Logger) *LogService {
	return &LogService{
		ctx:    ctx,
		logger: logger,
		logs:   []LogEntry{},
	}
}

// SetContext updates the service context.
func (s *LogService) SetContext(ctx context.Context) {
	s.ctx = ctx
}

// LogEntry represents a single log entry.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warn", "error"
	Message   string    `json:"message"`
}

// Append records a log entry.
func (s *LogService) Append(level string, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs = append(s.logs, LogEntry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
	})
	if len(s.logs) > maxLogEntries {
		// Copy into a fresh slice so dropped entries are released instead
		// of staying alive in the old backing array.
		trimmed := make([]LogEntry, maxLogEntries)
		copy(trimmed, s.logs[len(s.logs)-maxLogEntries:])
		s.logs = trimmed
	}
}

// GetRecentLogs returns the last 'limit' log entries. A limit of zero or
// below yields no entries.
func (s *LogService) GetRecentLogs(limit int) ([]LogEntry, error) {
	s.logger.Printf("[LogService] GetRecentLogs: limit=%d", limit)

	if limit < 0 {
		limit = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start := 0
	if len(s.logs) > limit {
		start = len(s.logs) - limit
	}

	out := make([]LogEntry, len(s.logs)-start)
	copy(out, s.logs[start:])
	return out, nil
}

// ExportLogs writes the buffered entries to a timestamped file in the app
// logs directory and returns its path.
func (s *LogService) ExportLogs() (string, error) {
	logsDir, err := fsutil.AppLogsDir()
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("export-%s.log", time.Now().Format("20060102-150405"))
	path := filepath.Join(logsDir, name)
	s.logger.Printf("[LogService] ExportLogs: writing %s", path)

	s.mu.Lock()
	entries := make([]LogEntry, len(s.logs))
	copy(entries, s.logs)
	s.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "exported at %s\n", format.Timestamp())
	for _, entry := range entries {
		fmt.Fprintf(&b, "%s [%s] %s\n", entry.Timestamp.UTC().Format("2006-01-02 15:04:05"), entry.Level, entry.Message)
	}

	if err := fsutil.WriteToFile(path, b.String()); err != nil {
		return "", err
	}
	return path, nil
}
