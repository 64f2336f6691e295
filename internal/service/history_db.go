package service

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
)

// getWritableDataDirectory returns a directory where we can write the database
func getWritableDataDirectory() (string, error) {
	// Try different locations in order of preference; MCP hosts run the
	// server with varying working directories
	candidates := []string{
		func() string {
			if home, err := os.UserHomeDir(); err == nil {
				return filepath.Join(home, ".nautobot-mcp", "data")
			}
			return ""
		}(),
		"data",
		filepath.Join(os.TempDir(), "nautobot-mcp", "data"),
	}

	for _, dir := range candidates {
		if dir == "" {
			continue
		}

		if err := os.MkdirAll(dir, 0700); err == nil {
			testFile := filepath.Join(dir, ".write_test")
			if file, err := os.Create(testFile); err == nil {
				file.Close()
				os.Remove(testFile)
				return dir, nil
			}
		}
	}

	return "", fmt.Errorf("no writable directory found for database storage")
}

// QueryHistory records tool invocations in a local SQLite database so the
// get_query_analytics tool can report usage without any external service
type QueryHistory struct {
	db     *sql.DB
	logger *logger.Logger
	dbPath string
}

// ToolCallRecord is one recorded invocation
type ToolCallRecord struct {
	ToolName   string `json:"tool_name"`
	DurationMS int64  `json:"duration_ms"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
	CalledAt   string `json:"called_at"`
}

// ToolUsage aggregates calls per tool
type ToolUsage struct {
	ToolName      string  `json:"tool_name"`
	Calls         int     `json:"calls"`
	Failures      int     `json:"failures"`
	AvgDurationMS float64 `json:"avg_duration_ms"`
}

// Analytics is what get_query_analytics returns
type Analytics struct {
	TotalCalls  int              `json:"total_calls"`
	ByTool      []ToolUsage      `json:"by_tool"`
	RecentCalls []ToolCallRecord `json:"recent_calls"`
}

// NewQueryHistory opens (or creates) the history database
func NewQueryHistory(log *logger.Logger) (*QueryHistory, error) {
	dataDir, err := getWritableDataDirectory()
	if err != nil {
		return nil, fmt.Errorf("failed to determine writable data directory: %w", err)
	}

	log.Info("Using database directory: %s", dataDir)

	dbPath := filepath.Join(dataDir, "tool_history.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	history := &QueryHistory{
		db:     db,
		logger: log,
		dbPath: dbPath,
	}

	if err := history.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return history, nil
}

// initSchema creates the database tables if they don't exist
func (h *QueryHistory) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tool_calls (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tool_name TEXT NOT NULL,
		duration_ms INTEGER NOT NULL,
		success INTEGER NOT NULL,
		error TEXT,
		called_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_tool_calls_tool ON tool_calls(tool_name);
	CREATE INDEX IF NOT EXISTS idx_tool_calls_called_at ON tool_calls(called_at);
	`

	if _, err := h.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Record stores one tool invocation
func (h *QueryHistory) Record(toolName string, duration time.Duration, callErr error) error {
	success := 1
	errText := ""
	if callErr != nil {
		success = 0
		errText = callErr.Error()
	}

	_, err := h.db.Exec(
		`INSERT INTO tool_calls (tool_name, duration_ms, success, error, called_at) VALUES (?, ?, ?, ?, ?)`,
		toolName, duration.Milliseconds(), success, errText, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert tool call: %w", err)
	}
	return nil
}

// Analytics aggregates per-tool usage and returns the most recent calls
func (h *QueryHistory) Analytics(limit int) (*Analytics, error) {
	analytics := &Analytics{}

	if err := h.db.QueryRow(`SELECT COUNT(*) FROM tool_calls`).Scan(&analytics.TotalCalls); err != nil {
		return nil, fmt.Errorf("failed to count tool calls: %w", err)
	}

	usageRows, err := h.db.Query(`
		SELECT tool_name, COUNT(*), SUM(1 - success), AVG(duration_ms)
		FROM tool_calls
		GROUP BY tool_name
		ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tool usage: %w", err)
	}
	defer usageRows.Close()

	for usageRows.Next() {
		var usage ToolUsage
		if err := usageRows.Scan(&usage.ToolName, &usage.Calls, &usage.Failures, &usage.AvgDurationMS); err != nil {
			return nil, fmt.Errorf("failed to scan tool usage: %w", err)
		}
		analytics.ByTool = append(analytics.ByTool, usage)
	}
	if err := usageRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tool usage: %w", err)
	}

	recentRows, err := h.db.Query(`
		SELECT tool_name, duration_ms, success, error, called_at
		FROM tool_calls
		ORDER BY called_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent calls: %w", err)
	}
	defer recentRows.Close()

	for recentRows.Next() {
		var record ToolCallRecord
		var success int
		var calledAt int64
		if err := recentRows.Scan(&record.ToolName, &record.DurationMS, &success, &record.Error, &calledAt); err != nil {
			return nil, fmt.Errorf("failed to scan tool call: %w", err)
		}
		record.Success = success == 1
		record.CalledAt = time.Unix(calledAt, 0).UTC().Format(time.RFC3339)
		analytics.RecentCalls = append(analytics.RecentCalls, record)
	}
	if err := recentRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recent calls: %w", err)
	}

	return analytics, nil
}

// Close closes the underlying database
func (h *QueryHistory) Close() error {
	if h.db == nil {
		return nil
	}
	return h.db.Close()
}
