package oracle

import (
	"os"
	"strconv"
)

// TaskType identifies which oracle call shape is being made.
type TaskType string

const (
	TaskChat     TaskType = "chat"
	TaskSuggest  TaskType = "suggest"
	TaskSchedule TaskType = "schedule"
	TaskBriefing TaskType = "briefing"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides the global timeout if > 0
}

// Config holds all configuration for the oracle subsystem.
type Config struct {
	Endpoint   string
	Model      string
	APIKey     string
	TimeoutMs  int
	MaxRetries int // extra attempts after the first; 0 means no retry
	LogCalls   bool
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config pointed at a local generation server.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  15000,
		MaxRetries: 0,
		Tasks: map[TaskType]TaskConfig{
			TaskChat:     {Temperature: 0.7, MaxTokens: 1024},
			TaskSuggest:  {Temperature: 0.6, MaxTokens: 1024},
			TaskSchedule: {Temperature: 0.2, MaxTokens: 1024},
			TaskBriefing: {Temperature: 0.4, MaxTokens: 1024},
		},
	}
}

// LoadConfig reads oracle configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("QUESTLOG_ORACLE_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("QUESTLOG_ORACLE_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("QUESTLOG_ORACLE_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("QUESTLOG_ORACLE_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("QUESTLOG_ORACLE_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	applyTaskTimeoutEnv(&cfg, TaskChat, "QUESTLOG_ORACLE_CHAT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskSuggest, "QUESTLOG_ORACLE_SUGGEST_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskSchedule, "QUESTLOG_ORACLE_SCHEDULE_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskBriefing, "QUESTLOG_ORACLE_BRIEFING_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a task: the task-specific
// value when set, otherwise the global one.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
