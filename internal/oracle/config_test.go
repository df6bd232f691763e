package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, 0, cfg.MaxRetries, "no automatic retry by default")
	assert.Equal(t, 15000, cfg.TimeoutMs)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("QUESTLOG_ORACLE_ENDPOINT", "http://example.test:9999")
	t.Setenv("QUESTLOG_ORACLE_MODEL", "mistral")
	t.Setenv("QUESTLOG_ORACLE_API_KEY", "sk-test")
	t.Setenv("QUESTLOG_ORACLE_TIMEOUT_MS", "2500")
	t.Setenv("QUESTLOG_ORACLE_CHAT_TIMEOUT_MS", "9000")

	cfg := LoadConfig()

	assert.Equal(t, "http://example.test:9999", cfg.Endpoint)
	assert.Equal(t, "mistral", cfg.Model)
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, 2500, cfg.TimeoutMs)
	assert.Equal(t, 9000, cfg.TaskTimeout(TaskChat))
	assert.Equal(t, 2500, cfg.TaskTimeout(TaskSchedule), "other tasks keep the global timeout")
}

func TestLoadConfig_IgnoresInvalidTimeout(t *testing.T) {
	t.Setenv("QUESTLOG_ORACLE_TIMEOUT_MS", "soon")
	cfg := LoadConfig()
	assert.Equal(t, 15000, cfg.TimeoutMs)
}

func TestConfig_TaskTimeout_UnknownTask(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, cfg.TimeoutMs, cfg.TaskTimeout(TaskType("mystery")))
}

func TestDefaultConfig_HasAllTasks(t *testing.T) {
	cfg := DefaultConfig()
	for _, task := range []TaskType{TaskChat, TaskSuggest, TaskSchedule, TaskBriefing} {
		_, ok := cfg.Tasks[task]
		assert.True(t, ok, "missing task config for %s", task)
	}
}
