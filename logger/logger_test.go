package logger

import (
	"bytes"
	"strings"
	"testing"
)

// TestLevel_String 测试日志级别的字符串表示
func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DEBUG, "DEBUG"},
		{INFO, "INFO"},
		{WARN, "WARN"},
		{ERROR, "ERROR"},
		{OFF, "OFF"},
		{Level(999), "UNKNOWN"},
		{Level(-1), "UNKNOWN"},
	}

	for _, test := range tests {
		if got := test.level.String(); got != test.expected {
			t.Errorf("Level(%d).String() = %q, want %q", test.level, got, test.expected)
		}
	}
}

// TestNew 测试日志器输出带级别和前缀
func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := New(INFO, &buf)

	log.Info("parsed %d fields", 3)
	output := buf.String()

	if !strings.Contains(output, "parsed 3 fields") {
		t.Errorf("Expected output to contain 'parsed 3 fields', got %q", output)
	}
	if !strings.Contains(output, "[INFO]") {
		t.Errorf("Expected output to contain '[INFO]', got %q", output)
	}
	if !strings.Contains(output, "soql:") {
		t.Errorf("Expected output to contain 'soql:' prefix, got %q", output)
	}
}

// TestLevelFiltering 低于当前级别的输出被过滤
func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(WARN, &buf)

	log.Debug("debug message")
	log.Info("info message")
	if buf.Len() != 0 {
		t.Errorf("Expected no output below WARN, got %q", buf.String())
	}

	log.Warn("warn message")
	log.Error("error message")
	output := buf.String()
	if !strings.Contains(output, "warn message") || !strings.Contains(output, "error message") {
		t.Errorf("Expected warn and error output, got %q", output)
	}
}

// TestSetLevel 运行期调整级别
func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(ERROR, &buf)

	log.Info("hidden")
	log.SetLevel(DEBUG)
	log.Debug("visible")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("Expected 'hidden' to be filtered, got %q", output)
	}
	if !strings.Contains(output, "visible") {
		t.Errorf("Expected 'visible' in output, got %q", output)
	}
}

// TestOffDisablesAll OFF级别关闭全部输出
func TestOffDisablesAll(t *testing.T) {
	var buf bytes.Buffer
	log := New(OFF, &buf)

	log.Debug("a")
	log.Info("b")
	log.Warn("c")
	log.Error("d")
	if buf.Len() != 0 {
		t.Errorf("Expected no output at OFF, got %q", buf.String())
	}
}

// TestNilLogger nil日志器丢弃输出且不会panic
func TestNilLogger(t *testing.T) {
	var log *Logger
	log.Debug("a")
	log.Info("b")
	log.Warn("c")
	log.Error("d")
	log.SetLevel(DEBUG)
	if log.Enabled(ERROR) {
		t.Error("Expected nil logger to report Enabled(ERROR) = false")
	}
}

// TestEnabled Enabled与实际输出一致
func TestEnabled(t *testing.T) {
	var buf bytes.Buffer
	log := New(WARN, &buf)

	if log.Enabled(DEBUG) {
		t.Error("Expected Enabled(DEBUG) = false at WARN level")
	}
	if !log.Enabled(ERROR) {
		t.Error("Expected Enabled(ERROR) = true at WARN level")
	}
}
