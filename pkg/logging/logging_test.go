package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"fatal", FatalLevel},
		{"verbose", InfoLevel},
	}

	for _, tc := range tests {
		if got := ParseLevel(tc.input); got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{Level: "warn", Output: &buf})

	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestComponentSharesOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{Level: "debug", Format: "json", Output: &buf})

	l.Component("addrconv").Debug("parsed", "type", "p2wpkh")

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("output is not one JSON object: %q: %v", buf.String(), err)
	}
	if prefix, _ := entry["prefix"].(string); !strings.Contains(prefix, "addrconv") {
		t.Errorf("prefix = %v, want addrconv", entry["prefix"])
	}
	if entry["msg"] != "parsed" {
		t.Errorf("msg = %v, want parsed", entry["msg"])
	}
	if entry["type"] != "p2wpkh" {
		t.Errorf("type = %v, want p2wpkh", entry["type"])
	}
}

func TestComponentKeepsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{Level: "info", Output: &buf})
	l.SetLevel(ErrorLevel)

	l.Component("config").Warn("dropped")
	if buf.Len() != 0 {
		t.Errorf("component logged below the parent's level: %q", buf.String())
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{Level: "info", Format: "logfmt", Output: &buf})

	l.With("coin", "LTC").Info("registered")
	if out := buf.String(); !strings.Contains(out, "coin=LTC") {
		t.Errorf("output = %q, want coin=LTC", out)
	}
}

func TestDefault(t *testing.T) {
	orig := GetDefault()
	defer SetDefault(orig)

	var buf bytes.Buffer
	SetDefault(New(&Config{Level: "debug", Output: &buf}))

	Debugf("profile %s", "ZEC")
	if !strings.Contains(buf.String(), "profile ZEC") {
		t.Errorf("output = %q, want profile ZEC", buf.String())
	}
}
