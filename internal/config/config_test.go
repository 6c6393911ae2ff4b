package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feedback.config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("FEEDBACK_CONFIG", "")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Copy.Question != "How was your experience?" {
		t.Errorf("question = %q", c.Copy.Question)
	}
	if c.Copy.Placeholder != "Complain here" {
		t.Errorf("placeholder = %q", c.Copy.Placeholder)
	}
	if !c.UI.AltScreen {
		t.Error("alt_screen should default to true")
	}
	if c.UI.Width != 50 {
		t.Errorf("width = %d, want 50", c.UI.Width)
	}
	if c.Log.Path != "" {
		t.Errorf("log path = %q, want empty", c.Log.Path)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `{
  "copy": {"welcome": "Hi there", "thanks": "Cheers"},
  "ui": {"alt_screen": false, "width": 72},
  "log": {"path": "/tmp/feedback.log"}
}`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Copy.Welcome != "Hi there" {
		t.Errorf("welcome = %q, want %q", c.Copy.Welcome, "Hi there")
	}
	if c.Copy.Thanks != "Cheers" {
		t.Errorf("thanks = %q, want %q", c.Copy.Thanks, "Cheers")
	}
	if c.Copy.Form != "Care to tell us why?" {
		t.Errorf("unset keys should keep defaults, form = %q", c.Copy.Form)
	}
	if c.UI.AltScreen {
		t.Error("alt_screen should be false")
	}
	if c.UI.Width != 72 {
		t.Errorf("width = %d, want 72", c.UI.Width)
	}
	if c.Log.Path != "/tmp/feedback.log" {
		t.Errorf("log path = %q", c.Log.Path)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `{"copy": {"question": "From file"}}`)
	t.Setenv("FEEDBACK_CONFIG", path)
	t.Setenv("FEEDBACK_COPY_QUESTION", "From env")
	t.Setenv("FEEDBACK_UI_WIDTH", "64")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Copy.Question != "From env" {
		t.Errorf("question = %q, want %q", c.Copy.Question, "From env")
	}
	if c.UI.Width != 64 {
		t.Errorf("width = %d, want 64", c.UI.Width)
	}
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name    string
		path    string
		wantErr string
	}{
		{
			name:    "malformed",
			path:    writeConfig(t, `{"copy": `),
			wantErr: "read config",
		},
		{
			name:    "missing explicit file",
			path:    filepath.Join(t.TempDir(), "nope.json"),
			wantErr: "read config",
		},
		{
			name:    "narrow",
			path:    writeConfig(t, `{"ui": {"width": 5}}`),
			wantErr: "ui.width must be at least 20",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.path)
			if err == nil {
				t.Fatalf("expected error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}
