package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExecute_BatchFromStdin(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"--theme", "mono", "--no-color", "--add", "seeded", "batch"})
	cmd.SetIn(strings.NewReader("add Buy milk\nls\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v (stderr %q)", err, errOut.String())
	}
	got := out.String()
	for _, want := range []string{" 1. [ ] seeded", " 2. [ ] Buy milk", "[all]"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestExecute_BatchFromFile(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "script.txt")
	if err := os.WriteFile(script, []byte("add a\ndone 3\n"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	var out, errOut bytes.Buffer
	code := Execute([]string{"--no-color", "batch", script}, &out, &errOut)
	if code != 2 {
		t.Fatalf("code = %d, want 2 (stderr %q)", code, errOut.String())
	}
	if !strings.Contains(errOut.String(), "line 2: index out of range") {
		t.Fatalf("stderr = %q", errOut.String())
	}
}

func TestExecute_UnknownTheme(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Execute([]string{"--theme", "vaporwave", "batch"}, &out, &errOut)
	if code != 2 {
		t.Fatalf("code = %d, want 2", code)
	}
	if !strings.Contains(errOut.String(), "unknown theme") {
		t.Fatalf("stderr = %q", errOut.String())
	}
}

func TestExecute_MissingScript(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Execute([]string{"batch", filepath.Join(t.TempDir(), "nope")}, &out, &errOut)
	if code != 1 {
		t.Fatalf("code = %d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "open script") {
		t.Fatalf("stderr = %q", errOut.String())
	}
}

func TestExecute_WritesDebugLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "mytodo.log")
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"--log-file", logPath, "--log-level", "debug", "batch"})
	cmd.SetIn(strings.NewReader("add a\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var events []string
	for _, line := range strings.Split(strings.TrimSpace(string(b)), "\n") {
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("log line is not JSON: %q", line)
		}
		if ev, ok := rec["event"].(string); ok {
			events = append(events, ev)
		}
	}
	if len(events) != 1 || events[0] != "item_added" {
		t.Fatalf("logged events = %v", events)
	}
}

func TestExecute_FailingBatchClosesLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "mytodo.log")
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"--log-file", logPath, "batch"})
	cmd.SetIn(strings.NewReader("add a\nbogus\nadd b\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	if exitCode(err) != 2 {
		t.Fatalf("exit code %d (err %v)", exitCode(err), err)
	}

	b, rerr := os.ReadFile(logPath)
	if rerr != nil {
		t.Fatalf("read log: %v", rerr)
	}
	var msgs []string
	for _, line := range strings.Split(strings.TrimSpace(string(b)), "\n") {
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("log line is not JSON: %q", line)
		}
		msgs = append(msgs, rec["msg"].(string))
	}
	if len(msgs) == 0 || msgs[0] != "start" || msgs[len(msgs)-1] != "stop" {
		t.Fatalf("log records = %v", msgs)
	}
	if !strings.Contains(strings.Join(msgs, ","), "command failed") {
		t.Fatalf("failure not logged: %v", msgs)
	}
}

func TestOpenLogger_BadLevel(t *testing.T) {
	if _, _, err := openLogger("", "chatty"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
