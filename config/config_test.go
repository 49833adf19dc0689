package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "config.yaml", `registry:
  venue_file: "venues.json"
router:
  step_timeout_seconds: 10
  system_prompt: "conference scheduling assistant"
metrics:
  prometheus_enabled: true
  prometheus_addr: ":9100"
  influx:
    enabled: true
    url: "http://localhost:8086"
    token: "tok"
    org: "athletics"
    bucket: "flextime"
report_log:
  backend: "sqlite"
  path: "reports.db"
resolvers:
  schedules_file: "schedules.json"
  exec:
    - name: "legacy_agent"
      command: "python3"
      args: ["agent.py"]
  remote:
    - name: "remote_agent"
      broker: "tcp://localhost:1883"
      client_id: "flextime"
      request_topic: "flextime/requests"
      reply_topic: "flextime/replies"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"venue_file", cfg.Registry.VenueFile, "venues.json"},
		{"step_timeout", cfg.Router.StepTimeoutSeconds, 10},
		{"system_prompt", cfg.Router.SystemPrompt, "conference scheduling assistant"},
		{"prometheus_enabled", cfg.Metrics.PrometheusEnabled, true},
		{"prometheus_addr", cfg.Metrics.PrometheusAddr, ":9100"},
		{"influx_url", cfg.Metrics.Influx.URL, "http://localhost:8086"},
		{"report_backend", cfg.ReportLog.Backend, "sqlite"},
		{"report_path", cfg.ReportLog.Path, "reports.db"},
		{"schedules_file", cfg.Resolvers.SchedulesFile, "schedules.json"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %v want %v", c.name, c.got, c.want)
		}
	}
	if len(cfg.Resolvers.Exec) != 1 || cfg.Resolvers.Exec[0].Command != "python3" {
		t.Errorf("exec agents: %+v", cfg.Resolvers.Exec)
	}
	if len(cfg.Resolvers.Remote) != 1 || cfg.Resolvers.Remote[0].Broker != "tcp://localhost:1883" {
		t.Errorf("remote agents: %+v", cfg.Resolvers.Remote)
	}
	if cfg.Resolvers.Remote[0].Name != "remote_agent" {
		t.Errorf("remote agent name: %q", cfg.Resolvers.Remote[0].Name)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "config.json", `{"registry": {"venue_file": ""}}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Router.StepTimeoutSeconds != 30 {
		t.Errorf("default step timeout: %d", cfg.Router.StepTimeoutSeconds)
	}
	if cfg.ReportLog.Backend != "jsonl" || cfg.ReportLog.Path != "conflicts.log" {
		t.Errorf("report log defaults: %+v", cfg.ReportLog)
	}
	if cfg.Metrics.PrometheusAddr != ":2112" {
		t.Errorf("default prometheus addr: %s", cfg.Metrics.PrometheusAddr)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := writeConfig(t, "config.yaml", `report_log:
  backend: "postgres"
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected backend validation error")
	}
}

func TestLoadRejectsIncompleteInflux(t *testing.T) {
	path := writeConfig(t, "config.yaml", `metrics:
  influx:
    enabled: true
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected influx validation error")
	}
}

func TestLoadRejectsUnsupportedFormat(t *testing.T) {
	path := writeConfig(t, "config.toml", `x = 1`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected format error")
	}
}
