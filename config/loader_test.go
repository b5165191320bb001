package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoadAppConfig(t *testing.T) {
	p := writeConfig(t, `
server:
  port: 9090
dataset:
  path: testdata/network.json
feed:
  gtfsrtURL: http://example.com/gtfsrt
  pollIntervalMS: 15000
  timeoutMS: 5000
viewport:
  width: 800
  height: 600
`)
	t.Setenv("TRAJECTORY_CONFIG", p)

	if err := LoadAppConfig(); err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}
	if Config.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", Config.Server.Port)
	}
	if got := DatasetSource(); got != "testdata/network.json" {
		t.Errorf("DatasetSource() = %q", got)
	}
	if Config.Feed.PollIntervalMS != 15000 {
		t.Errorf("pollIntervalMS = %d", Config.Feed.PollIntervalMS)
	}
	if Config.Viewport.Width != 800 || Config.Viewport.Height != 600 {
		t.Errorf("viewport = %+v", Config.Viewport)
	}
}

func TestLoadAppConfigDefaultsPort(t *testing.T) {
	p := writeConfig(t, "dataset:\n  path: network.json\n")
	t.Setenv("TRAJECTORY_CONFIG", p)

	if err := LoadAppConfig(); err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}
	if Config.Server.Port != 16181 {
		t.Errorf("port = %d, want default 16181", Config.Server.Port)
	}
}

func TestLoadAppConfigRejectsBadURL(t *testing.T) {
	p := writeConfig(t, "dataset:\n  url: not-a-url\n")
	t.Setenv("TRAJECTORY_CONFIG", p)

	if err := LoadAppConfig(); err == nil {
		t.Fatal("invalid dataset URL should fail validation")
	}
}

func TestDatasetSourcePrefersURL(t *testing.T) {
	Config.Dataset = DatasetConfig{Path: "local.json", URL: "http://example.com/net.json"}
	if got := DatasetSource(); got != "http://example.com/net.json" {
		t.Errorf("DatasetSource() = %q", got)
	}
}
