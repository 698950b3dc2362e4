package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	if err := flags.Parse(args); err != nil {
		t.Fatal(err)
	}
	return flags
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newFlags(t, "--env-file", ""))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	wantVideo, _ := filepath.Abs("./media")
	wantAudio, _ := filepath.Abs("./audio")
	if cfg.VideoDir != wantVideo || cfg.AudioDir != wantAudio {
		t.Errorf("dirs = %s, %s", cfg.VideoDir, cfg.AudioDir)
	}
	if cfg.Addr() != "0.0.0.0:5000" {
		t.Errorf("Addr() = %s", cfg.Addr())
	}
	if cfg.HistoryDB != "" || cfg.DiskUsage || !cfg.LogRequests || cfg.ScanWorkers != 0 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadNilFlags(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 5000 {
		t.Errorf("Port = %d", cfg.Port)
	}
}

func TestLoadEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MEDIA_VIDEO_DIR", dir)
	t.Setenv("MEDIA_PORT", "8081")
	t.Setenv("MEDIA_DISK_USAGE", "true")

	cfg, err := Load(newFlags(t, "--env-file", ""))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.VideoDir != dir || cfg.Port != 8081 || !cfg.DiskUsage {
		t.Errorf("environment not applied: %+v", cfg)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("MEDIA_PORT", "8081")
	t.Setenv("MEDIA_HOST", "127.0.0.1")

	cfg, err := Load(newFlags(t, "--env-file", "", "--port", "9000"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, expected the flag value", cfg.Port)
	}
	if cfg.Host != "127.0.0.1" {
		t.Errorf("Host = %s, expected the env value", cfg.Host)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "media.yaml")
	yaml := "audio_dir: " + dir + "\nscan_workers: 3\nhistory_db: " + filepath.Join(dir, "h.db") + "\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(newFlags(t, "--env-file", "", "--config", path))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AudioDir != dir || cfg.ScanWorkers != 3 || cfg.HistoryDB != filepath.Join(dir, "h.db") {
		t.Errorf("config file not applied: %+v", cfg)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("MEDIA_SCAN_WORKERS=6\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("MEDIA_SCAN_WORKERS") })

	cfg, err := Load(newFlags(t, "--env-file", path))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ScanWorkers != 6 {
		t.Errorf("ScanWorkers = %d, expected 6 from the env file", cfg.ScanWorkers)
	}
}

func TestLoadMissingEnvFileIgnored(t *testing.T) {
	if _, err := Load(newFlags(t, "--env-file", filepath.Join(t.TempDir(), "none.env"))); err != nil {
		t.Errorf("missing env file should be ignored: %v", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := [][]string{
		{"--port", "0"},
		{"--port", "70000"},
		{"--scan-workers", "-1"},
		{"--video-dir", ""},
	}
	for _, args := range tests {
		args = append(args, "--env-file", "")
		if _, err := Load(newFlags(t, args...)); err == nil {
			t.Errorf("Load(%v) succeeded, expected an error", args)
		}
	}
}
