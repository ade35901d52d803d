package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 50051 {
		t.Errorf("server defaults: %+v", cfg.Server)
	}
	if cfg.Server.StreamWorkers != 8 {
		t.Errorf("stream_workers default: %d", cfg.Server.StreamWorkers)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("log defaults: %+v", cfg.Log)
	}
	if cfg.Model.IntraOpThreads != 8 || cfg.Model.VADBackend != "silero" {
		t.Errorf("model defaults: %+v", cfg.Model)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	content := `
server:
  socket: /tmp/asr.sock
  stream_workers: 4
log:
  level: debug
  format: text
model:
  id: nemo-parakeet-tdt-0.6b-v3
  name: istupakov/parakeet-tdt-0.6b-v3-onnx
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Socket != "/tmp/asr.sock" || cfg.Server.StreamWorkers != 4 {
		t.Errorf("server: %+v", cfg.Server)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("log: %+v", cfg.Log)
	}
	if cfg.Model.ID != "nemo-parakeet-tdt-0.6b-v3" {
		t.Errorf("model: %+v", cfg.Model)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/engine.yaml"); err == nil {
		t.Error("Load missing file should error")
	}
}
