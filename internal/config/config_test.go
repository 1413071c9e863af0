package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Shell.Prompt != "> " {
		t.Errorf("Shell.Prompt = %q, want %q", cfg.Shell.Prompt, "> ")
	}
	if cfg.Shell.Plain {
		t.Error("Shell.Plain = true, want false")
	}
	if cfg.Shell.Scrollback != 500 {
		t.Errorf("Shell.Scrollback = %d, want 500", cfg.Shell.Scrollback)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if cfg.Shell.Prompt != "> " {
		t.Errorf("Shell.Prompt = %q, want default", cfg.Shell.Prompt)
	}
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfig(t, `
shell:
  prompt: "rolo> "
  plain: true
  scrollback: 100
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Shell.Prompt != "rolo> " {
		t.Errorf("Shell.Prompt = %q, want %q", cfg.Shell.Prompt, "rolo> ")
	}
	if !cfg.Shell.Plain {
		t.Error("Shell.Plain = false, want true")
	}
	if cfg.Shell.Scrollback != 100 {
		t.Errorf("Shell.Scrollback = %d, want 100", cfg.Shell.Scrollback)
	}
}

func TestLoad_PartialConfig(t *testing.T) {
	path := writeConfig(t, `
shell:
  prompt: "$ "
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Shell.Prompt != "$ " {
		t.Errorf("Shell.Prompt = %q, want %q", cfg.Shell.Prompt, "$ ")
	}
	if cfg.Shell.Scrollback != 500 {
		t.Errorf("Shell.Scrollback = %d, want default 500", cfg.Shell.Scrollback)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "shell: [not: valid")

	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil, want parse error")
	}
}

func TestLoad_UnknownField(t *testing.T) {
	path := writeConfig(t, `
shell:
  prompt: "> "
  colour: neon
`)

	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil, want unknown field error")
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Shell.Prompt != "> " {
		t.Errorf("Shell.Prompt = %q, want default", cfg.Shell.Prompt)
	}
}

func TestLoadLayered_Priority(t *testing.T) {
	base := writeConfig(t, `
shell:
  prompt: "base> "
  scrollback: 200
`)
	local := writeConfig(t, `
shell:
  prompt: "local> "
`)

	cfg, err := LoadLayered(base, local)
	if err != nil {
		t.Fatalf("LoadLayered() error = %v", err)
	}
	if cfg.Shell.Prompt != "local> " {
		t.Errorf("Shell.Prompt = %q, want %q (later layer wins)", cfg.Shell.Prompt, "local> ")
	}
	if cfg.Shell.Scrollback != 200 {
		t.Errorf("Shell.Scrollback = %d, want 200 (base layer survives)", cfg.Shell.Scrollback)
	}
}

func TestLoadLayered_MissingLayersSkipped(t *testing.T) {
	real := writeConfig(t, `
shell:
  plain: true
`)

	cfg, err := LoadLayered(filepath.Join(t.TempDir(), "absent.yaml"), real)
	if err != nil {
		t.Fatalf("LoadLayered() error = %v", err)
	}
	if !cfg.Shell.Plain {
		t.Error("Shell.Plain = false, want true")
	}
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		check   func(t *testing.T, cfg *Config)
		wantErr bool
	}{
		{
			name: "prompt override",
			env:  map[string]string{"ROLO_PROMPT": ":: "},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Shell.Prompt != ":: " {
					t.Errorf("Shell.Prompt = %q, want %q", cfg.Shell.Prompt, ":: ")
				}
			},
		},
		{
			name: "plain override",
			env:  map[string]string{"ROLO_PLAIN": "true"},
			check: func(t *testing.T, cfg *Config) {
				if !cfg.Shell.Plain {
					t.Error("Shell.Plain = false, want true")
				}
			},
		},
		{
			name: "scrollback override",
			env:  map[string]string{"ROLO_SCROLLBACK": "42"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Shell.Scrollback != 42 {
					t.Errorf("Shell.Scrollback = %d, want 42", cfg.Shell.Scrollback)
				}
			},
		},
		{
			name:    "invalid plain",
			env:     map[string]string{"ROLO_PLAIN": "maybe"},
			wantErr: true,
		},
		{
			name:    "invalid scrollback",
			env:     map[string]string{"ROLO_SCROLLBACK": "lots"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := DefaultConfig()
			err := cfg.ApplyEnv()
			if tt.wantErr {
				if err == nil {
					t.Error("ApplyEnv() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnv() error = %v", err)
			}
			tt.check(t, &cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{name: "defaults valid", mutate: func(cfg *Config) {}},
		{name: "empty prompt", mutate: func(cfg *Config) { cfg.Shell.Prompt = "" }, wantErr: true},
		{name: "negative scrollback", mutate: func(cfg *Config) { cfg.Shell.Scrollback = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalid) {
					t.Errorf("Validate() error = %v, want ErrInvalid", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}
	return path
}
