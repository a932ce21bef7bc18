package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/checkmate-go/internal/errors"
	"github.com/lgbarn/checkmate-go/internal/testutil"
)

func TestHostConfig_Defaults(t *testing.T) {
	cfg := NewHostConfig()

	if cfg.White != AgentNoBlunder {
		t.Errorf("White = %q, want %q", cfg.White, AgentNoBlunder)
	}
	if cfg.Black != AgentRandom {
		t.Errorf("Black = %q, want %q", cfg.Black, AgentRandom)
	}
	if cfg.MaxPlies != 400 {
		t.Errorf("MaxPlies = %d, want 400", cfg.MaxPlies)
	}
	if cfg.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.StartFEN)
	}
	if cfg.Games != 1 {
		t.Errorf("Games = %d, want 1", cfg.Games)
	}
}

func TestPerftConfig_Defaults(t *testing.T) {
	cfg := NewPerftConfig()

	if cfg.Depth != 0 {
		t.Errorf("Depth = %d, want 0", cfg.Depth)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Workers)
	}
	if cfg.Divide || cfg.Verify {
		t.Error("Divide and Verify should be false by default")
	}
	if cfg.Cache != 0 {
		t.Errorf("Cache = %d, want 0", cfg.Cache)
	}
}

func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()
	testutil.AssertEqual(t, *cfg, OutputConfig{LineLength: 80})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"manual seats", func(c *Config) { c.Host.White, c.Host.Black = AgentManual, AgentManual }, false},
		{"unknown white agent", func(c *Config) { c.Host.White = "stockfish" }, true},
		{"empty black agent", func(c *Config) { c.Host.Black = "" }, true},
		{"negative max plies", func(c *Config) { c.Host.MaxPlies = -1 }, true},
		{"negative max games", func(c *Config) { c.Host.MaxGames = -3 }, true},
		{"no games", func(c *Config) { c.Host.Games = 0 }, true},
		{"negative cache", func(c *Config) { c.Perft.Cache = -1 }, true},
		{"unbounded line length", func(c *Config) { c.Output.LineLength = 0 }, false},
		{"negative line length", func(c *Config) { c.Output.LineLength = -80 }, true},
		{"negative depth", func(c *Config) { c.Perft.Depth = -1 }, true},
		{"no workers", func(c *Config) { c.Perft.Workers = 0 }, true},
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
			}
		})
	}
}

func TestConfig_SetStreams(t *testing.T) {
	cfg := NewConfig()
	out, log := &bytes.Buffer{}, &bytes.Buffer{}

	cfg.SetOutput(out)
	cfg.SetLog(log)

	if cfg.OutputFile != out {
		t.Error("SetOutput did not set OutputFile")
	}
	if cfg.LogFile != log {
		t.Error("SetLog did not set LogFile")
	}
}

func TestConfig_Logf(t *testing.T) {
	var log bytes.Buffer
	cfg := NewConfigBuilder().WithLog(&log).WithVerbosity(1).Build()

	cfg.Logf(1, "game %s started", "abc")
	cfg.Logf(2, "ply %d", 1)

	testutil.AssertEqual(t, log.String(), "game abc started\n")

	var nilCfg *Config
	nilCfg.Logf(0, "ignored")
}

func TestConfigBuilder(t *testing.T) {
	var out bytes.Buffer
	cfg := NewConfigBuilder().
		WithAgents(AgentRandom, AgentManual).
		WithSeed(7).
		WithMaxPlies(50).
		WithMaxGames(4).
		WithGames(3).
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithPerft(3, 2).
		WithDivide(true).
		WithVerify(true).
		WithCache(1000).
		WithLineLength(60).
		WithJSON(true).
		WithOutput(&out).
		WithVerbosity(2).
		Build()

	want := HostConfig{
		White:    AgentRandom,
		Black:    AgentManual,
		Seed:     7,
		MaxPlies: 50,
		MaxGames: 4,
		StartFEN: "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
		Games:    3,
	}
	testutil.AssertEqual(t, cfg.Host, want)
	testutil.AssertEqual(t, cfg.Perft, PerftConfig{Depth: 3, Workers: 2, Divide: true, Verify: true, Cache: 1000})
	testutil.AssertEqual(t, cfg.Output, OutputConfig{LineLength: 60, JSON: true})
	if cfg.OutputFile != &out || cfg.Verbosity != 2 {
		t.Error("builder did not set output or verbosity")
	}
}

func TestLoadReader(t *testing.T) {
	input := `
verbosity: 2
host:
  white: manual
  seed: 42
  max_plies: 80
perft:
  depth: 3
  workers: 2
  verify: true
  cache: 5000
output:
  json: true
`
	cfg, err := LoadReader(strings.NewReader(input))
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, cfg.Verbosity, 2)
	testutil.AssertEqual(t, cfg.Host.White, AgentManual)
	testutil.AssertEqual(t, cfg.Host.Black, AgentRandom, "unset keys keep their defaults")
	testutil.AssertEqual(t, cfg.Host.Seed, int64(42))
	testutil.AssertEqual(t, cfg.Host.MaxPlies, 80)
	testutil.AssertEqual(t, cfg.Perft, PerftConfig{Depth: 3, Workers: 2, Verify: true, Cache: 5000})
	testutil.AssertEqual(t, cfg.Output, OutputConfig{LineLength: 80, JSON: true})
	if cfg.LogFile == nil || cfg.OutputFile == nil {
		t.Error("streams should keep their defaults")
	}
}

func TestLoadReaderErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown key", "colour: blue\n"},
		{"wrong type", "verbosity: loud\n"},
		{"invalid value", "host:\n  white: oracle\n"},
		{"not a mapping", "- 1\n- 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadReader(strings.NewReader(tt.input))
			testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
		})
	}
}

func TestLoadReaderEmpty(t *testing.T) {
	cfg, err := LoadReader(strings.NewReader(""))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, cfg.Host, *NewHostConfig())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkmate.yaml")
	cfg := NewConfigBuilder().WithAgents(AgentRandom, AgentRandom).WithSeed(9).Build()
	data, err := cfg.Marshal()
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, os.WriteFile(path, data, 0o600))

	loaded, err := Load(path)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, loaded.Host, cfg.Host)
	testutil.AssertEqual(t, loaded.Perft, cfg.Perft)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Load of a missing file should fail")
	}
}
