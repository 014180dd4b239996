package command

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestConfig_Validate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "weapons.json")
	if err := os.WriteFile(file, []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}

	storage := func() StorageConfig {
		s := StorageConfig{}
		s.Weapons.Path = file
		s.Armor.Path = file
		s.Places.Path = file
		s.Actors.Path = file
		return s
	}

	tests := map[string]struct {
		cfg    Config
		expErr string
	}{
		"valid": {
			cfg: Config{Storage: storage()},
		},
		"missing path": {
			cfg: Config{Storage: func() StorageConfig {
				s := storage()
				s.Armor.Path = ""
				return s
			}()},
			expErr: "armor: path is required",
		},
		"nonexistent path": {
			cfg: Config{Storage: func() StorageConfig {
				s := storage()
				s.Places.Path = filepath.Join(dir, "nope")
				return s
			}()},
			expErr: "places: invalid path",
		},
		"bad start timeout": {
			cfg:    Config{Storage: storage(), Nats: NatsConfig{StartTimeout: "soon"}},
			expErr: "parsing start_timeout",
		},
		"port out of range": {
			cfg:    Config{Storage: storage(), Nats: NatsConfig{Port: 70000}},
			expErr: "out of range",
		},
		"random port": {
			cfg: Config{Storage: storage(), Nats: NatsConfig{Port: -1}},
		},
		"short tick": {
			cfg:    Config{Storage: storage(), Driver: DriverConfig{TickInterval: "10ms"}},
			expErr: "at least 1 second",
		},
		"negative queue": {
			cfg:    Config{Storage: storage(), Driver: DriverConfig{QueueSize: -1}},
			expErr: "queue_size must not be negative",
		},
		"journal prefix with separator": {
			cfg:    Config{Storage: storage(), Journal: JournalConfig{Directory: dir, Prefix: "a/b"}},
			expErr: "path separators",
		},
		"negative width": {
			cfg:    Config{Storage: storage(), Narration: NarrationConfig{Width: -4}},
			expErr: "narration width",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Setenv("RULES_NATS_HOST", "0.0.0.0")
	t.Setenv("RULES_NATS_PORT", "4333")
	t.Setenv("RULES_JOURNAL_DIR", "/var/lib/rules")

	cfg := Config{Nats: NatsConfig{Host: "127.0.0.1", StartTimeout: "5s"}}
	if err := cfg.applyEnv(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "host", cfg.Nats.Host, "0.0.0.0")
	testutil.AssertEqual(t, "port", cfg.Nats.Port, 4333)
	testutil.AssertEqual(t, "start timeout", cfg.Nats.StartTimeout, "5s")
	testutil.AssertEqual(t, "journal directory", cfg.Journal.Directory, "/var/lib/rules")
	testutil.AssertEqual(t, "journal enabled", cfg.Journal.enabled(), true)
}

func TestBuildWorkers_RejectsWrongConfig(t *testing.T) {
	_, err := BuildWorkers(struct{}{})
	testutil.AssertErrorContains(t, err, "unable to cast config")
}
