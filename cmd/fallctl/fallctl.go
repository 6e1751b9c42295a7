package main

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/application-research/fallible"
	"github.com/application-research/fallible/outcome"
	leveldb "github.com/ipfs/go-ds-leveldb"
	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"
)

type Fallctl struct {
	validator *fallible.Validator
	store     *outcome.Store
	ds        *leveldb.Datastore
}

// FileConfig is the TOML config file. Unset fields keep their defaults.
type FileConfig struct {
	MinAge   *int   `toml:"min_age"`
	MaxAge   *int   `toml:"max_age"`
	LogLevel string `toml:"log_level"`
}

func New(ctx *cli.Context, dataDir string) (*Fallctl, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	cfg, err := loadConfig(ctx.String("config"), path.Join(dataDir, "config.toml"))
	if err != nil {
		return nil, err
	}

	if cfg.LogLevel != "" {
		if err := logging.SetLogLevel("*", cfg.LogLevel); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %v", cfg.LogLevel, err)
		}
	}

	ds, err := leveldb.NewDatastore(path.Join(dataDir, "datastore"), nil)
	if err != nil {
		return nil, err
	}

	return &Fallctl{
		validator: fallible.NewValidator(cfg.options()...),
		store:     outcome.New(ds),
		ds:        ds,
	}, nil
}

func (f *Fallctl) Close() error {
	return f.ds.Close()
}

// loadConfig reads explicit if it is set. Otherwise it reads fallback, and a
// missing fallback file is not an error.
func loadConfig(explicit, fallback string) (FileConfig, error) {
	var cfg FileConfig

	file := explicit
	if file == "" {
		file = fallback
	}

	if _, err := toml.DecodeFile(file, &cfg); err != nil {
		if explicit == "" && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("could not load config %s: %v", file, err)
	}

	log.Debugf("Loaded config from %s", file)
	return cfg, nil
}

func (cfg FileConfig) options() []fallible.Option {
	defaults := fallible.DefaultConfig()
	minAge, maxAge := defaults.MinAge, defaults.MaxAge
	if cfg.MinAge != nil {
		minAge = *cfg.MinAge
	}
	if cfg.MaxAge != nil {
		maxAge = *cfg.MaxAge
	}
	return []fallible.Option{fallible.WithAgeRange(minAge, maxAge)}
}
