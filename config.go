package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"runtime"

	"github.com/naoina/toml"
	"gopkg.in/urfave/cli.v1"
)

// Config carries the settings the translate command reads from a TOML file.
// Command-line flags override anything set here.
type Config struct {
	Strict  bool
	NoColor bool
	Jobs    int
}

func defaultConfig() Config {
	return Config{Jobs: runtime.NumCPU()}
}

// These settings make TOML keys match the Go struct fields exactly.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

func loadConfig(file string, cfg *Config) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Attach the file name to errors that carry a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig resolves the effective settings: defaults first, then the
// config file, then command-line flags.
func makeConfig(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()
	if file := ctx.GlobalString("config"); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
	}
	if ctx.GlobalIsSet("strict") {
		cfg.Strict = ctx.GlobalBool("strict")
	}
	if ctx.GlobalIsSet("no-color") {
		cfg.NoColor = ctx.GlobalBool("no-color")
	}
	if ctx.GlobalIsSet("jobs") {
		cfg.Jobs = ctx.GlobalInt("jobs")
	}
	if cfg.Jobs < 1 {
		cfg.Jobs = 1
	}
	return cfg, nil
}
