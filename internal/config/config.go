// Package config loads the project configuration from extenum.toml.
//
// Settings resolve in three layers: built-in defaults, the project file, and
// per-enum directive arguments. Command line flags are applied by the caller
// between the last two.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"extenum-generator/internal/analyze"
	"extenum-generator/internal/plan"
)

// FileName is the project configuration file looked up by Find.
const FileName = "extenum.toml"

// Config holds the project configuration.
type Config struct {
	// Output is the name of the generated file in each package directory.
	Output string `toml:"output"`
	// Tags are the build tags that select declaration files.
	Tags []string `toml:"tags"`
	// Unknown is the catch-all pattern, e.g. "Other(raw:)". Empty selects
	// Unknown(_:).
	Unknown string `toml:"unknown"`
	// Hashable attaches the hashability extension to enums that do not
	// declare it.
	Hashable bool `toml:"hashable"`
	// HashableNames are the conformances that already provide hashability.
	HashableNames []string `toml:"hashable_names"`
	// Marshal emits raw-value marshaling methods.
	Marshal bool `toml:"marshal"`
	// KnownCases emits the ordered list of known cases.
	KnownCases bool `toml:"known_cases"`
	// Comments emits doc comments on generated declarations.
	Comments bool `toml:"comments"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	defaults := plan.DefaultOptions()

	return Config{
		Output:        "extenum_gen.go",
		Tags:          []string{analyze.DefaultTag},
		Hashable:      true,
		HashableNames: defaults.HashableNames,
		Marshal:       defaults.Marshal,
		KnownCases:    defaults.KnownCasesList,
		Comments:      true,
	}
}

// Load reads the configuration file at path on top of the defaults. Unknown
// keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			keys := make([]string, 0, len(serr.Errors))
			for _, e := range serr.Errors {
				keys = append(keys, strings.Join(e.Key(), "."))
			}

			return cfg, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
		}

		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return cfg, fmt.Errorf("%s:%d:%d: %w", path, row, col, err)
		}

		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Find loads extenum.toml from dir, or returns the defaults when the file
// does not exist. The returned path is empty in that case.
func Find(dir string) (Config, string, error) {
	path := filepath.Join(dir, FileName)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default(), "", nil
	}

	cfg, err := Load(path)

	return cfg, path, err
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	var errs []error

	if c.Output == "" || filepath.Base(c.Output) != c.Output {
		errs = append(errs, fmt.Errorf("output must be a file name, got %q", c.Output))
	}

	if filepath.Ext(c.Output) != ".go" {
		errs = append(errs, fmt.Errorf("output must end in .go, got %q", c.Output))
	}

	if len(c.Tags) == 0 {
		errs = append(errs, errors.New("at least one build tag is required"))
	}

	if c.Unknown != "" {
		if _, err := plan.ParseCatchAll(c.Unknown); err != nil {
			errs = append(errs, fmt.Errorf("unknown: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Options returns the synthesis options for one enum, applying its directive
// overrides.
func (c Config) Options(d analyze.DirectiveOptions) plan.Options {
	opts := plan.Options{
		CatchAll:       c.Unknown,
		HashableNames:  c.HashableNames,
		KnownCasesList: c.KnownCases,
		Marshal:        c.Marshal,
		SkipHashable:   !c.Hashable,
	}

	if d.Unknown != "" {
		opts.CatchAll = d.Unknown
	}

	if d.Hashable != nil {
		opts.SkipHashable = !*d.Hashable
	}

	if d.Marshal != nil {
		opts.Marshal = *d.Marshal
	}

	if d.KnownCases != nil {
		opts.KnownCasesList = *d.KnownCases
	}

	return opts
}

// Encode encodes the configuration as TOML.
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}
