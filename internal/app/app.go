// Package app runs the generator: it loads the configuration and the
// declarations, expands every enum and renders the generated files.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"extenum-generator/internal/analyze"
	"extenum-generator/internal/config"
	"extenum-generator/internal/diagnostic"
	"extenum-generator/internal/gen"
	"extenum-generator/internal/mapping"
	"extenum-generator/internal/plan"
)

// Options configures one run.
type Options struct {
	// Dir is the working directory; patterns and the project file are
	// resolved in it.
	Dir string
	// Patterns are the Go packages to scan. They default to "." when no
	// declaration file is given.
	Patterns []string
	// DeclFiles are YAML declaration files.
	DeclFiles []string
	// ConfigPath overrides the extenum.toml lookup.
	ConfigPath string
	// Output overrides the generated file name.
	Output string
	// Tags overrides the declaration build tags.
	Tags []string
	// Export builds a YAML declaration file from the Go source declarations.
	Export bool
	// Dump writes a dump of every expansion to DumpWriter.
	Dump       bool
	DumpWriter io.Writer
	Logger     *slog.Logger
}

// Result is the outcome of a successful run.
type Result struct {
	Config config.Config
	Enums  []gen.Enum
	Files  []gen.GeneratedFile
	Report *Report
	// Export holds the exported declarations when Options.Export is set.
	Export *mapping.DeclFile
	// Diagnostics collects the warnings of every expansion.
	Diagnostics diagnostic.Diagnostics
}

// Run loads, expands and renders. Nothing is written to disk.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cfg, err := loadConfig(opts, logger)
	if err != nil {
		return nil, err
	}

	res := &Result{Config: cfg}

	decls, err := loadDeclarations(ctx, opts, cfg, logger, res)
	if err != nil {
		return nil, err
	}

	reqs := make([]plan.Request, 0, len(decls))
	for _, d := range decls {
		reqs = append(reqs, plan.Request{Decl: d.Decl, Options: cfg.Options(d.Options)})
	}

	members, err := plan.ExpandAll(ctx, reqs)
	if err != nil {
		return nil, err
	}

	for i, m := range members {
		logger.Info("expanded enum", "enum", m.Enum, "cases", len(m.KnownCaseNames()), "members", len(m.Decls))
		logDiagnostics(logger, m.Diagnostics)
		res.Diagnostics.Merge(m.Diagnostics)

		if opts.Dump {
			w := opts.DumpWriter
			if w == nil {
				w = io.Discard
			}

			spew.Fdump(w, m)
		}

		res.Enums = append(res.Enums, gen.Enum{Decl: decls[i], Members: m})
	}

	generator := gen.NewGenerator(gen.GeneratorConfig{
		Filename:         cfg.Output,
		Tag:              cfg.Tags[0],
		GenerateComments: cfg.Comments,
	})

	res.Files, err = generator.Generate(res.Enums)
	if err != nil {
		return nil, err
	}

	res.Report = NewReport(res.Enums)

	return res, nil
}

func loadConfig(opts Options, logger *slog.Logger) (config.Config, error) {
	var (
		cfg  config.Config
		path = opts.ConfigPath
		err  error
	)

	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, path, err = config.Find(opts.Dir)
	}

	if err != nil {
		return cfg, err
	}

	if path != "" {
		logger.Debug("loaded config", "path", path)
	}

	if opts.Output != "" {
		cfg.Output = opts.Output
	}

	if len(opts.Tags) > 0 {
		cfg.Tags = opts.Tags
	}

	return cfg, cfg.Validate()
}

// loadDeclarations reads the declaration files, then the Go packages.
func loadDeclarations(
	ctx context.Context, opts Options, cfg config.Config, logger *slog.Logger, res *Result,
) ([]*analyze.Declaration, error) {
	var (
		decls []*analyze.Declaration
		errs  []error
	)

	for _, path := range opts.DeclFiles {
		fileDecls, err := loadDeclFile(path, logger, res)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		decls = append(decls, fileDecls...)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	patterns := opts.Patterns
	if len(patterns) == 0 && len(opts.DeclFiles) == 0 {
		patterns = []string{"."}
	}

	if len(patterns) == 0 {
		if opts.Export {
			return nil, errors.New("export needs Go packages to scan")
		}

		return decls, nil
	}

	analyzer := &analyze.Analyzer{Dir: opts.Dir, Tags: cfg.Tags}

	goDecls, err := analyzer.LoadPackages(ctx, patterns...)
	if err != nil {
		return nil, err
	}

	logger.Debug("loaded packages", "patterns", strings.Join(patterns, " "), "enums", len(goDecls))

	if opts.Export {
		if res.Export, err = exportDeclarations(goDecls); err != nil {
			return nil, err
		}
	}

	return append(decls, goDecls...), nil
}

func loadDeclFile(path string, logger *slog.Logger, res *Result) ([]*analyze.Declaration, error) {
	df, err := mapping.LoadFile(path)
	if err != nil {
		return nil, err
	}

	diags := mapping.Validate(df)
	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logDiagnostics(logger, *diags)
	res.Diagnostics.Merge(*diags)

	return mapping.ToDeclarations(df, path)
}

// exportDeclarations builds one declaration file from the declarations of a
// single package.
func exportDeclarations(decls []*analyze.Declaration) (*mapping.DeclFile, error) {
	var pkgs []string

	for _, d := range decls {
		if !slices.Contains(pkgs, d.Package.Path) {
			pkgs = append(pkgs, d.Package.Path)
		}
	}

	if len(pkgs) > 1 {
		return nil, fmt.Errorf("export covers one package, found %s", strings.Join(pkgs, ", "))
	}

	return mapping.FromDeclarations(decls), nil
}
