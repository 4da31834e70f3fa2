// Command extenum-generator expands extendable enum declarations into Go
// source. Declarations come from Go files built under the declaration tag or
// from YAML declaration files.
//
// Usage:
//
//	extenum-generator [flags] [packages]
//
// Typical use is a go:generate line in the declaring package:
//
//	//go:generate go run extenum-generator/cmd/extenum-generator
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"extenum-generator/internal/app"
	"extenum-generator/internal/gen"
	"extenum-generator/internal/mapping"
)

var Version = "dev"

var (
	oFlag      = flag.String("o", "", "output file name (default from extenum.toml or extenum_gen.go)")
	tagsFlag   = flag.String("tags", "", "comma-separated declaration build tags")
	configFlag = flag.String("config", "", "project file (default: extenum.toml in the working directory)")
	exportFlag = flag.String("export", "", "write the Go declarations as a YAML declaration file")
	reportFlag = flag.String("report", "", "write a JSON report of the expansion (- for stdout)")
	dumpFlag   = flag.Bool("dump", false, "dump every expansion to stderr")
	dryRunFlag = flag.Bool("n", false, "print the files that would be written without writing them")
	vFlag      = flag.Bool("v", false, "verbose logging")
	vvFlag     = flag.Bool("vv", false, "debug logging")
	qFlag      = flag.Bool("q", false, "only log errors")
	version    = flag.Bool("version", false, "print the version and exit")
)

var declFiles []string

func init() {
	flag.Func("decl", "YAML declaration file (repeatable, comma-separated)", func(s string) error {
		declFiles = append(declFiles, splitList(s)...)
		return nil
	})
}

func main() {
	flag.Parse()

	if *version {
		fmt.Println("extenum-generator", Version)
		return
	}

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := app.NewLogger(os.Stderr, app.LevelFromFlags(*vvFlag, *vFlag, *qFlag))

	res, err := app.Run(context.Background(), app.Options{
		Dir:        wd,
		Patterns:   flag.Args(),
		DeclFiles:  declFiles,
		ConfigPath: *configFlag,
		Output:     *oFlag,
		Tags:       splitList(*tagsFlag),
		Export:     *exportFlag != "",
		Dump:       *dumpFlag,
		DumpWriter: os.Stderr,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *dryRunFlag {
		for _, f := range res.Files {
			fmt.Println("Would generate:", rel(wd, filepath.Join(f.Dir, f.Filename)))
		}
	} else {
		if err := gen.WriteFiles(res.Files); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		for _, f := range res.Files {
			fmt.Println("Generated:", rel(wd, filepath.Join(f.Dir, f.Filename)))
		}
	}

	if *exportFlag != "" {
		if err := mapping.WriteFile(res.Export, *exportFlag); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if *reportFlag != "" {
		if err := res.Report.WriteFile(*reportFlag); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func splitList(s string) []string {
	var res []string

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}

	return res
}

func rel(wd, path string) string {
	if r, err := filepath.Rel(wd, path); err == nil {
		return r
	}

	return path
}
