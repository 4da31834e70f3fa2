package analyze

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"
)

// DefaultTag is the build tag guarding declaration files.
const DefaultTag = "extenum"

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports |
	packages.NeedDeps

// Analyzer loads Go packages and extracts extendable enum declarations.
type Analyzer struct {
	// Dir is the directory patterns are resolved in; empty means the current
	// directory.
	Dir string
	// Tags are the build tags that expose declaration files.
	Tags []string
}

// NewAnalyzer creates a new Analyzer loading with the default tag.
func NewAnalyzer() *Analyzer {
	return &Analyzer{Tags: []string{DefaultTag}}
}

// LoadPackages loads the packages matching patterns with the declaration
// tags set and returns their declarations in file order.
//
// Type errors are tolerated: under the tags, the generated file is excluded
// and code using generated identifiers does not type-check.
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) ([]*Declaration, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Dir:     a.Dir,
	}

	if len(a.Tags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(a.Tags, ",")}
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if e.Kind == packages.TypeError {
				slog.Debug("ignoring type error", "pkg", pkg.PkgPath, "err", e)
				continue
			}

			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	var res []*Declaration

	for _, pkg := range pkgs {
		decls, err := a.processPackage(pkg)
		if err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}

		res = append(res, decls...)
	}

	return res, nil
}

// processPackage extracts the declarations of a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) ([]*Declaration, error) {
	conv := &converter{
		fset:    pkg.Fset,
		info:    pkg.TypesInfo,
		methods: collectMethods(pkg.Syntax),
	}

	info := PackageInfo{Path: pkg.PkgPath, Name: pkg.Name}

	var res []*Declaration

	for _, file := range pkg.Syntax {
		decls, err := conv.file(file, info)
		if err != nil {
			return nil, err
		}

		res = append(res, decls...)
	}

	slog.Debug("loaded package", "pkg", pkg.PkgPath, "enums", len(res))

	return res, nil
}

// ParseSource parses a single declaration file without type information.
// Methods are only collected from the file itself.
func ParseSource(filename string, src any) ([]*Declaration, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	conv := &converter{
		fset:    fset,
		methods: collectMethods([]*ast.File{file}),
	}

	return conv.file(file, PackageInfo{Name: file.Name.Name})
}

// file extracts the declarations of one file.
func (c *converter) file(file *ast.File, pkg PackageInfo) ([]*Declaration, error) {
	filename := c.fset.Position(file.Package).Filename
	pkg.Dir = filepath.Dir(filename)

	imports := fileImports(file)

	var res []*Declaration

	for _, d := range file.Decls {
		gen, ok := d.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}

		for _, s := range gen.Specs {
			spec := s.(*ast.TypeSpec)

			groups := []*ast.CommentGroup{spec.Doc}
			if len(gen.Specs) == 1 {
				groups = append(groups, gen.Doc)
			}

			dir, err := findDirective(DirectiveTool, DirectiveName, groups...)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", c.pos(spec.Pos()), err)
			}

			if dir == nil {
				continue
			}

			opts, err := ParseOptions(dir)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", c.pos(spec.Pos()), err)
			}

			res = append(res, &Declaration{
				Decl:    c.typeDecl(gen, spec),
				Options: opts,
				Package: pkg,
				File:    filename,
				Imports: imports,
			})
		}
	}

	return res, nil
}

func fileImports(file *ast.File) []Import {
	res := make([]Import, 0, len(file.Imports))

	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		imp := Import{Path: path}
		if spec.Name != nil {
			imp.Name = spec.Name.Name
		}

		res = append(res, imp)
	}

	return res
}
