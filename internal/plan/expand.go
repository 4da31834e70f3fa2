package plan

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"extenum-generator/internal/syntax"
)

// Expand validates decl and synthesizes its members. On failure no members
// are returned.
func Expand(decl *syntax.TypeDecl, opts Options) (*Members, error) {
	v, err := Validate(decl)
	if err != nil {
		return nil, err
	}

	return Synthesize(v, opts)
}

// Request is one declaration to expand with its own options.
type Request struct {
	Decl    *syntax.TypeDecl
	Options Options
}

// ExpandAll expands every request concurrently. Results keep the request
// order. The error is the one of the first failing request, in request order.
func ExpandAll(ctx context.Context, reqs []Request) ([]*Members, error) {
	res := make([]*Members, len(reqs))
	errs := make([]error, len(reqs))

	var g errgroup.Group

	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}

			res[i], errs[i] = Expand(req.Decl, req.Options)

			return nil
		})
	}

	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}
