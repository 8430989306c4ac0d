package pixel

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ResolveGrid resolves every pixel (i, j) with 0 <= i < ni and 0 <= j < nj
// of bank against r, using at most workers goroutines (GOMAXPROCS when
// workers <= 0). The result is laid out row-major: index i*nj + j.
//
// The first resolution error cancels the remaining work and is returned.
func ResolveGrid(ctx context.Context, r Resolver[Value], bank string, ni, nj, workers int) ([]Value, error) {
	if ni < 0 || nj < 0 {
		return nil, fmt.Errorf("grid %dx%d: negative dimension", ni, nj)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]Value, ni*nj)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < ni; i++ {
		g.Go(func() error {
			for j := 0; j < nj; j++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				v, err := r.Resolve(ID{Bank: bank, I: i, J: j})
				if err != nil {
					return err
				}
				out[i*nj+j] = v
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
