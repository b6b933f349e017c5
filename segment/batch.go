package segment

import (
	"context"

	"github.com/kvoxel/curvextract/costfn"
	"github.com/kvoxel/curvextract/grid"
	"golang.org/x/sync/errgroup"
)

// Query bundles one Run call's arguments, for use with Batch.
type Query struct {
	ProblemType string
	Data        costfn.Volume
	Mesh        grid.MeshMap
	Conn        grid.Connectivity
	Settings    costfn.Settings
	Extra       ExtraPoints
}

// Batch runs independent queries concurrently. Each query gets its own cost functors,
// cache and oracle via Run; nothing is shared across goroutines except
// read-only grid.Connectivity values and the pooled line-integral scratch
// buffers inside costfn, which are safe for concurrent use by construction.
//
// Batch waits for every query to finish and returns the first error
// encountered (golang.org/x/sync/errgroup idiom). Run takes no context, so
// canceling ctx does not stop or skip any query, and a failing query does
// not interrupt the others.
func Batch(ctx context.Context, queries []Query) ([]Result, error) {
	results := make([]Result, len(queries))
	group, _ := errgroup.WithContext(ctx)

	for i, q := range queries {
		i, q := i, q
		group.Go(func() error {
			res, err := Run(q.ProblemType, q.Data, q.Mesh, q.Conn, q.Settings, q.Extra)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
