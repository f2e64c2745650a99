package pipeline

import "golang.org/x/sync/errgroup"

// RunAll runs fn(0..n-1) concurrently, bounded by pc.Cores, mirroring the
// teacher's executeLevel worker-pool pattern for a single level of n
// independent units of work (here, pairwise analyses have no dependency
// structure at all, so the whole batch is one level). fn is expected to be
// pure with respect to its index; any error cancels the remaining work and
// is returned once every in-flight call has finished.
func RunAll(pc Context, n int, fn func(i int) error) error {
	if n == 0 {
		return nil
	}
	if !pc.Parallelize || n == 1 {
		for i := 0; i < n; i++ {
			if err := checkCancelled(pc); err != nil {
				return err
			}
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(pc.Ctx)
	pc.Ctx = gctx
	g.SetLimit(pc.Cores)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := checkCancelled(pc); err != nil {
				return err
			}
			return fn(i)
		})
	}
	return g.Wait()
}

func checkCancelled(pc Context) error {
	select {
	case <-pc.Ctx.Done():
		return pc.Ctx.Err()
	default:
		return nil
	}
}
