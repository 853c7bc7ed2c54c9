package genome

import (
	"context"
	"sync"
	"time"

	"github.com/genomekit/genomekit/pkg/observability"
)

const defaultWorkers = 8

type job struct {
	chrom  string
	length int
}

type result struct {
	job
	err error
}

// download fetches the missing chromosomes with a fixed worker pool and
// persists each one to the store as it arrives. The first failure cancels
// the remaining jobs.
func (g *Genome) download(ctx context.Context, f Fetcher, missing []string, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan job)
	results := make(chan result)

	var wg sync.WaitGroup
	for w := 0; w < min(opts.Workers, len(missing)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- result{job: j, err: g.fetchOne(ctx, f, j)}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, chrom := range missing {
			select {
			case jobs <- job{chrom: chrom, length: g.lengths[chrom]}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var firstErr error
	done := 0
	for r := range results {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
				cancel()
			}
			continue
		}
		done++
		opts.Logger("downloaded %s (%d bp, %d/%d)", r.chrom, r.length, done, len(missing))
	}
	return firstErr
}

func (g *Genome) fetchOne(ctx context.Context, f Fetcher, j job) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	observability.Download().OnChromosomeStart(ctx, g.assembly, j.chrom)
	start := time.Now()
	dna, err := f.Sequence(ctx, g.assembly, j.chrom, 0, j.length)
	observability.Download().OnChromosomeComplete(ctx, g.assembly, j.chrom, len(dna), time.Since(start), err)
	if err != nil {
		return wrapFetchErr(err, "downloading %s of %s", j.chrom, g.assembly)
	}
	return g.store.WriteSequence(g.assembly, j.chrom, dna)
}
