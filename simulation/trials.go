package simulation

import (
	"context"
	"sync"

	"github.com/harlequix/hamfec/channel"
	"github.com/harlequix/hamfec/internal/encoding"
	"golang.org/x/sync/errgroup"
)

type Stats struct {
	Trials     int
	Recovered  int
	Mismatched int
	// ByPosition counts injected flips per position; index 0 is unused.
	ByPosition [encoding.CodewordLen + 1]int
}

func (s *Stats) add(o Stats) {
	s.Trials += o.Trials
	s.Recovered += o.Recovered
	s.Mismatched += o.Mismatched
	for i := range s.ByPosition {
		s.ByPosition[i] += o.ByPosition[i]
	}
}

// Trials runs cfg.Trials random passes split over cfg.Workers. Each
// worker owns a source derived from cfg.Seed, so a non-zero seed with
// the same worker count reproduces the same stats.
func Trials(ctx context.Context, cfg Config) (Stats, error) {
	var (
		total Stats
		mu    sync.Mutex
	)
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	base := channel.NewSource(cfg.Seed)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		n := cfg.Trials / workers
		if w < cfg.Trials%workers {
			n++
		}
		src := channel.NewSource(base.Int63() | 1)
		worker := w
		g.Go(func() error {
			var local Stats
			for i := 0; i < n; i++ {
				if i%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				res, err := Run(RandomDataWord(src), src)
				if err != nil {
					return err
				}
				local.Trials++
				local.ByPosition[res.Injected]++
				if res.Recovered() {
					local.Recovered++
				} else {
					local.Mismatched++
				}
			}
			logger.WithField("worker", worker).WithField("trials", local.Trials).Debug("worker done")
			mu.Lock()
			total.add(local)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return total, err
	}
	return total, nil
}
