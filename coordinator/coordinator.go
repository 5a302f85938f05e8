package coordinator

import (
	"fmt"
	"sync/atomic"
	"time"

	"ParallelMandelbrot/mandelbrot"
	"ParallelMandelbrot/misc"
	"ParallelMandelbrot/task"
	"ParallelMandelbrot/worker"
	"github.com/BrugadaSyndrome/bslogger"
	"golang.org/x/sync/errgroup"
)

type Coordinator struct {
	bandCount      int
	bandsCompleted atomic.Int64
	logger         bslogger.Logger
	settings       mandelbrot.Settings
	stats          Stats
}

type Stats struct {
	Bands   int
	Bounded int
	Escaped int
	Elapsed time.Duration
}

func NewCoordinator(settings mandelbrot.Settings) (*Coordinator, error) {
	if err := settings.Verify(); err != nil {
		return nil, fmt.Errorf("invalid settings - %w", err)
	}

	return &Coordinator{
		logger:   misc.NewLogger("Coordinator"),
		settings: settings,
	}, nil
}

// Render
// Allocates the pixel buffer, splits it into bands and renders every band on its own worker. The buffer is returned
// only once every worker has finished; if any of them fails the whole render fails.
func (c *Coordinator) Render() ([]byte, error) {
	startTime := time.Now()
	bounds := c.settings.Bounds
	pixels := make([]byte, bounds.Area())

	bands, err := task.Split(pixels, bounds, c.settings.Workers, c.settings.UpperLeft, c.settings.LowerRight)
	if err != nil {
		return nil, err
	}
	c.bandCount = len(bands)
	c.bandsCompleted.Store(0)
	c.logger.Infof("Rendering %s with %d bands of %d rows", bounds, len(bands), task.RowsPerBand(bounds.Height, c.settings.Workers))

	workers := make([]*worker.Worker, len(bands))
	done := make(chan struct{})
	go c.tickers(done)

	var group errgroup.Group
	group.SetLimit(c.settings.Workers)
	for i := range bands {
		band := &bands[i]
		workers[i] = worker.NewWorker(band.ID, c.settings.MaxIterations)
		w := workers[i]
		group.Go(func() error {
			if err := w.Process(band); err != nil {
				return err
			}
			c.bandsCompleted.Add(1)
			return nil
		})
	}
	err = group.Wait()
	close(done)
	if err != nil {
		return nil, err
	}

	c.stats = Stats{Bands: len(bands), Elapsed: time.Since(startTime)}
	for _, w := range workers {
		ws := w.Stats()
		c.stats.Bounded += ws.Bounded
		c.stats.Escaped += ws.Escaped
	}
	c.logger.Infof("Rendered %d bands in %s [Bounded: %d] [Escaped: %d]", c.stats.Bands, c.stats.Elapsed, c.stats.Bounded, c.stats.Escaped)

	return pixels, nil
}

func (c *Coordinator) tickers(done <-chan struct{}) {
	if c.settings.HeartBeat <= 0 {
		return
	}
	heartBeat := time.NewTicker(c.settings.HeartBeat)
	defer heartBeat.Stop()

	for {
		select {
		case <-done:
			return
		case <-heartBeat.C:
			c.logger.Debug("Heart beat ticker")
			c.logger.Infof("Bands [Completed: %d/%d]", c.bandsCompleted.Load(), c.bandCount)
		}
	}
}

func (c *Coordinator) Settings() mandelbrot.Settings {
	return c.settings
}

// Stats describes the last successful render
func (c *Coordinator) Stats() Stats {
	return c.stats
}
