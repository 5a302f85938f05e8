package worker

import (
	"fmt"
	"time"

	"ParallelMandelbrot/mandelbrot"
	"ParallelMandelbrot/misc"
	"ParallelMandelbrot/task"
	"github.com/BrugadaSyndrome/bslogger"
)

type Stats struct {
	BandsCompleted int
	Bounded        int
	Escaped        int
	Elapsed        time.Duration
}

type Worker struct {
	id            int
	logger        bslogger.Logger
	maxIterations uint
	stats         Stats
}

func NewWorker(id int, maxIterations uint) *Worker {
	return &Worker{
		id:            id,
		logger:        misc.NewLogger(fmt.Sprintf("Worker %d", id)),
		maxIterations: maxIterations,
	}
}

// Process renders band in place. The worker must not be shared between goroutines while processing.
func (w *Worker) Process(band *task.Band) error {
	w.logger.Debugf("Processing %s", band.String())

	startTime := time.Now()
	err := mandelbrot.RenderBand(w.maxIterations, band.Pixels, band.Bounds, band.UpperLeft, band.LowerRight)
	if err != nil {
		return fmt.Errorf("worker %d failed band %d - %w", w.id, band.ID, err)
	}
	elapsedTime := time.Since(startTime)

	for _, pixel := range band.Pixels {
		if pixel == mandelbrot.Escaped {
			w.stats.Escaped++
		} else {
			w.stats.Bounded++
		}
	}
	w.stats.BandsCompleted++
	w.stats.Elapsed += elapsedTime

	first, last := band.Rows()
	w.logger.Debugf("Rendered rows [%d, %d) in %s", first, last, elapsedTime)
	return nil
}

func (w *Worker) ID() int {
	return w.id
}

func (w *Worker) Stats() Stats {
	return w.stats
}
