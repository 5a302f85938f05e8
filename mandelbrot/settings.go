package mandelbrot

import (
	"errors"
	"fmt"
	"time"

	"ParallelMandelbrot/misc"
	"github.com/BrugadaSyndrome/bslogger"
)

const defaultHeartBeat = 30 * time.Second

type Settings struct {
	logger bslogger.Logger

	Bounds        Bounds
	HeartBeat     time.Duration
	LowerRight    complex128
	MaxIterations uint
	UpperLeft     complex128
	Workers       int
}

func (s *Settings) String() string {
	output := "\nMandelbrot settings\n"
	output += fmt.Sprintf("Bounds: %s\n", s.Bounds)
	output += fmt.Sprintf("Heart Beat: %s\n", s.HeartBeat)
	output += fmt.Sprintf("Lower Right: %v\n", s.LowerRight)
	output += fmt.Sprintf("Max Iterations: %d\n", s.MaxIterations)
	output += fmt.Sprintf("Upper Left: %v\n", s.UpperLeft)
	output += fmt.Sprintf("Workers: %d\n", s.Workers)
	return output
}

func (s *Settings) Verify() error {
	s.logger = misc.NewLogger("MandelbrotSettings")

	if s.Workers <= 0 {
		return fmt.Errorf("workers must be positive - got %d", s.Workers)
	}
	if s.MaxIterations == 0 {
		return errors.New("max iterations must be positive")
	}
	if s.Bounds.Width <= 0 || s.Bounds.Height <= 0 {
		return fmt.Errorf("bounds must be positive - got %s", s.Bounds)
	}
	if s.HeartBeat < 0 {
		s.HeartBeat = defaultHeartBeat
	}

	// Band count can never exceed the row count
	if s.Workers > s.Bounds.Height {
		s.logger.Infof("Only %d of %d workers will get a band since the image is %d rows high", s.Bounds.Height, s.Workers, s.Bounds.Height)
	}

	s.logger.Debug(s.String())
	return nil
}
