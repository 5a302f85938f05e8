package coordinator

import (
	"io"

	"ParallelMandelbrot/misc"
	"github.com/bytedance/sonic"
)

type Point struct {
	Real      float64
	Imaginary float64
}

// Record holds everything needed to reproduce a render along with how it went
type Record struct {
	Output        string
	Workers       int
	MaxIterations uint
	Width         int
	Height        int
	UpperLeft     Point
	LowerRight    Point
	Bands         int
	Bounded       int
	Escaped       int
	ElapsedMillis int64
}

func (c *Coordinator) Record(output string) Record {
	return Record{
		Output:        output,
		Workers:       c.settings.Workers,
		MaxIterations: c.settings.MaxIterations,
		Width:         c.settings.Bounds.Width,
		Height:        c.settings.Bounds.Height,
		UpperLeft:     Point{Real: real(c.settings.UpperLeft), Imaginary: imag(c.settings.UpperLeft)},
		LowerRight:    Point{Real: real(c.settings.LowerRight), Imaginary: imag(c.settings.LowerRight)},
		Bands:         c.stats.Bands,
		Bounded:       c.stats.Bounded,
		Escaped:       c.stats.Escaped,
		ElapsedMillis: c.stats.Elapsed.Milliseconds(),
	}
}

// SaveRecord copies the settings of the last render to fileName so the run can be duplicated in the future
func (c *Coordinator) SaveRecord(fileName string, output string) error {
	bytes, err := sonic.ConfigStd.MarshalIndent(c.Record(output), "", "  ")
	if err != nil {
		return err
	}
	err = misc.WriteFile(fileName, func(w io.Writer) error {
		_, err := w.Write(bytes)
		return err
	})
	if err != nil {
		return err
	}
	c.logger.Infof("Saved settings to %s", fileName)
	return nil
}
