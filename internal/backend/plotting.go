package backend

import (
	"fmt"

	"github.com/rs/zerolog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/qcsim/qcs-go/internal/ops"
	"github.com/qcsim/qcs-go/internal/waveform"
)

// readoutDisplayAmplitude is the fixed height of the synthetic square
// pulse drawn for measurement windows.
const readoutDisplayAmplitude = 0.2

// Plotting renders the sequence's waveforms to a PNG file. Operations
// are laid out back to back on a shared time axis: pulses draw on their
// channel group's trace, delays advance the time cursor silently, and
// measurements draw as a synthetic square readout pulse spanning the
// integration time. The result is always 0.
type Plotting struct {
	path       string
	sampleRate float64
	log        zerolog.Logger
}

// NewPlotting creates a plotting backend that writes to the given file.
// A non-positive sampleRate selects the waveform default.
func NewPlotting(path string, sampleRate float64, log zerolog.Logger) *Plotting {
	return &Plotting{path: path, sampleRate: sampleRate, log: log}
}

// trace groups the drawn segments of one channel family.
type trace struct {
	name     string
	dashed   bool
	segments []plotter.XYs
}

// Execute walks the sequence with a running time cursor and renders
// one trace per channel group.
func (p *Plotting) Execute(operations []ops.Operation) (float64, error) {
	traces := []*trace{
		{name: "XY drive"},
		{name: "Z bias"},
		{name: "Readout", dashed: true},
	}
	xyTrace, zTrace, readoutTrace := traces[0], traces[1], traces[2]

	cursor := 0.0
	for _, op := range operations {
		switch op := op.(type) {
		case ops.PulseOperation:
			target := xyTrace
			switch {
			case isZPath(op.ChannelPath):
				target = zTrace
			case isReadoutPath(op.ChannelPath):
				target = readoutTrace
			}
			target.segments = append(target.segments, sampleSegment(op, cursor, p.sampleRate))
			cursor += op.Duration

		case ops.DelayOperation:
			cursor += op.Duration

		case ops.MeasureOperation:
			window := ops.PulseOperation{
				ChannelPath: op.ChannelPath,
				Duration:    op.IntegrationTime,
				Amplitude:   readoutDisplayAmplitude,
				Shape:       ops.ShapeSquare,
			}
			readoutTrace.segments = append(readoutTrace.segments, sampleSegment(window, cursor, p.sampleRate))
			cursor += op.IntegrationTime
		}
	}

	if err := p.render(traces); err != nil {
		return 0, fmt.Errorf("render sequence plot: %w", err)
	}
	p.log.Info().Str("path", p.path).Msg("sequence plot written")
	return 0, nil
}

func (p *Plotting) render(traces []*trace) error {
	plt := plot.New()
	plt.Title.Text = "Pulse Sequence"
	plt.X.Label.Text = "Time (s)"
	plt.Y.Label.Text = "Amplitude (V)"
	plt.Add(plotter.NewGrid())

	for i, tr := range traces {
		inLegend := true
		for _, segment := range tr.segments {
			line, err := plotter.NewLine(segment)
			if err != nil {
				return err
			}
			line.Color = plotutil.Color(i)
			if tr.dashed {
				line.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
			}
			plt.Add(line)
			if inLegend {
				plt.Legend.Add(tr.name, line)
				inLegend = false
			}
		}
	}

	return plt.Save(10*vg.Inch, 5*vg.Inch, p.path)
}

// sampleSegment converts a pulse into plot points offset to the
// sequence's running time cursor.
func sampleSegment(op ops.PulseOperation, offset, sampleRate float64) plotter.XYs {
	times, envelope := waveform.Convert(op, sampleRate)
	points := make(plotter.XYs, len(times))
	for i := range times {
		points[i].X = times[i] + offset
		points[i].Y = envelope[i]
	}
	return points
}
