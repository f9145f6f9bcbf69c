package main

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/qcsim/qcs-go/internal/backend"
	"github.com/qcsim/qcs-go/internal/config"
	"github.com/qcsim/qcs-go/internal/experiment"
	"github.com/qcsim/qcs-go/pkg/formulas"
	"github.com/qcsim/qcs-go/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New(logger.Config{
		Level:  "info",
		Pretty: true,
	})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	log = logger.New(logger.Config{Level: cfg.LogLevel, Pretty: true})

	log.Info().Str("config", cfg.DeviceConfigPath).Msg("Starting Rabi amplitude sweep")

	// Build the experiment and its device graph
	exp, err := experiment.NewRabi(cfg.DeviceConfigPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build Rabi experiment")
	}
	if skipped := exp.System.SkippedDevices(); len(skipped) > 0 {
		log.Warn().Strs("devices", skipped).Msg("Configured devices were skipped at load")
	}
	if unlinked := exp.System.UnlinkedQubits(); len(unlinked) > 0 {
		log.Warn().Strs("qubits", unlinked).Msg("Qubits have no linked readout")
	}

	simBackend := backend.NewSimulation(exp.System, cfg.SampleRate, log)
	amplitudes := formulas.Linspace(0, cfg.SweepMaxAmplitude, cfg.SweepPoints)

	// Optionally dump the instruction list for the first sweep point.
	if cfg.PrintSequence {
		if _, err := exp.Run(backend.NewPrinting(log), experiment.Params{
			experiment.ParamAmplitude: amplitudes[0],
		}); err != nil {
			log.Fatal().Err(err).Msg("Failed to print sequence")
		}
	}

	populations := make([]float64, 0, len(amplitudes))
	for i, amplitude := range amplitudes {
		population, err := exp.Run(simBackend, experiment.Params{
			experiment.ParamAmplitude: amplitude,
		})
		if err != nil {
			log.Fatal().Err(err).Float64("amplitude", amplitude).Msg("Sweep point failed")
		}
		populations = append(populations, population)

		log.Info().
			Int("point", i+1).
			Int("points", len(amplitudes)).
			Float64("amplitude", amplitude).
			Float64("population", population).
			Msg("Sweep point complete")
	}

	log.Info().
		Float64("mean_population", formulas.Mean(populations)).
		Float64("max_population", formulas.Max(populations)).
		Msg("Sweep complete")

	if cfg.PlotPath != "" {
		if err := renderRabiCurve(cfg.PlotPath, amplitudes, populations); err != nil {
			log.Fatal().Err(err).Msg("Failed to render Rabi curve")
		}
		log.Info().Str("path", cfg.PlotPath).Msg("Rabi curve written")
	}
}

// renderRabiCurve plots excited-state population against drive
// amplitude.
func renderRabiCurve(path string, amplitudes, populations []float64) error {
	points := make(plotter.XYs, len(amplitudes))
	for i := range amplitudes {
		points[i].X = amplitudes[i]
		points[i].Y = populations[i]
	}

	plt := plot.New()
	plt.Title.Text = "Simulated Rabi Oscillation"
	plt.X.Label.Text = "Pulse Amplitude (V)"
	plt.Y.Label.Text = "P(|1>)"
	plt.Add(plotter.NewGrid())

	if err := plotutil.AddLinePoints(plt, "Simulation", points); err != nil {
		return err
	}

	return plt.Save(10*vg.Inch, 6*vg.Inch, path)
}
