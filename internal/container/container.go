package container

import (
	"fmt"

	"github.com/jonboulle/clockwork"

	"gorain/adapters/fft"
	"gorain/adapters/rng"
	"gorain/app"
	"gorain/internal"
	"gorain/internal/config"
	"gorain/ports"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config
	Logger *internal.Logger
	Clock  clockwork.Clock

	// Compute adapters
	Fourier ports.FourierBackend
	RNG     ports.RNGPort

	// Services
	Ensemble *app.EnsembleService
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	c := &Container{
		Config: cfg,
		Logger: internal.NewDefaultLogger(),
		Clock:  clockwork.NewRealClock(),
	}

	if err := c.initAdapters(); err != nil {
		return nil, fmt.Errorf("failed to initialize adapters: %w", err)
	}
	c.initServices()

	return c, nil
}

// initAdapters initializes the compute adapters selected by configuration
func (c *Container) initAdapters() error {
	backend, err := fft.New(c.Config.Spectral.FFTBackend)
	if err != nil {
		return err
	}
	c.Fourier = backend
	c.RNG = rng.NewDeterministic()
	return nil
}

// initServices initializes services whose dependencies live as long as the container
func (c *Container) initServices() {
	c.Ensemble = app.NewEnsembleService(c.RNG, c.Clock, c.Logger, c.Config)
}

// SweepService builds a field sweep service over the given source.
// Sources are per-run inputs, so the container does not hold one.
func (c *Container) SweepService(source ports.FieldSource) *app.FieldSweepService {
	return app.NewFieldSweepService(source, c.Fourier, c.Clock, c.Logger, c.Config)
}
