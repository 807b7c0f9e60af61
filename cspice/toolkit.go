package cspice

import (
	"runtime"
	"sync"

	"go.uber.org/zap"
)

// Option configures the toolkit on first Open.
type Option func(*config)

type config struct {
	logger *zap.Logger
}

// WithLogger sets the logger used for call tracing. Defaults to Logger().
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

var (
	instance     *Toolkit
	instanceErr  error
	instanceOnce sync.Once
)

// Toolkit forwards calls into CSPICE and translates its failed flag into
// *Error values. There is one Toolkit per process because CSPICE keeps its
// kernel pool and error state in globals.
type Toolkit struct {
	mu  sync.Mutex
	lib bridge
	log *zap.Logger
}

// Open returns the process-wide Toolkit, initializing CSPICE error handling
// on the first call. Options are ignored after the first call.
func Open(opts ...Option) (*Toolkit, error) {
	instanceOnce.Do(func() {
		cfg := &config{}
		for _, opt := range opts {
			if opt != nil {
				opt(cfg)
			}
		}

		lib, err := newBridge()
		if err != nil {
			instanceErr = err
			return
		}
		instance = newToolkit(lib, cfg)
	})
	return instance, instanceErr
}

func newToolkit(lib bridge, cfg *config) *Toolkit {
	log := cfg.logger
	if log == nil {
		log = Logger()
	}
	t := &Toolkit{lib: lib, log: log.Named("cspice")}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	// Report nothing to stdout and return from the failing routine instead
	// of aborting; errors are read back through getmsg in call.
	lib.setup()
	return t
}

// call runs fn against the native library and converts a raised failed
// flag into an *Error. The flag is reset before returning so the next call
// starts clean.
func (t *Toolkit) call(op string, fn func(lib bridge)) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	t.log.Debug("calling", zap.String("op", op))
	fn(t.lib)

	if !t.lib.failed() {
		return nil
	}

	err := &Error{
		Op:        op,
		Short:     t.lib.getmsg("SHORT"),
		Long:      t.lib.getmsg("LONG"),
		Traceback: t.lib.qcktrc(),
		Explain:   t.lib.getmsg("EXPLAIN"),
	}
	t.lib.reset()

	t.log.Debug("call reported an error",
		zap.String("op", op),
		zap.String("short", err.Short),
		zap.String("long", err.Long),
	)
	return err
}

// DegreesPerRadian returns the number of degrees per radian.
func (t *Toolkit) DegreesPerRadian() (float64, error) {
	var v float64
	err := t.call("dpr_c", func(lib bridge) {
		v = lib.dpr()
	})
	return v, err
}

// ToolkitVersion returns the CSPICE toolkit version string.
func (t *Toolkit) ToolkitVersion() (string, error) {
	var v string
	err := t.call("tkvrsn_c", func(lib bridge) {
		v = lib.tkvrsn("TOOLKIT")
	})
	return v, err
}
