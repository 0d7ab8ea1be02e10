package config

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/osuushi/collide/advanced"
	"github.com/pkg/errors"

	logging "github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	"%{color}%{time:15:04:05.000} %{module} ▶ %{level:.4s} %{id:03x} %{message}%{color:reset}",
)

// Config defines the central type where all configuration is unmarshalled to.
type Config struct {
	Collider ColliderConfig  `toml:"collider"`
	Logging  []LoggingConfig `toml:"logging"`
}

type ColliderConfig struct {
	Epsilon          float64 `toml:"epsilon"`
	ClosingEdges     bool    `toml:"closing_edges"`
	RejectDegenerate bool    `toml:"reject_degenerate"`
}

type LoggingConfig struct {
	// "stdout", "stderr", or a file path, which may contain environment variables
	Output string `toml:"output"`
	Level  string `toml:"level"`
}

// Default is used when no configuration file is given. The collider section is
// left at its zero value, and warnings go to stderr.
func Default() Config {
	return Config{
		Logging: []LoggingConfig{{Output: "stderr", Level: "warning"}},
	}
}

// Load decodes a TOML configuration on top of the current values.
func (c *Config) Load(r io.Reader) error {
	if _, err := toml.DecodeReader(r, c); err != nil {
		return errors.Wrap(err, "decoding config")
	}
	return nil
}

// NewCollider builds a collider from the [collider] section.
func (c Config) NewCollider() advanced.Collider {
	return advanced.Collider{
		Epsilon:          c.Collider.Epsilon,
		TestClosingEdges: c.Collider.ClosingEdges,
		RejectDegenerate: c.Collider.RejectDegenerate,
	}
}

// SetupLogging installs one leveled backend per [[logging]] entry. The returned
// function closes any log files that were opened, and should be called once
// logging is no longer needed.
func (c Config) SetupLogging() (func() error, error) {
	var logBackends []logging.Backend
	var files []*os.File
	closeFiles := func() error {
		var firstErr error
		for _, f := range files {
			if err := f.Close(); err != nil && firstErr == nil {
				firstErr = errors.Wrapf(err, "closing %s", f.Name())
			}
		}
		files = nil
		return firstErr
	}

	for _, l := range c.Logging {
		var output io.Writer
		switch l.Output {
		case "stdout":
			output = os.Stdout
		case "stderr", "":
			output = os.Stderr
		default:
			f, err := os.OpenFile(os.ExpandEnv(l.Output), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0660)
			if err != nil {
				closeFiles()
				return nil, errors.Wrapf(err, "opening log output %q", l.Output)
			}
			files = append(files, f)
			output = f
		}

		backend := logging.NewLogBackend(output, "", 0)
		backendFormatter := logging.NewBackendFormatter(backend, format)
		backendLeveled := logging.AddModuleLevel(backendFormatter)

		level, err := logging.LogLevel(l.Level)
		if err != nil {
			closeFiles()
			return nil, errors.Wrapf(err, "log level %q", l.Level)
		}
		backendLeveled.SetLevel(level, "")

		logBackends = append(logBackends, backendLeveled)
	}

	if len(logBackends) == 0 {
		return nil, errors.New("no logging backends configured")
	}
	logging.SetBackend(logBackends...)
	return closeFiles, nil
}
