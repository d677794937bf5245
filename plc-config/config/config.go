package config

import (
	"flag"
	"os"

	"plc-tools/plc-config/calc"
	"plc-tools/plc-config/units"
)

// --- Application defaults ---
const (
	DefaultLogFile   = "plc-config.log"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	EnvLogFile   = "PLCCFG_LOG_FILE"
	EnvLogLevel  = "PLCCFG_LOG_LEVEL"
	EnvLogFormat = "PLCCFG_LOG_FORMAT"
)

// --- Form defaults for a 4-20 mA loop on a 200 ohm shunt ---
const (
	DefaultResistanceOhm = 200.0
	DefaultCurrentMinMA  = 4.0
	DefaultCurrentMaxMA  = 20.0
	DefaultScaleMin      = 0.0
	DefaultScaleMax      = 2000.0
)

// --- Form defaults for a medium-voltage energy meter ---
const (
	DefaultCTPrimary     = 100.0
	DefaultCTSecondary   = 5.0
	DefaultVTPrimary     = 15000.0
	DefaultVTSecondary   = 100.0
	DefaultPulsesPerUnit = 10000.0
	DefaultInstantaneous = 1000.0
	DefaultWindowMinutes = 1.0
	DefaultUnitName      = "kWh"
)

type AppConfig struct {
	LogFile     string
	LogLevel    string
	LogFormat   string
	ScriptPath  string
	ShowVersion bool
}

// Load reads environment overrides and then the command line; flags win.
func Load(args []string) (*AppConfig, error) {
	cfg := &AppConfig{
		LogFile:   envOr(EnvLogFile, DefaultLogFile),
		LogLevel:  envOr(EnvLogLevel, DefaultLogLevel),
		LogFormat: envOr(EnvLogFormat, DefaultLogFormat),
	}

	fs := flag.NewFlagSet("plc-config", flag.ContinueOnError)
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Path to the log file ('-' for stderr)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: 'json' or 'console'")
	fs.StringVar(&cfg.ScriptPath, "script", "", "Run a command script instead of the TUI ('-' for stdin)")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print the version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func DefaultAnalogInput() calc.AnalogInput {
	return calc.AnalogInput{
		ResistanceOhm: DefaultResistanceOhm,
		CurrentMinMA:  DefaultCurrentMinMA,
		CurrentMaxMA:  DefaultCurrentMaxMA,
		ScaleMin:      DefaultScaleMin,
		ScaleMax:      DefaultScaleMax,
		InputTimeBase: units.TimeBaseHour,
		InputScale:    units.ScaleBase,
		OutputScale:   units.ScaleBase,
	}
}

func DefaultDigitalInput() calc.DigitalInput {
	return calc.DigitalInput{
		CTPrimary:               DefaultCTPrimary,
		CTSecondary:             DefaultCTSecondary,
		VTPrimary:               DefaultVTPrimary,
		VTSecondary:             DefaultVTSecondary,
		PulsesPerUnit:           DefaultPulsesPerUnit,
		InstantaneousValue:      DefaultInstantaneous,
		DerivativeWindowMinutes: DefaultWindowMinutes,
		OutputScale:             units.ScaleBase,
		UnitName:                DefaultUnitName,
	}
}
