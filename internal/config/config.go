package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atomicstack/justlist/internal/app"
	"github.com/atomicstack/justlist/internal/launch"
	"github.com/pelletier/go-toml/v2"
)

// Config captures runtime configuration for the application.
type Config struct {
	App        app.Config
	Logging    Logging
	Launcher   string
	ConfigFile string
	Flags      map[string]string
	Args       []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth      = "JUSTLIST_WIDTH"
	envHeight     = "JUSTLIST_HEIGHT"
	envShowFooter = "JUSTLIST_FOOTER"
	envTrace      = "JUSTLIST_TRACE"
	envLogFile    = "JUSTLIST_LOG_FILE"
	envLauncher   = "JUSTLIST_LAUNCHER"
	envConfig     = "JUSTLIST_CONFIG"
	envNoColor    = "JUSTLIST_NO_COLOR"
)

// fileConfig mirrors the flags that may be set in config.toml. Unset keys
// stay nil so they never mask environment or flag values.
type fileConfig struct {
	LogFile  *string `toml:"log_file"`
	Trace    *bool   `toml:"trace"`
	Width    *int    `toml:"width"`
	Height   *int    `toml:"height"`
	Footer   *bool   `toml:"footer"`
	Launcher *string `toml:"launcher"`
	NoColor  *bool   `toml:"no_color"`
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values resolve
// as flag, then environment, then config file, then built-in default.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("justlist", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.Usage = func() {}

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	launcher := fs.String("launcher", envOrDefault(env, envLauncher, launch.NameAuto), "launch strategy: "+strings.Join(launch.Names(), ", "))
	noColor := fs.Bool("no-color", envOrBool(env, envNoColor, env["NO_COLOR"] != ""), "render without colours (also NO_COLOR)")
	configPath := fs.String("config", envOrDefault(env, envConfig, ""), "path to a TOML config file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 1 {
		return Config{}, fmt.Errorf("expected at most one catalog path, got %d", fs.NArg())
	}

	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	inherit := func(name, envKey string) bool {
		if explicit[name] {
			return false
		}
		_, ok := env[envKey]
		return !ok
	}

	file, filePath, err := loadFile(*configPath, explicit["config"] || env[envConfig] != "", env)
	if err != nil {
		return Config{}, err
	}
	if file.Width != nil && inherit("width", envWidth) {
		*width = *file.Width
	}
	if file.Height != nil && inherit("height", envHeight) {
		*height = *file.Height
	}
	if file.Footer != nil && inherit("footer", envShowFooter) {
		*footer = *file.Footer
	}
	if file.Trace != nil && inherit("trace", envTrace) {
		*trace = *file.Trace
	}
	if file.LogFile != nil && inherit("log-file", envLogFile) {
		*logFile = *file.LogFile
	}
	if file.Launcher != nil && inherit("launcher", envLauncher) {
		*launcher = *file.Launcher
	}
	if file.NoColor != nil && inherit("no-color", envNoColor) && env["NO_COLOR"] == "" {
		*noColor = *file.NoColor
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			CatalogPath: fs.Arg(0),
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			NoColor:     *noColor,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Launcher:   strings.ToLower(strings.TrimSpace(*launcher)),
		ConfigFile: filePath,
		Flags: map[string]string{
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"noColor":  strconv.FormatBool(*noColor),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
			"launcher": *launcher,
			"config":   filePath,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// loadFile reads the TOML config. An explicitly requested file must exist; the
// default location is optional.
func loadFile(path string, required bool, env map[string]string) (fileConfig, string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultConfigPath(env)
		required = false
	}
	if path == "" {
		return fileConfig{}, "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return fileConfig{}, "", nil
		}
		return fileConfig{}, "", fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, "", fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, path, nil
}

func defaultConfigPath(env map[string]string) string {
	if dir := strings.TrimSpace(env["XDG_CONFIG_HOME"]); dir != "" {
		return filepath.Join(dir, "justlist", "config.toml")
	}
	if home := strings.TrimSpace(env["HOME"]); home != "" {
		return filepath.Join(home, ".config", "justlist", "config.toml")
	}
	return ""
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the launcher is one justlist knows how to run.
func Validate(cfg Config) error {
	name := cfg.Launcher
	if name == "" {
		return nil
	}
	for _, known := range launch.Names() {
		if name == known {
			return nil
		}
	}
	return fmt.Errorf("unknown launcher %q (want one of %s)", cfg.Launcher, strings.Join(launch.Names(), ", "))
}
