package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/glebovdev/radio-cli/internal/api"
	"github.com/glebovdev/radio-cli/internal/app"
	"github.com/glebovdev/radio-cli/internal/cache"
	"github.com/glebovdev/radio-cli/internal/config"
	"github.com/glebovdev/radio-cli/internal/player"
	"github.com/glebovdev/radio-cli/internal/prompt"
	"github.com/glebovdev/radio-cli/internal/service"
	"github.com/glebovdev/radio-cli/internal/ui"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

const playerInstallHints = `Install it first:
  Ubuntu/Debian: sudo apt install mpv
  Fedora/RHEL:   sudo dnf install mpv
  Arch:          sudo pacman -S mpv`

type options struct {
	version     bool
	debug       bool
	stations    string
	writeConfig bool
}

func parseFlags(args []string) (options, error) {
	var opts options

	flagSet := pflag.NewFlagSet("radio", pflag.ContinueOnError)
	flagSet.BoolVar(&opts.version, "version", false, "Show version information")
	flagSet.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flagSet.StringVar(&opts.stations, "stations", "", "Station list file or http(s) URL (overrides the config file)")
	flagSet.BoolVar(&opts.writeConfig, "write-config", false, "Write the default config file and exit")
	flagSet.Usage = func() { printUsage(flagSet) }

	if err := flagSet.Parse(args); err != nil {
		return opts, err
	}
	if flagSet.NArg() > 0 {
		return opts, fmt.Errorf("unexpected argument: %s", flagSet.Arg(0))
	}
	return opts, nil
}

func printUsage(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, "%s v%s - %s\n", config.AppName, config.AppVersion, config.AppTagline)
	fmt.Fprintf(os.Stderr, "%s\n\n", config.AppDescription)
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", filepath.Base(os.Args[0]))
	fmt.Fprintf(os.Stderr, "Options:\n")
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()

	configPath, err := config.GetConfigPath()
	if err == nil {
		if _, statErr := os.Stat(configPath); statErr == nil {
			fmt.Fprintf(os.Stderr, "\nConfig file: %s\n", configPath)
		} else {
			fmt.Fprintf(os.Stderr, "\nNo config file; run with --write-config to create %s\n", configPath)
		}
	}
	fmt.Fprintf(os.Stderr, "Project: %s\n", config.AppProjectURL)
}

func setupLogging(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)

		cacheDir, err := cache.GetCacheDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not get cache dir: %v\n", err)
			cacheDir = os.TempDir()
		}
		if err := os.MkdirAll(cacheDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create log dir: %v\n", err)
		}
		logPath := filepath.Join(cacheDir, "debug.log")
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create log file: %v\n", err)
			logFile = os.Stderr
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: logFile, TimeFormat: "15:04:05"})
		fmt.Printf("Debug log: %s\n", logPath)
		log.Info().Msgf("Starting %s v%s (debug mode)", config.AppName, config.AppVersion)
		return
	}

	// Avoid TUI corruption by only logging errors to /dev/null
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	logFile, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0644)
	if err == nil {
		log.Logger = log.Output(logFile)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fatal("%v", err)
	}

	if opts.version {
		fmt.Printf("%s v%s\n", config.AppName, config.AppVersion)
		fmt.Println(config.AppDescription)
		fmt.Println(config.AppProjectURL)
		os.Exit(0)
	}

	if opts.writeConfig {
		if err := config.DefaultConfig().Save(); err != nil {
			fatal("%v", err)
		}
		configPath, _ := config.GetConfigPath()
		fmt.Printf("Wrote %s\n", configPath)
		os.Exit(0)
	}

	setupLogging(opts.debug)

	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load config, using defaults")
	}
	if opts.stations != "" {
		cfg.Stations = opts.stations
	}
	socketPath := cfg.Socket
	if socketPath == "" {
		socketPath = player.DefaultSocketPath()
	}

	if opts.debug {
		if configPath, err := config.GetConfigPath(); err == nil {
			log.Debug().Msgf("Config: %s", configPath)
		}
		log.Debug().Str("stations", cfg.Stations).Str("player", cfg.Player).Str("socket", socketPath).Msg("Settings")
	}

	if err := player.CheckBinary(cfg.Player); err != nil {
		fatal("%s is not installed or not working (%v).\n%s", cfg.Player, err, playerInstallHints)
	}

	stationService := service.NewStationService(api.NewListClient())
	if err := stationService.Load(cfg.Stations); err != nil {
		fatal("%v", err)
	}

	controller := player.NewController(cfg.Player, socketPath)
	defer controller.Close()

	browser := app.New(stationService.Stations(), controller, prompt.New(os.Stdin, os.Stdout))
	radioUI := ui.NewUI(browser, cfg, stationService.Source())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("Received shutdown signal, cleaning up...")
		radioUI.Shutdown()
	}()

	log.Info().Int("stations", stationService.StationCount()).Msg("Starting UI...")

	if err := radioUI.Run(); err != nil {
		log.Error().Err(err).Msg("Error running UI")
		controller.Close()
		os.Exit(1)
	}

	log.Info().Msgf("%s stopped", config.AppName)
}
