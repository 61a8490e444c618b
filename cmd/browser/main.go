package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"movie-locations/internal/apiclient"
	"movie-locations/internal/logging"
	"movie-locations/internal/mapview"
	"movie-locations/internal/mapview/termmap"
	"movie-locations/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

const (
	mapElement = "map-canvas"

	// initial map size in cells, replaced on the first window size message
	mapWidth  = 60
	mapHeight = 20
)

type flags struct {
	APIURL   string
	LogLevel string
	LogFile  string
}

func main() {
	f := &flags{}
	logCloser := func() {}

	app := &cli.Command{
		Name:      "browser",
		Usage:     "Search San Francisco film locations and see them on a map",
		UsageText: "browser [options]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "api-url",
				Usage:       "base URL of the movie locations API",
				Sources:     cli.EnvVars("MOVIES_API_URL"),
				Value:       "http://localhost:8080",
				Destination: &f.APIURL,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("MOVIES_LOG_LEVEL"),
				Value:       "info",
				Destination: &f.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <tmp>/movie-browser.log)",
				Sources:     cli.EnvVars("MOVIES_LOG_FILE"),
				Destination: &f.LogFile,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// the terminal belongs to the UI, so logs always go to a file
			logFile := f.LogFile
			if logFile == "" {
				logFile = filepath.Join(os.TempDir(), "movie-browser.log")
			}

			logger, closer, err := logging.New(f.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			logCloser()
			return nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return run(ctx, f)
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, f *flags) error {
	client, err := apiclient.New(f.APIURL)
	if err != nil {
		return err
	}

	annotator := mapview.NewAnnotator(termmap.New(mapWidth, mapHeight))
	if err := annotator.Initialize(mapElement); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model, err := tui.New(ctx, client, annotator, logging.Component("browser"))
	if err != nil {
		return err
	}

	log.Info().Str("api", f.APIURL).Msg("browser started")

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
