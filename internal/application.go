package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/nullboard/internal/config"
	"github.com/rocketscienceinc/nullboard/internal/layout"
	"github.com/rocketscienceinc/nullboard/internal/render"
	"github.com/rocketscienceinc/nullboard/internal/repository"
	"github.com/rocketscienceinc/nullboard/internal/repository/storage"
	"github.com/rocketscienceinc/nullboard/internal/typeface"
	"github.com/rocketscienceinc/nullboard/internal/usecase"
	"github.com/rocketscienceinc/nullboard/transport/rest"
	"github.com/rocketscienceinc/nullboard/transport/websocket"
)

const shutdownTimeout = 5 * time.Second

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	fonts, fontCloser, err := newFontSource(logger, conf.Render)
	if err != nil {
		return err
	}
	defer fontCloser.Close()

	renderer, err := newRenderer(logger, fonts, conf.Render)
	if err != nil {
		return err
	}

	playerRepo := repository.NewPlayerRepository(redisStorage)
	gameManager := usecase.NewGameManager(
		logger,
		playerRepo,
		renderer,
		usecase.NewGameSlot(),
		conf.Render.OutputDir,
		usecase.WithStartingStat(conf.Render.StartingHealth),
	)

	router := rest.NewRouter(rest.NewHandlers(logger, gameManager))
	router.Handle("GET /ws", websocket.New(logger, gameManager))

	server := rest.New(logger, conf.HTTPPort, router)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := server.Start(); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	return server.Shutdown(shutdownCtx)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newFontSource - loads the board font once, or keeps it in sync with the file when watch-font is set.
func newFontSource(logger *slog.Logger, conf config.Render) (typeface.Source, io.Closer, error) {
	if conf.WatchFont {
		watcher, err := typeface.NewWatcher(logger, conf.FontPath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not watch font: %w", err)
		}

		return watcher, watcher, nil
	}

	font, err := typeface.Load(conf.FontPath)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("font loaded", "component", "app", "path", conf.FontPath, "family", font.Name())

	return typeface.Static(font), nopCloser{}, nil
}

func newRenderer(logger *slog.Logger, fonts typeface.Source, conf config.Render) (*render.Renderer, error) {
	policy, err := layout.ParseMissingGlyphPolicy(conf.MissingGlyph)
	if err != nil {
		return nil, err
	}

	palette, err := render.PaletteFromHex(
		conf.Palette.EvenCell,
		conf.Palette.OddCell,
		conf.Palette.OccupiedCell,
		conf.Palette.NameText,
		conf.Palette.StatText,
	)
	if err != nil {
		return nil, fmt.Errorf("invalid palette: %w", err)
	}

	opts := render.DefaultOptions()
	opts.PointSize = conf.PointSize
	opts.Policy = policy
	opts.Palette = palette
	opts.Calibration = layout.Calibration{
		UnitsPerEmReference: conf.Calibration.UnitsPerEmReference,
		DPIReference:        conf.Calibration.DPIReference,
		AdjustmentFactor:    conf.Calibration.AdjustmentFactor,
	}

	renderer, err := render.New(logger, fonts, opts)
	if err != nil {
		return nil, fmt.Errorf("could not create renderer: %w", err)
	}

	return renderer, nil
}
