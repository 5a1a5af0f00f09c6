package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ahzammaqsood/portfolio/internal/projects"
	"github.com/ahzammaqsood/portfolio/internal/store"
	"github.com/ahzammaqsood/portfolio/internal/tracking"
)

var (
	cfg    Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio web server",
	Long: `Serves the portfolio site: the landing page, project detail views,
the work filter, the contact form and a small privacy-conscious admin area.

Run without arguments to start the server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = loadConfig(); err != nil {
			return err
		}
		logger, err = newLogger(cfg.Debug)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(projectsCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadCatalog returns the YAML catalog when one is configured, otherwise
// the compiled-in projects.
func loadCatalog(cfg Config) (*projects.Catalog, error) {
	if cfg.ProjectsFile == "" {
		return projects.Builtin(), nil
	}
	return projects.LoadFile(cfg.ProjectsFile)
}

func newServer(cfg Config, log *zap.Logger, catalog *projects.Catalog, st *store.Store) (*server, error) {
	renderer, err := projects.NewRenderer()
	if err != nil {
		return nil, err
	}
	tracker, err := tracking.New(st, log.Named("tracking"), 512)
	if err != nil {
		return nil, err
	}
	admin, err := newAdminAuth(cfg.Admin, log)
	if err != nil {
		return nil, err
	}
	return &server{
		cfg:      cfg,
		log:      log,
		catalog:  catalog,
		renderer: renderer,
		store:    st,
		tracker:  tracker,
		mailer:   newMailer(cfg, log),
		admin:    admin,
		now:      time.Now,
	}, nil
}

func serve(ctx context.Context) error {
	gin.SetMode(cfg.GinMode)

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	st, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer st.Close()

	s, err := newServer(cfg, logger, catalog, st)
	if err != nil {
		return err
	}
	router, err := newRouter(s)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.tracker.Run(ctx)
	})
	g.Go(func() error {
		return tracking.RunRetention(ctx, st, logger.Named("retention"), cfg.VisitorRetention, cfg.CleanupInterval)
	})
	g.Go(func() error {
		logger.Info("portfolio listening",
			zap.String("addr", srv.Addr), zap.Int("projects", catalog.Len()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
