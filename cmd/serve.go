package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gracefm/radio-api/api"
	"github.com/gracefm/radio-api/api/types"
	"github.com/gracefm/radio-api/internal/database"
	"github.com/gracefm/radio-api/internal/services/auth"
	"github.com/gracefm/radio-api/internal/services/banners"
	"github.com/gracefm/radio-api/internal/services/categories"
	"github.com/gracefm/radio-api/internal/services/comments"
	"github.com/gracefm/radio-api/internal/services/favourites"
	"github.com/gracefm/radio-api/internal/services/media"
	"github.com/gracefm/radio-api/internal/services/messages"
	"github.com/gracefm/radio-api/internal/services/metrics"
	"github.com/gracefm/radio-api/internal/services/notifications"
	"github.com/gracefm/radio-api/internal/services/podcasts"
	"github.com/gracefm/radio-api/internal/services/quicklinks"
	"github.com/gracefm/radio-api/internal/services/requests"
	"github.com/gracefm/radio-api/internal/services/streams"
	"github.com/gracefm/radio-api/internal/services/targets"
	"github.com/gracefm/radio-api/internal/services/users"
	"github.com/gracefm/radio-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Grace FM API server with the configured settings.

Example:
  radio-api serve
  radio-api serve --port 9090
  radio-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	deps, err := buildDependencies(cfg, db)
	if err != nil {
		return err
	}

	server := api.NewServer(cfg)
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	fmt.Printf("Starting Grace FM API server on %s:%d\n", cfg.Server.Host, cfg.Server.Port)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}

// buildDependencies wires repositories and services into the handler
// dependency container.
func buildDependencies(cfg *config.Config, db *database.DB) (*types.Dependencies, error) {
	authSvc, err := auth.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth: %w", err)
	}

	notifRepo := notifications.NewRepository(db.DB)
	notifier := notifications.NewMailNotifier(cfg.Mail, notifRepo)

	resolver := targets.NewResolver(db.DB)

	userRepo := users.NewRepository(db.DB)
	userSvc := users.NewService(userRepo, authSvc)

	metricSvc := metrics.NewService(metrics.NewRepository(db.DB))

	requestSvc := requests.NewService(requests.NewRepository(db.DB), userRepo, notifier)
	podcastSvc := podcasts.NewService(podcasts.NewRepository(db.DB), requestSvc, userRepo, metricSvc, notifier)

	deps := &types.Dependencies{
		DB:               db,
		Config:           cfg,
		AuthService:      authSvc,
		UserService:      userSvc,
		MessageService:   messages.NewService(messages.NewRepository(db.DB), metricSvc),
		CategoryService:  categories.NewService(categories.NewRepository(db.DB)),
		PodcastService:   podcastSvc,
		RequestService:   requestSvc,
		CommentService:   comments.NewService(comments.NewRepository(db.DB), resolver, userRepo, metricSvc, notifier),
		FavouriteService: favourites.NewService(favourites.NewRepository(db.DB), resolver, metricSvc),
		MetricService:    metricSvc,
		StreamService:    streams.NewService(streams.NewRepository(db.DB)),
		BannerService:    banners.NewService(db.DB),
		QuickLinkService: quicklinks.NewService(db.DB),
		Storage:          media.NewSupabaseStorage(cfg.Storage),
		Notifier:         notifier,
	}
	return deps, nil
}
