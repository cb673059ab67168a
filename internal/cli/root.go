// filepath: internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"navhub/internal/api/handlers"
	"navhub/internal/audit"
	"navhub/internal/config"
	"navhub/internal/httpserver"
	"navhub/internal/initconfig"
	"navhub/internal/logging"
	"navhub/internal/render"
	"navhub/internal/repository"
	"navhub/internal/services"
	"navhub/internal/services/auth"
	"navhub/internal/wallpaper"
	"navhub/internal/web"

	"github.com/spf13/cobra"
)

var (
	Version = "1.0.0"

	// Global config object populated by flags/env/file.
	cfg *config.Config

	// Flags
	cfgFile      string
	password     string
	port         int
	logLevel     string
	initConfig   string
	auditEnabled bool
)

// RootCmd represents the base command when called without any subcommands.
// It starts the HTTP server.
var RootCmd = &cobra.Command{
	Use:   "navhub",
	Short: "NavHub bookmark site",
	Long:  `A self-hosted navigation homepage with a JSON admin API for managing bookmarks.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute runs the root command. Called once from main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", "config.toml", "Path to the base configuration file. (Env: NAVHUB_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: NAVHUB_LOG_LEVEL)")

	RootCmd.Flags().StringVar(&password, "password", "", "Admin password. (Env: NAVHUB_PASSWORD)")
	RootCmd.Flags().IntVar(&port, "port", 0, "Port for the HTTP server. (Env: NAVHUB_PORT)")
	RootCmd.Flags().StringVar(&initConfig, "init_config", "", "Path to a TOML seed file with initial categories and sites. (Env: NAVHUB_INIT_CONFIG)")
	RootCmd.Flags().BoolVar(&auditEnabled, "audit-enabled", false, "Enable audit logging of admin mutations. (Env: NAVHUB_AUDIT_ENABLED=true)")
}

// initializeConfig loads the config file and applies overrides.
func initializeConfig(cmd *cobra.Command) error {
	if envPath := os.Getenv("NAVHUB_CONFIG_PATH"); envPath != "" && cfgFile == "config.toml" {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, rely on defaults/flags.
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	applyOverrides(cfg, cmd)

	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logging.Init(cfg.Logging.Level)
	return nil
}

func applyOverrides(c *config.Config, cmd *cobra.Command) {
	// --- 1. Environment variables ---
	if v := os.Getenv("NAVHUB_PASSWORD"); v != "" {
		c.AdminPassword = v
	}
	if v := os.Getenv("NAVHUB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("NAVHUB_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("NAVHUB_DATABASE_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("NAVHUB_JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("NAVHUB_AUDIT_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.AuditEnabled = b
		}
	}

	// Site parameters keep the env names existing deployments already use.
	if v := os.Getenv("SITE_NAME"); v != "" {
		c.Site.Name = v
	}
	if v := os.Getenv("SITE_DESCRIPTION"); v != "" {
		c.Site.Description = v
	}
	if v := os.Getenv("FOOTER_TEXT"); v != "" {
		c.Site.FooterText = v
	}
	if v := os.Getenv("ICON_API"); v != "" {
		c.Site.IconAPI = v
	}
	if v := os.Getenv("DISPLAY_CATEGORY"); v != "" {
		c.Site.DisplayCategory = v
	}
	if v := os.Getenv("ENABLE_PUBLIC_SUBMISSION"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Site.EnablePublicSubmission = b
		}
	}

	// --- 2. CLI flags (take precedence) ---
	if password != "" {
		c.AdminPassword = password
	}
	if port != 0 {
		c.Server.Port = port
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if cmd.Flags().Changed("audit-enabled") {
		c.Logging.AuditEnabled = auditEnabled
	}
	if initConfig == "" {
		if v := os.Getenv("NAVHUB_INIT_CONFIG"); v != "" {
			initConfig = v
		}
	}
}

// runServer starts the HTTP server with graceful shutdown.
func runServer() error {
	// Handle JWT secret: env/flag beats the persisted one; generate and
	// persist on first run so sessions survive restarts.
	if cfg.JWTSecret == "" {
		if cfg.Auth.Secret != "" {
			cfg.JWTSecret = cfg.Auth.Secret
		} else {
			logging.Log.Info("Generating new random JWT secret...")
			newSecret, err := auth.GenerateSecret()
			if err != nil {
				return fmt.Errorf("failed to generate JWT secret: %w", err)
			}
			cfg.Auth.Secret = newSecret
			cfg.JWTSecret = newSecret
			if err := config.SaveConfig(cfgFile, cfg); err != nil {
				logging.Log.Warnf("Failed to save new JWT secret to %s: %v", cfgFile, err)
			} else {
				logging.Log.Infof("New JWT secret saved to %s.", cfgFile)
			}
		}
	}

	// An admin password given at startup replaces the stored hash.
	if cfg.AdminPassword != "" {
		hash, err := auth.HashPassword(cfg.AdminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		cfg.Auth.AdminPasswordHash = hash
		if err := config.SaveConfig(cfgFile, cfg); err != nil {
			logging.Log.Warnf("Failed to persist admin password hash to %s: %v", cfgFile, err)
		}
	}

	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	defer repo.Close()

	// Schema is migrated at startup, never inside request handlers.
	if err := repo.Migrate("up"); err != nil {
		logging.Log.Errorf("Failed to migrate database: %v", err)
		return err
	}

	// Service initialization.
	siteService := services.NewSiteService(repo, cfg)
	categoryService := services.NewCategoryService(repo)
	homeService := services.NewHomeService(repo, cfg)
	tokenService := auth.NewTokenService(cfg)
	wallpaperClient := wallpaper.NewClient()
	loggerAuditor := audit.NewLoggerAuditor(cfg.Logging.AuditEnabled)

	authMiddleware := auth.NewMiddleware(tokenService)

	if initConfig != "" {
		logging.Log.Infof("Found init_config, running seeding from: %s", initConfig)
		initconfig.Run(repo, siteService, initConfig)
	}

	h := handlers.NewHandlers(
		siteService,
		categoryService,
		homeService,
		tokenService,
		wallpaperClient,
		render.New(web.Template()),
		loggerAuditor,
		cfg,
	)

	r := httpserver.SetupRouter(h, authMiddleware)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logging.Log.Infof("Server starting on %s", serverAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-stop
	logging.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
