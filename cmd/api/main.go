package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/agendafoto-backend/internal/domain/ports"
	httphandlers "github.com/rafabene/agendafoto-backend/internal/handlers/http"
	"github.com/rafabene/agendafoto-backend/internal/handlers/middleware"
	"github.com/rafabene/agendafoto-backend/internal/infrastructure/config"
	"github.com/rafabene/agendafoto-backend/internal/infrastructure/i18n"
	"github.com/rafabene/agendafoto-backend/internal/infrastructure/logging"
	"github.com/rafabene/agendafoto-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/agendafoto-backend/internal/infrastructure/ratelimit"
	"github.com/rafabene/agendafoto-backend/internal/infrastructure/security"
	"github.com/rafabene/agendafoto-backend/internal/infrastructure/token"
	"github.com/rafabene/agendafoto-backend/internal/services"
	"github.com/rafabene/agendafoto-backend/internal/services/access"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting agendafoto backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n (diretório em disco, ou traduções embutidas)
	i18nService, err := loadI18n(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	sessionSecret := secretOrRandom(cfg.Session.Secret, "SESSION_SECRET", logger)
	jwtSecret := secretOrRandom(cfg.JWT.Secret, "JWT_SECRET", logger)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	groupRepo := postgres.NewGroupRepository(db)
	clienteRepo := postgres.NewClienteRepository(db)
	fotografoRepo := postgres.NewFotografoRepository(db)
	estudioRepo := postgres.NewEstudioRepository(db)
	sessaoRepo := postgres.NewSessaoRepository(db)
	portfolioRepo := postgres.NewPortfolioRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Infraestrutura de autenticação
	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)
	tokens := token.NewJWTIssuer(jwtSecret, cfg.JWT.AccessExpiry)
	throttler := newThrottler(cfg, logger)
	sessions := middleware.NewSessionManager([]byte(sessionSecret), cfg.Session.MaxAge, cfg.Session.Secure)
	controller := access.NewDefaultController()

	// Inicializar services
	authService := services.NewAuthService(userRepo, hasher, throttler, logger)
	userService := services.NewUserService(userRepo, groupRepo, hasher, uow, logger)
	registrationService := services.NewRegistrationService(userRepo, groupRepo, clienteRepo, fotografoRepo, hasher, uow, logger)
	clienteService := services.NewClienteService(clienteRepo, sessaoRepo, controller, uow, logger)
	fotografoService := services.NewFotografoService(fotografoRepo, sessaoRepo, controller, uow, logger)
	estudioService := services.NewEstudioService(estudioRepo, controller, uow, logger)
	sessaoService := services.NewSessaoService(sessaoRepo, clienteRepo, fotografoRepo, estudioRepo, controller, uow, logger)
	portfolioService := services.NewPortfolioService(portfolioRepo, fotografoRepo, controller, logger)

	// Inicializar handlers
	handlers := httphandlers.Handlers{
		Home:      httphandlers.NewHomeHandler(sessions, db, cfg.Env, logger),
		Auth:      httphandlers.NewAuthHandler(authService, sessions, tokens, logger),
		Account:   httphandlers.NewAccountHandler(registrationService, userService, sessions, logger),
		Cliente:   httphandlers.NewClienteHandler(clienteService, controller, sessions, logger),
		Fotografo: httphandlers.NewFotografoHandler(fotografoService, controller, sessions, logger),
		Estudio:   httphandlers.NewEstudioHandler(estudioService, controller, sessions, logger),
		Sessao:    httphandlers.NewSessaoHandler(sessaoService, controller, sessions, logger),
		Portfolio: httphandlers.NewPortfolioHandler(portfolioService, controller, sessions, logger),
	}

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		BaseURL:        cfg.Server.BaseURL,
		CORSOrigins:    cfg.CORS.AllowedOrigins,
		TrustedProxies: cfg.Server.TrustedProxies,
		I18n:           i18nService,
		Authenticator:  middleware.NewAuthenticator(sessions, tokens, userRepo, logger),
		Logger:         logger,
	}, handlers)

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

func loadI18n(cfg *config.Config, logger ports.Logger) (*i18n.Service, error) {
	if _, err := os.Stat(cfg.I18n.LocalesDir); err == nil {
		return i18n.NewService(cfg.I18n.LocalesDir, cfg.I18n.DefaultLanguage)
	}
	logger.Info("locales directory not found, using embedded translations", "dir", cfg.I18n.LocalesDir)
	return i18n.NewEmbeddedService(cfg.I18n.DefaultLanguage)
}

// secretOrRandom gera um segredo efêmero em desenvolvimento (produção é validada no config)
func secretOrRandom(secret, name string, logger ports.Logger) string {
	if secret != "" {
		return secret
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatal(err)
	}
	logger.Warn("secret not configured, using a random value; sessions and tokens will not survive restarts", "name", name)
	return hex.EncodeToString(buf)
}

func newThrottler(cfg *config.Config, logger ports.Logger) ports.LoginThrottler {
	if cfg.Redis.URL == "" {
		logger.Warn("REDIS_URL not set, login throttling disabled")
		return ratelimit.NewNoopThrottler()
	}

	client, err := ratelimit.NewRedisClient(cfg.Redis.URL)
	if err != nil {
		logger.Error("invalid redis configuration", "error", err)
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		// o throttler deixa passar quando o Redis falha
		logger.Warn("redis unreachable at startup", "error", err)
	}

	return ratelimit.NewRedisThrottler(client, ratelimit.Options{
		Limit:         cfg.RateLimit.LoginLimit,
		Window:        cfg.RateLimit.Window,
		LockThreshold: cfg.RateLimit.LockThreshold,
		LockTTL:       cfg.RateLimit.LockTTL,
	})
}
