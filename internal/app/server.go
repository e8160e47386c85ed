// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"crmdesk-console/internal/cache"
	"crmdesk-console/internal/config"
	"crmdesk-console/internal/crmapi"
	"crmdesk-console/internal/events"
	"crmdesk-console/internal/guard"
	authHandler "crmdesk-console/internal/handlers/auth"
	catalogHandler "crmdesk-console/internal/handlers/catalog"
	consoleHandler "crmdesk-console/internal/handlers/console"
	contractHandler "crmdesk-console/internal/handlers/contract"
	dealHandler "crmdesk-console/internal/handlers/deal"
	interviewHandler "crmdesk-console/internal/handlers/interview"
	leadHandler "crmdesk-console/internal/handlers/lead"
	noteHandler "crmdesk-console/internal/handlers/note"
	"crmdesk-console/internal/localstate"
	"crmdesk-console/internal/middleware"
	authUsecase "crmdesk-console/internal/service/auth"
	catalogUsecase "crmdesk-console/internal/service/catalog"
	contractUsecase "crmdesk-console/internal/service/contract"
	dealUsecase "crmdesk-console/internal/service/deal"
	interviewUsecase "crmdesk-console/internal/service/interview"
	leadUsecase "crmdesk-console/internal/service/lead"
	noteUsecase "crmdesk-console/internal/service/note"
	"crmdesk-console/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	cfg     config.AppConfig
	engine  *gin.Engine
	logger  *zap.Logger
	httpSrv *http.Server

	watcher   *guard.Watcher
	listener  *events.Listener
	cancelBkg context.CancelFunc
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	s.logger = logger

	// ----- Durable console state -----
	state, err := localstate.Open(s.cfg.StateDir)
	if err != nil {
		return fmt.Errorf("failed to open state dir: %w", err)
	}

	// ----- Redis (query cache) -----
	redisClient := redis.NewClient(&redis.Options{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       s.cfg.RedisDB,
	})
	var queryCache *cache.QueryCache
	if err := redisClient.Ping(ctx).Err(); err != nil {
		// Cache is an optimization; run uncached rather than refusing to start.
		logger.Warn("redis unreachable, query cache disabled", zap.Error(err))
	} else {
		log.Println("[REDIS] ✅ Connected successfully")
		queryCache = cache.New(redisClient, s.cfg.CacheTTL, logger)
	}

	// ----- Session store & upstream client -----
	store := session.NewStore()
	api := crmapi.New(s.cfg.UpstreamBaseURL, store, logger)

	// ----- Background workers -----
	bkgCtx, cancelBkg := context.WithCancel(context.Background())
	s.cancelBkg = cancelBkg

	s.watcher = guard.NewWatcher(store, state, s.cfg.GuardInterval, logger)
	if err := s.watcher.Start(bkgCtx); err != nil {
		return fmt.Errorf("failed to start expiry watcher: %w", err)
	}

	s.listener = events.NewListener(s.cfg.UpstreamWSURL, store, logger)
	s.listener.RegisterHandler(events.NewProfileHandler(store, logger))
	go s.listener.Run(bkgCtx)

	// ----- Services (Usecases) -----
	authService := authUsecase.NewService(api, store, state, s.cfg.SessionTTL, logger)
	leadService := leadUsecase.NewService(api, queryCache, logger)
	dealService := dealUsecase.NewService(api, queryCache, logger)
	contractService := contractUsecase.NewService(api, queryCache, logger)
	catalogService := catalogUsecase.NewService(api, queryCache, logger)
	interviewService := interviewUsecase.NewService(api, queryCache, logger)
	noteService := noteUsecase.NewService(api, queryCache, logger)

	// ----- Handlers -----
	authHandlerInst := authHandler.NewAuthHandler(authService, store)
	consoleHandlerInst := consoleHandler.NewConsoleHandler(store, state)
	leadHandlerInst := leadHandler.NewLeadHandler(leadService)
	dealHandlerInst := dealHandler.NewDealHandler(dealService)
	contractHandlerInst := contractHandler.NewContractHandler(contractService)
	catalogHandlerInst := catalogHandler.NewCatalogHandler(catalogService)
	interviewHandlerInst := interviewHandler.NewInterviewHandler(interviewService)
	noteHandlerInst := noteHandler.NewNoteHandler(noteService)

	// ----- Middlewares -----
	sessionMiddleware := middleware.NewSessionMiddleware(store, state)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		AuthHandler:       authHandlerInst,
		ConsoleHandler:    consoleHandlerInst,
		LeadHandler:       leadHandlerInst,
		DealHandler:       dealHandlerInst,
		ContractHandler:   contractHandlerInst,
		CatalogHandler:    catalogHandlerInst,
		InterviewHandler:  interviewHandlerInst,
		NoteHandler:       noteHandlerInst,
		SessionMiddleware: sessionMiddleware,
	}
	SetupRouter(s.engine, logger, handlers)

	// ----- Start HTTP -----
	log.Printf("🚀 Server running on %s", s.cfg.HTTPAddr)
	s.httpSrv = &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the background workers and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.cancelBkg != nil {
		s.cancelBkg()
	}
	if s.watcher != nil {
		s.watcher.Stop()
	}
	if s.httpSrv != nil {
		return s.httpSrv.Shutdown(ctx)
	}
	return nil
}
