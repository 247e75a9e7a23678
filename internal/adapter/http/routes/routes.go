package routes

import (
	"context"
	"errors"
	_ "fieldservice/docs"
	"fieldservice/internal/adapter/http/handlers"
	"fieldservice/internal/adapter/http/middleware"
	"fieldservice/internal/adapter/persistence/memory"
	"fieldservice/internal/adapter/persistence/repository"
	"fieldservice/internal/domain/numbering"
	"fieldservice/internal/infrastructure/assist"
	"fieldservice/internal/infrastructure/auth"
	"fieldservice/internal/infrastructure/config"
	"fieldservice/internal/infrastructure/database"
	"fieldservice/internal/infrastructure/logger"
	"fieldservice/internal/infrastructure/payments"
	"fieldservice/internal/infrastructure/seed"
	"fieldservice/internal/usecase"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	tableWait       = 2 * time.Minute
	shutdownTimeout = 10 * time.Second
)

// Handlers is every HTTP handler the router mounts.
type Handlers struct {
	Session      *handlers.SessionHandler
	User         *handlers.UserHandler
	Client       *handlers.ClientHandler
	Product      *handlers.ProductHandler
	ServiceOrder *handlers.ServiceOrderHandler
	Quote        *handlers.QuoteHandler
	Maintenance  *handlers.MaintenanceHandler
	Billing      *handlers.BillingHandler
	Report       *handlers.ReportHandler
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	// Money travels as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	h, tokens, err := bootstrap(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("[app] failed to startup the application", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           NewRouter(h, tokens, zl),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		zl.Info("[app] listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("[app] server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("[app] graceful shutdown failed", zap.Error(err))
	}
}

// NewRouter mounts every route on a fresh engine. Only ping and session
// creation are reachable without a bearer token.
func NewRouter(h Handlers, tokens middleware.TokenValidator, zl *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(logger.GinMiddleware(zl))
	router.Use(logger.Recovery(zl))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSessionRoutes(v1, h.Session)

	private := v1.Group("")
	private.Use(middleware.RequireAuth(tokens))
	addUserRoutes(private, h.User)
	addCatalogRoutes(private, h.Client, h.Product)
	addDocumentRoutes(private, h.ServiceOrder, h.Quote, h.Maintenance)
	addBillingRoutes(private, h.Billing)
	addReportRoutes(private, h.Report)

	return router
}

func bootstrap(ctx context.Context, cfg *config.Config, zl *zap.Logger) (Handlers, *auth.TokenService, error) {
	store, err := openStore(ctx, cfg, zl)
	if err != nil {
		return Handlers{}, nil, err
	}

	repos := seed.Repositories{
		Clients:              store.Clients(),
		Users:                store.Users(),
		Credentials:          store.Credentials(),
		Products:             store.Products(),
		ServiceOrders:        store.ServiceOrders(),
		Quotes:               store.Quotes(),
		MaintenanceContracts: store.MaintenanceContracts(),
		Invoices:             store.Invoices(),
		Writer:               store,
	}
	if cfg.App.SeedDemo {
		if err := seed.DemoData(ctx, repos, time.Now(), zl); err != nil {
			return Handlers{}, nil, fmt.Errorf("seed demo data: %w", err)
		}
	}
	seq := numbering.NewSequence()
	if err := seed.PrimeSequence(ctx, repos, seq); err != nil {
		return Handlers{}, nil, fmt.Errorf("prime numbering: %w", err)
	}

	authUseCase := usecase.NewAuthUseCase(repos.Users, repos.Credentials, store, zl)
	clientUseCase := usecase.NewClientUseCase(repos.Clients, store, zl)
	productUseCase := usecase.NewProductUseCase(repos.Products, store, zl)
	serviceOrderUseCase := usecase.NewServiceOrderUseCase(repos.ServiceOrders, repos.Clients, store, seq, assist.KeywordParser{}, zl)
	quoteUseCase := usecase.NewQuoteUseCase(repos.Quotes, repos.Clients, store, seq, zl)
	maintenanceUseCase := usecase.NewMaintenanceUseCase(repos.MaintenanceContracts, repos.Clients, store, seq, zl)
	billingUseCase := usecase.NewBillingUseCase(usecase.BillingDeps{
		Invoices:      repos.Invoices,
		ServiceOrders: repos.ServiceOrders,
		Quotes:        repos.Quotes,
		Clients:       repos.Clients,
		Writer:        store,
		Sequence:      seq,
		Instruments:   payments.NewPlaceholderGateway(cfg.Pix.MerchantName, cfg.Pix.MerchantCity, zl),
		FiscalNotes:   payments.AccessKeyIssuer{},
	}, zl)
	reportUseCase := usecase.NewReportUseCase(repos.ServiceOrders, repos.Quotes, repos.MaintenanceContracts)

	tokens := auth.NewTokenService(cfg.JWT)
	h := Handlers{
		Session:      handlers.NewSessionHandler(authUseCase, tokens),
		User:         handlers.NewUserHandler(authUseCase),
		Client:       handlers.NewClientHandler(clientUseCase),
		Product:      handlers.NewProductHandler(productUseCase),
		ServiceOrder: handlers.NewServiceOrderHandler(serviceOrderUseCase),
		Quote:        handlers.NewQuoteHandler(quoteUseCase),
		Maintenance:  handlers.NewMaintenanceHandler(maintenanceUseCase),
		Billing:      handlers.NewBillingHandler(billingUseCase),
		Report:       handlers.NewReportHandler(reportUseCase),
	}
	return h, tokens, nil
}

// openStore builds the entity store. With the dynamodb backend every write is
// mirrored to one table per collection and the store is hydrated at startup.
func openStore(ctx context.Context, cfg *config.Config, zl *zap.Logger) (*memory.Store, error) {
	if cfg.Store.Backend != config.StoreBackendDynamoDB {
		zl.Info("[app] using in-memory store")
		return memory.New(), nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, err
	}
	mirror := repository.NewDocumentDynamoMirror(ddb, cfg.DynamoDB.TablePrefix)
	if cfg.DynamoDB.EnsureTables {
		if err := mirror.EnsureTables(ctx, memory.Collections, tableWait); err != nil {
			return nil, err
		}
	}

	store := memory.New(memory.WithMirror(mirror))
	if err := store.Hydrate(ctx, mirror); err != nil {
		return nil, err
	}
	zl.Info("[app] store hydrated from dynamodb", zap.String("table_prefix", cfg.DynamoDB.TablePrefix))
	return store, nil
}
