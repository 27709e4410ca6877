// File: webnest/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"webnest/catalog"
	"webnest/config"
	"webnest/cron"
	"webnest/handlers"
	"webnest/routes"
	"webnest/services/geo"
	"webnest/services/mailer"
	"webnest/services/quote"
	"webnest/services/submission"
	"webnest/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()
	utils.StartHealthMonitor([]*redis.Client{
		utils.GetCSRFCacheClient(),
		utils.GetGeoCacheClient(),
		utils.GetSessionCacheClient(),
	})

	catalogRepo, err := catalog.NewStaticRepo()
	if err != nil {
		logger.Sugar().Fatalf("main: invalid catalog: %v", err)
	}

	dispatcher, err := mailer.NewSMTPDispatcher(logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize mail dispatcher: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// services.
	csrfStore := utils.NewCSRFStore()
	sessionService := quote.NewSessionService(catalogRepo, utils.GetSessionCacheClient(), logger)
	detector := geo.NewDetector(utils.GetGeoCacheClient(), logger)
	submissionService := &submission.DefaultService{
		Catalog:    catalogRepo,
		Tokens:     csrfStore,
		Dispatcher: dispatcher,
		Sessions:   sessionService,
		Logger:     logger,
	}

	// Background mail worker and its queue client.
	cron.InitMailWorker(dispatcher)
	queueClient := asynq.NewClient(cron.MailQueueOpt())
	defer queueClient.Close()

	// handlers.
	catalogHandler := handlers.NewCatalogHandler(catalogRepo)
	csrfHandler := handlers.NewCSRFHandler(csrfStore)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	sessionHandler := handlers.NewQuoteSessionHandler(sessionService)
	localeHandler := handlers.NewLocaleHandler(detector)
	newsletterHandler := handlers.NewNewsletterHandler(queueClient, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Catalog endpoints.
		ListServicesHandler:     catalogHandler.ListServicesHandler,
		GetServiceHandler:       catalogHandler.GetServiceHandler,
		ListProjectsHandler:     catalogHandler.ListProjectsHandler,
		ListCoursesHandler:      catalogHandler.ListCoursesHandler,
		ListTestimonialsHandler: catalogHandler.ListTestimonialsHandler,

		// Form endpoints.
		CSRFTokenHandler:         csrfHandler.CSRFTokenHandler,
		SubmitPricingHandler:     submissionHandler.SubmitPricingHandler,
		SubmitPartnershipHandler: submissionHandler.SubmitPartnershipHandler,
		NewsletterSignupHandler:  newsletterHandler.NewsletterSignupHandler,

		// Quote session endpoints.
		OpenQuoteSessionHandler:   sessionHandler.OpenQuoteSessionHandler,
		UpdateQuoteSessionHandler: sessionHandler.UpdateQuoteSessionHandler,
		CloseQuoteSessionHandler:  sessionHandler.CloseQuoteSessionHandler,

		// Locale detection.
		DetectLocaleHandler: localeHandler.DetectLocaleHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
