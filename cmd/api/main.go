package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/chronos-quests-lambda/internal/config"
	"github.com/saulo-duarte/chronos-quests-lambda/internal/container"
	"github.com/saulo-duarte/chronos-quests-lambda/internal/router"
)

func main() {
	c := container.New()

	handler := router.New(router.RouterConfig{
		QuestHandler:   c.QuestContainer.Handler,
		AllowedOrigins: c.Settings.AllowedOrigins,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		config.Logger.Info("Starting in Lambda mode")
		lambda.Start(httpadapter.New(handler).ProxyWithContext)
		return
	}

	serve(handler, c.Settings.Port, c.Settings.AITimeout)
}

func serve(handler http.Handler, port string, aiTimeout time.Duration) {
	log := config.Logger

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		// Leaves room for a full model call before the connection is cut.
		WriteTimeout: aiTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}
