package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fieldsuite/fieldsuite/internal/server"
	"github.com/fieldsuite/fieldsuite/modules"
	"github.com/fieldsuite/fieldsuite/pkg/application"
	"github.com/fieldsuite/fieldsuite/pkg/configuration"
	"github.com/fieldsuite/fieldsuite/pkg/eventbus"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	root := &cobra.Command{
		Use:   "fieldsuite",
		Short: "FieldSuite field service management",
	}
	root.AddCommand(serveCmd())

	if err := root.Execute(); err != nil {
		configuration.Use().Unload()
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web application",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	conf := configuration.Use()
	logger := conf.Logger()

	app := application.New(&application.ApplicationOptions{
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
		Bundle:   application.LoadBundle(),
		Huber:    application.NewHub(&application.HuberOptions{Logger: logger}),
	})
	if err := modules.Load(app, modules.BuiltInModules...); err != nil {
		return err
	}

	srv, err := server.Default(&server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
	})
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Warn("shutdown did not drain cleanly")
		}
	}()

	logger.WithField("address", conf.SocketAddress).Info("listening")
	if err := srv.Start(conf.SocketAddress); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
