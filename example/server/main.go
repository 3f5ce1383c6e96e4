package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/provenid/oplogout/example/server/exampleop"
	"github.com/provenid/oplogout/example/server/storage"
)

func main() {
	logger := slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		}),
	)

	// the provider needs a Storage interface handling the issued tokens,
	// the registered clients and the live sessions
	// this might be the layer for accessing your database
	// in this example it will be handled in-memory
	store := storage.NewStorage(storage.NewUserStore())

	port := "9998"
	issuer := "http://localhost:" + port + "/"
	router := exampleop.SetupServer(issuer, store, logger)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}
	logger.Info("server listening, press ctrl+c to stop", "addr", issuer)
	err := server.ListenAndServe()
	if err != http.ErrServerClosed {
		logger.Error("server terminated", "error", err)
		os.Exit(1)
	}
}
