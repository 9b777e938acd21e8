package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	auction "procurv/internal/auctionService"
	"procurv/internal/chat"
	"procurv/internal/config"
	"procurv/internal/engine"
	"procurv/internal/server"
	"procurv/internal/store"
	"procurv/utils"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	auctionStore := store.NewMemoryStore(cfg.Store.Capacity, cfg.Store.TTL)
	auctionEngine := engine.NewEngine(auctionStore)

	auctionSvc := auction.NewAuctionService(auctionStore, auctionEngine, cfg.Auction)
	chatSvc := chat.NewChatService(chatCompleter(cfg.Chat))

	router := server.SetupRouter(auctionSvc, chatSvc)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting procurement server on %s...\n", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
			os.Exit(1)
		}
	}()

	// stop round timers and the store janitor on shutdown, not only when
	// individual auctions complete
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Info("shutting down", nil)
	auctionEngine.Close()
	auctionStore.Close()
	srv.Close()
}

// chatCompleter returns the hosted completion client, or nil when no API key
// is configured so the chat service uses its templated fallback
func chatCompleter(cfg config.ChatConfig) chat.Completer {
	if cfg.APIKey == "" {
		utils.Warn("no chat API key configured, using templated chat fallback", nil)
		return nil
	}
	return chat.NewGroqClient(cfg)
}
