// Command handler invokes a single event handler by name. The handler name
// comes from the first argument (or TODO_HANDLER), the event envelope is
// read as JSON from stdin, and the response envelope is written to stdout.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/micahgtan/to-do-list/internal/infra/app"
	"github.com/micahgtan/to-do-list/internal/infra/config"
	"github.com/micahgtan/to-do-list/internal/infra/database"
	"github.com/micahgtan/to-do-list/internal/infra/logger"
	"github.com/micahgtan/to-do-list/internal/transport/event"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	zlog, err := logger.New(cfg.App.Env)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	pool, err := database.NewPostgresPool(ctx, cfg.Postgres, zlog)
	if err != nil {
		log.Fatalf("failed to init postgres: %v", err)
	}
	defer pool.Close()

	features := app.NewFeatures(cfg, pool)

	registry := map[string]event.Handler{
		"create-account": event.CreateAccount(features.CreateAccount, pool),
		"update-account": event.UpdateAccount(features.UpdateAccount, pool),
		"delete-account": event.DeleteAccount(features.DeleteAccount, pool),
		"create-session": event.CreateSession(features.CreateSession),
		"get-accounts":   event.GetAccounts(features.Accounts),
	}

	name := handlerName()
	handler, ok := registry[name]
	if !ok {
		log.Fatalf("unknown handler %q, expected one of: %s", name, handlerNames(registry))
	}

	var evt event.Event
	if err := json.NewDecoder(os.Stdin).Decode(&evt); err != nil {
		log.Fatalf("failed to decode event: %v", err)
	}

	response := handler(ctx, evt)

	if err := json.NewEncoder(os.Stdout).Encode(response); err != nil {
		log.Fatalf("failed to encode response: %v", err)
	}
}

func handlerName() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return os.Getenv("TODO_HANDLER")
}

func handlerNames(registry map[string]event.Handler) string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
