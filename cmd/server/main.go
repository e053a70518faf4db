package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"oshilog/internal/config"
	"oshilog/internal/handler"
	"oshilog/internal/middleware"
	"oshilog/internal/projection"
	"oshilog/internal/queue"
	"oshilog/internal/repository"
	"oshilog/internal/router"
	"oshilog/internal/storage"
)

func main() {
	_ = godotenv.Load() // .env is optional
	cfg := config.Load()

	// Redis is opt-in: it can hold the snapshots and back the response
	// cache, but the tracker is fully functional on local files alone.
	redisClient := config.NewRedisClient()

	var kv storage.KV
	if redisClient != nil {
		kv = storage.NewRedisKV(redisClient)
		log.Printf("storage: redis")
	} else {
		fileKV, err := storage.NewFileKV(cfg.DataDir)
		if err != nil {
			log.Fatalf("storage: open data dir: %v", err)
		}
		kv = fileKV
		log.Printf("storage: files under %s", cfg.DataDir)
	}

	// Change events are published after every mutation when a broker is
	// configured; the consumer turns them into logs/activity.log.
	var notifier repository.Notifier
	if cfg.AMQPURL != "" {
		pub, err := queue.NewPublisher(cfg.AMQPURL)
		if err != nil {
			log.Printf("change events disabled: %v", err)
		} else {
			defer pub.Close()
			notifier = pub
			go queue.StartChangeConsumer(cfg.AMQPURL)
		}
	}

	ctx := context.Background()
	tickets, err := repository.NewTicketRepo(ctx, kv, notifier)
	if err != nil {
		log.Fatalf("load tickets: %v", err)
	}
	logs, err := repository.NewLogRepo(ctx, kv, notifier)
	if err != nil {
		log.Fatalf("load logs: %v", err)
	}
	projector := projection.New(tickets)

	e := echo.New()
	router.Register(e, router.Handlers{
		Tickets:  handler.NewTicketHandler(tickets),
		Logs:     handler.NewLogHandler(logs),
		Theater:  handler.NewTheaterHandler(logs),
		Calendar: handler.NewCalendarHandler(projector),
		Home:     handler.NewHomeHandler(tickets, logs, projector),
	}, middleware.ResponseCache(redisClient, config.LoadCacheConfig()))

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
