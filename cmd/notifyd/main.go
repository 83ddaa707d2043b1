package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/meower-media/notify/pkg/api/events"
	"github.com/meower-media/notify/pkg/api/rest"
	"github.com/meower-media/notify/pkg/chats"
	"github.com/meower-media/notify/pkg/db"
	"github.com/meower-media/notify/pkg/notify"
	"github.com/meower-media/notify/pkg/rdb"
	"github.com/meower-media/notify/pkg/reconcile"
)

func main() {
	// Load dotenv
	godotenv.Load()

	// Init Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn: os.Getenv("SENTRY_DSN"),
	}); err != nil {
		panic(err)
	}
	defer sentry.Flush(time.Second * 5)

	// Init MongoDB
	if err := db.Init(os.Getenv("MONGO_URI"), os.Getenv("MONGO_DB")); err != nil {
		panic(err)
	}

	// Init Redis
	if err := rdb.Init(os.Getenv("REDIS_URI")); err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Build reconciler
	channel := os.Getenv("NOTIFY_CHANNEL")
	if channel == "" {
		channel = "notify"
	}
	eventsServer := events.NewServer()
	defer eventsServer.Close()
	reconciler := reconcile.New(
		notify.NewCache[chats.MemberIdCompound](notify.SystemClock),
		chats.NewStore(db.ChatMembers),
		rdb.NewPublisher(rdb.Client, channel),
		eventsServer,
	)

	// Subscribe to remote updates
	payloads, closeSub, err := rdb.Subscribe(ctx, rdb.Client, channel)
	if err != nil {
		panic(err)
	}
	defer closeSub()
	go reconciler.Run(ctx, payloads)

	// Serve HTTP router
	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "3000"
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: rest.Router(reconciler, eventsServer),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Println("Serving HTTP server on :" + port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Println(err)
		sentry.CaptureException(err)
	}
}
