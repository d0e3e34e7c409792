package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"usergate.org/internal/auth"
	"usergate.org/internal/httpapi"
	"usergate.org/internal/obs"
	"usergate.org/internal/user"
)

var version = "0.3.1"

func main() {
	obs.Init()

	shutdownTracing, err := obs.InitTracing(context.Background())
	if err != nil {
		log.Fatalf("init tracing: %v", err)
	}

	codec, err := auth.NewCodec(configFromEnv())
	if err != nil {
		log.Fatalf("auth config: %v", err)
	}

	var (
		users user.Store
		probe httpapi.ReadyProbe
	)
	if dsn := os.Getenv("USERGATE_PG_DSN"); dsn != "" {
		pg, err := user.Open(dsn)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		defer pg.Close()
		users = pg
		probe = httpapi.ReadyProbe{DB: pg.DB()}
	} else {
		log.Printf("USERGATE_PG_DSN is not set, using in-memory user store")
		users = user.NewMemory()
	}

	api := httpapi.New(codec, users, probe, version)

	addr := os.Getenv("USERGATE_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           api.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Starting usergate-api %s on %s", version, srv.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(ctx)
	_ = shutdownTracing(ctx)
	log.Println("Stopped")
}

func configFromEnv() auth.Config {
	ttl := 30 * time.Minute
	if raw := os.Getenv("USERGATE_TOKEN_TTL_MINUTES"); raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
			ttl = time.Duration(minutes) * time.Minute
		}
	}
	cookie := os.Getenv("USERGATE_COOKIE")
	if cookie == "" {
		cookie = "usergate_session"
	}
	return auth.Config{
		Secret:     os.Getenv("USERGATE_SECRET"),
		Issuer:     os.Getenv("USERGATE_ISSUER"),
		CookieName: cookie,
		TokenTTL:   ttl,
	}
}
