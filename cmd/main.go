package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/saeidalz13/battleship-ai/api"
	"github.com/saeidalz13/battleship-ai/db"
	"github.com/saeidalz13/battleship-ai/db/sqlc"
	mb "github.com/saeidalz13/battleship-ai/models/battleship"
	mc "github.com/saeidalz13/battleship-ai/models/connection"
)

func mustSetupLogger() {
	log.SetReportTimestamp(true)

	levelEnv := os.Getenv("LOG_LEVEL")
	if levelEnv == "" {
		return
	}
	level, err := log.ParseLevel(levelEnv)
	if err != nil {
		panic(err)
	}
	log.SetLevel(level)
}

func mustMoveDelay() time.Duration {
	delayEnv := os.Getenv("AI_MOVE_DELAY_MS")
	if delayEnv == "" {
		return api.DefaultMoveDelay
	}
	delayMs, err := strconv.Atoi(delayEnv)
	if err != nil {
		panic(err)
	}
	return time.Duration(delayMs) * time.Millisecond
}

func main() {
	if os.Getenv("STAGE") != api.StageProd {
		if err := godotenv.Load(".env"); err != nil {
			panic(err)
		}
	}
	mustSetupLogger()

	stage := os.Getenv("STAGE")
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		panic(err)
	}

	opts := []api.Option{
		api.WithStage(stage),
		api.WithMoveDelay(mustMoveDelay()),
	}

	// Analytics are optional; without a database the games still run
	if psqlUrl := os.Getenv("DATABASE_URL"); psqlUrl != "" {
		psqlDb := db.MustConnectToDb(psqlUrl)
		defer psqlDb.Close()
		opts = append(opts, api.WithQuerier(sqlc.New(psqlDb)))
	} else {
		log.Warn("DATABASE_URL is empty; running without analytics")
	}

	bsm := mc.NewBattleshipSessionManager()
	go bsm.CleanupPeriodically()

	rp := api.NewRequestProcessor(bsm, mb.NewBattleshipGameManager(), opts...)

	mux := http.NewServeMux()
	mux.Handle("GET /battleship", rp)

	server := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", port),
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("listening", "port", port, "stage", rp.Stage())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "err", err)
	}
}
