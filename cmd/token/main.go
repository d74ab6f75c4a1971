// Command token prints a signed bearer token for local development.
//
//	JWT_SECRET=... go run ./cmd/token -user 6f1c...-uuid -ttl 24h
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	grpcadapter "github.com/simaogato/potshare-backend/internal/adapter/grpc"
	"github.com/simaogato/potshare-backend/internal/config"
	"github.com/simaogato/potshare-backend/pkg/logging"
)

func main() {
	userFlag := flag.String("user", "", "user id to put in the token subject (random when empty)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET is not set")
		os.Exit(1)
	}

	userID := uuid.New()
	if *userFlag != "" {
		parsed, err := uuid.Parse(*userFlag)
		if err != nil {
			slog.Error("Invalid user id", "user", *userFlag, "error", err)
			os.Exit(1)
		}
		userID = parsed
	}

	token, err := grpcadapter.IssueToken([]byte(cfg.JWTSecret), userID, *ttl)
	if err != nil {
		slog.Error("Failed to issue token", "error", err)
		os.Exit(1)
	}

	slog.Info("Issued token", "user", userID, "expires_in", *ttl)
	fmt.Println(token)
}
