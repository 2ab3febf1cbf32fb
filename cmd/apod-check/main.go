// Command apod-check fetches one or more picture dates with the same client
// the server uses and prints the results as JSON.
//
//	go run ./cmd/apod-check 2025-07-01 2025-07-06
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/EmpoweredVote/APOD-Backend/internal/apod"
	"github.com/EmpoweredVote/APOD-Backend/internal/config"
	"github.com/EmpoweredVote/APOD-Backend/internal/logger"
)

type result struct {
	Date    string        `json:"date"`
	Outcome string        `json:"outcome"`
	Picture *apod.Picture `json:"picture,omitempty"`
	Error   string        `json:"error,omitempty"`
}

func main() {
	if err := godotenv.Load(".env.local"); err != nil {
		log.Printf("Warning: .env.local not found, using system environment variables")
	}

	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var dates []time.Time
	for _, arg := range os.Args[1:] {
		d, err := apod.ParseDate(arg)
		if err != nil {
			log.Fatalf("%q: %v", arg, err)
		}
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		dates = []time.Time{apod.Day(time.Now())}
	}

	lg := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: true, Output: os.Stderr})
	if lg.GetLevel() > zerolog.DebugLevel {
		lg = lg.Level(zerolog.WarnLevel)
	}
	client := apod.NewClient(cfg.APOD, lg)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	failed := false
	out := make([]result, 0, len(dates))
	for _, r := range apod.FetchAll(ctx, client, dates) {
		res := result{Date: apod.FormatDate(r.Date), Outcome: r.Outcome().String(), Picture: r.Picture}
		if r.Err != nil {
			res.Error = r.Err.Error()
			failed = true
		}
		out = append(out, res)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("encode: %v", err)
	}
	if failed {
		fmt.Fprintln(os.Stderr, "one or more dates could not be fetched")
		os.Exit(1)
	}
}
