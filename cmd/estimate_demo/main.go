package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	flag "github.com/spf13/pflag"

	"tripcost/internal/ai"
	"tripcost/internal/config"
	"tripcost/internal/infra"
	"tripcost/internal/modules/estimate"
)

func main() {
	location := flag.String("location", "Addis Ababa", "city or region")
	accommodation := flag.String("accommodation", "Mid-range hotel", "type of accommodation")
	people := flag.Int("people", 2, "number of travelers")
	season := flag.String("season", "january", "travel month")
	showPrompt := flag.Bool("prompt", false, "print the prompt instead of calling the model")
	flag.Parse()

	req := estimate.Request{
		Location:      *location,
		Accommodation: *accommodation,
		People:        *people,
		Season:        *season,
	}
	if *showPrompt {
		fmt.Println(estimate.BuildPrompt(req))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := infra.NewLogger(cfg.Log.Env, cfg.Log.Level)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	provider := ai.NewOpenRouterProvider(cfg.OpenRouter)
	svc := estimate.NewService(provider, logger)

	fmt.Printf("Estimating %s, %s, %d traveler(s), %s via %s\n", req.Location, req.Accommodation, req.People, req.Season, provider.Model())

	res, err := svc.Estimate(context.Background(), req)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err != nil {
		var e *estimate.Error
		if !errors.As(err, &e) {
			log.Fatalf("estimate: %v", err)
		}
		_ = enc.Encode(e.Payload())
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = enc.Encode(res)
}
