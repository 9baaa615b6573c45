package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"trivia-research/internal/adapter/mcpserver"
	"trivia-research/internal/adapter/source"
	"trivia-research/internal/adapter/tool"
	"trivia-research/internal/infra/config"
	"trivia-research/internal/infra/logger"
	"trivia-research/internal/infra/tracer"
	"trivia-research/internal/usecase"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "--help", "-h", "help":
			showUsage()
			return
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func showUsage() {
	fmt.Println(`trivia-research - Bar trivia research MCP server

USAGE:
    trivia-research [FLAGS]

The server speaks the Model Context Protocol over stdio. Point your
MCP client at the binary; there is no network listener.

FLAGS:
    -h, --help         Show this help message
    --config PATH      Config file path (default: ./config.yaml)

CONFIGURATION:
    Config file: ./config.yaml (optional; defaults apply when absent)
    Environment: TRIVIA_* variables override config

TOOLS:
    research_trivia_topic       Research any trivia topic
    trivia_for_today            Filtered daily digest (birthdays, events, deaths)
    trivia_for_week             Weekly highlights
    search_entertainment_trivia Movies, TV, music, awards
    search_sports_trivia        Teams, players, championships
    search_geography_trivia     Countries, capitals, landmarks
    search_science_trivia       Discoveries, inventions, space
    fetch_trivia_from_url       Extract text from a specific page`)
}

func run() error {
	// 1. Config
	cfg, err := config.Load(configPath())
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// 2. Logger & Tracer
	log, logCloser, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logCloser()

	ctx := context.Background()
	tracerShutdown, err := tracer.Setup(ctx, cfg.Tracer)
	if err != nil {
		return fmt.Errorf("tracer: %w", err)
	}
	defer tracerShutdown(ctx)

	// 3. Sources
	src := cfg.Sources

	var backend source.SearchBackend
	switch src.SearchBackend {
	case "searxng":
		backend = source.NewSearXNGBackend(src.SearXNGURL, src.SearchTimeout, log)
	default:
		backend = source.NewDuckDuckGoBackend(src.DuckDuckGoURL, src.UserAgent, src.SearchTimeout, src.SearchRatePerMinute, log)
	}
	search := source.NewCachedSearch(backend, cfg.Research.SearchCacheTTL, log)

	wiki := source.NewWikipedia(src.WikipediaAPIURL, src.UserAgent, src.WikipediaTimeout, cfg.Research.SummaryCharLimit, log)
	feed := source.NewOnThisDay(src.WikipediaRESTURL, src.UserAgent, src.FeedTimeout, src.Breaker, log)
	pages := source.NewPageFetcher(src.UserAgent, src.FetchTimeout, cfg.Research.PageCharBudget, log)

	// 4. Digest composer
	svc := usecase.NewService(search, wiki, feed, pages, usecase.Options{
		URLToolCharBudget: cfg.Research.URLToolCharBudget,
	}, log)

	// 5. Tools
	registry := tool.NewRegistry()
	tools := []error{
		registry.Register(tool.NewResearchTool(svc, log)),
		registry.Register(tool.NewTodayTool(svc, log)),
		registry.Register(tool.NewWeekTool(svc, log)),
		registry.Register(tool.NewEntertainmentTool(svc, log)),
		registry.Register(tool.NewSportsTool(svc, log)),
		registry.Register(tool.NewGeographyTool(svc, log)),
		registry.Register(tool.NewScienceTool(svc, log)),
		registry.Register(tool.NewFetchURLTool(svc, log)),
	}
	for _, err := range tools {
		if err != nil {
			return fmt.Errorf("register tool: %w", err)
		}
	}

	// 6. Serve
	log.Info("trivia-research starting",
		"search_backend", backend.Name(),
		"tools", len(registry.List()),
		"breaker_state", feed.State().String(),
	)

	srv := mcpserver.New(cfg.Server.Name, cfg.Server.Version, registry.List(), log)
	return srv.ServeStdio()
}

func configPath() string {
	for i, arg := range os.Args {
		if arg == "--config" && i+1 < len(os.Args) {
			return os.Args[i+1]
		}
		if strings.HasPrefix(arg, "--config=") {
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	if p := os.Getenv("TRIVIA_CONFIG"); p != "" {
		return p
	}
	return "config.yaml"
}
