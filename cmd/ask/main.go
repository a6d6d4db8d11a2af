package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"churnscope/internal/adapters/agentapi"
	"churnscope/internal/adapters/ai"
	"churnscope/internal/adapters/config"
	"churnscope/internal/agents"
	"churnscope/pkg/logger"
)

func main() {
	flag.Parse()

	question := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if question == "" {
		fmt.Fprintln(os.Stderr, "usage: ask <question>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	if err := logger.Init(cfg.App.LogLevel, cfg.App.Env); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	log := logger.Get()

	model, err := ai.NewOpenAIChatModel(cfg.Agents.OpenAIKey, cfg.Agents.SupervisorModel)
	if err != nil {
		log.Fatalf("Failed to init supervisor model: %v", err)
	}

	client := agentapi.NewClient(
		cfg.Agents.PlatformURL,
		cfg.Agents.PlatformAPIKey,
		cfg.Agents.RequestsPerMinute,
	)

	supervisor := agents.NewSupervisor(model, client)

	answer, err := supervisor.Ask(context.Background(), question)
	if err != nil {
		log.Fatalf("Failed to answer question: %v", err)
	}

	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("  PLAN: %s\n", answer.PlanSummary)
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()
	fmt.Println(answer.Report)

	if len(answer.Errors) > 0 {
		fmt.Println()
		fmt.Printf("Notes: %d agent error(s) occurred during execution\n", len(answer.Errors))
	}
}
