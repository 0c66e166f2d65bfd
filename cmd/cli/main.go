package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"time"

	"nautica-prime/internal/cli"
	"nautica-prime/internal/config"
	"nautica-prime/internal/core/services"
	"nautica-prime/internal/pkg/apiclient"
	"nautica-prime/internal/session"

	"github.com/chzyer/readline"
)

func main() {
	fmt.Println("Bem-vindo ao Náutica Prime! Use 'help' para ver os comandos.")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Session stores, persisted across runs
	clienteStore, err := session.NewClienteStore(cfg.Client.StateDir)
	if err != nil {
		log.Fatalf("❌ Failed to open customer session: %v", err)
	}
	adminStore, err := session.NewAdminStore(cfg.Client.StateDir)
	if err != nil {
		log.Fatalf("❌ Failed to open admin session: %v", err)
	}

	// API client and services
	api := apiclient.New(cfg.Client.APIURL, time.Duration(cfg.Client.TimeoutSeconds)*time.Second)
	catalogService := services.NewCatalogService(api, adminStore)
	clienteService := services.NewClienteService(api, clienteStore)
	propostaService := services.NewPropostaService(api, clienteStore, adminStore)
	adminService := services.NewAdminService(api, adminStore)

	// Interactive terminal
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "nautica> ",
		HistoryFile:     filepath.Join(cfg.Client.StateDir, "history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "sair",
	})
	if err != nil {
		log.Fatalf("❌ Failed to initialize terminal: %v", err)
	}
	defer rl.Close()

	shell := cli.NewCLI(rl, catalogService, clienteService, propostaService, adminService)

	for {
		err := shell.Run()
		if err == readline.ErrInterrupt {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println("Até logo!")
			return
		}
		if err != nil {
			fmt.Printf("Erro: %v\n", err)
		}
	}
}
