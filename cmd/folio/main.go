package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/folio-sh/folio"
	"github.com/folio-sh/folio/content"
	"github.com/folio-sh/folio/gateway"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	// Optional .env file for local development.
	_ = godotenv.Load()

	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "serve":
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "seed":
		if err := runSeed(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "hash-password":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: folio hash-password <password>")
			os.Exit(1)
		}
		fmt.Println(folio.HashPassword(os.Args[2]))
	case "version":
		fmt.Printf("folio %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func runServe() error {
	cfg, err := loadConfig(configPath())
	if err != nil {
		return err
	}

	app := folio.New(cfg, folio.DefaultViews())
	defer app.Close()
	return app.Start()
}

// runSeed writes the default content aggregate to the configured store. It
// refuses to overwrite existing content unless --force is given.
func runSeed() error {
	cfg, err := loadConfig(configPath())
	if err != nil {
		return err
	}

	force := len(os.Args) > 2 && os.Args[2] == "--force"

	var gw gateway.Gateway
	if cfg.DocumentURL != "" {
		gw = gateway.NewDocumentGateway(cfg.DocumentURL, nil)
	} else {
		local, err := gateway.NewLocalGateway(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer local.Close()
		gw = local
	}

	ctx, cancel := context.WithTimeout(context.Background(), gateway.DefaultTimeout)
	defer cancel()

	if !force {
		doc, err := gw.Load(ctx)
		if err == nil && !doc.Empty() {
			return fmt.Errorf("store already has content; use 'folio seed --force' to overwrite")
		}
	}

	if err := gw.Save(ctx, content.Defaults()); err != nil {
		return err
	}
	fmt.Println("Seeded default content.")
	return nil
}

func configPath() string {
	return folio.EnvOr("FOLIO_CONFIG", "folio.yaml")
}

func printUsage() {
	fmt.Println(`folio - a single-page portfolio and blog engine

Usage:
  folio <command> [arguments]

Commands:
  serve                  Start the site (default)
  seed [--force]         Write the default content to the configured store
  hash-password <pass>   Print the SHA-256 hex digest for the admin password
  version                Print the folio version
  help                   Show this help message

Configuration is read from folio.yaml (override with FOLIO_CONFIG), then
FOLIO_* environment variables. A .env file in the working directory is
loaded first when present.`)
}
