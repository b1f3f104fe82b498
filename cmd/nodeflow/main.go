// Package main provides the NodeFlow CLI application
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/zeptofine/nodeflow/internal/adapters/repository/postgres"
	"github.com/zeptofine/nodeflow/pkg/calculator"
	"github.com/zeptofine/nodeflow/pkg/nodeflow"
)

// Version information set during build
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("NodeFlow %s (commit: %s, built: %s)\n", Version, Commit, BuildTime)
		return
	}

	_ = godotenv.Load()

	if err := runDemo(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "nodeflow: %v\n", err)
		os.Exit(1)
	}
}

// runDemo wires a small calculator flow, pushes values through it and
// round-trips the result through a flow store.
func runDemo(w *os.File) error {
	registry := nodeflow.NewRegistry()
	if err := calculator.Register(registry); err != nil {
		return err
	}

	editor := nodeflow.NewEditor(registry)
	if dsn := os.Getenv("NODEFLOW_PG_DSN"); dsn != "" {
		store, err := postgres.Connect(context.Background(), dsn, nil)
		if err != nil {
			return fmt.Errorf("connect postgres store: %w", err)
		}
		editor = nodeflow.NewEditorWithStore(registry, store)
	}
	sc := editor.Scene()

	a, err := sc.CreateNode("NumberSource")
	if err != nil {
		return err
	}
	b, err := sc.CreateNode("NumberSource")
	if err != nil {
		return err
	}
	sum, err := sc.CreateNode("Addition")
	if err != nil {
		return err
	}
	display, err := sc.CreateNode("NumberDisplay")
	if err != nil {
		return err
	}

	if _, err := sc.Connect(a.ID, 0, sum.ID, 0); err != nil {
		return err
	}
	if _, err := sc.Connect(b.ID, 0, sum.ID, 1); err != nil {
		return err
	}
	if _, err := sc.Connect(sum.ID, 0, display.ID, 0); err != nil {
		return err
	}

	a.Model.(*calculator.NumberSource).SetNumber(3)
	b.Model.(*calculator.NumberSource).SetNumber(4)

	fmt.Fprintln(w, "🧮 NodeFlow - Dataflow Graph Toolkit")
	fmt.Fprintf(w, "3 + 4 = %s\n", display.Model.(*calculator.NumberDisplay).Text())

	ctx := context.Background()
	if err := editor.SaveFlow(ctx, "demo"); err != nil {
		return fmt.Errorf("save flow: %w", err)
	}
	if err := editor.LoadFlow(ctx, "demo"); err != nil {
		return fmt.Errorf("load flow: %w", err)
	}

	restored, err := editor.Scene().Node(display.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Restored flow still shows %s\n", restored.Model.(*calculator.NumberDisplay).Text())
	return nil
}
