package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	schemaform "github.com/goliatone/go-schemaform"
	"github.com/goliatone/go-schemaform/pkg/renderers/tui"
	"github.com/goliatone/go-schemaform/pkg/schema"
	"github.com/goliatone/go-schemaform/schemas"
)

func main() {
	schemaFlag := flag.String("schema", "contact-form", "catalog schema id or path to a YAML/JSON schema file")
	listFlag := flag.Bool("list", false, "list catalog schema ids and exit")
	htmlFlag := flag.Bool("html", false, "render the empty form as HTML instead of running a prompt session")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	if *listFlag {
		for _, id := range schemas.IDs() {
			fmt.Println(id)
		}
		return
	}

	fs, err := resolveSchema(*schemaFlag)
	if err != nil {
		log.Fatalf("load schema: %v", err)
	}

	ctrl, err := schemaform.NewController(fs)
	if err != nil {
		log.Fatalf("open form: %v", err)
	}
	for _, issue := range ctrl.Warnings() {
		log.Printf("schema warning: %s", issue.Message)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *htmlFlag {
		page, err := schemaform.RenderHTML(ctx, ctrl, schemaform.RenderOptions{})
		if err != nil {
			log.Fatalf("render: %v", err)
		}
		writeOutput(*output, page)
		return
	}

	payload, err := tui.NewSession().Run(ctx, ctrl)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) || errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "aborted")
			os.Exit(1)
		}
		log.Fatalf("session: %v", err)
	}

	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		log.Fatalf("encode payload: %v", err)
	}
	writeOutput(*output, append(encoded, '\n'))
}

func resolveSchema(raw string) (*schema.FormSchema, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return nil, errors.New("schema is required")
	}
	if fs, ok := schemas.Build(name); ok {
		return fs, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("%q is not a catalog id or readable file: %w", name, err)
	}
	if ext := strings.ToLower(filepath.Ext(name)); ext == ".json" {
		return schemaform.FromJSON(data)
	}
	return schemaform.FromYAML(data)
}

func writeOutput(path string, data []byte) {
	if path == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("write output: %v", err)
	}
	fmt.Printf("written to %s\n", path)
}
