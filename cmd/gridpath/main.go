// Command gridpath runs grid searches from the terminal, serves interactive
// boards over a websocket and prints the wire-protocol schema.
//
// Usage:
//
//	gridpath run    [-config file] [-layout file] [-algo name] [-frontier scan|heap] [-png out.png]
//	gridpath serve  [-config file] [-addr host:port]
//	gridpath schema [-out file]
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/protocol"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/server"
	"github.com/katalvlaran/gridpath/visual"
)

var errUsage = errors.New("usage: gridpath run|serve|schema [flags]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("gridpath: %v", err)
	}
}

// execute dispatches to a subcommand.
func execute(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "run":
		return runCmd(args[1:], stdout)
	case "serve":
		return serveCmd(ctx, args[1:])
	case "schema":
		return schemaCmd(args[1:], stdout)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func runCmd(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to YAML config (default $"+config.EnvPath+")")
	layoutPath := fs.String("layout", "", "text layout file using . # w S E")
	algo := fs.String("algo", "", "algorithm: bfs, dijkstra or astar (default from config)")
	kind := fs.String("frontier", "", "frontier: scan or heap (default from config)")
	pngPath := fs.String("png", "", "write a PNG snapshot of the result")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		return err
	}
	grid, err := boardFrom(cfg, *layoutPath)
	if err != nil {
		return err
	}
	alg := cfg.Algorithm()
	if *algo != "" {
		if alg, err = search.ParseAlgorithm(*algo); err != nil {
			return err
		}
	}
	fk := cfg.FrontierKind()
	if *kind != "" {
		if fk, err = frontier.ParseKind(*kind); err != nil {
			return err
		}
	}

	session := engine.NewSession(grid, engine.WithFrontier(fk), engine.WithTiming(visual.Timing{}))
	run, _ := session.Run(alg)
	if run.Err != nil {
		return run.Err
	}
	if err := run.Reveal(context.Background(), nil); err != nil {
		return err
	}
	board, marks := session.Snapshot()

	res := run.Result
	fmt.Fprintf(stdout, "algorithm: %s\n", res.Algorithm)
	fmt.Fprintf(stdout, "outcome:   %s\n", res.Outcome)
	fmt.Fprintf(stdout, "visited:   %d\n", len(res.Visited))
	fmt.Fprintf(stdout, "path:      %d cells, cost %d\n", res.PathLen(), res.Cost)
	for _, row := range visual.Overlay(board, marks) {
		fmt.Fprintln(stdout, row)
	}

	if *pngPath != "" {
		if err := render.SavePNG(*pngPath, board, marks, render.Options{CellSize: cfg.Render.CellSize}); err != nil {
			return err
		}
		log.Printf("snapshot written to %s", *pngPath)
	}
	return nil
}

// boardFrom loads the layout file if one is given, else the configured board.
func boardFrom(cfg *config.Config, layoutPath string) (*gridgraph.Grid, error) {
	if layoutPath == "" {
		return cfg.Grid()
	}
	f, err := os.Open(layoutPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open layout: %w", err)
	}
	defer f.Close()

	var rows []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			rows = append(rows, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	return gridgraph.FromRows(rows)
}

func serveCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to YAML config (default $"+config.EnvPath+")")
	addr := fs.String("addr", "", "listen address (default from config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		return err
	}
	if *addr == "" {
		*addr = cfg.Addr()
	}
	log.Printf("Starting gridpath server on %s", *addr)

	srv, err := server.New(cfg, log.Default())
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	if err := srv.Serve(ctx, *addr); err != nil {
		return err
	}
	log.Println("Server stopped")
	return nil
}

func schemaCmd(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	outPath := fs.String("out", "", "path to write the JSON schema (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := json.MarshalIndent(protocol.Schema(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	data = append(data, '\n')
	if *outPath == "" {
		_, err = stdout.Write(data)
		return err
	}
	return writeFile(*outPath, data)
}

// writeFile replaces path atomically via a temp file.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}
	return nil
}
