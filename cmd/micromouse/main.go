// Command micromouse computes and animates micromouse routes.
//
// Usage:
//
//	micromouse solve [-maze FILE]         print distances and route (stdin when FILE is "-" or empty)
//	micromouse serve [-addr ADDR]         run the JSON route API
//	micromouse tui   [-maze FILE] [-sound] interactive terminal simulator
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/micromouse/api"
	"github.com/katalvlaran/micromouse/bfs"
	"github.com/katalvlaran/micromouse/config"
	"github.com/katalvlaran/micromouse/maze"
	"github.com/katalvlaran/micromouse/simulate"
	"github.com/katalvlaran/micromouse/tui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run dispatches a subcommand and returns the process exit code.
// help is answered before the configuration is read.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}
	switch args[0] {
	case "-h", "--help", "help":
		usage(stdout)
		return 0
	case "solve", "serve", "tui":
	default:
		usage(stderr)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("[APP] [ERROR] configuration: %v", err)
		return 1
	}

	switch args[0] {
	case "solve":
		err = runSolve(cfg, args[1:], stdin, stdout)
	case "serve":
		err = runServe(cfg, args[1:])
	case "tui":
		err = runTUI(cfg, args[1:])
	}
	if err != nil {
		log.Printf("[APP] [ERROR] %s: %v", args[0], err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: micromouse solve|serve|tui [flags]")
}

// loadMaze reads a text layout from path, or from stdin for "" and "-".
func loadMaze(path string, stdin io.Reader) (*maze.Grid, error) {
	if path == "" || path == "-" {
		return maze.Read(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return maze.Read(f)
}

func runSolve(_ config.Config, args []string, stdin io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	mazePath := fs.String("maze", "", "maze layout file ('-' for stdin)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	g, err := loadMaze(*mazePath, stdin)
	if err != nil {
		return err
	}
	res, err := bfs.Solve(g)
	if res != nil {
		printField(out, res.Field)
	}
	if err != nil {
		if errors.Is(err, bfs.ErrUnreachable) || errors.Is(err, bfs.ErrMissingEndpoint) {
			fmt.Fprintln(out, "No valid path found!")
		}
		return err
	}
	fmt.Fprintf(out, "steps: %d\n", res.Path.Steps())
	fmt.Fprintln(out, res.Path)
	return nil
}

// printField writes df one row per line, '#' for unreached cells.
func printField(out io.Writer, df *bfs.DistanceField) {
	for _, row := range df.Table() {
		for _, d := range row {
			if d == bfs.Unreachable {
				fmt.Fprint(out, "  #")
				continue
			}
			fmt.Fprintf(out, "%3d", d)
		}
		fmt.Fprintln(out)
	}
}

func runServe(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", cfg.HTTPAddr, "listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)
	router := api.NewRouter(api.Config{
		Addr:        *addr,
		BaseURL:     "/api",
		Controllers: []api.Controller{api.NewRouteController()},
	})
	log.Printf("[APP] [INFO] route API listening on %s", *addr)
	return router.Run()
}

func runTUI(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	mazePath := fs.String("maze", "", "maze layout file to start from")
	sound := fs.Bool("sound", cfg.Sound, "click on every mouse step")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var session *simulate.Session
	if *mazePath != "" {
		g, err := loadMaze(*mazePath, os.Stdin)
		if err != nil {
			return err
		}
		session = simulate.NewSessionFromGrid(g, cfg.StepInterval)
	} else {
		session = simulate.NewSession(cfg.Rows, cfg.Cols, cfg.StepInterval)
	}

	snd, err := tui.NewSound(*sound)
	if err != nil {
		// Non-fatal, the simulator runs without sound
		log.Printf("[APP] [INFO] audio initialization failed: %v", err)
	}
	defer snd.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tui.NewApp(screen, session, snd).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
