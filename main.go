package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/panes/internal/app"
	"github.com/llehouerou/panes/internal/config"
	"github.com/llehouerou/panes/internal/errmsg"
)

// debugEnv names a file that receives debug logging when set.
const debugEnv = "PANES_DEBUG"

func setupLogging() (io.Closer, error) {
	path := os.Getenv(debugEnv)
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	return tea.LogToFile(path, "panes")
}

func main() {
	os.Exit(run())
}

// run starts the program and returns the exit code, so deferred cleanup
// runs before the process exits.
func run() int {
	logFile, err := setupLogging()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening debug log: %v\n", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpLoadConfig, err))
		return 1
	}

	m, err := app.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitLayout, err))
		return 1
	}
	log.Printf("starting with %d panels", m.Split.State().Len())

	watcher, err := config.Watch(config.Paths()...)
	if err != nil {
		log.Printf("config watch disabled: %v", err)
	} else {
		defer watcher.Close()
		m.WatchConfig(watcher.Changes())
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		return 1
	}
	if fm, ok := final.(app.Model); ok && fm.Fatal {
		fmt.Fprintln(os.Stderr, fm.ErrorMsg)
		return 1
	}
	return 0
}
