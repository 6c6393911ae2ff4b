package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katistix/feedback/internal/config"
	"github.com/katistix/feedback/internal/flow"
)

// --- MAIN ---
func main() {
	configPath := ""
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Log.Path != "" {
		f, err := tea.LogToFile(cfg.Log.Path, "feedback")
		if err != nil {
			fmt.Printf("Error: could not open log file '%s'. %v\n", cfg.Log.Path, err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	machine := flow.NewMachine()
	logTransitions(machine)
	log.Printf("session=%s started in %s", machine.ID(), machine.State())

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(initialModel(cfg, machine), opts...)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	log.Printf("session=%s finished in %s", machine.ID(), machine.State())
}
