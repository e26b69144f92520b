package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/wordtiles/internal/config"
	"github.com/csheth/wordtiles/internal/tui"
	"github.com/csheth/wordtiles/internal/words"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (default $WORDTILES_CONFIG or the user config dir)")
	sentence := flag.String("words", "", "space separated words to start with")
	wordFile := flag.String("word-file", "", "JSON word list ({\"words\": [...]} or [...])")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	logPath := flag.String("log", os.Getenv("WORDTILES_LOG"), "append debug logs to this file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Println("failed to load config:", err)
		os.Exit(1)
	}
	if *sentence != "" {
		cfg.Words.Sentence = *sentence
		cfg.Words.File = ""
	}
	if *wordFile != "" {
		cfg.Words.File = *wordFile
	}
	if *noAltScreen {
		cfg.UI.AltScreen = false
	}

	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "wordtiles")
		if err != nil {
			fmt.Println("failed to open log file:", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	collection, err := loadWords(cfg.Words)
	if err != nil {
		fmt.Println("failed to load words:", err)
		os.Exit(1)
	}
	log.Printf("[main] starting with %d words", collection.Len())

	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Words:       collection,
			ItemSpacing: cfg.Layout.ItemSpacing,
			LineSpacing: cfg.Layout.LineSpacing,
			GhostLines:  cfg.Layout.GhostLines,
			ShowHelp:    cfg.UI.Help,
			Logger:      log.Default(),
		}),
		opts...,
	)

	if _, err := program.Run(); err != nil {
		fmt.Println("program error:", err)
		os.Exit(1)
	}
}

func loadWords(cfg config.WordsConfig) (*words.Collection, error) {
	if cfg.File != "" {
		return words.Load(cfg.File)
	}
	collection := words.Parse(cfg.Sentence)
	if collection.Len() == 0 {
		return words.Parse(config.DefaultSentence), nil
	}
	return collection, nil
}
