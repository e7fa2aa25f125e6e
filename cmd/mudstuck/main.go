package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/mgrabmueller/mudstuck/internal/engine"
	"github.com/mgrabmueller/mudstuck/internal/version"
	"github.com/mgrabmueller/mudstuck/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Конфиг: значения по умолчанию, окружение, флаги
	cfg := engine.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		logger.Log.WithError(err).Fatal("invalid environment")
	}

	var showVersion bool
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Wrap descriptions at this many characters")
	flag.StringVar(&cfg.HistoryFile, "history", cfg.HistoryFile, "History file in $HOME (empty to disable)")
	flag.BoolVar(&cfg.Plain, "plain", cfg.Plain, "Read plain lines from stdin without line editing")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version.Current())
		return
	}

	// 2. Мир и игрок
	world, err := engine.ExampleWorld()
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to build world")
	}

	svc, err := engine.NewService(world, cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to start game")
	}

	logger.Log.WithField("entities", world.Len()).Debug(version.Current())

	// 3. REPL. Без терминала (pipe, файл) редактор строки не нужен
	fmt.Print(intro, "\n")

	if cfg.Plain || !isatty.IsTerminal(os.Stdin.Fd()) {
		runPlain(svc, os.Stdin, os.Stdout)
		return
	}
	runLiner(svc, cfg)
}
