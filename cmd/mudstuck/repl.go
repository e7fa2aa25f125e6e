package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/mgrabmueller/mudstuck/internal/engine"
	"github.com/mgrabmueller/mudstuck/pkg/logger"
)

const intro = `If you don't know what to do, type "help" (without the quotes).
To leave the game, type "quit".
`

const help = `Commands:
  help or h        show this help
  quit or q        quit the game
  look or l        describe your surroundings
  desc or d        describe the door
  describe <name>  describe anything by its dotted name`

// dispatch выполняет одну строку ввода. Второй результат - выйти из игры.
func dispatch(svc *engine.GameService, line string) ([]string, bool) {
	switch line {
	case "quit", "q":
		return nil, true
	case "look", "l":
		return svc.Look(), false
	case "help", "h":
		return strings.Split(help, "\n"), false
	case "desc", "d":
		return svc.Describe(engine.ExampleDoor), false
	}

	if name, ok := strings.CutPrefix(line, "describe "); ok {
		return svc.Describe(strings.TrimSpace(name)), false
	}

	return svc.Execute(line), false
}

func printLines(w io.Writer, lines []string) {
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}

// runPlain читает команды построчно (stdin не терминал или -plain)
func runPlain(svc *engine.GameService, in io.Reader, out io.Writer) {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		lines, quit := dispatch(svc, sc.Text())
		printLines(out, lines)
		if quit {
			return
		}
	}
	if err := sc.Err(); err != nil {
		logger.Log.WithError(err).Error("read input")
	}
}

// runLiner - интерактивный режим с историей команд
func runLiner(svc *engine.GameService, cfg engine.Config) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath(cfg.HistoryFile)
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			f, err := os.Create(histPath)
			if err != nil {
				logger.Log.WithError(err).Warn("cannot save history")
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Println("No input")
			continue
		}

		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}

		lines, quit := dispatch(svc, line)
		printLines(os.Stdout, lines)
		if quit {
			return
		}
	}
}

// historyPath - путь к истории в домашнем каталоге; абсолютный путь как есть
func historyPath(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, name)
}
