package engine

import (
	"fmt"
	"os"
	"strconv"
)

// Значения по умолчанию
const (
	DefaultWidth       = 72
	DefaultPrompt      = ">> "
	DefaultHistoryFile = ".mudstuck_history"
)

// Config хранит параметры запуска движка и REPL
type Config struct {
	// Width - ширина строки при переносе описаний (в рунах)
	Width       int
	Prompt      string
	HistoryFile string // пустая строка - историю не сохранять

	// Plain - построчное чтение stdin без редактора строки
	Plain bool
}

// NewConfig создает конфиг по умолчанию
func NewConfig() Config {
	return Config{
		Width:       DefaultWidth,
		Prompt:      DefaultPrompt,
		HistoryFile: DefaultHistoryFile,
	}
}

// LoadEnv переопределяет ширину из MUD_WIDTH, если переменная задана.
func (c *Config) LoadEnv() error {
	v := os.Getenv("MUD_WIDTH")
	if v == "" {
		return nil
	}
	w, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("MUD_WIDTH: %w", err)
	}
	c.Width = w
	return c.Validate()
}

// Validate проверяет значения после флагов и окружения
func (c Config) Validate() error {
	if c.Width < 1 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}
	return nil
}
