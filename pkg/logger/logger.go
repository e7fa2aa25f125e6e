package logger

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init пишет в stderr с настройками logrus по умолчанию.
var Log = logrus.New()

// Init инициализирует глобальный логгер.
// Эта функция должна быть вызвана один раз при старте приложения в main.go.
func Init() {
	InitWithOutput(os.Stderr)
}

// InitWithOutput - как Init, но с заданным выводом (тесты, файлы).
//
// Логи идут не в stdout: там диалог с игроком.
func InitWithOutput(out io.Writer) {
	Log = logrus.New()

	// 1. Уровень из LOG_LEVEL, по умолчанию "info"
	Log.SetLevel(levelFromEnv())

	// 2. Форматтер: "json" для сбора логов, иначе текст.
	// Цвета только если пишем в терминал.
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   isTerminal(out),
		})
	}

	Log.SetOutput(out)
}

func levelFromEnv() logrus.Level {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		return logrus.InfoLevel
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
