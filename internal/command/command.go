// Package command разбирает команды игрока вида
// VERB [OBJECT] [CONNECTOR OBJECT].
//
// Глагол задает действие, первый объект - то, над чем оно выполняется,
// связка и второй объект уточняют как. Объект называется одним или
// несколькими словами, ни одно из которых не может быть связкой.
//
//	eat
//	get lamp
//	put coin into purse
package command

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mgrabmueller/mudstuck/internal/domain"
)

// Command - разобранная команда
type Command struct {
	Verb   Verb
	Direct domain.Name // nil, если объекта нет

	// Connector и Indirect заданы вместе или не заданы вовсе
	Connector Connector
	Indirect  domain.Name
}

// HasIndirect - есть ли вторая часть "CONNECTOR OBJECT"
func (c Command) HasIndirect() bool {
	return c.Connector != ConnectorNone
}

// Direction возвращает направление, если прямой объект - одно слово-направление.
func (c Command) Direction() (Direction, bool) {
	if len(c.Direct) != 1 {
		return DirectionNone, false
	}
	d := ParseDirection(c.Direct[0])
	return d, d != DirectionNone
}

// ParseError - ошибка разбора команды
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return "cannot parse command: " + e.Msg
}

var ignored = map[string]bool{
	"a":   true,
	"an":  true,
	"the": true,
}

// Parse разбирает строку команды.
func Parse(s string) (Command, error) {
	// 1. Непустые слова в нижнем регистре. Caser хранит состояние,
	// поэтому свой на каждый вызов.
	lower := cases.Lower(language.German)
	var words []string
	for _, w := range strings.Split(s, " ") {
		if w != "" {
			words = append(words, lower.String(w))
		}
	}
	if len(words) == 0 {
		return Command{}, &ParseError{Msg: "command expected"}
	}

	// 2. Глагол. Голое направление означает движение в эту сторону.
	var cmd Command
	first, rest := words[0], words[1:]
	if ParseDirection(first) != DirectionNone {
		cmd.Verb = VerbMove
		cmd.Direct = append(cmd.Direct, first)
	} else {
		cmd.Verb = ParseVerb(first)
		if cmd.Verb == VerbUnknown {
			return Command{}, &ParseError{Msg: "not a valid verb"}
		}
	}

	// 3. Прямой объект - до связки или конца строки
	i := 0
	for ; i < len(rest); i++ {
		w := rest[i]
		if ParseConnector(w) != ConnectorNone {
			break
		}
		if !ignored[w] {
			cmd.Direct = append(cmd.Direct, w)
		}
	}

	// 4. Связка и косвенный объект
	if i < len(rest) {
		cmd.Connector = ParseConnector(rest[i])
		for _, w := range rest[i+1:] {
			if !ignored[w] {
				cmd.Indirect = append(cmd.Indirect, w)
			}
		}
		if len(cmd.Indirect) == 0 {
			return Command{}, &ParseError{Msg: "indirect object required after connector"}
		}
	}

	return cmd, nil
}
