package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sirupsen/logrus"

	"github.com/mgrabmueller/mudstuck/internal/command"
	"github.com/mgrabmueller/mudstuck/internal/domain"
	"github.com/mgrabmueller/mudstuck/internal/engine/handlers"
	"github.com/mgrabmueller/mudstuck/internal/engine/handlers/actions"
	"github.com/mgrabmueller/mudstuck/internal/template"
	"github.com/mgrabmueller/mudstuck/pkg/logger"
)

// ErrNoLocation - текущее местоположение игрока отсутствует в мире
var ErrNoLocation = errors.New("player location not found")

// GameService - состояние одного игрока в неизменяемом мире.
//
// Мир общий и только читается; сервис хранит лишь местоположение игрока,
// поэтому один сервис обслуживает одного игрока из одной горутины.
type GameService struct {
	World    *domain.World
	Location domain.EntityID

	width    int
	log      *logrus.Entry
	handlers map[command.Verb]handlers.HandlerFunc
}

// NewService ставит игрока на стартовую позицию мира.
func NewService(world *domain.World, cfg Config) (*GameService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, ok := world.Entity(world.Start); !ok {
		return nil, fmt.Errorf("start %s: %w", world.Start, ErrNoLocation)
	}

	s := &GameService{
		World:    world,
		Location: world.Start,
		width:    cfg.Width,
		log:      logger.Log.WithField("world", world.Name),
		handlers: make(map[command.Verb]handlers.HandlerFunc),
	}

	s.registerHandlers()
	return s, nil
}

func (s *GameService) registerHandlers() {
	s.handlers[command.VerbMove] = actions.HandleMove
	s.handlers[command.VerbUse] = handlers.WithObject(actions.HandleUse)
	s.handlers[command.VerbSleep] = handlers.WithEmptyObject(actions.HandleSleep)
}

// Render вычисляет шаблон в мире сервиса
func (s *GameService) Render(src string) (string, error) {
	return template.Render(src, s.World)
}

// Look описывает текущее местоположение игрока.
func (s *GameService) Look() []string {
	here, ok := s.World.Entity(s.Location)
	if !ok {
		s.log.WithField("location", s.Location).Error(ErrNoLocation)
		return []string{"an error has occurred: " + ErrNoLocation.Error()}
	}
	return s.describe(here)
}

// Describe описывает сущность по имени через точку ("rusty.metal.door").
// Если имени нет, предлагает самое похожее.
func (s *GameService) Describe(name string) []string {
	id, ok := s.World.Lookup(domain.ParseName(name))
	if !ok {
		lines := []string{fmt.Sprintf("Es gibt nichts, was %s heißt.", name)}
		if guess, found := s.suggest(name); found {
			lines = append(lines, fmt.Sprintf("Meinst du %s?", guess))
		}
		return lines
	}

	e, ok := s.World.Entity(id)
	if !ok {
		s.log.WithField("entity", id).Error("indexed entity is missing")
		return []string{"an error has occurred: entity not found"}
	}
	return s.describe(e)
}

// suggest ищет ближайшее известное имя (нечеткий поиск без учета регистра)
func (s *GameService) suggest(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	ranks := fuzzy.RankFindFold(name, s.World.Names())
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)
	return ranks[0].Target, true
}

// describe вычисляет короткое и длинное описание. Ошибка вычисления одного
// описания не мешает показать другое.
func (s *GameService) describe(e *domain.Entity) []string {
	var lines []string
	for _, src := range []string{e.Short, e.Long} {
		text, err := s.Render(src)
		if err != nil {
			s.log.WithError(err).WithField("entity", e.Name.String()).Warn("render failed")
			lines = append(lines, "an error has occurred: "+err.Error())
			continue
		}
		lines = append(lines, Wrap(text, s.width)...)
	}
	return lines
}

// Execute разбирает и выполняет команду игрока.
func (s *GameService) Execute(line string) []string {
	cmd, err := command.Parse(line)
	if err != nil {
		return []string{"I don't know how to do that.", fmt.Sprintf("(%s)", err)}
	}

	entry := s.log.WithField("verb", cmd.Verb)

	handler, ok := s.handlers[cmd.Verb]
	if !ok {
		entry.Debug("no handler")
		return handlers.Unknown().Lines
	}

	ctx := handlers.Context{
		World:    s.World,
		Location: s.Location,
		Render:   s.Render,
	}

	res, err := handler(ctx, cmd)
	if err != nil {
		entry.WithError(err).Warn("command failed")
		return []string{"an error has occurred: " + err.Error()}
	}

	var out []string
	for _, l := range res.Lines {
		out = append(out, Wrap(l, s.width)...)
	}

	if !res.MoveTo.IsNil() {
		if _, ok := s.World.Entity(res.MoveTo); !ok {
			entry.WithField("to", res.MoveTo).Error(ErrNoLocation)
			return append(out, "an error has occurred: "+ErrNoLocation.Error())
		}
		entry.WithFields(logrus.Fields{"from": s.Location, "to": res.MoveTo}).Info("player moved")
		s.Location = res.MoveTo
		out = append(out, s.Look()...)
	}

	return out
}
