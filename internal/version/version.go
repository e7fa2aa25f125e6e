// Package version хранит метаданные сборки, которые задаются через ldflags:
//
//	go build -ldflags "-X github.com/mgrabmueller/mudstuck/internal/version.BuildDate=2026-10-17"
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
)

// Номер сборки - число дней от этой даты
var buildEpoch = time.Date(2016, time.May, 1, 0, 0, 0, 0, time.UTC)

// Info - метаданные сборки
type Info struct {
	Build  int // 0, если дата не задана или некорректна
	Date   string
	Commit string
}

// BuildNumber вычисляет номер сборки из BuildDate.
func BuildNumber(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("build date is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid build date %q: %w", date, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("build date %s is before epoch", date)
	}

	// Обе даты в UTC, переходов на летнее время нет
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Current возвращает метаданные текущего бинарника. Если коммит не задан
// через ldflags, он берется из vcs.revision, записанного go build.
func Current() Info {
	info := Info{Date: BuildDate, Commit: BuildCommit}
	if n, err := BuildNumber(BuildDate); err == nil {
		info.Build = n
	}

	if info.Commit == "" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" {
					info.Commit = s.Value
				}
			}
		}
	}
	return info
}

func (i Info) String() string {
	commit := i.Commit
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if commit == "" {
		commit = "unknown"
	}
	if i.Build == 0 {
		return fmt.Sprintf("mudstuck dev (commit %s)", commit)
	}
	return fmt.Sprintf("mudstuck build %d (%s, commit %s)", i.Build, i.Date, commit)
}
