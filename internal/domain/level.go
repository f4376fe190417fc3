package domain

import "strings"

// Level is the experience level shared by professional profiles and
// opportunity listings.
type Level string

const (
	LevelJunior Level = "junior"
	LevelMid    Level = "mid"
	LevelSenior Level = "senior"
)

func Levels() []Level {
	return []Level{LevelJunior, LevelMid, LevelSenior}
}

func (l Level) Valid() bool {
	switch l {
	case LevelJunior, LevelMid, LevelSenior:
		return true
	}
	return false
}

func ParseLevel(s string) (Level, bool) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	if l == "" {
		return "", true
	}
	if !l.Valid() {
		return "", false
	}
	return l, true
}
