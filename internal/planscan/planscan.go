// Package planscan extracts set/rep checklist candidates from generated plan
// text. The scan is best effort: it only reports lines that literally carry
// an NxM token and never invents entries for prose, so the workout-log page
// can offer the candidates for one-by-one acceptance.
package planscan

import (
	"regexp"
	"strconv"
	"strings"
)

// Candidate is one scanned checklist row: the exercise name found next to
// the NxM token and the parsed set/rep counts.
type Candidate struct {
	Exercise string
	Sets     int
	Reps     int
}

const (
	// maxExerciseName bounds the scanned name length in runes.
	maxExerciseName = 30

	// maxReps rejects absurd rep counts; three-digit "reps" are almost
	// always distances or weights.
	maxReps = 99
)

// setRepPattern matches an NxM token with optional spaces around the
// separator. The guards on both sides keep digits of longer numbers from
// being split into a bogus match.
var setRepPattern = regexp.MustCompile(`(?i)(?:^|[^\d])(\d{1,2})\s*[x×]\s*(\d{1,3})(?:\D|$)`)

// leadingMarkerPattern strips list bullets and numbering from the front of a
// scanned name ("- ", "* ", "1. ", "2) ", "> ").
var leadingMarkerPattern = regexp.MustCompile(`^(?:[-*+•>]\s*|\d{1,2}[.)]\s*)+`)

// Scan walks text line by line and returns every valid set/rep candidate, at
// most one per line. It never panics and returns nil for text without a
// single NxM token.
func Scan(text string) []Candidate {
	var out []Candidate
	for _, line := range strings.Split(text, "\n") {
		if c, ok := scanLine(line); ok {
			out = append(out, c)
		}
	}
	return out
}

func scanLine(line string) (Candidate, bool) {
	loc := setRepPattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return Candidate{}, false
	}

	sets, err := strconv.Atoi(line[loc[2]:loc[3]])
	if err != nil {
		return Candidate{}, false
	}
	reps, err := strconv.Atoi(line[loc[4]:loc[5]])
	if err != nil {
		return Candidate{}, false
	}
	if sets < 1 || reps < 1 || reps > maxReps {
		return Candidate{}, false
	}

	// The name usually precedes the token ("Push-ups — 3x10"); when the
	// token leads ("3x10 Push-ups") the rest of the line is the name.
	name := cleanExerciseName(line[:loc[2]])
	if name == "" {
		name = cleanExerciseName(strings.TrimLeft(line[loc[5]:], " \t-–—:;,.)|"))
	}
	if name == "" {
		return Candidate{}, false
	}

	return Candidate{Exercise: name, Sets: sets, Reps: reps}, true
}

// cleanExerciseName turns the raw text before the NxM token into a usable
// exercise name: markdown decoration and list markers go, trailing separators
// go, and the result is capped at maxExerciseName runes.
func cleanExerciseName(raw string) string {
	s := strings.TrimSpace(raw)
	s = leadingMarkerPattern.ReplaceAllString(s, "")
	s = strings.Map(func(r rune) rune {
		switch r {
		case '*', '_', '`', '#':
			return -1
		}
		return r
	}, s)
	s = trimSeparators(s)

	if runes := []rune(s); len(runes) > maxExerciseName {
		s = trimSeparators(string(runes[:maxExerciseName]))
	}

	return s
}

func trimSeparators(s string) string {
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s), "-–—:;,.(|"))
}
