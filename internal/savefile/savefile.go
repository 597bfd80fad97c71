// Package savefile encodes and decodes hacker game snapshots as small
// labelled text files, so a run can be suspended and resumed later.
package savefile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/nlopatin/hackergrid/internal/games/hacker/engine"
)

// ErrMalformed reports a save file that does not follow the expected
// line format.
var ErrMalformed = errors.New("savefile: malformed save data")

// State is everything needed to resume a run: counters plus the full
// grid contents keyed by position, with entity kinds as their tag bytes.
type State struct {
	Time      int
	Life      int
	Shots     int
	Collected int
	Destroyed int
	Entities  map[engine.Position]byte
}

const (
	labelTime      = "Time: "
	labelLife      = "Life: "
	labelShots     = "Shots: "
	labelCollected = "Collected: "
	labelDestroyed = "Destroyed: "
	labelPositions = "Positions: "
	labelEntities  = "Entities: "
)

// Encode renders the state as seven labelled lines. Positions and their
// matching entity tags are emitted in a stable order so identical states
// produce identical files.
func Encode(s State) string {
	positions := make([]engine.Position, 0, len(s.Entities))
	for p := range s.Entities {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Y != positions[j].Y {
			return positions[i].Y < positions[j].Y
		}
		return positions[i].X < positions[j].X
	})

	posParts := make([]string, len(positions))
	tagParts := make([]string, len(positions))
	for i, p := range positions {
		posParts[i] = p.String()
		tagParts[i] = string(s.Entities[p])
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%d\n", labelTime, s.Time)
	fmt.Fprintf(&b, "%s%d\n", labelLife, s.Life)
	fmt.Fprintf(&b, "%s%d\n", labelShots, s.Shots)
	fmt.Fprintf(&b, "%s%d\n", labelCollected, s.Collected)
	fmt.Fprintf(&b, "%s%d\n", labelDestroyed, s.Destroyed)
	fmt.Fprintf(&b, "%s%s\n", labelPositions, strings.Join(posParts, "|"))
	fmt.Fprintf(&b, "%s%s\n", labelEntities, strings.Join(tagParts, "|"))
	return b.String()
}

// Decode parses text produced by Encode. It validates the line labels
// and the position syntax but not the tags themselves; unknown tags are
// the engine's concern when the state is applied.
func Decode(text string) (State, error) {
	var s State

	lines := make([]string, 0, 7)
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if len(lines) != 7 {
		return s, fmt.Errorf("%w: got %d lines, want 7", ErrMalformed, len(lines))
	}

	var err error
	if s.Time, err = intField(lines[0], labelTime); err != nil {
		return s, err
	}
	if s.Life, err = intField(lines[1], labelLife); err != nil {
		return s, err
	}
	if s.Shots, err = intField(lines[2], labelShots); err != nil {
		return s, err
	}
	if s.Collected, err = intField(lines[3], labelCollected); err != nil {
		return s, err
	}
	if s.Destroyed, err = intField(lines[4], labelDestroyed); err != nil {
		return s, err
	}

	posBody, err := fieldBody(lines[5], labelPositions)
	if err != nil {
		return s, err
	}
	tagBody, err := fieldBody(lines[6], labelEntities)
	if err != nil {
		return s, err
	}

	s.Entities = make(map[engine.Position]byte)
	if posBody == "" && tagBody == "" {
		return s, nil
	}

	posParts := strings.Split(posBody, "|")
	tagParts := strings.Split(tagBody, "|")
	if len(posParts) != len(tagParts) {
		return s, fmt.Errorf("%w: %d positions but %d entities", ErrMalformed, len(posParts), len(tagParts))
	}

	for i, part := range posParts {
		pos, err := parsePosition(part)
		if err != nil {
			return s, err
		}
		tag := tagParts[i]
		if len(tag) != 1 {
			return s, fmt.Errorf("%w: entity tag %q", ErrMalformed, tag)
		}
		s.Entities[pos] = tag[0]
	}
	return s, nil
}

func intField(line, label string) (int, error) {
	body, err := fieldBody(line, label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(body)
	if err != nil {
		return 0, fmt.Errorf("%w: %s%q is not a number", ErrMalformed, label, body)
	}
	return n, nil
}

func fieldBody(line, label string) (string, error) {
	if !strings.HasPrefix(line, label) {
		return "", fmt.Errorf("%w: expected %q prefix in %q", ErrMalformed, strings.TrimSpace(label), line)
	}
	return line[len(label):], nil
}

// parsePosition reads the "(x, y)" form produced by Position.String.
func parsePosition(s string) (engine.Position, error) {
	inner, ok := strings.CutPrefix(s, "(")
	if !ok {
		return engine.Position{}, fmt.Errorf("%w: position %q", ErrMalformed, s)
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return engine.Position{}, fmt.Errorf("%w: position %q", ErrMalformed, s)
	}
	xs, ys, ok := strings.Cut(inner, ", ")
	if !ok {
		return engine.Position{}, fmt.Errorf("%w: position %q", ErrMalformed, s)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return engine.Position{}, fmt.Errorf("%w: position %q", ErrMalformed, s)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return engine.Position{}, fmt.Errorf("%w: position %q", ErrMalformed, s)
	}
	return engine.P(x, y), nil
}

// Save writes the encoded state to path, creating or truncating the file.
func Save(path string, s State) error {
	if err := os.WriteFile(path, []byte(Encode(s)), 0o644); err != nil {
		return fmt.Errorf("savefile: writing %s: %w", path, err)
	}
	return nil
}

// Load reads and decodes a save file from path.
func Load(path string) (State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return State{}, fmt.Errorf("savefile: reading %s: %w", path, err)
	}
	return Decode(string(data))
}
