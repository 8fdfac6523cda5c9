package systems

import (
	"fmt"
	"strconv"
	"strings"

	cfg "github.com/automoto/floe/config"
	"github.com/automoto/floe/session"
	"github.com/automoto/floe/shared/leveldata"
)

// Script is a scripted input sequence for headless runs. Each step holds its
// input for a number of frames; the last step repeats forever.
type Script []ScriptStep

type ScriptStep struct {
	Input  Input
	Frames int
}

// ParseScript reads a comma separated list of steps. A step is actions
// joined by '+' with an optional "*frames" suffix, for example
// "right*120,right+jump*30,none*10,right". "none" or an empty step holds
// nothing.
func ParseScript(src string) (Script, error) {
	var script Script
	src = strings.TrimSpace(src)
	if src == "" {
		return script, nil
	}
	for _, token := range strings.Split(src, ",") {
		token = strings.TrimSpace(token)
		step := ScriptStep{Frames: 1}

		if actions, count, ok := strings.Cut(token, "*"); ok {
			n, err := strconv.Atoi(strings.TrimSpace(count))
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("script step %q: bad frame count", token)
			}
			step.Frames = n
			token = actions
		}

		for _, name := range strings.Split(token, "+") {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "" || name == "none" {
				continue
			}
			action, ok := cfg.ParseAction(name)
			if !ok {
				return nil, fmt.Errorf("script step %q: unknown action %q", token, name)
			}
			step.Input[action] = true
		}
		script = append(script, step)
	}
	return script, nil
}

// At returns the input for a frame number.
func (sc Script) At(frame int) Input {
	if len(sc) == 0 {
		return Input{}
	}
	for _, step := range sc {
		if frame < step.Frames {
			return step.Input
		}
		frame -= step.Frames
	}
	return sc[len(sc)-1].Input
}

// SimResult summarizes a headless run.
type SimResult struct {
	Frames   int
	Outcome  Outcome
	Attempts int // level attempts started, including the first
	Level    string
}

// Simulate plays levels from s.LevelIndex without a window, feeding the
// script one frame at a time with a frame ratio of dt. Lost attempts restart
// the level; finishing moves to the next level. It stops after frames frames,
// at game over, or once the last level is finished.
func Simulate(levels []*leveldata.Level, s *session.State, script Script, frames int, dt float64, sink EventSink) (SimResult, error) {
	if len(levels) == 0 {
		return SimResult{}, leveldata.ErrNoLevels
	}
	if s.LevelIndex < 0 || s.LevelIndex >= len(levels) {
		return SimResult{}, fmt.Errorf("simulate: level index %d out of range", s.LevelIndex)
	}

	level := levels[s.LevelIndex]
	s.AdvanceLevel(s.LevelIndex, level.Name)
	w, err := NewWorld(level, s, sink)
	if err != nil {
		return SimResult{}, err
	}

	res := SimResult{Attempts: 1, Level: level.Name, Outcome: OutcomeRunning}
	for res.Frames < frames {
		outcome := w.Step(s, script.At(res.Frames), dt)
		res.Frames++

		switch outcome {
		case OutcomeLost:
			res.Attempts++
			w.Reset(s)
		case OutcomeGameOver:
			res.Outcome = outcome
			return res, nil
		case OutcomeFinished:
			next := s.LevelIndex + 1
			if next >= len(levels) {
				res.Outcome = outcome
				return res, nil
			}
			s.AdvanceLevel(next, levels[next].Name)
			if w, err = NewWorld(levels[next], s, sink); err != nil {
				return res, err
			}
			res.Attempts++
			res.Level = levels[next].Name
		}
	}
	res.Outcome = w.Outcome()
	return res, nil
}
