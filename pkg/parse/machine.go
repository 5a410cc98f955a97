package parse

import (
	"strconv"
	"strings"

	"github.com/lance6716/aoc-circuits/pkg/util"
)

// Machine is one line of the factory manual.
type Machine struct {
	// Lights is the wanted indicator pattern, true for '#'.
	Lights []bool
	// Buttons lists the indicator (and counter) indexes each button toggles.
	Buttons [][]int
	// Joltage is the wanted value of every counter.
	Joltage []int
}

// Machines parses one "[.##.] (3) (1,3) ... {3,5,4,7}" machine per line.
func Machines(input string) ([]Machine, error) {
	ls := lines(input)
	ret := make([]Machine, 0, len(ls))
	for i, line := range ls {
		m, err := parseMachine(line)
		if err != nil {
			return nil, util.MalformedInputf("line %d: %v", i+1, err)
		}
		ret = append(ret, m)
	}
	return ret, nil
}

func parseMachine(line string) (Machine, error) {
	var m Machine
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return m, util.MalformedInputf("too few fields in %q", line)
	}

	lights, ok := enclosed(fields[0], '[', ']')
	if !ok {
		return m, util.MalformedInputf("expect [lights], got %q", fields[0])
	}
	for _, c := range lights {
		switch c {
		case '#':
			m.Lights = append(m.Lights, true)
		case '.':
			m.Lights = append(m.Lights, false)
		default:
			return m, util.MalformedInputf("unknown light %q", c)
		}
	}

	joltage, ok := enclosed(fields[len(fields)-1], '{', '}')
	if !ok {
		return m, util.MalformedInputf("expect {joltage}, got %q", fields[len(fields)-1])
	}
	var err error
	if m.Joltage, err = intList(joltage); err != nil {
		return m, err
	}

	for _, f := range fields[1 : len(fields)-1] {
		button, ok := enclosed(f, '(', ')')
		if !ok {
			return m, util.MalformedInputf("expect (button), got %q", f)
		}
		idx, err := intList(button)
		if err != nil {
			return m, err
		}
		for _, i := range idx {
			if i < 0 || i >= len(m.Lights) || i >= len(m.Joltage) {
				return m, util.MalformedInputf("button %s refers to unknown index %d", f, i)
			}
		}
		m.Buttons = append(m.Buttons, idx)
	}
	return m, nil
}

func enclosed(s string, opening, closing byte) (string, bool) {
	if len(s) < 2 || s[0] != opening || s[len(s)-1] != closing {
		return "", false
	}
	return s[1 : len(s)-1], true
}

func intList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	ret := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return nil, util.MalformedInputf("bad number %q", p)
		}
		ret[i] = v
	}
	return ret, nil
}
