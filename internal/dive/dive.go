// Package dive plots a submarine course from forward/down/up commands.
package dive

import (
	"fmt"
	"strings"
)

// Direction of a single command.
type Direction int

const (
	Forward Direction = iota
	Down
	Up
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts forward, down or up in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward":
		return Forward, nil
	case "down":
		return Down, nil
	case "up":
		return Up, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

type Command struct {
	Dir   Direction
	Value int
}

// Course is an ordered list of commands.
type Course struct {
	cmds []Command
}

func New(cmds []Command) *Course {
	return &Course{cmds: append([]Command(nil), cmds...)}
}

// Forward is the total horizontal distance.
func (c *Course) Forward() int {
	x := 0
	for _, cmd := range c.cmds {
		if cmd.Dir == Forward {
			x += cmd.Value
		}
	}
	return x
}

// NaiveDepth reads down and up as direct depth changes.
func (c *Course) NaiveDepth() int {
	depth := 0
	for _, cmd := range c.cmds {
		switch cmd.Dir {
		case Down:
			depth += cmd.Value
		case Up:
			depth -= cmd.Value
		}
	}
	return depth
}

// AimedDepth reads down and up as aim changes; forward moves depth by aim×value.
func (c *Course) AimedDepth() int {
	depth, aim := 0, 0
	for _, cmd := range c.cmds {
		switch cmd.Dir {
		case Down:
			aim += cmd.Value
		case Up:
			aim -= cmd.Value
		case Forward:
			depth += aim * cmd.Value
		}
	}
	return depth
}
