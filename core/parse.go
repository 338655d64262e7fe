package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidPoint = errors.New("invalid point")

// ParsePoint reads a point written as "x,y". Surrounding whitespace and a
// single pair of parentheses are allowed, eg "(3, -4)". Coordinates beyond
// MaxCoordinate are rejected.
func ParsePoint(s string) (Point, error) {
	text := strings.TrimSpace(s)
	if strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")") {
		text = text[1 : len(text)-1]
	}

	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("%w: %q needs exactly two coordinates", ErrInvalidPoint, s)
	}

	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Point{}, fmt.Errorf("%w: x coordinate of %q: %w", ErrInvalidPoint, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Point{}, fmt.Errorf("%w: y coordinate of %q: %w", ErrInvalidPoint, s, err)
	}

	if !inRange(x) || !inRange(y) {
		return Point{}, fmt.Errorf("%w: %q has a coordinate outside ±%d", ErrInvalidPoint, s, MaxCoordinate)
	}

	return NewPoint(x, y), nil
}

// Abs can't be used here, Abs(math.MinInt) is negative.
func inRange(v int) bool {
	return v >= -MaxCoordinate && v <= MaxCoordinate
}
