package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/kpfaulkner/manhattan-go/core"
	"github.com/kpfaulkner/manhattan-go/options"
	"github.com/kpfaulkner/manhattan-go/util"
	log "github.com/sirupsen/logrus"
)

var ErrNoCandidates = errors.New("no candidate points")

// Result is one computed line of a pairs input.
type Result struct {
	Line     int
	From     core.Point
	To       core.Point
	Distance int
}

type Calculator struct {
	options *options.KataOptions
	metrics *Metrics
}

// NewCalculator builds a calculator. When opts.Metrics is set it gets its
// own private metrics registry.
func NewCalculator(opts *options.KataOptions) *Calculator {
	opt := options.NewKataOptions(opts)
	var metrics *Metrics
	if opt.Metrics {
		metrics = NewMetrics()
	}
	return NewCalculatorWithMetrics(opt, metrics)
}

func NewCalculatorWithMetrics(opts *options.KataOptions, metrics *Metrics) *Calculator {
	return &Calculator{
		options: options.NewKataOptions(opts),
		metrics: metrics,
	}
}

func (c *Calculator) Metrics() *Metrics {
	return c.metrics
}

// Distance computes and records a single distance.
func (c *Calculator) Distance(a core.Point, b core.Point) int {
	d := a.ManhattanDistance(b)
	c.metrics.recordDistance(d)
	return d
}

// Pairs reads one pair of points per line and returns their distances.
// Blank lines and lines starting with # are skipped. The two points are
// separated by "->", ";" or whitespace; points containing spaces need one
// of the first two.
func (c *Calculator) Pairs(r io.Reader) ([]Result, error) {
	var results []Result
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		from, to, err := parsePair(line)
		if err != nil {
			c.metrics.recordParseError()
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		d := c.Distance(from, to)
		if c.options.Debug {
			log.WithFields(log.Fields{"line": lineNo, "distance": d}).Debugf("pair %q", line)
		}
		results = append(results, Result{Line: lineNo, From: from, To: to, Distance: d})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading pairs: %w", err)
	}
	return results, nil
}

func parsePair(line string) (core.Point, core.Point, error) {
	var parts []string
	switch {
	case strings.Contains(line, "->"):
		parts = strings.Split(line, "->")
	case strings.Contains(line, ";"):
		parts = strings.Split(line, ";")
	default:
		parts = strings.Fields(line)
	}
	if len(parts) != 2 {
		return core.Point{}, core.Point{}, fmt.Errorf("%w: expected two points in %q", core.ErrInvalidPoint, line)
	}

	from, err := core.ParsePoint(parts[0])
	if err != nil {
		return core.Point{}, core.Point{}, err
	}
	to, err := core.ParsePoint(parts[1])
	if err != nil {
		return core.Point{}, core.Point{}, err
	}
	return from, to, nil
}

// Matrix computes all-pairs distances. Only the upper triangle is computed,
// the lower is mirrored and the diagonal stays zero.
func (c *Calculator) Matrix(points []core.Point) *util.Matrix[int] {
	m := util.New2DMatrix[int](len(points), len(points))
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			d := c.Distance(points[i], points[j])
			m.Set(i, j, d)
			m.Set(j, i, d)
		}
	}
	if c.options.Debug {
		log.WithField("diameter", util.Max(m.Data...)).Debugf("distance matrix of %d points", len(points))
	}
	return m
}

// Nearest returns the index of the closest candidate to from and its
// distance. The first candidate wins ties.
func (c *Calculator) Nearest(from core.Point, candidates []core.Point) (int, int, error) {
	if len(candidates) == 0 {
		return -1, 0, ErrNoCandidates
	}

	distances := make([]int, len(candidates))
	for i, candidate := range candidates {
		distances[i] = c.Distance(from, candidate)
	}
	best := util.Min(distances...)
	return slices.Index(distances, best), best, nil
}
