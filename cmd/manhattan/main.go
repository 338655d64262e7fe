package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kpfaulkner/manhattan-go/batch"
	"github.com/kpfaulkner/manhattan-go/core"
	"github.com/kpfaulkner/manhattan-go/options"
	"github.com/prometheus/common/expfmt"
	log "github.com/sirupsen/logrus"
)

func main() {
	pointA := flag.String("a", "", "first point, eg \"1,1\"")
	pointB := flag.String("b", "", "second point, eg \"1,2\"")
	infile := flag.String("i", "", "file of point pairs, one pair per line (- for stdin)")
	debug := flag.Bool("debug", false, "debug logging")
	metrics := flag.Bool("metrics", false, "write metrics to stderr when done")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	opts := options.NewKataOptions(&options.KataOptions{Debug: *debug, Metrics: *metrics})
	calc := batch.NewCalculator(opts)

	if err := run(calc, *pointA, *pointB, *infile, os.Stdout); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	if *metrics {
		if err := writeMetrics(calc.Metrics(), os.Stderr); err != nil {
			log.Errorf("writing metrics: %v", err)
			os.Exit(1)
		}
	}
}

func run(calc *batch.Calculator, pointA string, pointB string, infile string, out io.Writer) error {
	switch {
	case infile != "":
		return runFile(calc, infile, out)
	case pointA != "" && pointB != "":
		return runSingle(calc, pointA, pointB, out)
	default:
		return fmt.Errorf("either -i or both -a and -b must be specified")
	}
}

func runSingle(calc *batch.Calculator, pointA string, pointB string, out io.Writer) error {
	a, err := core.ParsePoint(pointA)
	if err != nil {
		return err
	}
	b, err := core.ParsePoint(pointB)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "%d\n", calc.Distance(a, b))
	return err
}

func runFile(calc *batch.Calculator, infile string, out io.Writer) error {
	var r io.Reader = os.Stdin
	if infile != "-" {
		f, err := os.Open(infile)
		if err != nil {
			return fmt.Errorf("opening %s: %w", infile, err)
		}
		defer f.Close()
		r = f
	}

	results, err := calc.Pairs(r)
	if err != nil {
		return err
	}
	log.Debugf("computed %d distances", len(results))

	for _, res := range results {
		if _, err := fmt.Fprintf(out, "%d\n", res.Distance); err != nil {
			return err
		}
	}
	return nil
}

func writeMetrics(metrics *batch.Metrics, w io.Writer) error {
	gatherer := metrics.Gatherer()
	if gatherer == nil {
		return nil
	}
	families, err := gatherer.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
