package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/kpfaulkner/manhattan-go/batch"
	"github.com/kpfaulkner/manhattan-go/core"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

func main() {
	count := flag.Int("n", 2000, "number of random points")
	rounds := flag.Int("r", 5, "number of matrix builds")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	//p := profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	defer p.Stop()

	r := rand.New(rand.NewSource(*seed))
	points := make([]core.Point, *count)
	for i := range points {
		points[i] = core.NewPoint(r.Intn(20001)-10000, r.Intn(20001)-10000)
	}

	calc := batch.NewCalculator(nil)
	start := time.Now()
	for round := 0; round < *rounds; round++ {
		roundStart := time.Now()
		m := calc.Matrix(points)
		log.Debugf("round %d, first row sum %d", round, sum(m.GetRow(0)))
		fmt.Printf("matrix of %d points took %d ms\n", *count, time.Since(roundStart).Milliseconds())
	}
	fmt.Printf("total time %d ms\n", time.Since(start).Milliseconds())
}

func sum(row []int) int {
	total := 0
	for _, v := range row {
		total += v
	}
	return total
}
