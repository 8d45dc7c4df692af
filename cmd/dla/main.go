package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"droplet/pkg/dla"
)

func main() {
	var (
		n          = flag.Int("n", 1000, "number of particles to aggregate")
		dim        = flag.Int("dim", 2, "lattice dimensionality (2 or 3)")
		lattice    = flag.String("lattice", "square", "lattice geometry (square, triangle)")
		attractor  = flag.String("attractor", "point", "seed shape (point, line, circle, sphere, plane)")
		stickiness = flag.Float64("stickiness", 1.0, "stick probability in [0,1]")
		attSize    = flag.Int("att-size", 1, "linear size of the seed shape")
		bOffset    = flag.Int("b-offset", dla.DefaultBoundaryOffset, "spawn surface offset from the cluster edge")
		stepLimit  = flag.Uint64("step-limit", dla.DefaultStepLimit, "per-walker step budget (0 = unlimited)")
		seed       = flag.Int64("seed", 0, "PRNG seed (0 = time-based)")
		csvPath    = flag.String("csv", "", "write particle positions and statistics as CSV to this file")
		jsonPath   = flag.String("json", "", "write the full run report as JSON to this file")
		quiet      = flag.Bool("quiet", false, "suppress the progress display")
	)
	flag.Parse()

	cfg := dla.FromMap(map[string]string{
		"dim":        strconv.Itoa(*dim),
		"lattice":    *lattice,
		"attractor":  *attractor,
		"stickiness": strconv.FormatFloat(*stickiness, 'f', -1, 64),
		"att_size":   strconv.Itoa(*attSize),
		"b_offset":   strconv.Itoa(*bOffset),
		"step_limit": strconv.FormatUint(*stepLimit, 10),
		"seed":       strconv.FormatInt(*seed, 10),
	})

	agg, err := dla.New(cfg)
	if err != nil {
		log.Fatalf("dla: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var progress dla.ProgressFunc
	if !*quiet {
		last := -1
		progress = func(done, total int) {
			pct := done * 100 / total
			if pct != last {
				fmt.Fprintf(os.Stderr, "\rProgress: %d%%", pct)
				last = pct
			}
		}
	}

	genErr := agg.Generate(ctx, *n, progress)
	if !*quiet {
		fmt.Fprintln(os.Stderr)
	}
	switch {
	case genErr == nil:
	case errors.Is(genErr, context.Canceled):
		log.Printf("interrupted after %d particles", agg.Len()-agg.SeedLen())
	case errors.Is(genErr, dla.ErrStepLimit):
		log.Printf("step limit reached after %d particles", agg.Len()-agg.SeedLen())
	default:
		log.Fatalf("dla: %v", genErr)
	}

	printSummary(os.Stdout, agg)

	if *csvPath != "" {
		if err := writeFile(*csvPath, agg, writeCSV); err != nil {
			log.Fatalf("csv: %v", err)
		}
	}
	if *jsonPath != "" {
		if err := writeFile(*jsonPath, agg, writeJSON); err != nil {
			log.Fatalf("json: %v", err)
		}
	}
}

func writeFile(path string, agg *dla.Aggregate, write func(io.Writer, *dla.Aggregate) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, agg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printSummary(w io.Writer, agg *dla.Aggregate) {
	stuck := agg.Len() - agg.SeedLen()
	fmt.Fprintf(w, "particles: %d (seed %d)\n", stuck, agg.SeedLen())
	fmt.Fprintf(w, "extents: |x|<=%d |y|<=%d |z|<=%d r2<=%d\n",
		agg.MaxX(), agg.MaxY(), agg.MaxZ(), agg.MaxRadiusSquared())
	fmt.Fprintf(w, "spawn diameter: %d\n", agg.SpawnDiameter())
	meanSteps, meanBcolls := means(agg.RequiredSteps(), agg.BoundaryCollisions())
	fmt.Fprintf(w, "mean steps: %.1f  mean boundary collisions: %.2f\n", meanSteps, meanBcolls)
}

func means(steps, bcolls []uint64) (float64, float64) {
	if len(steps) == 0 {
		return 0, 0
	}
	var sumSteps, sumBcolls uint64
	for i := range steps {
		sumSteps += steps[i]
		sumBcolls += bcolls[i]
	}
	n := float64(len(steps))
	return float64(sumSteps) / n, float64(sumBcolls) / n
}
