// Command benchfft measures transform throughput for a list of sizes,
// covering the complex and real plans in forward, inverse, and round-trip
// modes. Output is labelled with the detected CPU features so results from
// different machines stay comparable.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"runtime"
	"strings"
	"time"

	mixedfft "github.com/cwbudde/algo-mixedfft"
	"github.com/cwbudde/algo-mixedfft/internal/cpu"
)

const modeInverse = "inverse"

func main() {
	var (
		sizeList = flag.String("sizes", "240,1024,1536,4096,12000", "comma-separated sizes")
		iters    = flag.Int("iters", 200, "benchmark iterations")
		warmup   = flag.Int("warmup", 10, "warmup iterations")
		mode     = flag.String("mode", "forward", "benchmark mode: forward, inverse, roundtrip, all")
		seed     = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}

	rnd := rand.New(rand.NewSource(*seed))

	fmt.Printf("cpu: %s\n", cpu.DetectFeatures())
	fmt.Printf("iters=%d warmup=%d\n", *iters, *warmup)
	fmt.Printf("%8s  %8s  %10s  %-24s  %12s\n", "size", "kind", "mode", "factors", "ns/op")

	for _, n := range sizes {
		for _, runMode := range resolveModes(*mode) {
			benchComplex(rnd, n, *iters, *warmup, runMode)

			if n%2 == 0 {
				benchReal(rnd, n, *iters, *warmup, runMode)
			}
		}
	}
}

func benchComplex(rnd *rand.Rand, n, iters, warmup int, mode string) {
	plan, err := mixedfft.NewPlan[float32](n)
	if err != nil {
		fmt.Printf("%8d  %8s  %10s  skipped: %v\n", n, "complex", mode, err)
		return
	}

	src := make([]mixedfft.Complex[float32], n)
	for i := range src {
		src[i] = mixedfft.Complex[float32]{Re: rnd.Float32() - 0.5, Im: rnd.Float32() - 0.5}
	}

	dst := make([]mixedfft.Complex[float32], n)
	freq := make([]mixedfft.Complex[float32], n)

	if mode == modeInverse {
		if err := plan.Forward(freq, src); err != nil {
			return
		}
	}

	run := func() error {
		switch mode {
		case modeInverse:
			return plan.Inverse(dst, freq)
		case "roundtrip":
			if err := plan.Forward(freq, src); err != nil {
				return err
			}

			return plan.Inverse(dst, freq)
		default:
			return plan.Forward(dst, src)
		}
	}

	nsPerOp, ok := measure(run, iters, warmup)
	if !ok {
		return
	}

	fmt.Printf("%8d  %8s  %10s  %-24s  %12.1f\n", n, "complex", mode, factorString(plan.Factors()), nsPerOp)
}

func benchReal(rnd *rand.Rand, n, iters, warmup int, mode string) {
	plan, err := mixedfft.NewRealPlan[float32](n)
	if err != nil {
		fmt.Printf("%8d  %8s  %10s  skipped: %v\n", n, "real", mode, err)
		return
	}

	src := make([]float32, n)
	for i := range src {
		src[i] = rnd.Float32() - 0.5
	}

	out := make([]float32, n)
	freq := make([]mixedfft.Complex[float32], n)

	if mode == modeInverse {
		if err := plan.Forward(freq, src); err != nil {
			return
		}
	}

	run := func() error {
		switch mode {
		case modeInverse:
			return plan.Inverse(out, freq)
		case "roundtrip":
			if err := plan.Forward(freq, src); err != nil {
				return err
			}

			return plan.Inverse(out, freq)
		default:
			return plan.Forward(freq, src)
		}
	}

	nsPerOp, ok := measure(run, iters, warmup)
	if !ok {
		return
	}

	fmt.Printf("%8d  %8s  %10s  %-24s  %12.1f\n", n, "real", mode, "", nsPerOp)
}

func measure(run func() error, iters, warmup int) (float64, bool) {
	for range warmup {
		if err := run(); err != nil {
			return 0, false
		}
	}

	runtime.GC()

	start := time.Now()

	for range iters {
		if err := run(); err != nil {
			return 0, false
		}
	}

	elapsed := time.Since(start)

	return float64(elapsed.Nanoseconds()) / float64(iters), true
}

func factorString(factors []mixedfft.Factor) string {
	parts := make([]string, 0, len(factors))
	for _, f := range factors {
		parts = append(parts, fmt.Sprintf("%d", f.Radix))
	}

	return strings.Join(parts, "x")
}

func resolveModes(mode string) []string {
	switch mode {
	case "all":
		return []string{"forward", "inverse", "roundtrip"}
	case "inverse", "roundtrip", "forward":
		return []string{mode}
	default:
		return []string{"forward"}
	}
}

func parseSizes(list string) []int {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var n int

		_, err := fmt.Sscanf(part, "%d", &n)
		if err != nil || n <= 0 {
			continue
		}

		out = append(out, n)
	}

	return out
}
