// Package main provides ndstat, which fills a tensor with uniform draws
// from [0, 1) and prints its mean, variance and standard deviation.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/born-ml/ndcore/backend/cpu"
	"github.com/born-ml/ndcore/internal/config"
	"github.com/born-ml/ndcore/tensor"
)

const version = "v0.1.0-dev"

func main() {
	configPath := flag.String("config", "", "path to a YAML run configuration")
	showVersion := flag.Bool("version", false, "show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("ndstat %s\n", version)
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	if err := run(os.Stdout, cfg); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, cfg config.Run) error {
	opts := []tensor.Option{
		tensor.WithBackend(cpu.NewWithConfig(cfg.ParallelConfig())),
	}
	if cfg.Seed != 0 {
		opts = append(opts, tensor.WithRand(rand.New(rand.NewSource(cfg.Seed)))) //nolint:gosec // G404: statistical use
	}

	t, err := tensor.Uniform[float32](tensor.Shape(cfg.Shape), opts...)
	if err != nil {
		return fmt.Errorf("create tensor: %w", err)
	}
	defer t.Release()

	mean, err := t.Mean()
	if err != nil {
		return err
	}
	variance, err := t.Variance()
	if err != nil {
		return err
	}
	std, err := t.StdDev()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "MEAN: %v\n", mean)
	fmt.Fprintf(w, "VAR: %v\n", variance)
	fmt.Fprintf(w, "STD: %v\n", std)
	return nil
}
