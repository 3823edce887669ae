// Command workout prints summaries for a fixed set of sample workout packages.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"example.com/workout/internal/domain"
	"example.com/workout/internal/events"
)

var packages = []events.WorkoutPackage{
	{WorkoutType: domain.CodeSwimming, Data: []float64{720, 1, 80, 25, 40}},
	{WorkoutType: domain.CodeRunning, Data: []float64{15000, 1, 75}},
	{WorkoutType: domain.CodeWalking, Data: []float64{9000, 1, 75, 180}},
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("workout: ")

	if err := run(os.Stdout, packages); err != nil {
		log.Fatal(err)
	}
}

// run writes one summary line per package, in order, and stops at the first invalid one.
func run(w io.Writer, pkgs []events.WorkoutPackage) error {
	for i, pkg := range pkgs {
		training, err := domain.ReadPackage(pkg.WorkoutType, pkg.Data)
		if err != nil {
			return fmt.Errorf("package %d: %w", i, err)
		}
		if _, err := fmt.Fprintln(w, training.Info().Message()); err != nil {
			return err
		}
	}
	return nil
}
