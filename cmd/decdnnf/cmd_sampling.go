package main

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crillab/decdnnf-go/algorithms"
)

var sampleCount int

var samplingCmd = &cobra.Command{
	Use:   "sampling",
	Short: "Draw models uniformly at random",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDDNNF()
		if err != nil {
			return err
		}
		assumptions, err := parseAssumptions(d.NVars())
		if err != nil {
			return err
		}
		counter := algorithms.NewModelCounter(d, false)
		counter.SetAssumptions(assumptions)
		engine := algorithms.NewDirectAccessEngine(counter)

		n := engine.NModels()
		if n.Sign() == 0 {
			return fmt.Errorf("the formula is unsatisfiable")
		}
		for i := 0; i < sampleCount; i++ {
			k, err := rand.Int(rand.Reader, n)
			if err != nil {
				return fmt.Errorf("drawing a random index: %w", err)
			}
			printModel(engine.Model(k))
		}
		return nil
	},
}

func init() {
	samplingCmd.Flags().IntVarP(&sampleCount, "count", "n", 1, "number of models to draw, with replacement")
}
