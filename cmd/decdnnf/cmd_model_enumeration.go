package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crillab/decdnnf-go/algorithms"
	"github.com/crillab/decdnnf-go/core"
)

var (
	elideFreeVars bool
	maxModels     int
)

var modelEnumerationCmd = &cobra.Command{
	Use:   "model-enumeration",
	Short: "Enumerate the models of a Decision-DNNF, one per line",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDDNNF()
		if err != nil {
			return err
		}
		assumptions, err := parseAssumptions(d.NVars())
		if err != nil {
			return err
		}
		enumerator := algorithms.NewModelEnumerator(d, elideFreeVars)
		enumerator.SetAssumptions(assumptions)

		count := 0
		for {
			if maxModels > 0 && count >= maxModels {
				break
			}
			model := enumerator.ComputeNextModel()
			if model == nil {
				break
			}
			printModel(model)
			count++
		}
		return nil
	},
}

func init() {
	modelEnumerationCmd.Flags().BoolVar(&elideFreeVars, "elide-free-vars", false, "emit one representative per group of otherwise-identical models")
	modelEnumerationCmd.Flags().IntVar(&maxModels, "max-models", 0, "stop after this many models (0 means unbounded)")
}

func printModel(model []*core.Literal) {
	for i, v := range modelToDIMACS(model) {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(v)
	}
	fmt.Println()
}
