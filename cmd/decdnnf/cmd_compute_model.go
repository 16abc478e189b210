package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crillab/decdnnf-go/algorithms"
)

var computeModelCmd = &cobra.Command{
	Use:   "compute-model",
	Short: "Find a single satisfying model, if one exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDDNNF()
		if err != nil {
			return err
		}
		assumptions, err := parseAssumptions(d.NVars())
		if err != nil {
			return err
		}
		finder := algorithms.NewModelFinder(d)
		var dimacs []int
		if assumptions != nil {
			m := finder.FindModelUnderAssumptions(assumptions.Literals())
			if m == nil {
				return fmt.Errorf("no satisfying model under the given assumptions")
			}
			for _, l := range m {
				dimacs = append(dimacs, l.ToDIMACS())
			}
		} else {
			m := finder.FindModel()
			if m == nil {
				return fmt.Errorf("the formula is unsatisfiable")
			}
			for _, l := range m {
				dimacs = append(dimacs, l.ToDIMACS())
			}
		}
		for i, v := range dimacs {
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Print(v)
		}
		fmt.Println()
		return nil
	},
}
