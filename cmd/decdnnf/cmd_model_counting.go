package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crillab/decdnnf-go/algorithms"
)

var partialCount bool

var modelCountingCmd = &cobra.Command{
	Use:   "model-counting",
	Short: "Count the models of a Decision-DNNF",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDDNNF()
		if err != nil {
			return err
		}
		assumptions, err := parseAssumptions(d.NVars())
		if err != nil {
			return err
		}
		counter := algorithms.NewModelCounter(d, partialCount)
		counter.SetAssumptions(assumptions)
		fmt.Println(counter.GlobalCount().String())
		return nil
	},
}

func init() {
	modelCountingCmd.Flags().BoolVar(&partialCount, "partial", false, "count root-to-leaf paths instead of full models")
}
