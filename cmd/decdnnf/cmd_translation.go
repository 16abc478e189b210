package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crillab/decdnnf-go/ioformat"
)

var (
	outputPath   string
	outputFormat string
)

var translationCmd = &cobra.Command{
	Use:   "translation",
	Short: "Translate a Decision-DNNF into another wire format",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDDNNF()
		if err != nil {
			return err
		}

		out := os.Stdout
		if outputPath != "" {
			f, err := os.Create(outputPath)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		switch outputFormat {
		case "binary":
			return ioformat.WriteBinary(out, d)
		case "c2d":
			return ioformat.WriteC2D(out, d)
		default:
			return fmt.Errorf("unknown --to format %q (want binary or c2d)", outputFormat)
		}
	},
}

func init() {
	translationCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output path (default: stdout)")
	translationCmd.Flags().StringVar(&outputFormat, "to", "binary", "target format: binary or c2d")
}
