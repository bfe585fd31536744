package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/structkit/structkit/internal/repeat"
)

var repeatCmd = &cobra.Command{
	Use:   "repeat <expression>",
	Short: "Parse and validate a repetition expression",
	Long: `Validate an expression of the form

  structkit repeat 'i in 0..8 { f(i) }'

and report the parsed range. Expansion of the body across the range is
not implemented in this release; this command checks syntax only.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := repeat.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid repetition expression: %w", err)
		}

		bound := ".."
		if seq.Inclusive {
			bound = "..="
		}
		fmt.Printf("loop variable %q over %d%s%d, body %d byte(s)\n",
			seq.Var, seq.Start, bound, seq.End, len(seq.Body))
		return nil
	},
}
