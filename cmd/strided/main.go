// Package main provides the strided demo CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/strided-ml/strided/tensor"
)

const version = "v0.1.0"

// runDemo builds a 3x4 arange tensor, reads one element, reshapes it to
// 2x6 without copying, and prints each step.
func runDemo(_ *cobra.Command, _ []string) error {
	t, err := tensor.Arange(0, 1, tensor.Shape{3, 4})
	if err != nil {
		return err
	}
	defer t.Free()

	fmt.Println("Tensor:")
	fmt.Println(t)

	v, err := t.Get(1, 2)
	if err != nil {
		return err
	}
	fmt.Printf("Value at index (1, 2): %.2f\n", v)

	r, err := t.Reshape(tensor.Shape{2, 6})
	if err != nil {
		return err
	}
	defer r.Free()

	fmt.Println("Reshaped to (2, 6):")
	fmt.Println(r)
	return nil
}

func newCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "strided",
		Short:         "Minimal strided tensor library",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: runDemo,
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "demo",
			Short: "Run the arange/reshape demonstration",
			RunE:  runDemo,
		},
		&cobra.Command{
			Use:   "version",
			Short: "Show version",
			Run: func(_ *cobra.Command, _ []string) {
				fmt.Printf("strided %s\n", version)
			},
		},
	)

	return rootCmd
}

func main() {
	if err := newCLI().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
