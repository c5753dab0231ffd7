package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pixpipe/pixpipe/internal/pipeline"
)

// NewListCmd prints the fixed transform catalog.
func NewListCmd(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "print the transform catalog",
		Run: func(cmd *cobra.Command, args []string) {
			for _, t := range pipeline.Catalog() {
				fmt.Printf("%d\t%s\n", t.Index(), t)
			}
		},
	}
}
