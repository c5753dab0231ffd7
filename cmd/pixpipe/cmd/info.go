package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pixpipe/pixpipe/internal/inspect"
)

// NewInfoCmd creates the info cobra command.
func NewInfoCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <input>",
		Short: "inspect an image without transforming it",
		Long:  "Prints container format, dimensions, color model and depth, per-channel histogram statistics, and dominant colors.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, _ := cmd.Flags().GetInt("colors")
			return runInfo(args[0], colors)
		},
	}
	cmd.Flags().Int("colors", 5, "Number of dominant colors to report")
	return cmd
}

func runInfo(path string, colors int) error {
	info, img, err := inspect.File(path)
	if err != nil {
		return err
	}

	fmt.Println("=== Image ===")
	fmt.Printf("Format: %s\n", info.Format)
	fmt.Printf("Dimensions: %dx%d\n", info.Width, info.Height)
	fmt.Printf("ColorModel: %s\n", info.ColorModel)
	fmt.Printf("ColorDepth: %s\n", info.ColorDepth)
	fmt.Printf("HasAlpha: %v\n", info.HasAlpha)
	fmt.Printf("FileSize: %d bytes\n", info.FileSizeBytes)

	fmt.Println()
	fmt.Println("=== Channels ===")
	for _, cs := range inspect.Channels(img) {
		fmt.Printf("%-6s min=%3d max=%3d peak=%3d (%d px)\n",
			cs.Channel, cs.Min, cs.Max, cs.Peak, cs.PeakCount)
	}

	fmt.Println()
	fmt.Println("=== Dominant colors ===")
	for _, c := range inspect.DominantColors(img, colors) {
		fmt.Printf("%s %5.1f%%  h=%3.0f s=%.2f l=%.2f\n", c.Hex, c.Percentage, c.H, c.S, c.L)
	}
	return nil
}
