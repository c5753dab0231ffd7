package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pixpipe/pixpipe/internal/codec"
	"github.com/pixpipe/pixpipe/internal/logging"
	"github.com/pixpipe/pixpipe/internal/pipeline"
	"github.com/pixpipe/pixpipe/internal/raster"
)

// NewTransformCmd creates the transform cobra command.
func NewTransformCmd(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "transform <input> <output> <index>",
		Short: "decode input, apply the transform at index, encode output",
		Long:  "Decodes the input container, applies the catalog transform selected by index, and encodes the result. Run 'pixpipe list' for the catalog.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("failed to parse transform index %q: %w", args[2], err)
			}
			return runTransform(ctx, args[0], args[1], index)
		},
	}
}

func runTransform(ctx context.Context, input, output string, index int) error {
	ctx = logging.AppendCtx(ctx, slog.String("run", uuid.NewString()))

	trans, err := pipeline.FromIndex(index)
	if err != nil {
		return err
	}

	rec, err := codec.Decode(input)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "input read",
		"path", input,
		"width", rec.Meta.Width,
		"height", rec.Meta.Height,
		"color", rec.Meta.Color.String(),
		"depth", rec.Meta.Depth.String(),
	)

	if rec.Meta.Depth != raster.DepthEight {
		return fmt.Errorf("the only supported bit depth is %s, input is %s",
			raster.DepthEight, rec.Meta.Depth)
	}

	out, err := trans.Apply(rec)
	if err != nil {
		return err
	}

	if err := codec.Encode(out, output); err != nil {
		return err
	}
	slog.InfoContext(ctx, "output written",
		"path", output,
		"transform", trans.String(),
		"width", out.Meta.Width,
		"height", out.Meta.Height,
		"color", out.Meta.Color.String(),
	)
	return nil
}
