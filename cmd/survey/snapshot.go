package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Garsondee/Drone-Survey/internal/terrain"
)

type snapshotOptions struct {
	out    string
	width  int
	height int
	seed   int64
	format string
}

// newSnapshotCmd creates the snapshot subcommand.
func newSnapshotCmd() *cobra.Command {
	var opts snapshotOptions

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render one terrain image to a file",
		Long: `Render a satellite terrain without opening a window and write it to disk.

The format is taken from --format, or from the file extension when --format
is empty. Supported formats: png, bmp, tiff.

Examples:
  survey snapshot --out terrain.png --width 1280 --height 800 --seed 42
  survey snapshot --out terrain.tiff`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.width <= 0 || opts.height <= 0 {
				cfg, err := loadConfig()
				if err != nil {
					return fmt.Errorf("loading config: %w", err)
				}
				if opts.width <= 0 {
					opts.width = cfg.Window.Width
				}
				if opts.height <= 0 {
					opts.height = cfg.Window.Height
				}
				if opts.seed == 0 {
					opts.seed = cfg.Terrain.Seed
				}
			}
			sc, err := writeSnapshot(opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %s\n", opts.out, sc.Summary())
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "terrain.png", "output file")
	cmd.Flags().IntVar(&opts.width, "width", 0, "image width (default window.width)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "image height (default window.height)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "terrain seed (0 = random)")
	cmd.Flags().StringVar(&opts.format, "format", "", "png, bmp or tiff (default from extension)")
	return cmd
}

// writeSnapshot renders one scene and encodes it to opts.out.
func writeSnapshot(opts snapshotOptions) (terrain.Scene, error) {
	format := terrain.FormatForPath(opts.out)
	if opts.format != "" {
		f, err := terrain.ParseFormat(opts.format)
		if err != nil {
			return terrain.Scene{}, err
		}
		format = f
	}

	raster := terrain.NewRaster(0, 0)
	sc, err := terrain.NewSeededRenderer(opts.seed).Render(raster, opts.width, opts.height)
	if err != nil {
		return terrain.Scene{}, fmt.Errorf("rendering terrain: %w", err)
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return terrain.Scene{}, err
	}
	if err := terrain.Encode(f, raster.Image(), format); err != nil {
		_ = f.Close()
		return terrain.Scene{}, fmt.Errorf("encoding %s: %w", format, err)
	}
	return sc, f.Close()
}
