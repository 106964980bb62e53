package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-runner/internal/canvas"
	"github.com/vovakirdan/pixel-runner/internal/runner"
	"github.com/vovakirdan/pixel-runner/internal/sprite"
)

var (
	flagSpritesOut   string
	flagSpritesScale int
)

var spritesCmd = &cobra.Command{
	Use:   "sprites",
	Short: "Export the generated sprites as PNG files",
	Long: `Builds every sprite at its configured size and writes one PNG per
sprite into the output directory, enlarged by --scale.

Examples:
  runner sprites --out ./sprites
  runner sprites --out /tmp/s --scale 8`,
	Args: cobra.NoArgs,
	RunE: runSprites,
}

func init() {
	spritesCmd.Flags().StringVar(&flagSpritesOut, "out", "sprites", "Output directory")
	spritesCmd.Flags().IntVar(&flagSpritesScale, "scale", 4, "Integer enlargement factor")
}

func runSprites(cmd *cobra.Command, args []string) (err error) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	defer func() {
		if err != nil {
			logger.Error("sprite export failed", "err", err)
		}
	}()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := exportSprites(runner.New(cfg).Atlas(), flagSpritesOut, flagSpritesScale); err != nil {
		return err
	}
	logger.Info("sprites exported", "dir", flagSpritesOut, "count", len(sprite.Keys()), "scale", flagSpritesScale)
	return nil
}

// exportSprites writes <key>.png for every sprite in atlas.
func exportSprites(atlas *sprite.Atlas, dir string, scale int) error {
	if scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", scale)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, k := range sprite.Keys() {
		img := atlas.Get(k)
		b := img.Bounds()
		out := canvas.Scaled(img, b.Dx()*scale, b.Dy()*scale, false)
		if err := writePNG(filepath.Join(dir, k.String()+".png"), out); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
