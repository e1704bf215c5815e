package main

import (
	"context"
	"os"
	"time"

	errorsGo "github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/gen2brain/resample"
)

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&convertOutput, `output`, `o`, ``, `output file (.png, .bmp, .tif, .tiff, .raw, .zst)`)
	convertCmd.Flags().IntVarP(&convertWorkers, `workers`, `w`, 0, `number of goroutines producing rows (0: GOMAXPROCS)`)
	convertCmd.Flags().BoolVar(&convertRGB, `rgb`, false, `convert raw output to RGBA`)
	convertCmd.Flags().IntVar(&convertLevel, `zstd-level`, 3, `zstd compression level for .zst output`)
	_ = convertCmd.MarkFlagRequired(`output`)
}

var convertCmd = &cobra.Command{
	Use:   `convert <input.jpg> -o <output>`,
	Short: `upsample and interleave all components of an image`,
	Long: `Upsample and interleave all components of an image.

Image outputs (.png, .bmp, .tif, .tiff) are converted to RGBA.
Raw outputs (.raw, .zst) hold interleaved component samples unless --rgb is set.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error { return convertFunc(cmd.Context(), args[0]) })
	},
}

var (
	convertOutput  string
	convertWorkers int
	convertRGB     bool
	convertLevel   int
)

func convertFunc(ctx context.Context, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := outputFormatOf(convertOutput)
	if err != nil {
		return err
	}

	l, err := loadLayout(path)
	if err != nil {
		return err
	}

	rs, err := newResampler(l)
	if err != nil {
		return err
	}

	start := time.Now()
	n := rs.Len()
	out := make([]byte, l.Width*l.Height*n)

	if err := rs.ResampleImage(ctx, l.Planes, l.Width, l.Height, out, &resample.Options{Workers: convertWorkers}); err != nil {
		return errorsGo.Wrap(err, 0)
	}

	logger.Debug(`resampled`, `width`, l.Width, `height`, l.Height, `components`, n, `elapsed`, time.Since(start))

	f, err := os.Create(convertOutput)
	if err != nil {
		return errorsGo.Wrap(err, 0)
	}

	err = writeOutput(f, format, out, n, l.Width, l.Height, outputOptions{rgb: convertRGB, level: convertLevel})
	if errClose := f.Close(); err == nil && errClose != nil {
		err = errorsGo.Wrap(errClose, 0)
	}
	if err != nil {
		return err
	}

	logger.Info(`wrote`, `path`, convertOutput, `format`, format)

	return nil
}
