// Command resample upsamples the chroma planes of JPEG images and writes interleaved full-resolution output.
//
// Usage:
//
//	resample info <input.jpg>                    Display component geometry and resampling strategies
//	resample convert [flags] <input.jpg> -o out  Write a .png, .bmp, .tif, .raw or .zst file
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "resample",
	Short:        "resample upsamples JPEG chroma planes",
	Long:         "resample upsamples JPEG chroma planes with bilinear interpolation and interleaves the components",
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

var (
	debug   bool
	verbose bool
	logger  = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, `debug`, false, `print error stacks`)
	rootCmd.PersistentFlags().BoolVarP(&verbose, `verbose`, `v`, false, `log progress to stderr`)
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(fn func() error) {
	if fn == nil {
		log.Fatal(errors.New(`nil command function`))
	}
	err := fn()
	if err != nil {
		if stackFramer, ok := err.(interface{ ErrorStack() string }); debug && ok {
			fmt.Fprintln(os.Stderr, stackFramer.ErrorStack())
			os.Exit(1)
		}
		log.Fatal(err)
	}
}
