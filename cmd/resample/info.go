package main

import (
	"fmt"
	"io"
	"os"

	errorsGo "github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/gen2brain/resample"
)

func init() { rootCmd.AddCommand(infoCmd) }

var infoCmd = &cobra.Command{
	Use:   `info <input.jpg>`,
	Short: `display component geometry and resampling strategies`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error { return infoFunc(os.Stdout, args[0]) })
	},
}

func infoFunc(w io.Writer, path string) error {
	l, err := loadLayout(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s: %dx%d, %d components\n", path, l.Width, l.Height, len(l.Components))

	// Strategies are only printed when the layout is supported.
	rs, errNew := l.NewResampler()
	for i, c := range l.Components {
		strategy := `-`
		if errNew == nil {
			strategy = rs.Strategy(i).String()
		}
		fmt.Fprintf(w, "  component %d: sampling %dx%d, plane %dx%d, stride %d, strategy %s\n",
			i, c.H, c.V, c.Width, c.Height, c.Stride(), strategy)
	}

	if errNew != nil {
		return errorsGo.Wrap(errNew, 0)
	}

	return nil
}

// newResampler builds the resampler for l and logs the chosen strategies.
func newResampler(l *resample.Layout) (*resample.Resampler, error) {
	rs, err := l.NewResampler()
	if err != nil {
		return nil, errorsGo.Wrap(err, 0)
	}

	for i := 0; i < rs.Len(); i++ {
		logger.Debug(`component`, `index`, i, `strategy`, rs.Strategy(i).String())
	}

	return rs, nil
}
