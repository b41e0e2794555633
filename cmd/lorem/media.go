package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lorem"
	"github.com/dmitrymomot/lorem/pkg/color"
	"github.com/dmitrymomot/lorem/pkg/compose"
	"github.com/dmitrymomot/lorem/pkg/date"
	"github.com/dmitrymomot/lorem/pkg/image"
)

type dateFlags struct {
	format    string
	pattern   string
	style     string
	dateStyle string
	timeStyle string
	unit      string
	magnitude int
	locale    string
}

func (f *dateFlags) window() (date.Window, error) {
	u, ok := date.ParseUnit(f.unit)
	if !ok {
		return date.Window{}, fmt.Errorf("unknown unit %q", f.unit)
	}
	return date.Window{Magnitude: f.magnitude, Unit: u, Locale: f.locale}, nil
}

func (f *dateFlags) dateFormat() (date.Format, error) {
	switch f.format {
	case "iso8601":
		return date.ISO8601(), nil
	case "relative":
		s, ok := date.ParseRelativeStyle(f.style)
		if !ok {
			return date.Format{}, fmt.Errorf("unknown relative style %q", f.style)
		}
		return date.Relative(s), nil
	case "styled":
		ds, ok := date.ParseDateStyle(f.dateStyle)
		if !ok {
			return date.Format{}, fmt.Errorf("unknown date style %q", f.dateStyle)
		}
		ts, ok := date.ParseTimeStyle(f.timeStyle)
		if !ok {
			return date.Format{}, fmt.Errorf("unknown time style %q", f.timeStyle)
		}
		return date.Styled(ds, ts), nil
	case "pattern":
		if f.pattern == "" {
			return date.Format{}, fmt.Errorf("--pattern is required with --format pattern")
		}
		return date.Pattern(f.pattern), nil
	}
	return date.Format{}, fmt.Errorf("unknown format %q: want iso8601, relative, styled or pattern", f.format)
}

func dateCommand(opts *rootOptions) *cobra.Command {
	var f dateFlags
	cmd := &cobra.Command{
		Use:   "date",
		Short: "Print a date from a window ending now",
		Args:  cobra.NoArgs,
		RunE: run(opts, func(l *lorem.Lorem, _ *cobra.Command) (string, error) {
			w, err := f.window()
			if err != nil {
				return "", err
			}
			format, err := f.dateFormat()
			if err != nil {
				return "", err
			}
			return l.DateStringWithin(w, format), nil
		}),
	}
	cmd.Flags().StringVar(&f.format, "format", "iso8601", "iso8601, relative, styled or pattern")
	cmd.Flags().StringVar(&f.pattern, "pattern", "", "pattern such as \"yyyy-MM-dd HH:mm\"")
	cmd.Flags().StringVar(&f.style, "style", string(date.RelativeStandard), "relative style: shortened, standard or complete")
	cmd.Flags().StringVar(&f.dateStyle, "date-style", string(date.DateAbbreviated), "styled date part")
	cmd.Flags().StringVar(&f.timeStyle, "time-style", string(date.TimeShortened), "styled time part")
	cmd.Flags().StringVar(&f.unit, "unit", date.DefaultWindow.Unit.String(), "window unit: minute, hour, day, week, month or year")
	cmd.Flags().IntVar(&f.magnitude, "magnitude", date.DefaultWindow.Magnitude, "window size in units")
	cmd.Flags().StringVar(&f.locale, "calendar", date.DefaultLocale, "calendar locale")
	return cmd
}

func checkCount(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: --count %d", compose.ErrNegativeCount, n)
	}
	return nil
}

func swatch(c color.Color) string {
	block := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render("    ")
	return block + " " + c.String()
}

func colorCommand(opts *rootOptions) *cobra.Command {
	var (
		palette string
		count   int
	)
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Print colors from a palette",
		Args:  cobra.NoArgs,
		RunE: run(opts, func(l *lorem.Lorem, _ *cobra.Command) (string, error) {
			p, err := color.ParsePalette(palette)
			if err != nil {
				return "", err
			}
			if err := checkCount(count); err != nil {
				return "", err
			}
			lines := make([]string, 0, count)
			for range count {
				lines = append(lines, swatch(l.Color(p)))
			}
			return strings.Join(lines, "\n"), nil
		}),
	}
	cmd.Flags().StringVar(&palette, "palette", "hue", strings.Join(color.PaletteNames, ", "))
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of colors")
	return cmd
}

func imageCommand(opts *rootOptions) *cobra.Command {
	var (
		width, height, size int
		grayscale           bool
		seed, base          string
	)
	cmd := &cobra.Command{
		Use:   "image",
		Short: "Print a placeholder image URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src := image.Random()
			if seed != "" {
				src = image.Seed(seed)
			}
			if !cmd.Flags().Changed("width") {
				width = size
			}
			if !cmd.Flags().Changed("height") {
				height = size
			}
			u, err := image.NewBuilder(image.WithBaseURL(base)).URL(src, width, height, grayscale)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), u)
			return err
		},
	}
	cmd.Flags().IntVar(&size, "size", image.DefaultSize, "edge of a square image")
	cmd.Flags().IntVar(&width, "width", 0, "image width, defaults to --size")
	cmd.Flags().IntVar(&height, "height", 0, "image height, defaults to --size")
	cmd.Flags().BoolVar(&grayscale, "grayscale", false, "request a grayscale image")
	cmd.Flags().StringVar(&seed, "image-seed", "", "pin the image to a seed")
	cmd.Flags().StringVar(&base, "base-url", image.DefaultBaseURL, "picsum-compatible endpoint")
	return cmd
}

func uuidCommand(opts *rootOptions) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Print version 4 UUIDs",
		Args:  cobra.NoArgs,
		RunE: run(opts, func(l *lorem.Lorem, _ *cobra.Command) (string, error) {
			if err := checkCount(count); err != nil {
				return "", err
			}
			ids := make([]string, 0, count)
			for range count {
				id, err := l.UUID()
				if err != nil {
					return "", err
				}
				ids = append(ids, id.String())
			}
			return strings.Join(ids, "\n"), nil
		}),
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of UUIDs")
	return cmd
}
