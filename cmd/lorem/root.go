package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/lorem"
)

type rootOptions struct {
	seed   uint64
	locale string
}

// generator builds the Lorem for one invocation from the persistent flags.
func (o *rootOptions) generator(cmd *cobra.Command) (*lorem.Lorem, error) {
	var opts []lorem.Option
	if cmd.Flags().Changed("seed") {
		opts = append(opts, lorem.WithSeed(o.seed))
	}
	if o.locale != "" {
		tag, err := language.Parse(strings.ReplaceAll(o.locale, "_", "-"))
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", o.locale, err)
		}
		opts = append(opts, lorem.WithLocale(tag))
	}
	return lorem.New(opts...), nil
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "lorem",
		Short:         "Placeholder words, names, dates, colors and image URLs for previews",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "seed for reproducible output")
	root.PersistentFlags().StringVar(&opts.locale, "locale", "", "language used for casing (e.g. en, tr)")

	root.AddCommand(
		textCommands(opts)...,
	)
	root.AddCommand(
		personCommands(opts)...,
	)
	root.AddCommand(
		dateCommand(opts),
		colorCommand(opts),
		imageCommand(opts),
		uuidCommand(opts),
		serveCommand(),
	)
	return root
}

// run adapts a generator call to cobra's RunE and prints its result.
func run(opts *rootOptions, f func(l *lorem.Lorem, cmd *cobra.Command) (string, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		l, err := opts.generator(cmd)
		if err != nil {
			return err
		}
		out, err := f(l, cmd)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	}
}
