package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lorem"
	"github.com/dmitrymomot/lorem/pkg/compose"
	"github.com/dmitrymomot/lorem/pkg/text"
)

// countFlags binds --count, --min and --max.
type countFlags struct {
	count, min, max int
}

func (c *countFlags) bind(cmd *cobra.Command, def compose.Count) {
	r := def.Range()
	cmd.Flags().IntVarP(&c.count, "count", "n", 0, "exact number of items (overrides --min/--max)")
	cmd.Flags().IntVar(&c.min, "min", r.Min, "lower bound of the item count")
	cmd.Flags().IntVar(&c.max, "max", r.Max, "upper bound of the item count")
}

func (c *countFlags) resolve(cmd *cobra.Command) compose.Count {
	if cmd.Flags().Changed("count") {
		return compose.Exactly(c.count)
	}
	return compose.Between(c.min, c.max)
}

func simpleCommand(opts *rootOptions, use, short string, f func(*lorem.Lorem) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: run(opts, func(l *lorem.Lorem, _ *cobra.Command) (string, error) {
			return f(l)
		}),
	}
}

func countedCommand(opts *rootOptions, use, short string, def compose.Count, f func(*lorem.Lorem, compose.Count, string) (string, error), sep string) *cobra.Command {
	var (
		counts    countFlags
		separator string
	)
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: run(opts, func(l *lorem.Lorem, cmd *cobra.Command) (string, error) {
			return f(l, counts.resolve(cmd), separator)
		}),
	}
	counts.bind(cmd, def)
	if sep != "" {
		cmd.Flags().StringVar(&separator, "separator", sep, "separator between items")
	}
	return cmd
}

func textCommands(opts *rootOptions) []*cobra.Command {
	return []*cobra.Command{
		simpleCommand(opts, "word", "Print one word", (*lorem.Lorem).Word),
		simpleCommand(opts, "sentence", "Print one sentence", (*lorem.Lorem).Sentence),
		simpleCommand(opts, "tweet", "Print a sample social post", (*lorem.Lorem).Tweet),
		simpleCommand(opts, "symbol", "Print an icon symbol name", (*lorem.Lorem).SymbolName),
		countedCommand(opts, "words", "Print space-separated words", compose.Between(3, 8),
			func(l *lorem.Lorem, c compose.Count, _ string) (string, error) { return l.Words(c) }, ""),
		countedCommand(opts, "title", "Print a title-cased heading", text.DefaultTitleCount,
			func(l *lorem.Lorem, c compose.Count, _ string) (string, error) { return l.TitleOf(c) }, ""),
		countedCommand(opts, "keywords", "Print comma-separated keywords", text.DefaultKeywordCount,
			func(l *lorem.Lorem, c compose.Count, _ string) (string, error) { return l.KeywordsOf(c) }, ""),
		countedCommand(opts, "paragraph", "Print paragraphs", compose.Exactly(1),
			(*lorem.Lorem).Paragraphs, "\n\n"),
	}
}
