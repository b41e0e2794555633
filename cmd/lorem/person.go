package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lorem"
	"github.com/dmitrymomot/lorem/pkg/person"
)

func personCommands(opts *rootOptions) []*cobra.Command {
	return []*cobra.Command{
		simpleCommand(opts, "name", "Print a full name", (*lorem.Lorem).Name),
		simpleCommand(opts, "email", "Print an email address", (*lorem.Lorem).Email),
		simpleCommand(opts, "url", "Print a site URL", (*lorem.Lorem).URL),
		ageCommand(opts),
	}
}

func ageCommand(opts *rootOptions) *cobra.Command {
	var (
		group string
		year  int
	)
	cmd := &cobra.Command{
		Use:   "age",
		Short: "Print an age for a group, or the age of someone born in --year",
		Args:  cobra.NoArgs,
		RunE: run(opts, func(l *lorem.Lorem, cmd *cobra.Command) (string, error) {
			if cmd.Flags().Changed("year") {
				return strconv.Itoa(l.AgeFromYear(year)), nil
			}
			g, ok := person.ParseAgeGroup(group)
			if !ok {
				return "", fmt.Errorf("unknown age group %q: want child, teen, adult or elderly", group)
			}
			return l.AgeText(g), nil
		}),
	}
	cmd.Flags().StringVar(&group, "group", person.Adult.String(), "child, teen, adult or elderly")
	cmd.Flags().IntVar(&year, "year", 0, "birth year")
	return cmd
}
