package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/election/election"
)

func printTally(ctx context.Context, out io.Writer, engine *election.Engine) error {
	results, err := engine.OverallResults(ctx)
	if err != nil {
		return err
	}
	parties, err := engine.PartyRanking(ctx)
	if err != nil {
		return err
	}
	ratio, err := engine.SexRatio(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "RANK\tCANDIDATE\tPARTY\tSEX\tVOTES")
	for i, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			humanize.Ordinal(i+1), r.Name, r.PoliticalParty, r.Sex, humanize.Comma(int64(r.VoteCount)))
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "PARTY\tVOTES")
	for _, p := range parties {
		fmt.Fprintf(tw, "%s\t%s\n", p.PoliticalParty, humanize.Comma(int64(p.VoteCount)))
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "man\t%s\n", humanize.Comma(int64(ratio.Man)))
	fmt.Fprintf(tw, "woman\t%s\n", humanize.Comma(int64(ratio.Woman)))

	return tw.Flush()
}
