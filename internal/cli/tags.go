package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/titleformat/internal/errmsg"
	"github.com/llehouerou/titleformat/internal/host"
	"github.com/llehouerou/titleformat/internal/report"
	"github.com/llehouerou/titleformat/internal/tags"
)

// fileResult holds one file's outcome so results print in argument order.
type fileResult struct {
	out host.Outcome
	err error
	msg string
}

func newTagsCmd(a *app) *cobra.Command {
	var (
		dryRun    bool
		overrides []string
		width     int
	)

	cmd := &cobra.Command{
		Use:   "tags FILE...",
		Short: "Format the title tag of MP3 and FLAC files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settingsWithOverrides(overrides)
			if err != nil {
				return err
			}
			runner := host.NewRunner(host.Static(s), a.log)

			results := make([]fileResult, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(a.cfg.Workers())

			for i, path := range args {
				g.Go(func() error {
					f, err := tags.OpenFile(path)
					if err != nil {
						results[i] = fileResult{err: err, msg: errmsg.Format(errmsg.OpTagsRead, err)}
						return nil
					}

					var item host.Item = f
					if dryRun {
						item = host.DryRun(f)
					}

					out, err := runner.FormatItem(ctx, item)
					results[i] = fileResult{out: out, err: err}
					if err != nil {
						results[i].msg = errmsg.Format(errmsg.OpTagsWrite, err)
					}
					return nil
				})
			}
			_ = g.Wait()

			printer := report.New(cmd.OutOrStdout(), width)
			var tally report.Tally
			for i, r := range results {
				tally.Add(r.out, r.err)
				if r.err != nil {
					printer.Failure(args[i], r.msg)
					continue
				}
				printer.Change(args[i], r.out)
			}
			printer.Summary(tally, dryRun)

			if err := cmd.Context().Err(); err != nil {
				return err
			}
			if tally.Failed > 0 {
				return fmt.Errorf("%d of %d files failed", tally.Failed, tally.Total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show changes without writing files")
	cmd.Flags().StringArrayVar(&overrides, "set", nil, "override a formatter setting (repeatable)")
	cmd.Flags().IntVar(&width, "width", 0, "truncate titles wider than this many cells (0 disables)")

	return cmd
}
