package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/llehouerou/titleformat/internal/config"
	"github.com/llehouerou/titleformat/internal/errmsg"
	"github.com/llehouerou/titleformat/internal/host"
	"github.com/llehouerou/titleformat/internal/report"
	"github.com/llehouerou/titleformat/internal/store"
	"github.com/llehouerou/titleformat/internal/titlefmt"
)

func newLibraryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Manage and format the scene library",
	}
	cmd.AddCommand(newLibraryAddCmd(a))
	cmd.AddCommand(newLibrarySettingsCmd(a))
	cmd.AddCommand(newLibraryRunCmd(a))
	return cmd
}

func newLibraryAddCmd(a *app) *cobra.Command {
	var (
		title      string
		performers []string
		organized  bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a scene to the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			id, err := st.AddScene(title, performers, organized)
			if err != nil {
				return errmsg.Error(errmsg.OpSceneAdd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "scene title")
	cmd.Flags().StringArrayVarP(&performers, "performer", "p", nil, "performer name (repeatable)")
	cmd.Flags().BoolVar(&organized, "organized", false, "mark the scene as organized")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newLibrarySettingsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "settings [key=value...]",
		Short: "Show or update the stored formatter settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			record, err := st.LoadSettings(store.PluginName)
			if err != nil {
				return errmsg.Error(errmsg.OpSettingsLoad, err)
			}
			if record == nil {
				record = map[string]any{}
			}

			if len(args) > 0 {
				updates, err := config.ParseOverrides(args)
				if err != nil {
					return errmsg.Error(errmsg.OpOverrideParse, err)
				}
				for k, v := range updates {
					record[k] = v
				}
				if _, err := config.DecodeSettings(titlefmt.DefaultSettings(), record); err != nil {
					return errmsg.Error(errmsg.OpSettingsDecode, err)
				}
				if err := st.SaveSettings(store.PluginName, record); err != nil {
					return errmsg.Error(errmsg.OpSettingsSave, err)
				}
			}

			keys := make([]string, 0, len(record))
			for k := range record {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			out := cmd.OutOrStdout()
			for _, k := range keys {
				fmt.Fprintf(out, "%s = %v\n", k, record[k])
			}
			return nil
		},
	}
}

func newLibraryRunCmd(a *app) *cobra.Command {
	var (
		dryRun bool
		width  int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Format every scene title in the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			ids, err := st.SceneIDs()
			if err != nil {
				return errmsg.Error(errmsg.OpSceneList, err)
			}

			source := host.NewCachedSource(store.NewSettingsSource(st, store.PluginName))
			runner := host.NewRunner(source, a.log)
			printer := report.New(cmd.OutOrStdout(), width)

			var tally report.Tally
			for _, id := range ids {
				ctx := cmd.Context()
				if err := ctx.Err(); err != nil {
					return err
				}

				label := "#" + strconv.FormatInt(id, 10)
				scene, err := store.LoadItem(st, id)
				if err != nil {
					tally.Add(host.Outcome{}, err)
					printer.Failure(label, errmsg.Format(errmsg.OpSceneLoad, err))
					continue
				}

				var item host.Item = scene
				if dryRun {
					item = host.DryRun(scene)
				}

				out, err := runner.FormatItem(ctx, item)
				tally.Add(out, err)
				if err != nil {
					printer.Failure(label, errmsg.FormatWith(errmsg.OpSceneUpdate, out.Before, err))
					continue
				}
				printer.Change(label, out)
			}

			printer.Summary(tally, dryRun)
			if tally.Failed > 0 {
				return fmt.Errorf("%d of %d scenes failed", tally.Failed, tally.Total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show changes without storing them")
	cmd.Flags().IntVar(&width, "width", 0, "truncate titles wider than this many cells (0 disables)")

	return cmd
}
