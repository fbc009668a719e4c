package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llehouerou/titleformat/internal/config"
	"github.com/llehouerou/titleformat/internal/errmsg"
	"github.com/llehouerou/titleformat/internal/report"
	"github.com/llehouerou/titleformat/internal/titlefmt"
)

// settingsWithOverrides applies --set key=value arguments on top of the
// config file's formatter settings.
func (a *app) settingsWithOverrides(overrides []string) (titlefmt.Settings, error) {
	record, err := config.ParseOverrides(overrides)
	if err != nil {
		return titlefmt.Settings{}, errmsg.Error(errmsg.OpOverrideParse, err)
	}
	s, err := config.DecodeSettings(a.cfg.Formatter, record)
	if err != nil {
		return titlefmt.Settings{}, errmsg.Error(errmsg.OpSettingsDecode, err)
	}
	return s, nil
}

func newFormatCmd(a *app) *cobra.Command {
	var (
		performers []string
		overrides  []string
		explain    bool
	)

	cmd := &cobra.Command{
		Use:   "format [title...]",
		Short: "Format titles given as arguments, or one per line on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settingsWithOverrides(overrides)
			if err != nil {
				return err
			}

			f := titlefmt.New(a.log)
			out := cmd.OutOrStdout()
			printer := report.New(out, 0)

			emit := func(title string) {
				if explain {
					steps := f.Trace(title, s, performers)
					printer.Trace(steps)
					fmt.Fprintln(out, steps[len(steps)-1].Value)
					return
				}
				fmt.Fprintln(out, f.Format(title, s, performers))
			}

			if len(args) > 0 {
				for _, title := range args {
					emit(title)
				}
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
			for scanner.Scan() {
				emit(scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				return errmsg.Error(errmsg.OpInputRead, err)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&performers, "performer", "p", nil, "performer name associated with the titles (repeatable)")
	cmd.Flags().StringArrayVar(&overrides, "set", nil, "override a formatter setting, e.g. --set casingMode=TITLECASE (repeatable)")
	cmd.Flags().BoolVar(&explain, "explain", false, "print the value after every pipeline stage")

	return cmd
}
