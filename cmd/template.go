package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/tizhi/internal/intake"
	"github.com/abhisek/tizhi/internal/report"
)

func newTemplateCmd(g *globals) *cobra.Command {
	var sexFlag, formatFlag string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Print a blank answer document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sex, err := resolveSex(sexFlag, nil, g.cfg.Sex())
			if err != nil {
				return err
			}
			doc := intake.Template(sex)

			f, err := report.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			switch f {
			case report.FormatJSON:
				return doc.WriteJSON(cmd.OutOrStdout())
			case report.FormatYAML:
				return doc.WriteYAML(cmd.OutOrStdout())
			}
			return fmt.Errorf("%w %q for templates (want json or yaml)", report.ErrUnknownFormat, formatFlag)
		},
	}

	cmd.Flags().StringVar(&sexFlag, "sex", "", "respondent sex: female or male (default from config)")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "json", "document format: json or yaml")
	return cmd
}
