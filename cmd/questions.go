package cmd

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/tizhi/internal/bank"
)

func newQuestionsCmd(g *globals) *cobra.Command {
	var sexFlag, categoryFlag string

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the questions asked of a respondent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sex, err := resolveSex(sexFlag, nil, g.cfg.Sex())
			if err != nil {
				return err
			}

			filter := bank.Category(-1)
			if categoryFlag != "" {
				if filter, err = bank.ParseCategory(categoryFlag); err != nil {
					return err
				}
			}

			b := bank.Effective(sex)
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("#", "体质", "题目")
			shown := 0
			for _, item := range b.Items() {
				if filter.Valid() && item.Category != filter {
					continue
				}
				t.Row(strconv.Itoa(item.Number), item.Category.Name(), item.Question.Text)
				shown++
			}

			g.log.Debug("listed questions", zap.Stringer("sex", sex), zap.Int("count", shown))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%d of %d questions (%s)\n", t.String(), shown, b.Total(), sex)
			return err
		},
	}

	cmd.Flags().StringVar(&sexFlag, "sex", "", "respondent sex: female or male (default from config)")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "only list one category (slug, Chinese or English name)")
	return cmd
}

// resolveSex picks the first of flag, document and fallback that names a
// sex. doc is nil when there is no document or it names none. An
// unparseable flag is an error.
func resolveSex(flag string, doc *bank.Sex, fallback bank.Sex) (bank.Sex, error) {
	if flag != "" {
		return bank.ParseSex(flag)
	}
	if doc != nil {
		return *doc, nil
	}
	return fallback, nil
}
