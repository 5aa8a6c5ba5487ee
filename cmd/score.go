package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/tizhi/internal/bank"
	"github.com/abhisek/tizhi/internal/config"
	"github.com/abhisek/tizhi/internal/intake"
	"github.com/abhisek/tizhi/internal/report"
	"github.com/abhisek/tizhi/internal/scoring"
)

const stdinName = "-"

// scoreJob is one answer document on the command line.
type scoreJob struct {
	source string
	data   []byte
	out    bytes.Buffer
	err    error
}

func newScoreCmd(g *globals) *cobra.Command {
	var (
		sexFlag    string
		formatFlag string
		plain      bool
	)

	cmd := &cobra.Command{
		Use:   "score FILE...",
		Short: "Score answer documents (JSON or YAML, - for stdin)",
		Long: "Score one or more answer documents and print a report for each, in\n" +
			"argument order. Use `tizhi template` to get a blank document.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := g.cfg.Format()
			if formatFlag != "" {
				var err error
				if format, err = report.ParseFormat(formatFlag); err != nil {
					return err
				}
			}
			if sexFlag != "" {
				if _, err := bank.ParseSex(sexFlag); err != nil {
					return err
				}
			}
			opts := report.Options{
				Width: g.cfg.Output.Width,
				Plain: plain || g.cfg.Output.Plain,
			}

			jobs, err := readJobs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			s := &scorer{
				cfg:    g.cfg,
				log:    g.log,
				now:    time.Now,
				sex:    sexFlag,
				format: format,
				opts:   opts,
			}
			if err := s.run(cmd, jobs); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			var failed []error
			written := 0
			for _, job := range jobs {
				if job.err != nil {
					failed = append(failed, job.err)
					continue
				}
				if written > 0 {
					if _, err := io.WriteString(w, separator(format)); err != nil {
						return err
					}
				}
				if _, err := job.out.WriteTo(w); err != nil {
					return err
				}
				written++
			}
			return errors.Join(failed...)
		},
	}

	cmd.Flags().StringVar(&sexFlag, "sex", "", "respondent sex, overrides the document (default from document, then config)")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "output format: text, json, yaml, markdown (default from config)")
	cmd.Flags().BoolVar(&plain, "plain", false, "render markdown without colors")
	return cmd
}

// readJobs loads every argument up front so stdin is consumed once.
func readJobs(stdin io.Reader, args []string) ([]*scoreJob, error) {
	jobs := make([]*scoreJob, len(args))
	sawStdin := false
	for i, arg := range args {
		job := &scoreJob{source: arg}
		jobs[i] = job

		if arg == stdinName {
			if sawStdin {
				return nil, errors.New("stdin (-) given more than once")
			}
			sawStdin = true
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			job.data = data
			continue
		}

		data, err := os.ReadFile(arg)
		if err != nil {
			job.err = fmt.Errorf("read answers: %w", err)
			continue
		}
		job.data = data
	}
	return jobs, nil
}

// separator goes between consecutive reports.
func separator(f report.Format) string {
	switch f {
	case report.FormatYAML:
		return "---\n"
	case report.FormatJSON:
		return ""
	default:
		return "\n"
	}
}

type scorer struct {
	cfg    *config.Config
	log    *zap.Logger
	now    func() time.Time
	sex    string
	format report.Format
	opts   report.Options
}

// run scores jobs concurrently. A failing document only fails its own job;
// the returned error is for cancellation.
func (s *scorer) run(cmd *cobra.Command, jobs []*scoreJob) error {
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(s.cfg.Score.Workers)

	for _, job := range jobs {
		if job.err != nil {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			job.err = s.score(job)
			return nil
		})
	}
	return g.Wait()
}

func (s *scorer) score(job *scoreJob) error {
	sub, err := intake.Parse(job.source, job.data)
	if err != nil {
		s.log.Warn("rejected answer document", zap.String("source", job.source), zap.Error(err))
		return err
	}

	var named *bank.Sex
	if sub.HasSex() {
		named = &sub.Sex
	}
	sex, err := resolveSex(s.sex, named, s.cfg.Sex())
	if err != nil {
		return err
	}

	res := scoring.Compute(sub.Answers, sex)
	r := report.Build(uuid.NewString(), res, s.now())

	s.log.Info("scored answer document",
		zap.String("source", job.source),
		zap.String("report_id", r.ID),
		zap.Stringer("sex", sex),
		zap.Stringer("balance", res.Classification.Balance),
		zap.Stringers("main_types", r.MainTypes))

	if err := report.Write(&job.out, r, s.format, s.opts); err != nil {
		return fmt.Errorf("%s: write report: %w", job.source, err)
	}
	return nil
}
