package runner

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/lance6716/aoc-circuits/pkg/filemgr"
	"github.com/lance6716/aoc-circuits/pkg/report"
	"github.com/lance6716/aoc-circuits/pkg/solve"
	"github.com/lance6716/aoc-circuits/pkg/util"
	"github.com/pingcap/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Answer is the outcome of one part of one day.
type Answer struct {
	Day     int
	Part    int
	Value   string
	Elapsed time.Duration
}

// Run is the main entry function. It solves every configured day, prints the
// answers to out and returns the answers in order. A failed day doesn't stop
// the remaining ones; all failures are returned together.
func Run(ctx context.Context, cfg *Config, out io.Writer) ([]Answer, error) {
	cfg.ensureDefaults()
	if err := util.SetLogFile(cfg.Log.Filename); err != nil {
		return nil, errors.Trace(err)
	}

	mgr := filemgr.NewManager(cfg.InputDir)
	params := solve.Params{Connections: cfg.Connections}

	var (
		answers []Answer
		runErr  error
	)
	for _, day := range cfg.Days {
		if err := ctx.Err(); err != nil {
			return answers, errors.Trace(err)
		}
		dayAnswers, err := runDay(ctx, mgr, day, params, out)
		answers = append(answers, dayAnswers...)
		if err != nil {
			util.Logger.Warn("failed to solve day", zap.Int("day", day), zap.Error(err))
			if errors.Cause(err) == context.Canceled {
				return answers, err
			}
			runErr = multierr.Append(runErr, errors.Annotatef(err, "day %d", day))
			continue
		}
		if cfg.SaveAnswers {
			values := make([]string, len(dayAnswers))
			for i, a := range dayAnswers {
				values[i] = a.Value
			}
			if err = mgr.WriteAnswers(day, values...); err != nil {
				runErr = multierr.Append(runErr, errors.Annotatef(err, "save answers of day %d", day))
			}
		}
	}

	if cfg.ReportFile != "" {
		r := buildReport(cfg, answers, runErr)
		if err := report.Render(r, cfg.ReportFile); err != nil {
			runErr = multierr.Append(runErr, errors.Annotate(err, "render report"))
		}
	}
	return answers, runErr
}

func runDay(
	ctx context.Context,
	mgr *filemgr.Manager,
	day int,
	params solve.Params,
	out io.Writer,
) ([]Answer, error) {
	solver, err := solve.For(day)
	if err != nil {
		return nil, errors.Trace(err)
	}
	input, err := mgr.ReadInput(day)
	if err != nil {
		return nil, errors.Trace(err)
	}

	var answers []Answer
	for i, part := range []solve.PartFunc{solver.Part1, solver.Part2} {
		start := time.Now()
		value, err2 := part(ctx, input, params)
		if err2 != nil {
			return answers, errors.Annotatef(err2, "part %d", i+1)
		}
		a := Answer{Day: day, Part: i + 1, Value: value, Elapsed: time.Since(start)}
		util.Logger.Info("solved",
			zap.Int("day", a.Day),
			zap.Int("part", a.Part),
			zap.String("answer", a.Value),
			zap.Duration("elapsed", a.Elapsed))
		if _, err2 = fmt.Fprintf(out, "Day %d Part %d: %s\n", a.Day, a.Part, a.Value); err2 != nil {
			return answers, errors.Trace(err2)
		}
		answers = append(answers, a)
	}
	return answers, nil
}

func buildReport(cfg *Config, answers []Answer, runErr error) *report.Report {
	r := &report.Report{
		TaskInfoItems: [][2]string{
			{"Task", cfg.TaskName},
			{"Input directory", cfg.InputDir},
			{"Connections", strconv.Itoa(cfg.Connections)},
		},
		Answers: report.Table{
			Header: []string{"Day", "Part", "Answer", "Elapsed"},
		},
	}
	for _, a := range answers {
		r.Answers.Data = append(r.Answers.Data, []string{
			strconv.Itoa(a.Day),
			strconv.Itoa(a.Part),
			a.Value,
			a.Elapsed.String(),
		})
	}
	for _, err := range multierr.Errors(runErr) {
		r.Errors = append(r.Errors, err.Error())
	}
	return r
}
