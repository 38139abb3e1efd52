package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskplan/internal/app"
	"github.com/runoshun/taskplan/internal/domain"
	"github.com/runoshun/taskplan/internal/infra/taskfile"
	"github.com/runoshun/taskplan/internal/usecase"
)

// Output formats of the schedule command.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// scheduleOptions holds options for the schedule command.
type scheduleOptions struct {
	From   string
	Policy string
	Format string
	Tasks  []string
	Budget int
	Scores bool
}

// scheduledTask is one entry of a structured schedule report.
type scheduledTask struct {
	Score    *float64 `json:"score,omitempty" yaml:"score,omitempty"`
	Name     string   `json:"name" yaml:"name"`
	Rank     int      `json:"rank" yaml:"rank"`
	Duration int      `json:"duration" yaml:"duration"`
	Priority int      `json:"priority" yaml:"priority"`
}

// scheduleReport is the json/yaml form of a schedule.
type scheduleReport struct {
	Policy    domain.Policy   `json:"policy" yaml:"policy"`
	Tasks     []scheduledTask `json:"tasks" yaml:"tasks"`
	TotalUsed int             `json:"total_used" yaml:"total_used"`
	Budget    int             `json:"budget" yaml:"budget"`
	Percent   float64         `json:"percent" yaml:"percent"`
}

// newScheduleCommand creates the schedule command.
func newScheduleCommand(c *app.Container) *cobra.Command {
	var opts scheduleOptions

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule tasks without the interactive planner",
		Long: `Schedule tasks given on the command line or in a YAML task file.

Tasks are written as name:duration[:priority] with priority 1 (High),
2 (Medium, default) or 3 (Low). Names containing ':' need an explicit
priority. A task that would push the total past the
budget is rejected, as in the interactive planner.

Task file format:
  budget: 90          # optional, --budget wins
  tasks:
    - name: Write report
      duration: 45
      priority: 1`,
		Example: `  taskplan schedule --budget 60 --task "Report:30:1" --task "Email:10:2"
  taskplan schedule --from today.yaml --policy skip --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSchedule(cmd, c, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Budget, "budget", "b", 0, "Available time in minutes (default from task file or config)")
	cmd.Flags().StringArrayVarP(&opts.Tasks, "task", "t", nil, "Task as name:duration[:priority] (repeatable)")
	cmd.Flags().StringVarP(&opts.From, "from", "f", "", "YAML task file (- for stdin)")
	cmd.Flags().StringVar(&opts.Policy, "policy", "", "What to do when the best task does not fit: stop or skip (default from config)")
	cmd.Flags().StringVarP(&opts.Format, "format", "o", formatText, "Output format: text, json or yaml")
	cmd.Flags().BoolVar(&opts.Scores, "scores", false, "Show the informational score of each scheduled task")

	return cmd
}

func runSchedule(cmd *cobra.Command, c *app.Container, opts scheduleOptions) error {
	ctx := cmd.Context()

	switch opts.Format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("invalid format %q: want text, json or yaml", opts.Format)
	}

	// Empty leaves the choice to the configuration.
	var policy domain.Policy
	if opts.Policy != "" {
		p, err := domain.ParsePolicy(opts.Policy)
		if err != nil {
			return err
		}
		policy = p
	}

	budgetSet := cmd.Flags().Changed("budget")
	if err := applyBudget(cmd, c, opts.Budget); err != nil {
		return err
	}

	if opts.From != "" {
		content, err := readTaskFile(cmd.InOrStdin(), opts.From)
		if err != nil {
			return err
		}
		if _, err := c.ImportTasksUseCase().Execute(ctx, usecase.ImportTasksInput{
			Content:       content,
			UseFileBudget: !budgetSet,
		}); err != nil {
			return fmt.Errorf("%s: %w", opts.From, err)
		}
	}

	addTask := c.AddTaskUseCase()
	for _, spec := range opts.Tasks {
		draft, err := domain.ParseTaskSpec(spec)
		if err != nil {
			return fmt.Errorf("--task %q: %w", spec, err)
		}
		if _, err := addTask.Execute(ctx, usecase.AddTaskInput{
			Name:     draft.Name,
			Duration: draft.Duration,
			Priority: draft.Priority,
		}); err != nil {
			return fmt.Errorf("--task %q: %w", spec, err)
		}
	}

	out, err := c.ScheduleTasksUseCase().Execute(ctx, usecase.ScheduleTasksInput{Policy: policy})
	if errors.Is(err, domain.ErrNoTasks) {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "No tasks to schedule.")
		return nil
	}
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch opts.Format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newScheduleReport(out, opts.Scores))
	case formatYAML:
		return taskfile.Encode(w, newScheduleReport(out, opts.Scores))
	default:
		printSchedule(w, out.Result, opts.Scores)
		return nil
	}
}

// readTaskFile reads path, or stdin when path is "-".
func readTaskFile(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return content, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}
	return content, nil
}

func printSchedule(w io.Writer, result domain.ScheduleResult, scores bool) {
	_, _ = fmt.Fprintln(w, "Scheduled Tasks:")
	for i, task := range result.DisplayOrder() {
		line := task.Line(i + 1)
		if scores {
			line = fmt.Sprintf("%s (score %.1f)", line, domain.Evaluate(task, result.Budget))
		}
		_, _ = fmt.Fprintln(w, line)
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, result.Summary())
}

func newScheduleReport(out *usecase.ScheduleTasksOutput, scores bool) scheduleReport {
	result := out.Result
	tasks := make([]scheduledTask, 0, len(result.Selected))
	for i, task := range result.DisplayOrder() {
		entry := scheduledTask{
			Rank:     i + 1,
			Name:     task.Name,
			Duration: task.Duration,
			Priority: int(task.Priority),
		}
		if scores {
			score := domain.Evaluate(task, result.Budget)
			entry.Score = &score
		}
		tasks = append(tasks, entry)
	}
	return scheduleReport{
		Policy:    out.Policy,
		Tasks:     tasks,
		TotalUsed: result.TotalUsed,
		Budget:    result.Budget,
		Percent:   math.Round(result.Ratio() * 100),
	}
}
