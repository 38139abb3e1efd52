package domain

import (
	"fmt"
	"slices"
)

// Policy decides what the scheduler does when the best remaining candidate
// does not fit into the remaining budget.
type Policy string

// Schedule policies.
const (
	// PolicyStop halts at the first candidate that does not fit, even if
	// later, smaller candidates would.
	PolicyStop Policy = "stop"
	// PolicySkip drops a candidate that does not fit and keeps going.
	PolicySkip Policy = "skip"
)

// DefaultPolicy is the policy used when none is configured.
const DefaultPolicy = PolicyStop

// ParsePolicy parses a policy name. An empty string yields DefaultPolicy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "":
		return DefaultPolicy, nil
	case PolicyStop, PolicySkip:
		return Policy(s), nil
	}
	return "", fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidPolicy, s, PolicyStop, PolicySkip)
}

// ScheduleResult is the outcome of one scheduling run.
type ScheduleResult struct {
	Selected  []Task // Selection order
	TotalUsed int
	Budget    int
}

// DisplayOrder returns the selected tasks in the order they are shown to the
// user, which is the reverse of the selection order.
func (r ScheduleResult) DisplayOrder() []Task {
	out := slices.Clone(r.Selected)
	slices.Reverse(out)
	return out
}

// Lines formats the displayed tasks as numbered entries starting at 1.
func (r ScheduleResult) Lines() []string {
	tasks := r.DisplayOrder()
	lines := make([]string, 0, len(tasks))
	for i, t := range tasks {
		lines = append(lines, t.Line(i+1))
	}
	return lines
}

// Ratio returns TotalUsed / Budget, or 0 for a non-positive budget.
func (r ScheduleResult) Ratio() float64 {
	if r.Budget <= 0 {
		return 0
	}
	return float64(r.TotalUsed) / float64(r.Budget)
}

// Summary formats the utilisation line, e.g.
// "Total time used: 45 / 60 minutes (75%)".
func (r ScheduleResult) Summary() string {
	return fmt.Sprintf("Total time used: %d / %d minutes (%.0f%%)", r.TotalUsed, r.Budget, r.Ratio()*100)
}

// Schedule greedily picks tasks that fit into budget.
//
// On each step the candidate with the lowest (priority, duration) pair is
// taken; among equal pairs the earlier task wins. What happens when that
// candidate does not fit depends on policy. The input slice is never modified.
func Schedule(tasks []Task, budget int, policy Policy) ScheduleResult {
	pool := slices.Clone(tasks)
	remaining := budget
	var selected []Task

	for remaining > 0 && len(pool) > 0 {
		i := bestCandidate(pool)
		best := pool[i]
		if best.Duration > remaining {
			if policy != PolicySkip {
				break
			}
			pool = slices.Delete(pool, i, i+1)
			continue
		}
		selected = append(selected, best)
		remaining -= best.Duration
		pool = slices.Delete(pool, i, i+1)
	}

	return ScheduleResult{
		Selected:  selected,
		TotalUsed: budget - remaining,
		Budget:    budget,
	}
}

// bestCandidate returns the index of the first task with the minimal
// (priority, duration) pair. pool must not be empty.
func bestCandidate(pool []Task) int {
	best := 0
	for i := 1; i < len(pool); i++ {
		if less(pool[i], pool[best]) {
			best = i
		}
	}
	return best
}

func less(a, b Task) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.Duration < b.Duration
}

// priorityWeight scales the priority in Evaluate.
const priorityWeight = 10

// Evaluate scores a task as priority * weight * min(1, budget/duration).
//
// The score is informational only; Schedule orders candidates by
// (priority, duration) and never consults it.
func Evaluate(t Task, budget int) float64 {
	if t.Duration <= 0 {
		return 0
	}
	feasibility := min(1, float64(budget)/float64(t.Duration))
	return float64(int(t.Priority)*priorityWeight) * feasibility
}
