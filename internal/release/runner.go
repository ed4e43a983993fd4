package release

import (
	"context"
	"fmt"
)

// Runner executes a resolved activity sequence against a Run.
type Runner struct {
	Activities []Activity
	Ledger     *Ledger

	// Resume consults the ledger and skips activities already completed
	// for the run's version.
	Resume bool

	// DryRun lists the plan without executing anything.
	DryRun bool
}

func (runner Runner) Run(ctx context.Context, run *Run) error {
	if runner.DryRun {
		run.Logger.Printf("planned activities for %s %s:", run.Cutterfile.Project, run.TagName())
		for i, activity := range runner.Activities {
			run.Logger.Printf("  %d. %s", i+1, activity.Name())
		}
		return nil
	}

	for _, activity := range runner.Activities {
		name := activity.Name()
		if runner.Resume && runner.Ledger != nil && runner.Ledger.Completed(run.Version, name) {
			run.Logger.Printf("skipping %s (already completed for %s)", name, run.TagName())
			continue
		}

		if err := activity.Check(ctx, run); err != nil {
			return fmt.Errorf("%s precondition failed: %w", name, err)
		}

		run.Logger.Printf("running %s", name)
		if err := activity.Do(ctx, run); err != nil {
			return fmt.Errorf("%s failed: %w", name, err)
		}

		if runner.Ledger != nil {
			if err := runner.Ledger.Record(run.Version, name); err != nil {
				return fmt.Errorf("%s completed but could not be recorded: %w", name, err)
			}
		}
	}

	run.Logger.Printf("released %s %s", run.Cutterfile.Project, run.TagName())
	return nil
}
