package release_test

import (
	"context"
	"errors"
	"testing"

	Ω "github.com/onsi/gomega"

	"github.com/shearwater-tools/cutter/internal/release"
	"github.com/shearwater-tools/cutter/pkg/freight"
)

type stubActivity struct {
	name     string
	checkErr error
	doErr    error
	calls    *[]string
}

func (stub stubActivity) Name() string { return stub.name }

func (stub stubActivity) Check(context.Context, *release.Run) error {
	*stub.calls = append(*stub.calls, "check "+stub.name)
	return stub.checkErr
}

func (stub stubActivity) Do(context.Context, *release.Run) error {
	*stub.calls = append(*stub.calls, "do "+stub.name)
	return stub.doErr
}

func TestRunner_RunsActivitiesInOrder(t *testing.T) {
	t.Parallel()
	please := Ω.NewWithT(t)
	dir := t.TempDir()

	ledger, err := release.LoadLedger(dir)
	please.Expect(err).NotTo(Ω.HaveOccurred())

	var calls []string
	runner := release.Runner{
		Activities: []release.Activity{
			stubActivity{name: "first", calls: &calls},
			stubActivity{name: "second", calls: &calls},
		},
		Ledger: ledger,
	}
	run, out := newRun(freight.Cutterfile{Project: "fixie-data"}, "1.0.0", nil, dir)

	please.Expect(runner.Run(context.Background(), run)).To(Ω.Succeed())
	please.Expect(calls).To(Ω.Equal([]string{"check first", "do first", "check second", "do second"}))
	please.Expect(ledger.Completed("1.0.0", "first")).To(Ω.BeTrue())
	please.Expect(ledger.Completed("1.0.0", "second")).To(Ω.BeTrue())
	please.Expect(out.String()).To(Ω.ContainSubstring("released fixie-data v1.0.0"))
}

func TestRunner_FirstFailureAborts(t *testing.T) {
	t.Parallel()
	please := Ω.NewWithT(t)
	dir := t.TempDir()

	ledger, err := release.LoadLedger(dir)
	please.Expect(err).NotTo(Ω.HaveOccurred())

	var calls []string
	runner := release.Runner{
		Activities: []release.Activity{
			stubActivity{name: "first", calls: &calls},
			stubActivity{name: "second", calls: &calls, doErr: errors.New("lemon")},
			stubActivity{name: "third", calls: &calls},
		},
		Ledger: ledger,
	}
	run, _ := newRun(freight.Cutterfile{Project: "fixie-data"}, "1.0.0", nil, dir)

	err = runner.Run(context.Background(), run)
	please.Expect(err).To(Ω.MatchError(Ω.ContainSubstring("second failed: lemon")))
	please.Expect(calls).To(Ω.Equal([]string{"check first", "do first", "check second", "do second"}))
	please.Expect(ledger.Completed("1.0.0", "first")).To(Ω.BeTrue())
	please.Expect(ledger.Completed("1.0.0", "second")).To(Ω.BeFalse())
}

func TestRunner_PreconditionFailureRunsNothing(t *testing.T) {
	t.Parallel()
	please := Ω.NewWithT(t)
	dir := t.TempDir()

	ledger, err := release.LoadLedger(dir)
	please.Expect(err).NotTo(Ω.HaveOccurred())

	var calls []string
	runner := release.Runner{
		Activities: []release.Activity{
			stubActivity{name: "first", calls: &calls, checkErr: errors.New("lemon")},
			stubActivity{name: "second", calls: &calls},
		},
		Ledger: ledger,
	}
	run, _ := newRun(freight.Cutterfile{Project: "fixie-data"}, "1.0.0", nil, dir)

	err = runner.Run(context.Background(), run)
	please.Expect(err).To(Ω.MatchError(Ω.ContainSubstring("first precondition failed: lemon")))
	please.Expect(calls).To(Ω.Equal([]string{"check first"}))
	please.Expect(ledger.Entries()).To(Ω.BeEmpty())
}

func TestRunner_ResumeSkipsCompletedActivities(t *testing.T) {
	t.Parallel()
	please := Ω.NewWithT(t)
	dir := t.TempDir()

	ledger, err := release.LoadLedger(dir)
	please.Expect(err).NotTo(Ω.HaveOccurred())
	please.Expect(ledger.Record("1.0.0", "first")).To(Ω.Succeed())

	var calls []string
	runner := release.Runner{
		Activities: []release.Activity{
			stubActivity{name: "first", calls: &calls},
			stubActivity{name: "second", calls: &calls},
		},
		Ledger: ledger,
		Resume: true,
	}
	run, out := newRun(freight.Cutterfile{Project: "fixie-data"}, "1.0.0", nil, dir)

	please.Expect(runner.Run(context.Background(), run)).To(Ω.Succeed())
	please.Expect(calls).To(Ω.Equal([]string{"check second", "do second"}))
	please.Expect(out.String()).To(Ω.ContainSubstring("skipping first (already completed for v1.0.0)"))
}

func TestRunner_DryRunExecutesNothing(t *testing.T) {
	t.Parallel()
	please := Ω.NewWithT(t)
	dir := t.TempDir()

	var calls []string
	runner := release.Runner{
		Activities: []release.Activity{
			stubActivity{name: "first", calls: &calls},
			stubActivity{name: "second", calls: &calls},
		},
		DryRun: true,
	}
	run, out := newRun(freight.Cutterfile{Project: "fixie-data"}, "1.0.0", nil, dir)

	please.Expect(runner.Run(context.Background(), run)).To(Ω.Succeed())
	please.Expect(calls).To(Ω.BeEmpty())
	please.Expect(out.String()).To(Ω.ContainSubstring("planned activities for fixie-data v1.0.0:"))
	please.Expect(out.String()).To(Ω.ContainSubstring("1. first"))
	please.Expect(out.String()).To(Ω.ContainSubstring("2. second"))
}
