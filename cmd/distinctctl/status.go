package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swyrknt/distinction-engine/engine"
)

// statusChecks is the list of invariant checks run by the status command.
// Each check runs against its own fresh engine and returns nil on pass.
var statusChecks = []struct {
	name string
	run  func() error
}{
	{"initialization", checkInitialization},
	{"canonical scenario", checkScenario},
	{"symmetry", checkSymmetry},
	{"irreflexivity", checkIrreflexivity},
	{"determinism across engines", checkDeterminism},
}

func statusCmd(logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Self-check the synthesis invariants",
		Long: `Status runs the engine's core invariants — initialization, the canonical
growth scenario, symmetry, irreflexivity, and cross-engine determinism —
and reports pass/fail for each. Exits non-zero if any check fails.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(*logLevel)

			failed := 0
			for _, c := range statusChecks {
				if err := c.run(); err != nil {
					failed++
					log.Error().Err(err).Str("check", c.name).Msg("FAIL")
					continue
				}
				log.Info().Str("check", c.name).Msg("ok")
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(statusChecks))
			}
			log.Info().Int("checks", len(statusChecks)).Msg("all checks passed")

			return nil
		},
	}
}

func checkInitialization() error {
	e := engine.New()
	if n := e.DistinctionCount(); n != 2 {
		return fmt.Errorf("expected 2 primordial distinctions, got %d", n)
	}
	if n := e.RelationshipCount(); n != 0 {
		return fmt.Errorf("expected 0 initial relationships, got %d", n)
	}
	d0, d1 := e.Origin()
	if d0.ID == d1.ID {
		return errors.New("primordial distinctions must be distinct")
	}

	return nil
}

// checkScenario replays the canonical growth scenario: d0+d1 → d2, memoized
// re-synthesis, reflexive fixed point, d0+d2 → d3, verifying counts at every
// step.
func checkScenario() error {
	e := engine.New()
	d0, d1 := e.Origin()

	d2, err := e.Synthesize(d0, d1)
	if err != nil {
		return err
	}
	if e.DistinctionCount() != 3 || e.RelationshipCount() != 2 {
		return fmt.Errorf("after d0+d1: got %d/%d, want 3/2",
			e.DistinctionCount(), e.RelationshipCount())
	}

	again, err := e.Synthesize(d1, d0)
	if err != nil {
		return err
	}
	if again != d2 || e.DistinctionCount() != 3 || e.RelationshipCount() != 2 {
		return errors.New("swapped re-synthesis must memoize without growth")
	}

	self, err := e.Synthesize(d2, d2)
	if err != nil {
		return err
	}
	if self != d2 || e.DistinctionCount() != 3 {
		return errors.New("reflexive synthesis must be the identity")
	}

	if _, err = e.Synthesize(d0, d2); err != nil {
		return err
	}
	if e.DistinctionCount() != 4 || e.RelationshipCount() != 4 {
		return fmt.Errorf("after d0+d2: got %d/%d, want 4/4",
			e.DistinctionCount(), e.RelationshipCount())
	}

	return nil
}

func checkSymmetry() error {
	if engine.DeriveID("0", "1") != engine.DeriveID("1", "0") {
		return errors.New("DeriveID must be order-independent")
	}

	return nil
}

func checkIrreflexivity() error {
	e := engine.New()
	d0, _ := e.Origin()
	got, err := e.Synthesize(d0, d0)
	if err != nil {
		return err
	}
	if got != d0 {
		return errors.New("synthesize(a,a) must return a")
	}

	return nil
}

// checkDeterminism grows two independent engines through the same pairs and
// compares snapshots.
func checkDeterminism() error {
	grow := func() (engine.Snapshot, error) {
		e := engine.New()
		d0, d1 := e.Origin()
		last := d1
		for i := 0; i < 16; i++ {
			next, err := e.Synthesize(d0, last)
			if err != nil {
				return engine.Snapshot{}, err
			}
			last = next
		}
		return e.Snapshot(), nil
	}

	s1, err := grow()
	if err != nil {
		return err
	}
	s2, err := grow()
	if err != nil {
		return err
	}
	if len(s1.Nodes) != len(s2.Nodes) || len(s1.Edges) != len(s2.Edges) {
		return errors.New("independent engines diverged in size")
	}
	for i := range s1.Nodes {
		if s1.Nodes[i] != s2.Nodes[i] {
			return fmt.Errorf("node %d diverged: %q vs %q", i, s1.Nodes[i], s2.Nodes[i])
		}
	}
	for i := range s1.Edges {
		if s1.Edges[i] != s2.Edges[i] {
			return fmt.Errorf("edge %d diverged", i)
		}
	}

	return nil
}
