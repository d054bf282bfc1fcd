package registry

import (
	"fmt"

	"freedge/internal/domain/entity"
)

// Modification pairs a persisted entry with the imported candidate of the same name.
type Modification struct {
	Existing  *entity.Freedge
	Candidate *entity.Freedge
}

// Merged returns the candidate carrying the existing identity, ready to be written.
func (m Modification) Merged() *entity.Freedge {
	merged := *m.Candidate
	merged.ID = m.Existing.ID

	return &merged
}

// Changes lists the differing fields, identity excluded.
func (m Modification) Changes() []entity.FieldChange {
	return entity.FieldDiff(m.Existing, m.Merged())
}

// CollisionKind tells which snapshot held a repeated project name.
type CollisionKind string

const (
	// CollisionExisting is a name repeated in the persisted registry.
	CollisionExisting CollisionKind = "existing"
	// CollisionCandidate is a name repeated in the imported dataset.
	CollisionCandidate CollisionKind = "candidate"
)

// Collision records a repeated project name and which entry was ignored for matching.
type Collision struct {
	Kind        CollisionKind
	ProjectName string
	Kept        *entity.Freedge
	Ignored     *entity.Freedge
}

func (c Collision) String() string {
	if c.Kind == CollisionExisting {
		return fmt.Sprintf("duplicate project name %q in registry: matching id %d, ignoring id %d",
			c.ProjectName, c.Kept.ID, c.Ignored.ID)
	}

	return fmt.Sprintf("duplicate project name %q in dataset: keeping first occurrence", c.ProjectName)
}

// Delta is the three-way difference between the registry and an imported dataset.
type Delta struct {
	ToAdd      []*entity.Freedge
	ToRemove   []*entity.Freedge
	ToModify   []Modification
	Collisions []Collision
}

// IsEmpty reports whether applying the delta would change nothing.
func (d *Delta) IsEmpty() bool {
	return len(d.ToAdd) == 0 && len(d.ToRemove) == 0 && len(d.ToModify) == 0
}

// RemovesAll reports whether the delta would empty a non-empty registry.
func (d *Delta) RemovesAll(existing int) bool {
	return existing > 0 && len(d.ToRemove) == existing
}

// Summary renders one line per non-empty change kind.
func (d *Delta) Summary() []string {
	if d.IsEmpty() {
		return []string{"Loading the dataset will not change any data in the registry."}
	}

	var lines []string
	if n := len(d.ToAdd); n > 0 {
		lines = append(lines, fmt.Sprintf("(%d) entries will be ADDED.", n))
	}
	if n := len(d.ToRemove); n > 0 {
		lines = append(lines, fmt.Sprintf("(%d) entries will be REMOVED.", n))
	}
	if n := len(d.ToModify); n > 0 {
		lines = append(lines, fmt.Sprintf("(%d) entries will be MODIFIED.", n))
	}

	return lines
}

// Reconcile diffs candidates against existing by project name. It never mutates its inputs.
// Repeated names in existing match the lowest identity; repeated names in candidates keep
// the first occurrence. Both are reported as collisions.
func Reconcile(existing, candidates []*entity.Freedge) *Delta {
	delta := &Delta{}

	byName := make(map[string]*entity.Freedge, len(existing))
	for _, entry := range existing {
		kept, ok := byName[entry.ProjectName]
		if !ok {
			byName[entry.ProjectName] = entry

			continue
		}

		ignored := entry
		if entry.ID < kept.ID {
			kept, ignored = entry, kept
			byName[entry.ProjectName] = entry
		}
		delta.Collisions = append(delta.Collisions, Collision{
			Kind:        CollisionExisting,
			ProjectName: entry.ProjectName,
			Kept:        kept,
			Ignored:     ignored,
		})
	}

	seen := make(map[string]*entity.Freedge, len(candidates))
	for _, candidate := range candidates {
		if first, dup := seen[candidate.ProjectName]; dup {
			delta.Collisions = append(delta.Collisions, Collision{
				Kind:        CollisionCandidate,
				ProjectName: candidate.ProjectName,
				Kept:        first,
				Ignored:     candidate,
			})

			continue
		}
		seen[candidate.ProjectName] = candidate

		match, ok := byName[candidate.ProjectName]
		switch {
		case !ok:
			delta.ToAdd = append(delta.ToAdd, candidate)
		case !entity.SameContent(match, candidate):
			delta.ToModify = append(delta.ToModify, Modification{Existing: match, Candidate: candidate})
		}
	}

	for _, entry := range existing {
		if _, ok := seen[entry.ProjectName]; !ok {
			delta.ToRemove = append(delta.ToRemove, entry)
		}
	}

	return delta
}
