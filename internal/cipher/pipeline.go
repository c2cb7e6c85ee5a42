package cipher

import (
	"fmt"
	"sync"

	"github.com/cipherpipe-go/internal/errors"
)

// Stage is a named encoder instance inside a Pipeline
type Stage struct {
	Encoder Encoder
	Name    string
}

// Pipeline chains encoders reversibly: Encode applies stages in insertion
// order, Decode applies them in exact reverse order, mirroring stack-based
// undo. Stage names are unique within one Pipeline.
type Pipeline struct {
	mu     sync.RWMutex
	stages []Stage
}

// NewPipeline creates a Pipeline from the given stages. Duplicate names,
// empty names, or nil encoders are rejected before any stage is taken.
func NewPipeline(stages ...Stage) (*Pipeline, error) {
	if err := validateStages(nil, stages); err != nil {
		return nil, err
	}
	p := &Pipeline{stages: make([]Stage, len(stages))}
	copy(p.stages, stages)
	return p, nil
}

// Encode applies each stage's Encode in insertion order
func (p *Pipeline) Encode(text string) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var err error
	for _, st := range p.stages {
		if text, err = st.Encoder.Encode(text); err != nil {
			return "", fmt.Errorf("stage %q: %w", st.Name, err)
		}
	}
	return text, nil
}

// Decode applies each stage's Decode in reverse insertion order
func (p *Pipeline) Decode(text string) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var err error
	for i := len(p.stages) - 1; i >= 0; i-- {
		st := p.stages[i]
		if text, err = st.Encoder.Decode(text); err != nil {
			return "", fmt.Errorf("stage %q: %w", st.Name, err)
		}
	}
	return text, nil
}

// AddStages appends stages to the pipeline. The whole batch is validated
// against existing and newly added names before any mutation, so a
// failing call leaves the pipeline untouched.
func (p *Pipeline) AddStages(stages ...Stage) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := validateStages(p.stages, stages); err != nil {
		return err
	}
	p.stages = append(p.stages, stages...)
	return nil
}

// RemoveStages removes the named stages. Every requested name must be
// present; a failing call leaves the pipeline untouched.
func (p *Pipeline) RemoveStages(names ...string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, name := range names {
		if name == "" {
			return errors.NewValidation("stage name cannot be empty")
		}
		if p.indexOf(name) < 0 {
			return errors.NewValidationf("stage %q is not in the pipeline", name)
		}
	}

	remove := make(map[string]bool, len(names))
	for _, name := range names {
		remove[name] = true
	}

	kept := p.stages[:0]
	for _, st := range p.stages {
		if !remove[st.Name] {
			kept = append(kept, st)
		}
	}
	p.stages = kept
	return nil
}

// StageNames returns the ordered names of the current stages
func (p *Pipeline) StageNames() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	names := make([]string, len(p.stages))
	for i, st := range p.stages {
		names[i] = st.Name
	}
	return names
}

// indexOf must be called with the lock held
func (p *Pipeline) indexOf(name string) int {
	for i, st := range p.stages {
		if st.Name == name {
			return i
		}
	}
	return -1
}

func validateStages(existing, added []Stage) error {
	seen := make(map[string]bool, len(existing)+len(added))
	for _, st := range existing {
		seen[st.Name] = true
	}
	for _, st := range added {
		if st.Encoder == nil {
			return errors.NewValidationf("stage %q has no encoder", st.Name)
		}
		if st.Name == "" {
			return errors.NewValidation("stage name cannot be empty")
		}
		if seen[st.Name] {
			return errors.NewValidationf("two stages cannot share the name %q", st.Name)
		}
		seen[st.Name] = true
	}
	return nil
}
