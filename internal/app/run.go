package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/neuratlas/internal/atlas"
	"github.com/vk/neuratlas/internal/component"
	"github.com/vk/neuratlas/internal/config"
	"github.com/vk/neuratlas/internal/ctxlog"
	"github.com/vk/neuratlas/internal/signal"
)

// Run executes the main application logic: build the component tree from
// the loaded model, print the hierarchy, then apply every stimulus.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	root, err := atlas.Build(ctx, a.model)
	if err != nil {
		return fmt.Errorf("failed to build component tree: %w", err)
	}
	a.logger.Debug("Component tree built.", "root", root.Name())

	if !a.config.SkipTree {
		a.printHierarchy(root)
	}

	stimuli := a.model.Stimuli
	if a.config.Stimulus != nil {
		stimuli = append(stimuli, a.config.Stimulus)
	}
	if len(stimuli) == 0 {
		a.logger.Debug("No stimuli configured, nothing to process.")
		return nil
	}

	for _, st := range stimuli {
		if err := a.applyStimulus(ctx, root, st); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// printHierarchy renders the tree with two-space indentation per depth.
func (a *App) printHierarchy(root *component.Component) {
	fmt.Fprintln(a.outW, "COMPONENT HIERARCHY:")
	component.Walk(root, func(c *component.Component, depth int) {
		fmt.Fprintf(a.outW, "%s├── %s\n", strings.Repeat("  ", depth), c.Name())
	})
}

// applyStimulus resolves the target by name, feeds it the signal, and
// prints the outputs. An unresolvable target is an error, not a crash.
func (a *App) applyStimulus(ctx context.Context, root *component.Component, st *config.StimulusDef) error {
	target, ok := component.FindByName(root, st.Target)
	if !ok {
		return fmt.Errorf("stimulus %q: no component named %q in the atlas", st.Name, st.Target)
	}
	a.logger.Info("Applying stimulus.", "stimulus", st.Name, "target", target.Path())

	sig := signal.New(st.Kind, st.Strength, st.Payload)
	outputs := target.Process(sig)

	fmt.Fprintf(a.outW, "\nFound: %s\n", target.Path())
	fmt.Fprintf(a.outW, "Processing signal: %s (strength %.3f)\n", sig.Kind, sig.Strength)
	for _, out := range outputs {
		fmt.Fprintf(a.outW, "Output signal: %s (strength %.3f) payload=%v\n", out.Kind, out.Strength, out.Payload)
	}
	if len(outputs) == 0 {
		fmt.Fprintln(a.outW, "No output signals.")
	}
	fmt.Fprintf(a.outW, "Activity level: %.3f\n", target.ActivityLevel())

	if st.Propagate {
		for _, out := range outputs {
			target.Propagate(ctx, out)
		}
		a.logger.Debug("Stimulus outputs propagated along connections.",
			"stimulus", st.Name, "connections", len(target.Connections()))
	}
	return nil
}
