package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tripable/pkg/reveal"
)

type planOptions struct {
	layout   string
	root     string
	slots    map[reveal.Slot]*string
	simulate bool
	realtime bool
}

func newPlanCmd(opts *rootOptions) *cobra.Command {
	po := &planOptions{slots: map[reveal.Slot]*string{}}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the reveal schedule for a component and a simulated trace",
		Long: "Plan computes per-element delays for one animated component using the\n" +
			"configured reveal timing. Leave a slot empty to mark it absent.",
		RunE: func(cmd *cobra.Command, args []string) error {
			sched, err := po.schedule(opts.cfg.Reveal)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			writeSchedule(out, sched, opts.cfg.Reveal)
			if !po.simulate {
				return nil
			}
			var tr trace
			if po.realtime {
				tr, err = runRealtime(cmd.Context(), sched, opts.cfg.Reveal, opts.logger)
			} else {
				tr, err = simulate(sched, opts.cfg.Reveal)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			return writeTrace(out, tr)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&po.layout, "layout", string(reveal.LayoutStacked), "stacked, section or buildup")
	flags.StringVar(&po.root, "root", string(reveal.DirectionBottom), "direction of the component root")
	for _, slot := range []reveal.Slot{reveal.SlotMedia, reveal.SlotTitle, reveal.SlotDescription, reveal.SlotContent} {
		v := new(string)
		po.slots[slot] = v
		def := string(reveal.DirectionBottom)
		if slot == reveal.SlotContent {
			def = ""
		}
		flags.StringVar(v, string(slot), def, "direction of the "+string(slot)+" element, empty when absent")
	}
	flags.BoolVar(&po.simulate, "simulate", true, "run the sequencer against a simulated viewport and clock")
	flags.BoolVar(&po.realtime, "realtime", false, "run the trace against wall time on the sequencer loop")
	return cmd
}

func (po *planOptions) schedule(cfg reveal.Config) (reveal.Schedule, error) {
	layout, err := reveal.ParseLayout(po.layout)
	if err != nil {
		return reveal.Schedule{}, err
	}
	root, err := reveal.ParseDirection(po.root)
	if err != nil {
		return reveal.Schedule{}, err
	}
	var elements []reveal.Element
	for _, slot := range layout.Order() {
		raw := *po.slots[slot]
		if raw == "" {
			continue
		}
		dir, err := reveal.ParseDirection(raw)
		if err != nil {
			return reveal.Schedule{}, fmt.Errorf("%s: %w", slot, err)
		}
		elements = append(elements, reveal.Element{Slot: slot, Direction: dir, Present: true})
	}
	return reveal.Plan(layout, root, elements, cfg), nil
}

func writeSchedule(w io.Writer, sched reveal.Schedule, cfg reveal.Config) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "layout %s, duration %s, ends at %s\n", sched.Layout, sched.Duration, sched.End())
	fmt.Fprintln(tw, "SLOT\tDIRECTION\tINDEX\tDELAY\tINLINE STYLE")
	for _, e := range append([]reveal.Entry{sched.Root}, sched.Entries...) {
		index := "-"
		if e.Index >= 0 {
			index = fmt.Sprint(e.Index)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.Slot, e.Direction, index, e.Delay, reveal.InlineStyle(e, cfg).CSS())
	}
	tw.Flush()
}

// trace is what a run of the sequencer produced.
type trace struct {
	mutations []reveal.Mutation
	mounted   int
	visibleAt time.Time
	state     reveal.VisibilityState
}

// component places the traced component below the fold of viewport.
var component = reveal.Rect{X: 0, Y: 1200, W: 360, H: 420}

// simulate mounts the component, scrolls it into view and drains every timer
// on a manual clock.
func simulate(sched reveal.Schedule, cfg reveal.Config) (trace, error) {
	clock := reveal.NewManualClock(time.Unix(0, 0).UTC())
	viewport := reveal.NewViewport(1280, 800)
	rec := reveal.NewRecorder(clock)
	seq, err := reveal.New(sched, cfg, reveal.Env{
		Clock:    clock,
		Observer: viewport.Track(component),
		Sink:     rec,
	})
	if err != nil {
		return trace{}, err
	}
	seq.Mount()
	defer seq.Unmount()

	mounted := rec.Len()
	viewport.ScrollTo(900)
	clock.Advance(sched.End() + time.Millisecond)
	return trace{
		mutations: rec.Mutations(),
		mounted:   mounted,
		visibleAt: seq.VisibleAt(),
		state:     seq.State(),
	}, nil
}

// runRealtime drives the same scenario against wall time. Every sequencer
// call and timer callback runs on one loop goroutine.
func runRealtime(ctx context.Context, sched reveal.Schedule, cfg reveal.Config, logger *zap.Logger) (trace, error) {
	loop := reveal.NewLoop(logger)
	defer loop.Close()

	clock := reveal.NewLoopClock(loop)
	viewport := reveal.NewViewport(1280, 800)
	rec := reveal.NewRecorder(clock)
	seq, err := reveal.New(sched, cfg, reveal.Env{
		Clock:    clock,
		Observer: viewport.Track(component),
		Sink:     rec,
		Logger:   logger,
	})
	if err != nil {
		return trace{}, err
	}

	var tr trace
	loop.Do(func() {
		seq.Mount()
		tr.mounted = rec.Len()
		viewport.ScrollTo(900)
	})
	if sched.Animated() {
		if err := waitAnimated(ctx, loop, seq, sched.End()+time.Second); err != nil {
			loop.Do(seq.Unmount)
			return trace{}, err
		}
	}
	loop.Do(func() {
		tr.mutations = rec.Mutations()
		tr.visibleAt = seq.VisibleAt()
		tr.state = seq.State()
		seq.Unmount()
	})
	return tr, nil
}

func waitAnimated(ctx context.Context, loop *reveal.Loop, seq *reveal.Sequencer, limit time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, limit)
	defer cancel()
	tick := time.NewTicker(5 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("reveal did not complete: %w", ctx.Err())
		case <-tick.C:
			var done bool
			loop.Do(func() { done = seq.State().HasAnimated })
			if done {
				return nil
			}
		}
	}
}

func writeTrace(w io.Writer, tr trace) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "AT\tSLOT\tSTYLE")
	for i, m := range tr.mutations {
		at := "mount"
		if i >= tr.mounted {
			at = m.At.Sub(tr.visibleAt).Round(time.Millisecond).String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", at, m.Slot, m.Style.CSS())
	}
	fmt.Fprintf(tw, "entered view: %t, animated: %t\n", tr.state.HasEnteredView, tr.state.HasAnimated)
	return tw.Flush()
}
