package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/Garsondee/Drone-Survey/internal/harness"
	"github.com/Garsondee/Drone-Survey/internal/terrain"
	"github.com/Garsondee/Drone-Survey/internal/view"
)

const defaultScript = "toggle-overlay,select-zone:warning,select-zone:critical,reset-view"

type runStats struct {
	runIndex int
	seed     int64

	steps    []harness.Step
	final    harness.Snapshot
	scene    terrain.Scene
	renders  int
	events   []harness.Event
	messages map[string]int

	successes int
	errors    int

	firstDeployAt  time.Duration
	firstArrivalAt time.Duration
}

type runOptions struct {
	script   string
	width    int
	height   int
	gap      time.Duration
	settle   time.Duration
	detached []string
}

func main() {
	var runs int
	var seedBase int64
	var seedStep int64
	var opts runOptions
	var detach string
	var showEvents bool

	flag.IntVar(&runs, "runs", 1, "number of headless runs")
	flag.Int64Var(&seedBase, "seed-base", 42, "terrain seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&opts.script, "commands", defaultScript, "comma-separated commands: toggle-overlay, reset-view, select-zone:<safe|warning|critical>")
	flag.IntVar(&opts.width, "width", 800, "terrain width")
	flag.IntVar(&opts.height, "height", 600, "terrain height")
	flag.DurationVar(&opts.gap, "gap", 250*time.Millisecond, "simulated time between commands")
	flag.DurationVar(&opts.settle, "settle", 2500*time.Millisecond, "simulated time before the first command")
	flag.StringVar(&detach, "detach", "", "comma-separated elements to remove (overlay, toggleOverlay, drone, satelliteView, safeZone, ...)")
	flag.BoolVar(&showEvents, "events", false, "print the full event log of each run")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		os.Exit(2)
	}
	if opts.width < 0 || opts.height < 0 {
		fmt.Println("error: -width and -height must be >= 0")
		os.Exit(2)
	}
	opts.detached = splitList(detach)

	fmt.Printf("=== Headless Survey Report ===\n")
	fmt.Printf("commands=%q runs=%d size=%dx%d seed_base=%d seed_step=%d\n\n",
		opts.script, runs, opts.width, opts.height, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs, err := runScript(i+1, seed, opts)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
		all = append(all, rs)
		printRun(os.Stdout, rs)
		if showEvents {
			for _, e := range rs.events {
				fmt.Println(e)
			}
			fmt.Println()
		}
	}

	printAggregate(os.Stdout, all)
}

func runScript(runIndex int, seed int64, opts runOptions) (runStats, error) {
	h, err := harness.New(
		harness.WithSize(opts.width, opts.height),
		harness.WithSeed(seed),
		harness.WithDetached(opts.detached...),
	)
	if err != nil {
		return runStats{}, err
	}
	h.Start()
	h.Advance(opts.settle)

	steps, err := h.RunScript(opts.script, opts.gap)
	if err != nil {
		return runStats{}, err
	}
	// Let pending animations and banners finish.
	h.Advance(5 * time.Second)

	events := h.Log.Entries()
	successes, errs := countNotifications(events)
	return runStats{
		runIndex:       runIndex,
		seed:           seed,
		steps:          steps,
		final:          h.Snapshot(),
		scene:          h.Scene(),
		renders:        h.Renders(),
		events:         events,
		messages:       messageCounts(events),
		successes:      successes,
		errors:         errs,
		firstDeployAt:  firstAt(events, "notify", view.MsgDroneDeployed),
		firstArrivalAt: firstAt(events, "notify", view.MsgDroneInPosition),
	}, nil
}

func countNotifications(events []harness.Event) (success, errs int) {
	for _, e := range events {
		if e.Category != "notify" {
			continue
		}
		if e.Key == "error" {
			errs++
		} else {
			success++
		}
	}
	return success, errs
}

func messageCounts(events []harness.Event) map[string]int {
	out := map[string]int{}
	for _, e := range events {
		if e.Category == "notify" {
			out[e.Key+": "+e.Value]++
		}
	}
	return out
}

// firstAt returns the time of the first event with the given value, or -1.
func firstAt(events []harness.Event, category, value string) time.Duration {
	for _, e := range events {
		if e.Category == category && e.Value == value {
			return e.At
		}
	}
	return -1
}

func formatStep(i int, st harness.Step) string {
	note := "(no notification)"
	if st.Notified {
		note = st.Notification.Text()
	}
	return fmt.Sprintf("  %2d %-22s %s | %s", i+1, st.Command, st.Snapshot.State, note)
}

func printRun(w io.Writer, rs runStats) {
	fmt.Fprintf(w, "--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Fprintf(w, "terrain: %s renders=%d\n", rs.scene.Summary(), rs.renders)
	fmt.Fprintf(w, "intro: deployed_at=%s arrived_at=%s\n", msString(rs.firstDeployAt), msString(rs.firstArrivalAt))
	fmt.Fprintf(w, "steps:\n")
	for i, st := range rs.steps {
		fmt.Fprintln(w, formatStep(i, st))
	}
	fmt.Fprintf(w, "final: %s\n", rs.final)
	fmt.Fprintf(w, "notifications: success=%d error=%d\n\n", rs.successes, rs.errors)
}

func printAggregate(w io.Writer, all []runStats) {
	if len(all) == 0 {
		return
	}
	var successes, errs int
	var intensity float64
	var blobs int
	messages := map[string]int{}
	for _, rs := range all {
		successes += rs.successes
		errs += rs.errors
		for _, b := range rs.scene.Blobs {
			intensity += b.Intensity
		}
		blobs += len(rs.scene.Blobs)
		for m, n := range rs.messages {
			messages[m] += n
		}
	}

	fmt.Fprintf(w, "=== Aggregate (%d runs) ===\n", len(all))
	fmt.Fprintf(w, "avg_notifications: success=%.1f error=%.1f\n", avg(successes, len(all)), avg(errs, len(all)))
	if blobs > 0 {
		fmt.Fprintf(w, "avg_blob_intensity=%.3f\n", intensity/float64(blobs))
	}
	fmt.Fprintf(w, "messages:\n")
	keys := make([]string, 0, len(messages))
	for k := range messages {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %3d  %s\n", messages[k], k)
	}
}

func avg(sum int, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func msString(d time.Duration) string {
	if d < 0 {
		return "n/a"
	}
	return fmt.Sprintf("%dms", d.Milliseconds())
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
