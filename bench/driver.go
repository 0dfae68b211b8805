// Package bench drives timed workloads against the forest containers.
//
// A Runner times four phases per container and input size: bulk insertion,
// membership queries for present keys, membership queries for absent keys,
// and bulk erasure. Measurements go to a Recorder (usually a csvlog.Logger)
// under labels of the form "<container>.<phase>.N=<size>". Input keys are
// shuffled with a fixed seed so that repeated runs measure identical work.
package bench

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/guiguan/caster"
	"github.com/npillmayer/schuko/tracing"

	"github.com/treelab/forest"
)

// tracer traces to a global logger with key 'forest'.
func tracer() tracing.Trace {
	return tracing.Select("forest")
}

// Recorder receives one measurement per timed phase. csvlog.Logger
// implements it.
type Recorder interface {
	Append(label string, count uint64, seconds float64) error
}

// DefaultSizes are the input sizes a zero Runner measures.
var DefaultSizes = []int{1000, 5000, 10000, 50000}

// DefaultSeed feeds the input shuffles of a zero Runner.
const DefaultSeed int64 = 42

// Phase names as they appear in measurement labels.
const (
	PhaseInsert     = "insert"
	PhaseSearchHit  = "search_hit"
	PhaseSearchMiss = "search_miss"
	PhaseErase      = "erase"
)

// Task names a container under test and knows how to create a fresh,
// empty instance of it.
type Task struct {
	Name string
	Make func() forest.Set[int]
}

// Progress describes one completed phase. Runner broadcasts Progress values
// to subscribers obtained from Runner.Progress.
type Progress struct {
	Task    string
	Phase   string
	Size    int
	Seconds float64
}

// Runner times tasks over a series of input sizes. The zero value is ready
// to use and measures DefaultSizes with DefaultSeed. A Runner must not be
// reused after RunAll has returned.
type Runner struct {
	Sizes   []int
	Seed    int64
	Workers int // max concurrent tasks in RunAll; 0 means GOMAXPROCS

	castOnce sync.Once
	cast     *caster.Caster
}

func (r *Runner) sizes() []int {
	if len(r.Sizes) == 0 {
		return DefaultSizes
	}
	return r.Sizes
}

func (r *Runner) seed() int64 {
	if r.Seed == 0 {
		return DefaultSeed
	}
	return r.Seed
}

func (r *Runner) broadcaster() *caster.Caster {
	r.castOnce.Do(func() {
		r.cast = caster.New(nil)
	})
	return r.cast
}

// Progress returns a channel of Progress events. ok is false once the
// Runner has finished and no further events will be delivered. Slow
// subscribers miss events rather than stalling the measurement.
func (r *Runner) Progress() (<-chan interface{}, bool) {
	return r.broadcaster().Sub(nil, 16)
}

// ShuffledInts returns the keys 0..n-1 in an order drawn from rng.
func ShuffledInts(n int, rng *rand.Rand) []int {
	return rng.Perm(n)
}

// MissingInts returns n keys guaranteed to be absent from a set holding
// 0..n-1.
func MissingInts(n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = n + i
	}
	return keys
}

// RunSet measures all four phases of one task at one input size and records
// each measurement. The container is created fresh and filled from a
// shuffled permutation of 0..size-1.
func (r *Runner) RunSet(task Task, size int, rec Recorder) error {
	rng := rand.New(rand.NewSource(r.seed()))
	insertKeys := ShuffledInts(size, rng)
	searchKeys := ShuffledInts(size, rng)
	missKeys := MissingInts(size)
	eraseKeys := ShuffledInts(size, rng)

	set := task.Make()
	err := r.timePhase(task.Name, PhaseInsert, size, rec, func() {
		for _, k := range insertKeys {
			set.Insert(k)
		}
	})
	if err != nil {
		return err
	}
	if set.Len() != size {
		return fmt.Errorf("bench: %s holds %d keys after inserting %d", task.Name, set.Len(), size)
	}
	err = r.timePhase(task.Name, PhaseSearchHit, size, rec, func() {
		for _, k := range searchKeys {
			set.Contains(k)
		}
	})
	if err != nil {
		return err
	}
	err = r.timePhase(task.Name, PhaseSearchMiss, size, rec, func() {
		for _, k := range missKeys {
			set.Contains(k)
		}
	})
	if err != nil {
		return err
	}
	err = r.timePhase(task.Name, PhaseErase, size, rec, func() {
		for _, k := range eraseKeys {
			set.Erase(k)
		}
	})
	if err != nil {
		return err
	}
	if !set.IsEmpty() {
		return fmt.Errorf("bench: %s holds %d keys after erasing all", task.Name, set.Len())
	}
	return nil
}

func (r *Runner) timePhase(taskName, phase string, size int, rec Recorder, work func()) error {
	start := time.Now()
	work()
	seconds := time.Since(start).Seconds()
	label := fmt.Sprintf("%s.%s.N=%d", taskName, phase, size)
	tracer().Debugf("%s took %.9fs", label, seconds)
	if err := rec.Append(label, uint64(size), seconds); err != nil {
		return fmt.Errorf("bench: cannot record %s: %w", label, err)
	}
	r.broadcaster().TryPub(Progress{Task: taskName, Phase: phase, Size: size, Seconds: seconds})
	return nil
}
