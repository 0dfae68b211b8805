// forest-bench times the forest containers against each other and writes
// the measurements to a CSV file.
//
// Usage:
//
//	forest-bench [-sizes 1000,5000,10000,50000] [-order 32] [-out file.csv]
//	             [-trace error|info|debug] [-no-color]
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/term"

	"github.com/treelab/forest"
	"github.com/treelab/forest/avl"
	"github.com/treelab/forest/bench"
	"github.com/treelab/forest/bst"
	"github.com/treelab/forest/btree"
	"github.com/treelab/forest/csvlog"
	"github.com/treelab/forest/redblack"
)

func main() {
	sizesFlag := flag.String("sizes", "", "comma-separated input sizes (default 1000,5000,10000,50000)")
	outFlag := flag.String("out", "", "CSV output file (default a timestamped file below "+csvlog.DefaultDir+")")
	orderFlag := flag.Int("order", btree.DefaultOrder, "B-tree order (max children per node)")
	traceFlag := flag.String("trace", "error", "trace level: error, info or debug")
	noColorFlag := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(traceLevel(*traceFlag))
	if *noColorFlag || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	if err := run(*sizesFlag, *outFlag, *orderFlag); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("forest-bench: %v", err))
		os.Exit(1)
	}
}

func run(sizesFlag, outFlag string, order int) error {
	sizes, err := parseSizes(sizesFlag)
	if err != nil {
		return err
	}
	log, err := openLog(outFlag)
	if err != nil {
		return err
	}
	defer log.Close()
	fmt.Printf("writing measurements to %s\n", color.CyanString(log.Path()))

	tasks := []bench.Task{
		{Name: "BinaryTree", Make: func() forest.Set[int] { return bst.NewOrdered[int]() }},
		{Name: "AVLTree", Make: func() forest.Set[int] { return avl.NewOrdered[int]() }},
		{Name: "RedBlackTree", Make: func() forest.Set[int] { return redblack.NewOrdered[int]() }},
		{Name: "BTreeSet", Make: func() forest.Set[int] {
			set, err := btree.NewOrdered[int](order)
			if err != nil {
				panic(err)
			}
			return set
		}},
	}

	runner := &bench.Runner{Sizes: sizes}
	done := make(chan struct{})
	if ch, ok := runner.Progress(); ok {
		go func() {
			defer close(done)
			for m := range ch {
				p := m.(bench.Progress)
				fmt.Printf("%s %-14s %-12s N=%-6d %11.6fs\n",
					color.GreenString("✓"), p.Task, p.Phase, p.Size, p.Seconds)
			}
		}()
	} else {
		close(done)
	}

	err = runner.RunAll(tasks, log)
	<-done
	if err != nil {
		return err
	}
	if err := log.Flush(); err != nil {
		return err
	}
	fmt.Println(color.GreenString("done: %d tasks × %d sizes", len(tasks), len(sizes)))
	return nil
}

func openLog(out string) (*csvlog.Logger, error) {
	if out == "" {
		return csvlog.OpenDefault()
	}
	return csvlog.OpenFile(out)
}

func parseSizes(s string) ([]int, error) {
	if s == "" {
		return nil, nil // Runner falls back to its defaults
	}
	var sizes []int
	for _, field := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid size %q", field)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func traceLevel(s string) tracing.TraceLevel {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	default:
		return tracing.LevelError
	}
}
