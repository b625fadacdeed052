// Command rowblur applies a radius-5 box blur to an image using a fixed
// number of worker threads pinned to the first cores of the machine.
//
//	rowblur [flags] <input> <output> <workers> <cores>
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/utkarsh5026/rowblur/blur"
	"github.com/utkarsh5026/rowblur/internal/scheduler"
)

func main() {
	enableWindowsANSI()
	os.Exit(run())
}

func run() int {
	priorityFlag := flag.String("p", "", "Comma-separated priority per worker (below_normal|normal|above_normal or 1|2|3)")
	diagFlag := flag.String("diag", "", "Directory for per-thread timing logs (thread<N>.txt); disabled when empty")
	stallFlag := flag.Duration("stall", 0, "Give up if the workers have not finished after this long (0 = wait forever)")
	quietFlag := flag.Bool("quiet", false, "Do not show the progress bar")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <input> <output> <workers> <cores>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	inv, err := parseInvocation(flag.Args())
	if err != nil {
		_, _ = red.Println(err)
		flag.Usage()
		return 2
	}

	var prios []blur.Priority
	switch {
	case *priorityFlag != "":
		prios, err = parsePriorityList(*priorityFlag, inv.workers)
	case term.IsTerminal(int(os.Stdin.Fd())):
		prios, err = promptPriorities(os.Stdin, os.Stdout, inv.workers)
	}
	if err != nil {
		_, _ = red.Printf("Error reading priorities: %v\n", err)
		return 2
	}

	opts := []blur.Option{
		blur.WithWorkerCount(inv.workers),
		blur.WithCoreCount(inv.cores),
		blur.WithPriorities(prios...),
		blur.WithStallTimeout(*stallFlag),
	}
	if *diagFlag != "" {
		opts = append(opts, blur.WithDiagnostics(blur.FileDiagnostics{Dir: *diagFlag}))
	}

	progress := &rowProgress{quiet: *quietFlag}
	opts = append(opts,
		blur.WithPlanHook(func(plan []scheduler.Assignment) {
			fmt.Println()
			printPlan(plan)
			progress.start(plan[len(plan)-1].RowEnd)
		}),
		blur.WithRowHook(progress.row),
	)

	eng, err := blur.New(opts...)
	if err != nil {
		_, _ = red.Printf("Invalid configuration: %v\n", err)
		return 2
	}

	report, err := eng.Run(inv.input, inv.output)
	progress.finish()
	if err != nil {
		_, _ = red.Printf("Error: %v\n", err)
		return exitCode(err)
	}

	printReport(report)
	fmt.Println()
	_, _ = green.Printf("Saved %s\n", inv.output)
	fmt.Printf("Time: %d ms\n", report.Elapsed.Milliseconds())
	return 0
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, blur.ErrConfiguration):
		return 2
	case errors.Is(err, blur.ErrStalled):
		return 3
	default:
		return 1
	}
}
