package main

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/time/rate"

	"github.com/utkarsh5026/rowblur/blur"
	"github.com/utkarsh5026/rowblur/internal/scheduler"
)

var (
	bold   = color.New(color.Bold)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	green  = color.New(color.FgGreen)
)

func printPlan(plan []scheduler.Assignment) {
	_, _ = bold.Println("Work plan:")

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Thread", "Rows", "Count", "CPUs", "Priority")
	for _, a := range plan {
		_ = table.Append(
			fmt.Sprintf("%d", a.Worker+1),
			fmt.Sprintf("%d-%d", a.RowStart, a.RowEnd-1),
			fmt.Sprintf("%d", a.Rows()),
			a.Mask.String(),
			a.Priority.String(),
		)
	}
	_ = table.Render()
	fmt.Println()
}

func printReport(report *blur.Report) {
	_, _ = bold.Println("Workers:")

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Thread", "OS tid", "Rows", "Pixels", "Time", "Pixels/ms")
	for _, w := range report.Workers {
		tid := "-"
		if w.Thread != 0 {
			tid = fmt.Sprintf("%d", w.Thread)
		}
		throughput := "-"
		if ms := float64(w.Elapsed) / float64(time.Millisecond); ms > 0 {
			throughput = fmt.Sprintf("%.0f", float64(w.Pixels)/ms)
		}
		_ = table.Append(
			fmt.Sprintf("%d", w.Worker+1),
			tid,
			fmt.Sprintf("%d-%d", w.RowStart, w.RowEnd-1),
			fmt.Sprintf("%d", w.Pixels),
			w.Elapsed.Round(time.Microsecond).String(),
			throughput,
		)
	}
	_ = table.Render()

	for _, w := range report.Workers {
		if w.HintErr != nil {
			_, _ = yellow.Printf("warning: thread %d: %v\n", w.Worker+1, w.HintErr)
		}
	}
}

// rowProgress drives a progress bar from the engine's row hook. Workers
// report rows concurrently; redraws are limited to one per interval.
// The bar is created by start, once the image height is known.
type rowProgress struct {
	quiet bool
	bar   *progressbar.ProgressBar
	rows  atomic.Int64
	every rate.Sometimes
}

func (p *rowProgress) start(height int) {
	if p.quiet {
		return
	}
	p.every.Interval = 50 * time.Millisecond
	p.bar = progressbar.NewOptions(height,
		progressbar.OptionSetDescription("Blurring rows"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("rows"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
	)
}

func (p *rowProgress) row(int, int) {
	done := p.rows.Add(1)
	if p.bar == nil {
		return
	}
	p.every.Do(func() {
		_ = p.bar.Set64(done)
	})
}

func (p *rowProgress) finish() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Set64(p.rows.Load())
	_ = p.bar.Finish()
}
