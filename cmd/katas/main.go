// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tebeka/atexit"

	"github.com/ezrec/katas/asm"
	"github.com/ezrec/katas/fighter"
	"github.com/ezrec/katas/ipv4"
)

// defines collects repeated -D NAME=VALUE flags.
type defines map[string]string

func (d defines) String() string {
	return fmt.Sprint(map[string]string(d))
}

func (d defines) Set(text string) error {
	name, value, ok := strings.Cut(text, "=")
	if !ok || len(name) == 0 {
		return fmt.Errorf("-D %v: expected NAME=VALUE", text)
	}
	d[name] = value
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %v asm [-v] [-budget N] [-D NAME=VALUE]... FILE\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "       %v ipv4 START END\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "       %v fighter -grid ROWS [-x X] [-y Y] MOVE...\n", os.Args[0])
}

func main() {
	if len(os.Args) < 2 {
		usage()
		atexit.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "asm":
		err = runAsm(os.Stdout, os.Args[2:])
	case "ipv4":
		err = runIpv4(os.Stdout, os.Args[2:])
	case "fighter":
		err = runFighter(os.Stdout, os.Args[2:])
	default:
		usage()
		atexit.Fatalf("%v: unknown command %v", os.Args[0], os.Args[1])
	}
	if err != nil {
		atexit.Fatalf("%v %v: %v", os.Args[0], os.Args[1], err)
	}

	atexit.Exit(0)
}

func runAsm(out io.Writer, args []string) (err error) {
	var verbose bool
	var budget int
	predefs := defines{}

	flags := flag.NewFlagSet("asm", flag.ContinueOnError)
	flags.BoolVar(&verbose, "v", false, "Verbose mode")
	flags.IntVar(&budget, "budget", 0, "Maximum instructions to execute, 0 for no limit")
	flags.Var(predefs, "D", "Predefine an equate as NAME=VALUE")
	err = flags.Parse(args)
	if err != nil {
		return
	}

	if flags.NArg() != 1 {
		err = fmt.Errorf("expected one .asm file, got %v", flags.Args())
		return
	}

	name := flags.Arg(0)
	var input io.Reader = os.Stdin
	if name != "-" {
		inf, err := os.Open(name)
		if err != nil {
			return err
		}
		defer inf.Close()
		input = inf
	}

	src := &asm.Source{Verbose: verbose}
	for equ, value := range predefs {
		src.Predefine(equ, value)
	}

	lst, err := src.Load(input)
	if err != nil {
		err = fmt.Errorf("%v: %w", name, err)
		return
	}

	vm := asm.NewMachine(lst.Lines)
	vm.Verbose = verbose
	vm.Budget = budget

	regs, err := vm.Run()
	if lineno, ok := lst.Locate(err); ok {
		err = fmt.Errorf("%v:%d: %w", name, lineno, err)
	}
	if err != nil {
		if verbose {
			log.Printf("state:\n%v", vm)
		}
		return
	}

	fmt.Fprintln(out, registerTable(regs, vm.Steps))

	return
}

// registerTable renders the written registers.
func registerTable(regs map[string]int64, steps int) string {
	tw := table.NewWriter()
	tw.SetTitle(fmt.Sprintf("Registers after %d steps", steps))
	tw.AppendHeader(table.Row{"Register", "Value"})
	for n := range asm.REGISTER_COUNT {
		name := asm.Register('a' + n).String()
		value, ok := regs[name]
		if !ok {
			continue
		}
		tw.AppendRow(table.Row{name, value})
	}
	return tw.Render()
}

func runIpv4(out io.Writer, args []string) (err error) {
	if len(args) != 2 {
		err = fmt.Errorf("expected START END, got %v", args)
		return
	}

	count, err := ipv4.IpsBetween(args[0], args[1])
	if err != nil {
		return
	}

	fmt.Fprintln(out, count)
	return
}

// parseGrid parses rows separated by '/' of fighters separated by ','.
func parseGrid(text string) (grid fighter.Grid) {
	for _, row := range strings.Split(text, "/") {
		grid = append(grid, strings.Split(row, ","))
	}
	return
}

func runFighter(out io.Writer, args []string) (err error) {
	var grid string
	var x, y int

	flags := flag.NewFlagSet("fighter", flag.ContinueOnError)
	flags.StringVar(&grid, "grid", "", "Fighter grid: rows separated by '/', names by ','")
	flags.IntVar(&x, "x", 0, "Starting column")
	flags.IntVar(&y, "y", 0, "Starting row")
	err = flags.Parse(args)
	if err != nil {
		return
	}

	var moves []fighter.Direction
	for _, arg := range flags.Args() {
		var d fighter.Direction
		d, err = fighter.ParseDirection(arg)
		if err != nil {
			return
		}
		moves = append(moves, d)
	}

	g := parseGrid(grid)
	start := fighter.Position{X: x, Y: y}
	if g.Fighter(start) == "" {
		err = fmt.Errorf("no fighter at %v,%v", x, y)
		return
	}

	names := fighter.Selection(g, start, moves)

	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"#", "Move", "Fighter"})
	for n, name := range names {
		tw.AppendRow(table.Row{n + 1, moves[n], name})
	}
	fmt.Fprintln(out, tw.Render())

	return
}
