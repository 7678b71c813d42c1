// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"

	"github.com/ezrec/bf/interpreter"
	"github.com/ezrec/bf/program"
	"github.com/ezrec/bf/watch"
)

func main() {
	var input string
	var output string
	var verbose bool
	var limit int
	var expr string
	var trace string
	var list bool

	flag.StringVar(&input, "i", "-", "Program input")
	flag.StringVar(&output, "o", "-", "Program output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.IntVar(&limit, "n", 0, "Maximum number of steps, 0 for no limit")
	flag.StringVar(&expr, "w", "", "Stop when the watch expression is true")
	flag.StringVar(&trace, "trace", "", "JSON step trace file")
	flag.BoolVar(&list, "l", false, "List the parsed program, do not execute")

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	source := "examples/hello_world.b"
	if flag.NArg() == 1 {
		source = flag.Arg(0)
	}

	inf, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	defer inf.Close()

	parser := &program.Parser{Verbose: verbose}
	prog, err := parser.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	if list {
		fmt.Println(prog.String())
		return
	}

	var w *watch.Watch
	if len(expr) != 0 {
		w, err = watch.Compile(expr)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
	}

	in := interpreter.NewInterpreter(prog)
	in.Verbose = verbose

	if input == "-" {
		in.Console.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		in.Console.Input = inf
	}

	if output == "-" {
		in.Console.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		in.Console.Output = ouf
	}

	var handlers []slog.Handler
	if verbose {
		handlers = append(handlers, slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	if len(trace) != 0 {
		trf, err := os.Create(trace)
		if err != nil {
			log.Fatalf("%v: %v", trace, err)
		}
		defer trf.Close()
		handlers = append(handlers, slog.NewJSONHandler(trf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	if len(handlers) != 0 {
		in.Trace = slog.New(slogmulti.Fanout(handlers...))
	}

	in.Reset()
	for done, err := in.Step(); !done; done, err = in.Step() {
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}
		if limit > 0 && in.Steps >= limit {
			log.Printf("%v: stopped after %d steps", source, in.Steps)
			break
		}
		if w != nil {
			hit, err := w.Eval(in)
			if err != nil {
				log.Fatalf("%v: %v", source, err)
			}
			if hit {
				log.Printf("%v: watch '%v' at step %d ptr %d cell 0x%02x", source, w.Expr, in.Steps, in.Pointer, in.Cell())
				break
			}
		}
	}
}
