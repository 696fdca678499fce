package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/zephyrtronium/calculator"
)

// aliases maps ASCII spellings to operator symbols.
var aliases = map[string]string{
	"*":    "×",
	"/":    "÷",
	"-":    "−",
	"sqrt": "√",
	"pi":   "π",
	"^":    "xʸ",
	"exp":  "eˣ",
	"neg":  "±",
}

func main() {
	log.SetFlags(0)
	var (
		inname, load, save, graph, gvar, verb string
		with                                  [][2]string
		sci                                   bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "", "result formatting string (default calculator display)")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.BoolVar(&sci, "sci", false, "enable scientific operators")
	flag.StringVar(&load, "load", "", "JSON program file to start from")
	flag.StringVar(&save, "save", "", "JSON program file to write at exit")
	flag.StringVar(&graph, "graph", "", "lo:hi:n to print n samples of the program instead of reading input")
	flag.StringVar(&gvar, "var", "M", "variable to sample with -graph")
	flag.Parse()

	var opts []calculator.Option
	if sci {
		opts = append(opts, calculator.Scientific())
	}
	b := calculator.New(opts...)
	for _, d := range with {
		v, ok := calculator.ParseNumber(d[1])
		if !ok {
			log.Fatalf("setting %s: %q is not a number", d[0], d[1])
		}
		b.Set(d[0], v)
	}
	if load != "" {
		if err := loadProgram(b, load); err != nil {
			log.Fatal(err)
		}
	}

	if graph != "" {
		xs, err := span(graph)
		if err != nil {
			log.Fatal(err)
		}
		for _, p := range b.Graph(gvar, xs) {
			if !p.OK {
				fmt.Printf("%s\t-\n", calculator.FormatNumber(p.X))
				continue
			}
			fmt.Printf("%s\t%s\n", calculator.FormatNumber(p.X), format(verb, p.Y))
		}
		return
	}

	var ins []io.Reader
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}

	for _, in := range ins {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			toks := strings.Fields(sc.Text())
			if len(toks) == 0 {
				continue
			}
			fmt.Println(run(b, toks, verb))
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
	}

	if save != "" {
		if err := saveProgram(b, save); err != nil {
			log.Fatal(err)
		}
	}
}

// run applies a line of tokens to b and returns the history line to print.
func run(b *calculator.Brain, toks []string, verb string) string {
	var (
		r   float64
		ok  bool
		err error
	)
	for _, tok := range toks {
		if s, ok := aliases[tok]; ok && b.Known(s) {
			tok = s
		}
		switch {
		case tok == "C":
			b.Clear()
			r, ok, err = 0, false, nil
		case tok == "⌫", tok == "undo":
			b.RemoveLast()
			r, ok, err = b.Evaluate()
		case strings.HasPrefix(tok, "→") && tok != "→":
			// Bind the variable to the current result.
			if v, has, _ := b.Evaluate(); has {
				b.Set(strings.TrimPrefix(tok, "→"), v)
			}
			r, ok, err = b.Evaluate()
		case b.Known(tok):
			r, ok, err = b.PerformOperation(tok)
		default:
			if v, isnum := calculator.ParseNumber(tok); isnum {
				r, ok, err = b.PushOperand(v)
			} else {
				r, ok, err = b.PushVariable(tok)
			}
		}
	}
	switch {
	case err != nil:
		return b.Describe() + " = " + err.Error()
	case ok:
		return b.Describe() + " = " + format(verb, r)
	default:
		return b.Describe()
	}
}

func format(verb string, v float64) string {
	if verb == "" {
		return calculator.FormatNumber(v)
	}
	return fmt.Sprintf(verb, v)
}

// span parses lo:hi:n.
func span(s string) ([]float64, error) {
	d := strings.Split(s, ":")
	if len(d) != 3 {
		return nil, fmt.Errorf(`graph range must be "lo:hi:n", not %q`, s)
	}
	lo, ok := calculator.ParseNumber(d[0])
	if !ok {
		return nil, fmt.Errorf("graph range: bad lower bound %q", d[0])
	}
	hi, ok := calculator.ParseNumber(d[1])
	if !ok {
		return nil, fmt.Errorf("graph range: bad upper bound %q", d[1])
	}
	n, err := strconv.Atoi(d[2])
	if err != nil || n < 1 {
		return nil, fmt.Errorf("graph range: bad sample count %q", d[2])
	}
	return calculator.Span(lo, hi, n), nil
}

func loadProgram(b *calculator.Brain, name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return errors.Wrap(err, "loading program")
	}
	if err := json.Unmarshal(data, b); err != nil {
		return errors.Wrapf(err, "decoding program %s", name)
	}
	return nil
}

func saveProgram(b *calculator.Brain, name string) error {
	data, err := json.Marshal(b)
	if err != nil {
		return errors.Wrap(err, "encoding program")
	}
	if err := os.WriteFile(name, append(data, '\n'), 0o644); err != nil {
		return errors.Wrap(err, "saving program")
	}
	return nil
}

func infile(inname string, std bool) (io.Reader, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}
