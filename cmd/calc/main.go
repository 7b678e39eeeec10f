package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"

	"github.com/zephyrtronium/calc"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command with the given arguments and returns its exit
// status: 0 if every expression evaluated, 1 if any failed, and 2 for usage
// or setup errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	var (
		inname, verb, varsname, colors string
		with                           [][2]string
		nl, echo, verbose              bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flags := flag.NewFlagSet("calc", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: calc [flags] [--] [expr ...]")
		fmt.Fprintln(stderr, `Use -- before expressions that start with a sign, e.g. calc -- "-3+2".`)
		flags.PrintDefaults()
	}
	flags.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flags.StringVar(&verb, "fmt", "%g", "result formatting string")
	flags.Func("given", "name=value variable definition (any number of times)", addwith)
	flags.StringVar(&varsname, "vars", "", "YAML file of variable definitions")
	flags.BoolVar(&nl, "n", false, "parse separate input lines as separate expressions")
	flags.BoolVar(&echo, "echo", false, "print postfix forms")
	flags.BoolVar(&verbose, "v", false, "log each stage of evaluation")
	flags.StringVar(&colors, "color", "auto", "colorize errors: auto, always, or never")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	clr := color.New()
	clr.SetOutput(stdout)
	switch colors {
	case "auto": // SetOutput already disabled colors if stdout isn't a terminal
	case "always":
		clr.Enable()
	case "never":
		clr.Disable()
	default:
		log.Errorf("unknown -color mode %q", colors)
		return 2
	}

	vars := make(map[string]float64)
	if varsname != "" {
		f, err := os.Open(varsname)
		if err != nil {
			log.WithError(err).Error("opening variables file")
			return 2
		}
		vars, err = loadVars(f)
		f.Close()
		if err != nil {
			log.WithError(err).WithField("file", varsname).Error("loading variables")
			return 2
		}
	}
	for _, d := range with {
		nm := d[0]
		vl := d[1]
		r, err := calc.EvalString(vl, calc.SetVars(vars))
		if err != nil {
			log.WithError(err).Errorf("setting %s", nm)
			return 2
		}
		vars[nm] = r
		log.WithField("name", nm).WithField("value", r).Debug("set variable")
	}

	var srcs []string
	in, err := infile(inname, flags.NArg() == 0, stdin)
	if err != nil {
		log.WithError(err).Error("opening input")
		return 2
	}
	if in != nil {
		s, err := readExprs(in, nl)
		if c, ok := in.(io.Closer); ok && in != stdin {
			c.Close()
		}
		if err != nil {
			log.WithError(err).Error("reading input")
			return 2
		}
		srcs = append(srcs, s...)
	}
	srcs = append(srcs, flags.Args()...)

	verb += "\n"
	status := 0
	for _, src := range srcs {
		p, err := parse(log, src, vars)
		if err != nil {
			fmt.Fprintln(stdout, clr.Red(err))
			status = 1
			continue
		}
		if echo {
			fmt.Fprintf(stdout, "%v : ", p)
		}
		r, err := p.Eval()
		if err != nil {
			fmt.Fprintln(stdout, clr.Red(err))
			status = 1
			continue
		}
		fmt.Fprintf(stdout, verb, r)
	}
	return status
}

// parse scans and converts an expression, logging each stage.
func parse(log *logrus.Logger, src string, vars map[string]float64) (calc.Postfix, error) {
	entry := log.WithField("expr", src)
	if src == "" {
		return nil, &calc.EmptyExpressionError{Col: 1}
	}
	infix, err := calc.Tokenize(strings.NewReader(src), calc.SetVars(vars))
	if err != nil {
		entry.WithError(err).Debug("tokenize failed")
		return nil, err
	}
	entry.WithField("infix", infix.String()).Debug("tokenized")
	p, err := infix.Postfix()
	if err != nil {
		entry.WithError(err).Debug("conversion failed")
		return nil, err
	}
	entry.WithField("postfix", p.String()).Debug("converted")
	return p, nil
}

// readExprs reads the expressions in r. If lines is true, each non-blank line
// is an expression; otherwise, the entire input is one.
func readExprs(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(string(b)) == "" {
			return nil, nil
		}
		return []string{string(b)}, nil
	}
	var exprs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		exprs = append(exprs, sc.Text())
	}
	return exprs, sc.Err()
}

func infile(inname string, std bool, stdin io.Reader) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return stdin, nil
	}
	return nil, nil
}
