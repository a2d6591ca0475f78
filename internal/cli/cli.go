// Package cli implements the converter's subcommands and interactive menu.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"currencyconverter/internal/service"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitUsage = 2
)

const usage = `Usage: converter [command] [flags]

Commands:
  convert          --amount A --from X --to Y   convert A of X into Y
  reverse-convert  --amount A --from X --to Y   amount of X needed for A of Y
                                               (A / X->Y rate; prints Y first)
  list-currencies                               list known currency symbols
  serve            [--port N]                   serve the HTTP API

With no command an interactive menu is started.
`

const menu = `
Currency Converter
  1) Convert
  2) Reverse convert
  3) List currencies
  q) Quit`

// Runner dispatches command-line arguments to the converter service.
type Runner struct {
	svc    service.ConverterService
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	log    *zap.SugaredLogger
}

// NewRunner creates a Runner reading prompts from in and writing results to
// out and errors to errOut.
func NewRunner(svc service.ConverterService, in io.Reader, out, errOut io.Writer, logger *zap.SugaredLogger) *Runner {
	return &Runner{
		svc:    svc,
		in:     in,
		out:    out,
		errOut: errOut,
		log:    logger,
	}
}

// Usage writes the command summary to w.
func Usage(w io.Writer) {
	_, _ = io.WriteString(w, usage)
}

// Run executes a single command, or the interactive menu when args is empty,
// and returns the process exit code. Conversion failures are reported on
// errOut but do not change the exit code.
func (r *Runner) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		r.Interactive(ctx)
		return ExitOK
	}

	switch cmd := args[0]; cmd {
	case "convert":
		return r.runConvert(ctx, cmd, args[1:], service.Forward)
	case "reverse-convert":
		return r.runConvert(ctx, cmd, args[1:], service.Reverse)
	case "list-currencies":
		r.listCurrencies()
		return ExitOK
	case "help", "-h", "--help":
		Usage(r.out)
		return ExitOK
	default:
		fmt.Fprintf(r.errOut, "unknown command %q\n\n", cmd)
		Usage(r.errOut)
		return ExitUsage
	}
}

type conversionArgs struct {
	amount float64
	from   string
	to     string
}

func parseConversionFlags(name string, args []string, errOut io.Writer) (*conversionArgs, error) {
	var ca conversionArgs
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Float64VarP(&ca.amount, "amount", "a", 0, "amount to convert")
	fs.StringVarP(&ca.from, "from", "f", "", "currency the rate is quoted from, e.g. GBP")
	fs.StringVarP(&ca.to, "to", "t", "", "currency the rate is quoted to, e.g. CNY")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var missing []string
	for _, f := range []string{"amount", "from", "to"} {
		if !fs.Changed(f) {
			missing = append(missing, "--"+f)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required flags: %s", strings.Join(missing, ", "))
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return &ca, nil
}

func (r *Runner) runConvert(ctx context.Context, name string, args []string, dir service.Direction) int {
	ca, err := parseConversionFlags(name, args, r.errOut)
	if errors.Is(err, pflag.ErrHelp) {
		return ExitOK
	}
	if err != nil {
		fmt.Fprintf(r.errOut, "%s: %v\n", name, err)
		return ExitUsage
	}

	r.convert(ctx, dir, ca)
	return ExitOK
}

func (r *Runner) convert(ctx context.Context, dir service.Direction, ca *conversionArgs) {
	var (
		c   *service.Conversion
		err error
	)
	if dir == service.Reverse {
		c, err = r.svc.ReverseConvert(ctx, ca.amount, ca.from, ca.to)
	} else {
		c, err = r.svc.Convert(ctx, ca.amount, ca.from, ca.to)
	}
	if err != nil {
		r.log.Debugw("Conversion failed", "direction", dir, "from", ca.from, "to", ca.to, "error", err)
		fmt.Fprintf(r.errOut, "Error fetching exchange rate: %v\n", err)
		return
	}
	fmt.Fprintln(r.out, service.FormatConversion(c))
}

func (r *Runner) listCurrencies() {
	fmt.Fprintln(r.out, "Available currencies:")
	for _, c := range r.svc.Currencies() {
		fmt.Fprintf(r.out, "  %s (%s)\n", c.Code, c.Symbol)
	}
}

// Interactive runs the numbered menu until the user quits or input ends.
func (r *Runner) Interactive(ctx context.Context) {
	sc := bufio.NewScanner(r.in)
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintln(r.out, menu)
		choice, ok := r.prompt(sc, "Select an option: ")
		if !ok {
			fmt.Fprintln(r.out)
			return
		}

		switch strings.ToLower(choice) {
		case "1":
			if !r.promptConvert(ctx, sc, service.Forward) {
				return
			}
		case "2":
			if !r.promptConvert(ctx, sc, service.Reverse) {
				return
			}
		case "3":
			r.listCurrencies()
		case "q", "quit", "exit":
			fmt.Fprintln(r.out, "Goodbye!")
			return
		default:
			fmt.Fprintf(r.errOut, "Invalid option %q, choose 1, 2, 3 or q\n", choice)
		}
	}
}

// promptConvert asks for the conversion parameters and runs it. It returns
// false when input ended.
func (r *Runner) promptConvert(ctx context.Context, sc *bufio.Scanner, dir service.Direction) bool {
	rawAmount, ok := r.prompt(sc, "Amount: ")
	if !ok {
		return false
	}
	amount, err := strconv.ParseFloat(rawAmount, 64)
	if err != nil {
		fmt.Fprintf(r.errOut, "Invalid amount %q\n", rawAmount)
		return true
	}

	from, ok := r.prompt(sc, "From currency (e.g. GBP): ")
	if !ok {
		return false
	}
	to, ok := r.prompt(sc, "To currency (e.g. CNY): ")
	if !ok {
		return false
	}
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		fmt.Fprintln(r.errOut, "Currency codes must not be empty")
		return true
	}

	r.convert(ctx, dir, &conversionArgs{amount: amount, from: from, to: to})
	return true
}

func (r *Runner) prompt(sc *bufio.Scanner, label string) (string, bool) {
	fmt.Fprint(r.out, label)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			r.log.Warnw("Failed to read input", "error", err)
		}
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}
