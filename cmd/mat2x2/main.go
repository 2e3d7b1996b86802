// SPDX-License-Identifier: MIT

// mat2x2 evaluates a single 2×2 matrix operation from the command line.
//
// Operands are names from the --config YAML file or inline "a,b,c,d"
// literals. With --interactive the command first prompts for a matrix on
// stdin and binds it to the operand name "in".
//
//	mat2x2 det 1,2,3,4
//	mat2x2 --config matrices.yaml mul A R
//	echo "4 0 0 4" | mat2x2 --interactive inverse in
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/mat2x2/calc"
	"github.com/katalvlaran/mat2x2/mat2x2"
)

// interactiveOperand is the name --interactive binds the stdin matrix to.
const interactiveOperand = "in"

// errUsage marks command-line misuse; main prints help for it.
var errUsage = errors.New("usage error")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var (
		configPath  string
		output      string
		logLevel    string
		interactive bool
	)

	flagSet := pflag.NewFlagSet("mat2x2", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	// Flags end at the operation name, so operands like -2 or -1,2,3,4 pass through.
	flagSet.SetInterspersed(false)
	flagSet.StringVar(&configPath, "config", "", "YAML file with named matrices and output mode")
	flagSet.StringVarP(&output, "output", "o", "", "output mode: box or plain (overrides config)")
	flagSet.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	flagSet.BoolVarP(&interactive, "interactive", "i", false, "read one matrix from stdin as operand \""+interactiveOperand+"\"")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}

	rest := flagSet.Args()
	if len(rest) == 0 {
		printHelp(stderr, flagSet)
		return fmt.Errorf("%w: missing operation", errUsage)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("%w: --log-level %q", errUsage, logLevel)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := calc.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if output != "" {
		cfg.Output = calc.OutputMode(output)
	}

	ev, err := calc.NewEvaluator(cfg, logger)
	if err != nil {
		return err
	}

	if interactive {
		m, err := mat2x2.Read(stdin, stderr)
		if err != nil {
			return err
		}
		ev.Define(interactiveOperand, m)
	}

	res, err := ev.Eval(rest[0], rest[1:])
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, res.Format(ev.Output()))

	return err
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `mat2x2: evaluate a 2x2 matrix operation.

Usage:
  mat2x2 [flags] <operation> [operands...]

Operands are names defined in --config or inline literals "a,b,c,d".
Flags go before the operation; everything after it is an operand, so
negative values such as -2 or -1,2,3,4 need no quoting.

Operations:
`)
	for _, op := range calc.Operations() {
		fmt.Fprintf(w, "  %-10s %s\n", op[0], op[1])
	}
	fmt.Fprintf(w, "\nFlags:\n%s", flagSet.FlagUsages())
}
