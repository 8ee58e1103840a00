package main

import (
	"bufio"
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/republicprotocol/calc-go/core/brain"
)

func main() {
	bindingSet := flag.String("bindings", "", "name of a binding set from the config file")
	plotVar := flag.String("plot", "", "variable to sweep over the configured plot range")
	flag.Parse()

	bindings, err := bindingsByName(conf, *bindingSet)
	if err != nil {
		os.Exit(1)
	}

	b := brain.New()

	if flag.NArg() > 0 {
		pushLine(b, strings.Join(flag.Args(), " "))
		report(os.Stdout, b.Snapshot(), bindings)
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			pushLine(b, scanner.Text())
			report(os.Stdout, b.Snapshot(), bindings)
		}
		if err := scanner.Err(); err != nil {
			slog.Error("Error reading input", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if *plotVar != "" {
		slog.Debug("Sampling program", slog.String("variable", *plotVar), slog.Int("samples", conf.Plot.Samples))
		reportPlot(os.Stdout, b.Snapshot(), *plotVar, conf.Plot)
	}
}
