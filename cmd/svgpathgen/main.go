// Command svgpathgen converts the paths of an SVG file into
// drawing code, and into the binary serialization of the
// resulting geometry, embedded as a byte array literal.
//
// Usage:
//
//	svgpathgen [flags] [file.svg]
//
// The SVG content is read from standard input when no file is given.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/benoitkugler/svgpathgen/config"
	"github.com/benoitkugler/svgpathgen/logging"
	"github.com/benoitkugler/svgpathgen/svgdoc"
)

func main() {
	var (
		configFile = flag.String("config", "", "TOML configuration file")
		exportName = flag.String("name", "", "prefix of the exported byte array (<name>PathData)")
		procName   = flag.String("proc", "", "name of the generated procedure")
		pngFile    = flag.String("png", "", "write a PNG preview of the geometry to this file")
		pdfFile    = flag.String("pdf", "", "write a PDF preview of the geometry to this file")
		watch      = flag.Bool("watch", false, "regenerate the output each time the input file changes")
		verbose    = flag.Bool("v", false, "log debug information")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [file.svg]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	if *exportName != "" {
		cfg.Export.Name = *exportName
	}
	if *procName != "" {
		cfg.Procedure.Name = *procName
	}

	j := &job{cfg: cfg, pngFile: *pngFile, pdfFile: *pdfFile, out: os.Stdout}
	input := flag.Arg(0)

	if *watch {
		if input == "" {
			fmt.Fprintln(os.Stderr, "-watch requires an input file")
			os.Exit(2)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := watchFile(ctx, input, j); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	var err error
	if input == "" {
		err = j.run(os.Stdin)
	} else {
		err = j.runFile(input)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, svgdoc.Diagnostic(err))
		os.Exit(1)
	}
}
