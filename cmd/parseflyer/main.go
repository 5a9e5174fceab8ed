// parseflyer reads OCR'd flyer text from a file (or stdin) and prints the
// extracted event fields as JSON. Useful for tuning extraction rules without
// a database or OCR toolchain.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/eventsnap/eventsnap/internal/parser"
)

func main() {
	refDateFlag := flag.String("ref-date", "", "reference date (YYYY-MM-DD) for flyers without a year; defaults to today")
	pretty := flag.Bool("pretty", true, "indent the JSON output")
	verbose := flag.Bool("v", false, "log extraction details to stderr")
	flag.Parse()

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(2)
		}
		defer f.Close()
		in = f
	}

	text, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: reading input: %v\n", err)
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []parser.Option{parser.WithLogger(logger)}
	if *refDateFlag != "" {
		refDate, err := time.Parse("2006-01-02", *refDateFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: -ref-date must be YYYY-MM-DD: %v\n", err)
			os.Exit(2)
		}
		opts = append(opts, parser.WithReferenceDate(refDate))
	}

	fields := parser.New(opts...).Parse(string(text))

	var out []byte
	if *pretty {
		out, err = json.MarshalIndent(fields, "", "  ")
	} else {
		out, err = json.Marshal(fields)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: encoding fields: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
