package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/abdessamad-zgor/ruro/rawPng"
)

type CommandOptions struct {
	Output string
	Input  string
}

var ShowHelper bool
var Options CommandOptions

func init() {
	flag.BoolVar(&ShowHelper, "h", false, "show this help")

	flag.StringVar(&Options.Input, "i", "", "set source png `input` file")
	flag.StringVar(&Options.Output, "o", "", "write the report to `output` instead of stdout")

	flag.Usage = usage
}

func usage() {
	fmt.Fprintf(os.Stderr, `ruro png parser version: v0.1.0
Usage: ruro [-h] [-i filename] [-o filename]

Options:
`)
	flag.PrintDefaults()
}

func main() {
	flag.Parse()

	if ShowHelper {
		flag.Usage()
		os.Exit(0)
	}
	if Options.Input == "" {
		flag.Usage()
		os.Exit(0)
	}
	doParsePng(Options.Input, Options.Output)
}

func doParsePng(input string, output string) {
	b, err := os.ReadFile(input)
	if err != nil {
		log.Fatal(err)
	}

	img, err := rawPng.Decode(bytes.NewReader(b))
	if err != nil {
		log.Fatal(err)
	}

	report := img.Summary()
	if output == "" {
		fmt.Print(report)
		return
	}
	if err := os.WriteFile(output, []byte(report), 0644); err != nil {
		log.Fatal(err)
	}
}
