// Copyright 2024-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command utf7 converts text between UTF-8 and the variants of UTF-7.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/kr/pretty"
	"github.com/spf13/pflag"

	"github.com/ulikunitz/utf7"
	"github.com/ulikunitz/utf7/internal/xlog"
)

const usageStr = `Usage: utf7 [OPTION]... [FILE]...
Encode UTF-8 text of FILEs into UTF-7 or decode UTF-7 into UTF-8. The
results are concatenated and written to standard output.

  -d, --decode         decode UTF-7 into UTF-8
  -h, --help           give this help
  -l, --list           list the supported variants
  -o, --output=FILE    write to FILE instead of standard output
  -s, --strict         use strict decoding or always terminate base64 runs
  -t, --variant=NAME   variant to use; default UTF-7
  -v, --verbose        verbose mode

With no FILE, or when FILE is -, read standard input.
`

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

// listVariants writes the names and aliases of the supported variants.
func listVariants(w io.Writer) {
	for _, v := range utf7.Variants() {
		fmt.Fprintf(w, "%s", v.Name())
		if len(v.Aliases()) > 0 {
			fmt.Fprintf(w, " (%s)", strings.Join(v.Aliases(), ", "))
		}
		fmt.Fprintln(w)
	}
}

func main() {
	// setup logger
	cmdName := filepath.Base(os.Args[0])
	log.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	log.SetFlags(0)

	// initialize flags
	flags := pflag.NewFlagSet(cmdName, pflag.ExitOnError)
	flags.SetInterspersed(true)
	flags.Usage = func() { usage(os.Stderr); os.Exit(1) }
	var (
		help    = flags.BoolP("help", "h", false, "")
		decode  = flags.BoolP("decode", "d", false, "")
		list    = flags.BoolP("list", "l", false, "")
		output  = flags.StringP("output", "o", "", "")
		strict  = flags.BoolP("strict", "s", false, "")
		variant = flags.StringP("variant", "t", "", "")
		verbose = flags.BoolP("verbose", "v", false, "")
	)
	flags.Parse(os.Args[1:])

	if *help {
		usage(os.Stdout)
		os.Exit(0)
	}
	if *list {
		listVariants(os.Stdout)
		os.Exit(0)
	}

	opts := options{
		decode:  *decode,
		output:  *output,
		variant: *variant,
		strict:  *strict,
	}
	if *verbose {
		opts.log = xlog.New(os.Stderr, log.Prefix())
	}
	if err := opts.verify(); err != nil {
		log.Fatal(err)
	}
	xlog.Lines(opts.log, pretty.Sprint(opts.config()))

	paths := flags.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	if err := run(&opts, paths); err != nil {
		log.Fatal(err)
	}
}
