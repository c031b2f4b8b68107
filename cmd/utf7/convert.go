// Copyright 2024-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/utf7"
	"github.com/ulikunitz/utf7/internal/xio"
	"github.com/ulikunitz/utf7/internal/xlog"
)

// options contains the options of the command.
type options struct {
	decode  bool
	output  string
	variant string
	strict  bool
	log     xlog.Logger
}

// config collects the options relevant for the conversion.
type config struct {
	Decode bool
	Reader utf7.ReaderConfig
	Writer utf7.WriterConfig
}

func (o *options) config() config {
	c := config{
		Decode: o.decode,
		Reader: utf7.ReaderConfig{Variant: o.variant, Strict: o.strict},
		Writer: utf7.WriterConfig{Variant: o.variant, Strict: o.strict},
	}
	c.Reader.ApplyDefaults()
	c.Writer.ApplyDefaults()
	return c
}

// verify checks the options.
func (o *options) verify() error {
	c := o.config()
	if o.decode {
		return c.Reader.Verify()
	}
	return c.Writer.Verify()
}

// openInput opens the file at path. The path "-" denotes standard
// input.
func openInput(path string) (r io.ReadCloser, err error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", path)
	}
	return os.Open(path)
}

// openOutput builds the stack of writers for the output. The top of the
// stack receives the text to write.
func openOutput(o *options) (s *xio.Stack, err error) {
	var out io.WriteCloser
	if o.output == "" || o.output == "-" {
		out = xio.NopCloser(os.Stdout)
	} else {
		if out, err = os.Create(o.output); err != nil {
			return nil, err
		}
	}
	s = new(xio.Stack)
	s.Push(out)
	bw := bufio.NewWriter(out)
	s.Push(&flushCloser{bw})
	if o.decode {
		return s, nil
	}
	w, err := utf7.NewWriterConfig(bw, o.config().Writer)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.Push(w)
	return s, nil
}

// flushCloser flushes the buffered writer on Close.
type flushCloser struct {
	*bufio.Writer
}

func (f *flushCloser) Close() error { return f.Flush() }

// convert copies the input file to the output converting it on the way.
func convert(o *options, w io.Writer, path string) (n int64, err error) {
	f, err := openInput(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	var r io.Reader = bufio.NewReader(f)
	if o.decode {
		if r, err = utf7.NewReaderConfig(r, o.config().Reader); err != nil {
			return 0, err
		}
	}
	n, err = io.Copy(w, r)
	var merr *utf7.MalformedInputError
	if errors.As(err, &merr) {
		return n, fmt.Errorf("%s: %w", path, err)
	}
	return n, err
}

// run converts all files and writes the output.
func run(o *options, paths []string) (err error) {
	s, err := openOutput(o)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); err == nil {
			err = cerr
		}
	}()
	for _, path := range paths {
		n, err := convert(o, s, path)
		if err != nil {
			return err
		}
		xlog.Printf(o.log, "%s: %d bytes converted", path, n)
	}
	return nil
}
