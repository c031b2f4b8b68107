// Copyright 2024-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf7_test

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/text/transform"

	"github.com/ulikunitz/utf7"
)

func Example() {
	s, err := utf7.ModifiedUTF7.EncodeString("~peter/mail/台北/日本語")
	if err != nil {
		log.Fatalf("EncodeString error %s", err)
	}
	fmt.Println(s)
	t, err := utf7.ModifiedUTF7.DecodeString(s)
	if err != nil {
		log.Fatalf("DecodeString error %s", err)
	}
	fmt.Println(t)
	// Output:
	// ~peter/mail/&U,BTFw-/&ZeVnLIqe-
	// ~peter/mail/台北/日本語
}

func ExampleReader() {
	r, err := utf7.NewReader(strings.NewReader("Hi Mom -+Jjo--!"))
	if err != nil {
		log.Fatalf("utf7.NewReader error %s", err)
	}
	if _, err = io.Copy(os.Stdout, r); err != nil {
		log.Fatalf("io.Copy error %s", err)
	}
	// Output:
	// Hi Mom -☺-!
}

func ExampleWriter() {
	w, err := utf7.NewWriterConfig(os.Stdout,
		utf7.WriterConfig{Variant: "X-UTF-7-OPTIONAL"})
	if err != nil {
		log.Fatalf("utf7.NewWriterConfig error %s", err)
	}
	if _, err = io.WriteString(w, "Hi Mom -☺-!"); err != nil {
		log.Fatalf("WriteString error %s", err)
	}
	if err = w.Close(); err != nil {
		log.Fatalf("w.Close() error %s", err)
	}
	// Output:
	// Hi Mom -+Jjo--!
}

func ExampleDecoder() {
	d := utf7.UTF7.NewDecoder()
	src := []byte("A+ImIDkQ.")
	buf := make([]uint16, 2)
	for len(src) > 0 {
		n, k, err := d.Decode(buf, src)
		if err != nil && err != utf7.ErrOutputFull {
			log.Fatalf("Decode error %s", err)
		}
		fmt.Printf("%04x\n", buf[:n])
		src = src[k:]
	}
	if _, err := d.Finish(nil); err != nil {
		log.Fatalf("Finish error %s", err)
	}
	// Output:
	// [0041 2262]
	// [0391 002e]
}

func ExampleLookup() {
	v, ok := utf7.Lookup("imap-modified-utf-7")
	if !ok {
		log.Fatal("variant not found")
	}
	s, _, err := transform.String(v.Encoding().NewEncoder(), "Entwürfe")
	if err != nil {
		log.Fatalf("transform.String error %s", err)
	}
	fmt.Println(v, s)
	// Output:
	// X-IMAP-MODIFIED-UTF-7 Entw&APw-rfe
}
