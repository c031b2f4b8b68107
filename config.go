// Copyright 2024-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf7

import (
	"errors"
	"fmt"
)

// defaultVariant is the variant used if no variant is configured.
const defaultVariant = "UTF-7"

// ReaderConfig defines the parameters for a Reader.
type ReaderConfig struct {
	// Variant is the name of the variant to decode (default: UTF-7).
	Variant string
	// Strict forces strict decoding even for lenient variants.
	Strict bool
}

// ApplyDefaults sets the default values for fields that have the zero
// value.
func (c *ReaderConfig) ApplyDefaults() {
	if c.Variant == "" {
		c.Variant = defaultVariant
	}
}

// Verify checks the reader configuration for errors. Zero values will be
// replaced by default values.
func (c *ReaderConfig) Verify() error {
	if c == nil {
		return errors.New("utf7: reader configuration is nil")
	}
	c.ApplyDefaults()
	_, err := lookupConfigured(c.Variant, c.Strict)
	return err
}

// variant returns the configured variant.
func (c *ReaderConfig) variant() (*Variant, error) {
	return lookupConfigured(c.Variant, c.Strict)
}

// WriterConfig defines the parameters for a Writer.
type WriterConfig struct {
	// Variant is the name of the variant to encode (default: UTF-7).
	Variant string
	// Strict forces the explicit termination of every base64 run even
	// for lenient variants.
	Strict bool
}

// ApplyDefaults sets the default values for fields that have the zero
// value.
func (c *WriterConfig) ApplyDefaults() {
	if c.Variant == "" {
		c.Variant = defaultVariant
	}
}

// Verify checks the writer configuration for errors. Zero values will be
// replaced by default values.
func (c *WriterConfig) Verify() error {
	if c == nil {
		return errors.New("utf7: writer configuration is nil")
	}
	c.ApplyDefaults()
	_, err := lookupConfigured(c.Variant, c.Strict)
	return err
}

// variant returns the configured variant.
func (c *WriterConfig) variant() (*Variant, error) {
	return lookupConfigured(c.Variant, c.Strict)
}

// lookupConfigured finds the variant with the given name. A strict
// variant stays strict if strict is false.
func lookupConfigured(name string, strict bool) (*Variant, error) {
	v, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("utf7: unknown variant %q", name)
	}
	if strict {
		v = v.WithStrict(true)
	}
	return v, nil
}
