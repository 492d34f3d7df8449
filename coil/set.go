// SPDX-License-Identifier: MIT

package coil

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/coilfield/geom"
	"gopkg.in/yaml.v3"
)

// loopDoc is the on-disk form of a Loop.
//
//	loops:
//	  - center: [0, -0.1, 0]
//	    axis: [0, 1, 0]
//	    radius: 0.2
//	    current: 100
//	    turns: 50
type loopDoc struct {
	Name    string     `yaml:"name,omitempty"`
	Center  [3]float64 `yaml:"center,flow"`
	Axis    [3]float64 `yaml:"axis,flow"`
	Radius  float64    `yaml:"radius"`
	Current float64    `yaml:"current"`
	Turns   *int       `yaml:"turns,omitempty"`
}

type setDoc struct {
	Loops []loopDoc `yaml:"loops"`
}

// ReadOption adjusts how ReadSet treats decoded loops.
type ReadOption func(*readOptions)

type readOptions struct {
	clampTurns bool
}

// WithClampedTurns makes ReadSet replace turns < 1 by 1 instead of
// rejecting them.
func WithClampedTurns() ReadOption {
	return func(o *readOptions) { o.clampTurns = true }
}

// ReadSet decodes a YAML coil set and validates every loop. An omitted
// turns field defaults to 1; an explicit value below 1 is rejected with
// ErrInvalidTurns unless WithClampedTurns is given.
//
// Errors: ErrEmptySet, yaml decoding errors, and loop validation errors
// wrapped with the loop index.
func ReadSet(r io.Reader, opts ...ReadOption) ([]Loop, error) {
	var o readOptions
	for _, set := range opts {
		set(&o)
	}

	var doc setDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, ErrEmptySet
		}
		return nil, fmt.Errorf("coil: decode set: %w", err)
	}
	if len(doc.Loops) == 0 {
		return nil, ErrEmptySet
	}

	loops := make([]Loop, 0, len(doc.Loops))
	for i, d := range doc.Loops {
		turns := 1
		if d.Turns != nil {
			turns = *d.Turns
		}
		if o.clampTurns {
			turns = ClampTurns(turns)
		}
		l, err := NewLoop(geom.FromArray(d.Center), geom.FromArray(d.Axis), d.Radius, d.Current, turns)
		if err != nil {
			return nil, fmt.Errorf("coil: set loop %d: %w", i, err)
		}
		loops = append(loops, l)
	}

	return loops, nil
}

// ReadSetFile opens path and calls ReadSet.
func ReadSetFile(path string, opts ...ReadOption) ([]Loop, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("coil: open set: %w", err)
	}
	defer f.Close()

	return ReadSet(f, opts...)
}

// WriteSet encodes loops as a YAML coil set readable by ReadSet.
func WriteSet(w io.Writer, loops []Loop) error {
	doc := setDoc{Loops: make([]loopDoc, len(loops))}
	for i, l := range loops {
		doc.Loops[i] = loopDoc{
			Center:  l.Center.Array(),
			Axis:    l.Axis.Array(),
			Radius:  l.Radius,
			Current: l.Current,
		}
		turns := l.Turns
		doc.Loops[i].Turns = &turns
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("coil: encode set: %w", err)
	}

	return enc.Close()
}
