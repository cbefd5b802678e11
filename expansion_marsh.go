// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Expansions.

package expansion

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalid is returned (wrapped) by decoding methods when the decoded
// components do not form a valid expansion.
var ErrInvalid = errors.New("invalid expansion")

// Gob codec version. Permits backward-compatible changes to the encoding.
const expansionGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface.
func (e Expansion) GobEncode() ([]byte, error) {
	if e == nil {
		return nil, nil
	}
	buf := make([]byte, 1+4+8*len(e)) // version + length + components
	buf[0] = expansionGobVersion
	binary.BigEndian.PutUint32(buf[1:], uint32(len(e)))
	for i, c := range e {
		binary.BigEndian.PutUint64(buf[5+8*i:], math.Float64bits(c))
	}
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Expansion) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = nil
		return nil
	}

	if buf[0] != expansionGobVersion {
		return fmt.Errorf("Expansion.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 5 {
		return fmt.Errorf("Expansion.GobDecode: short buffer (%d bytes)", len(buf))
	}
	n := binary.BigEndian.Uint32(buf[1:])
	if uint64(len(buf)-5) != 8*uint64(n) {
		return fmt.Errorf("Expansion.GobDecode: %d components do not fit in %d bytes", n, len(buf)-5)
	}

	e := make(Expansion, n)
	for i := range e {
		e[i] = math.Float64frombits(binary.BigEndian.Uint64(buf[5+8*i:]))
	}
	if msg := e.check(); msg != "" {
		return fmt.Errorf("Expansion.GobDecode: %w: %s", ErrInvalid, msg)
	}
	*z = e
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. Components
// are written as hexadecimal floating-point literals separated by a single
// space, which preserves their exact value.
func (e Expansion) MarshalText() (text []byte, err error) {
	if e == nil {
		return []byte("<nil>"), nil
	}
	return e.append(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. It
// accepts any space separated list of float64 literals that strconv.ParseFloat
// understands, as long as they form a valid expansion.
func (z *Expansion) UnmarshalText(text []byte) error {
	fields := strings.Fields(string(text))
	e := make(Expansion, len(fields))
	for i, s := range fields {
		c, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("expansion: cannot unmarshal %q into an Expansion (%w)", text, err)
		}
		e[i] = c
	}
	if msg := e.check(); msg != "" {
		return fmt.Errorf("expansion: cannot unmarshal %q into an Expansion: %w: %s", text, ErrInvalid, msg)
	}
	*z = e
	return nil
}

// String returns the components of e as hexadecimal floating-point literals,
// in brackets.
func (e Expansion) String() string {
	buf := make([]byte, 0, 2+24*len(e))
	buf = append(buf, '[')
	buf = e.append(buf)
	return string(append(buf, ']'))
}

func (e Expansion) append(buf []byte) []byte {
	for i, c := range e {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendFloat(buf, c, 'x', -1, 64)
	}
	return buf
}
