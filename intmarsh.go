// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Ints.

package bigint

import (
	"encoding/binary"
	"fmt"

	"github.com/bobg/errors"
	"github.com/goccy/go-json"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const intGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface. The flavor of x is
// encoded along with its value.
func (x *Int) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	m := x.abs()
	// version + sign + base + digits
	buf := make([]byte, 1+1+8+len(m)*4)
	buf[0] = intGobVersion
	if x.neg {
		buf[1] = 1
	}
	binary.BigEndian.PutUint64(buf[2:], x.Flavor().base)
	// most significant digit first
	p := buf[10:]
	for i := len(m) - 1; i >= 0; i-- {
		binary.BigEndian.PutUint32(p, uint32(m[i]))
		p = p[4:]
	}
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface. z takes the flavor of
// the encoded value.
func (z *Int) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Int{}
		return nil
	}
	if buf[0] != intGobVersion {
		return fmt.Errorf("Int.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 10 || (len(buf)-10)%4 != 0 {
		return fmt.Errorf("Int.GobDecode: invalid encoding length %d", len(buf))
	}
	f, err := NewFlavor(binary.BigEndian.Uint64(buf[2:]))
	if err != nil {
		return errors.Wrap(err, "Int.GobDecode")
	}
	p := buf[10:]
	d := make([]Word, len(p)/4)
	for i := len(d) - 1; i >= 0; i-- {
		d[i] = Word(binary.BigEndian.Uint32(p))
		p = p[4:]
	}
	x, err := f.FromDigits(d, buf[1]&1 != 0)
	if err != nil {
		return errors.Wrap(err, "Int.GobDecode")
	}
	*z = *x
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. Only the
// decimal value of x is marshaled, not its flavor.
func (x *Int) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.appendDecimal(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The value
// is parsed in z's current flavor.
func (z *Int) UnmarshalText(text []byte) error {
	x, err := z.Flavor().Parse(string(text))
	if err != nil {
		return errors.Wrapf(err, "bigint: cannot unmarshal %q into a *bigint.Int", text)
	}
	*z = *x
	return nil
}

// MarshalJSON implements the json.Marshaler interface. x is encoded as a JSON
// number.
func (x *Int) MarshalJSON() ([]byte, error) {
	if x == nil {
		return []byte("null"), nil
	}
	return x.appendDecimal(nil), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. It accepts a JSON
// number or a string holding a decimal integer. null is a no-op.
func (z *Int) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return errors.Wrapf(err, "bigint: cannot unmarshal %s into a *bigint.Int", data)
		}
		s = n.String()
	}
	return z.UnmarshalText([]byte(s))
}
