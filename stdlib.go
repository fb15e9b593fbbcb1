// This file mirrors helpers from math/big.

package bigint

import (
	"fmt"
)

const digits = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MaxTextBase is the largest number base accepted by Text and Append.
const MaxTextBase = 10 + ('z' - 'a' + 1) + ('Z' - 'A' + 1)

// byteReader is a local wrapper around fmt.ScanState;
// it implements the io.ByteScanner interface.
type byteReader struct {
	fmt.ScanState
}

func (r byteReader) ReadByte() (byte, error) {
	ch, size, err := r.ReadRune()
	if size != 1 && err == nil {
		err = fmt.Errorf("invalid rune %#U", ch)
	}
	return byte(ch), err
}

func (r byteReader) UnreadByte() error {
	return r.UnreadRune()
}

func same(x, y []Word) bool {
	return len(x) == len(y) && len(x) > 0 && &x[0] == &y[0]
}
