package math

import (
	"fmt"

	"github.com/db47h/bigint"
)

// QuoRem returns the quotient x/y and remainder x%y, truncated towards zero
// like Go's / and % operators: q has the sign of x*y and r has the sign of x.
// |y| must not exceed bigint.MaxWord. QuoRem fails with
// bigint.ErrDivisionByZero if y == 0.
//
// This function is a signed proxy for x.QuoRemWord.
func QuoRem(x *bigint.Int, y int64) (q *bigint.Int, r int64, err error) {
	u := uint64(y)
	if y < 0 {
		u = -u
	}
	if u > bigint.MaxWord {
		return nil, 0, fmt.Errorf("quorem: divisor %d out of range", y)
	}
	if q, r, err = x.QuoRemWord(bigint.Word(u)); err != nil {
		return nil, 0, err
	}
	if y < 0 {
		q = q.Neg()
	}
	return q, r, nil
}
