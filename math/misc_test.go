package math

import (
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/bigint"
)

var flavors = []bigint.Flavor{bigint.Default, bigint.Decimal, bigint.Ternary, bigint.Binary16}

func rndDecimal(rnd *rand.Rand, n int) string {
	var sb strings.Builder
	if rnd.Intn(2) == 0 {
		sb.WriteByte('-')
	}
	l := rnd.Intn(n) + 1
	for i := 0; i < l; i++ {
		sb.WriteByte(byte('0' + rnd.Intn(10)))
	}
	return sb.String()
}

func parse(t *testing.T, f bigint.Flavor, s string) (*bigint.Int, *big.Int) {
	t.Helper()
	x, err := f.Parse(s)
	require.NoError(t, err)
	b, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, s)
	return x, b
}

func TestMul(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, f := range flavors {
		t.Run(f.String(), func(t *testing.T) {
			for i := 0; i < 100; i++ {
				x, bx := parse(t, f, rndDecimal(rnd, 50))
				y, by := parse(t, f, rndDecimal(rnd, 50))
				z, err := Mul(x, y)
				require.NoError(t, err)
				assert.Equal(t, new(big.Int).Mul(bx, by).String(), z.String(), "%v * %v", x, y)
				assert.Equal(t, f, z.Flavor())
			}
		})
	}
}

func TestMulZero(t *testing.T) {
	x, _ := parse(t, bigint.Default, "-123456789012345678901234567890")
	z, err := Mul(x, bigint.NewInt(0))
	require.NoError(t, err)
	assert.True(t, z.IsZero())
	assert.Equal(t, 0, z.Sign())
	assert.Equal(t, "0", z.String())
}

func TestMulFlavorMismatch(t *testing.T) {
	_, err := Mul(bigint.NewInt(2), bigint.Ternary.NewInt(2))
	assert.ErrorIs(t, err, bigint.ErrFlavorMismatch)
}

func TestPow(t *testing.T) {
	for _, f := range flavors {
		for _, d := range []struct {
			x string
			n uint64
		}{
			{"0", 0},
			{"0", 5},
			{"1", 1000},
			{"-1", 1001},
			{"2", 100},
			{"-3", 33},
			{"10", 1},
			{"123456789", 17},
			{"-98765432109876543210", 8},
		} {
			x, bx := parse(t, f, d.x)
			want := new(big.Int).Exp(bx, new(big.Int).SetUint64(d.n), nil)
			got := Pow(x, d.n)
			assert.Equal(t, want.String(), got.String(), "%v: %s**%d", f, d.x, d.n)
		}
	}
}

func TestFactorial(t *testing.T) {
	for _, f := range flavors {
		for _, n := range []uint64{0, 1, 2, 10, 20, 50, 100} {
			want := new(big.Int).MulRange(1, int64(n))
			assert.Equal(t, want.String(), Factorial(f, n).String(), "%v: %d!", f, n)
		}
	}
}

func TestQuoRem(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for _, f := range flavors {
		for i := 0; i < 100; i++ {
			x, bx := parse(t, f, rndDecimal(rnd, 40))
			y := rnd.Int63n(bigint.MaxWord) + 1
			if rnd.Intn(2) == 0 {
				y = -y
			}
			q, r, err := QuoRem(x, y)
			require.NoError(t, err)
			wq, wr := new(big.Int).QuoRem(bx, big.NewInt(y), new(big.Int))
			assert.Equal(t, wq.String(), q.String(), "%v / %d", x, y)
			assert.Equal(t, wr.Int64(), r, "%v %% %d", x, y)
		}
	}
}

func TestQuoRemErrors(t *testing.T) {
	x := bigint.NewInt(42)
	_, _, err := QuoRem(x, 0)
	assert.ErrorIs(t, err, bigint.ErrDivisionByZero)
	_, _, err = QuoRem(x, bigint.MaxWord+1)
	assert.Error(t, err)
	q, r, err := QuoRem(x, -bigint.MaxWord)
	require.NoError(t, err)
	assert.Equal(t, "0", q.String())
	assert.Equal(t, int64(42), r)
}

func BenchmarkFactorial(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Factorial(bigint.Default, 500)
	}
}
