package bigint_test

import (
	"fmt"

	"github.com/db47h/bigint"
)

func Example() {
	a, err := bigint.Parse("999999999")
	if err != nil {
		panic(err)
	}
	b := bigint.NewInt(1)
	sum, _ := a.Add(b)
	diff, _ := b.Sub(a)
	fmt.Println(sum, sum.Digits())
	fmt.Println(diff, diff.Digits())
	// Output:
	// 1000000000 [0 1]
	// -999999998 [999999998]
}

func ExampleInt_Convert() {
	x := bigint.NewInt(-10)
	t, err := x.Convert(bigint.Ternary)
	if err != nil {
		panic(err)
	}
	fmt.Println(t, t.Digits(), t.Flavor())
	// Output:
	// -10 [1 0 1] base 3
}

func ExampleInt_Add_flavorMismatch() {
	x := bigint.NewInt(1)
	y := bigint.Ternary.NewInt(1)
	_, err := x.Add(y)
	fmt.Println(err)
	// Output:
	// add: base 1000000000 and base 3: flavor mismatch
}

func ExampleInt_Format() {
	x, _ := bigint.Binary16.Parse("-3735928559")
	fmt.Printf("%d %x %#X %+o %12d|\n", x, x, x, x.Abs(), x)
	// Output:
	// -3735928559 -deadbeef -0XDEADBEEF +33653337357  -3735928559|
}
