package math_test

import (
	"fmt"

	"github.com/db47h/fixp"
	"github.com/db47h/fixp/math"
)

func Example() {
	q := func(f float64) fixp.Q15_16 { return fixp.FromFloat64[fixp.Q15_16](f) }

	fmt.Println(math.Sqrt(q(6.25)), math.Log2(q(8)), math.Exp2(q(10)))
	fmt.Printf("%.4f\n", math.Atan2(q(1), q(0)))
	s, c := math.Sincos(q(0))
	fmt.Println(s, c)
	// Output:
	// 2.5 3 1024
	// 1.5708
	// 0 1
}
