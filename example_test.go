package ieee754_test

import (
	"fmt"
	"math"
	"sort"

	"github.com/hupe1980/ieee754"
)

func ExampleClassify() {
	fmt.Println(ieee754.Classify(math.Copysign(0, -1)))
	fmt.Println(ieee754.Classify(math.Inf(1)))
	fmt.Println(ieee754.Classify(math.SmallestNonzeroFloat64))
	// Output:
	// negative zero
	// positive infinity
	// positive subnormal
}

func ExampleTotalOrder() {
	values := []float64{math.NaN(), 1, math.Inf(-1), math.Copysign(0, -1), 0.0, -1}
	sort.Slice(values, func(i, j int) bool {
		return ieee754.TotalOrder(values[i], values[j]) &&
			math.Float64bits(values[i]) != math.Float64bits(values[j])
	})
	for _, v := range values[:5] {
		fmt.Println(v)
	}
	// Output:
	// -Inf
	// -1
	// -0
	// 0
	// 1
}

func ExampleMinimumNumber() {
	fmt.Println(ieee754.MinimumNumber(math.NaN(), 3.14))
	fmt.Println(ieee754.Minimum(math.Copysign(0, -1), 0.0) == 0)
	fmt.Println(ieee754.IsSignMinus(ieee754.Minimum(math.Copysign(0, -1), 0.0)))
	// Output:
	// 3.14
	// true
	// true
}
