package alias_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/graphgen/alias"
)

func ExampleTable_Draw() {
	tbl, err := alias.New([]float64{0.5, 0.3, 0.2}, []string{"A", "B", "C"})
	if err != nil {
		panic(err)
	}

	rng := rand.New(rand.NewSource(1))
	item := tbl.Draw(rng)
	fmt.Println(item == "A" || item == "B" || item == "C")
	// Output: true
}
