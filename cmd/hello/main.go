// Command hello prints a point, a vector and the reversed vector to show
// the tuple convention: w is 1 for points and 0 for vectors.
package main

import (
	"fmt"

	trtc "github.com/srufle/the-ray-tracer-challenge"
)

func main() {
	fmt.Println()
	fmt.Println("Running hello")
	fmt.Println()

	p1 := trtc.Point(4.3, -4.2, 3.1)
	fmt.Println("p1:", p1)

	v1 := trtc.Vector(4.3, -4.2, 3.1)
	fmt.Println("v1:", v1)

	fmt.Println("wzyx:", v1.Reverse())
}
