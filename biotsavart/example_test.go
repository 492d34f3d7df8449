// SPDX-License-Identifier: MIT

package biotsavart_test

import (
	"fmt"

	"github.com/katalvlaran/coilfield/biotsavart"
	"github.com/katalvlaran/coilfield/coil"
	"github.com/katalvlaran/coilfield/geom"
)

// ExampleEvaluateLoop computes the field at the centre of a 50-turn loop
// (R = 0.2 m, I = 100 A). The closed form μ₀·I·N/(2R) is 1.5708e-02 T;
// the 200-gon comes within 0.02%.
func ExampleEvaluateLoop() {
	loop := coil.MustLoop(geom.Vec3{}, geom.UnitY, 0.2, 100, 50)

	field, err := biotsavart.EvaluateLoop(loop, []geom.Vec3{{}}, biotsavart.WithSegments(200))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("|B| = %.4e T\n", field[0].Norm())
	// Output:
	// |B| = 1.5705e-02 T
}

// ExampleEvaluate superposes a Helmholtz pair and reads the centre field.
func ExampleEvaluate() {
	loops, err := coil.HelmholtzPair(0.2, 100, 50)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	points := []geom.Vec3{{}, geom.V(0.05, 0, 0)}
	field, err := biotsavart.Evaluate(loops, points)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, b := range field {
		fmt.Printf("B_y%v = %.4e T\n", points[i], b.Y)
	}
	// Output:
	// B_y(0, 0, 0) = 2.2476e-02 T
	// B_y(0.05, 0, 0) = 2.2436e-02 T
}
