//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"syscall/js"

	"github.com/smallyu/go-ecdivisors/pkg/ecdiv"
)

// Divisors built in this instance, by handle.
var (
	divisors   = make(map[string]*ecdiv.Divisor)
	nextHandle int
)

func main() {
	c := make(chan struct{})

	fmt.Println("Go ECDiv WASM Initialized")

	js.Global().Set("GoECDiv", map[string]interface{}{
		"Build":    js.FuncOf(Build),
		"Sample":   js.FuncOf(Sample),
		"Evaluate": js.FuncOf(Evaluate),
		"Release":  js.FuncOf(Release),
	})

	<-c
}

type pointDTO struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// Build constructs a divisor.
// Arguments:
// 0: JSON string {curve, points: [{x, y}], maxPoints}
// Returns:
// JSON string {handle, witness} or an "error: ..." string
func Build(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonParams)"
	}

	var input struct {
		Curve     string     `json:"curve"`
		Points    []pointDTO `json:"points"`
		MaxPoints int        `json:"maxPoints"`
	}
	if err := json.Unmarshal([]byte(args[0].String()), &input); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	curve, err := ecdiv.CurveByName(input.Curve)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	points := make([]ecdiv.Point, len(input.Points))
	for i, p := range input.Points {
		if points[i], err = ecdiv.DecodePoint(curve, p.X, p.Y); err != nil {
			return fmt.Sprintf("error: point %d: %v", i, err)
		}
	}

	d, err := ecdiv.BuildDivisor(curve, points)
	if err != nil {
		return fmt.Sprintf("error: build failed: %v", err)
	}
	d = d.Normalize()

	w, err := ecdiv.NewWitness(d, input.MaxPoints)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	nextHandle++
	handle := strconv.Itoa(nextHandle)
	divisors[handle] = d

	resp, _ := json.Marshal(map[string]interface{}{
		"handle":  handle,
		"witness": w,
	})
	return string(resp)
}

// Sample returns a seeded multiset summing to the identity.
// Arguments:
// 0: curve name
// 1: number of points
// 2: seed
// Returns:
// JSON array of {x, y}
func Sample(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (curve, n, seed)"
	}
	curve, err := ecdiv.CurveByName(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	points, err := ecdiv.SampleMultiset(curve, args[1].Int(), []byte(args[2].String()))
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	out := make([]pointDTO, len(points))
	for i, p := range points {
		out[i].X, out[i].Y = ecdiv.EncodePoint(p)
	}
	b, _ := json.Marshal(out)
	return string(b)
}

// Evaluate computes D(x, y) for a built divisor.
// Arguments:
// 0: handle
// 1: x (hex)
// 2: y (hex)
// Returns:
// hex string
func Evaluate(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (handle, x, y)"
	}
	d, ok := divisors[args[0].String()]
	if !ok {
		return "error: divisor not found"
	}

	// (x, y) need not lie on the curve
	x, err := ecdiv.DecodeElement(d.Curve(), args[1].String())
	if err != nil {
		return fmt.Sprintf("error: x: %v", err)
	}
	y, err := ecdiv.DecodeElement(d.Curve(), args[2].String())
	if err != nil {
		return fmt.Sprintf("error: y: %v", err)
	}
	return ecdiv.EncodeElement(ecdiv.Evaluate(d, x, y))
}

// Release forgets a divisor.
func Release(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (handle)"
	}
	delete(divisors, args[0].String())
	return nil
}
