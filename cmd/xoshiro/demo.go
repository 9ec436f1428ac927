package main

import (
	"fmt"

	"github.com/lox/xoshiro/rng"
)

type DemoCmd struct{}

func (c *DemoCmd) Run(g *Globals) error {
	x := rng.NewXoshiro256(123)
	for range 10 {
		if _, err := fmt.Fprintln(g.out, formatFloat(x.Real01())); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(g.out, x.Bounded(32)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(g.out, "max: %d\n", x.Max())
	return err
}
