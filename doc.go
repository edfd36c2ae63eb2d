/*
Package nhohnhehr is an execution engine for Nhohnhehr, a two-dimensional
esoteric programming language whose program is a single bordered square of text.

The instruction pointer walks the square in one of four directions. When it
leaves the square, the current edge mode decides what happens: it either wraps
around inside the same room, or a new neighbouring room is grown as a copy or
rotation of the one it came from. The rooms form an unbounded lattice that is
populated lazily. Programs communicate one bit at a time.

# Instructions

	/  turn counter-clockwise      \  turn clockwise
	=  edge mode: wrap             &  edge mode: copy
	{  edge mode: rotate ccw       }  edge mode: rotate cw
	!  edge mode: rotate 180       #  skip the next cell
	?  read a bit: 1 turns cw, 0 turns ccw, end of input does nothing
	0  write 0                     1  write 1
	@  halt                        $  start (no-op)

# Usage

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/aretw0/nhohnhehr"
		"github.com/aretw0/nhohnhehr/pkg/adapters/stream"
	)

	func main() {
		source, err := os.ReadFile("hello.nhh")
		if err != nil {
			log.Fatal(err)
		}

		port := stream.NewBytePort(os.Stdin, os.Stdout)
		eng, err := nhohnhehr.New(source, port)
		if err != nil {
			log.Fatal(err)
		}

		// Run until '@'. Cancel ctx to stop a program that never halts.
		if err := eng.Run(context.Background()); err != nil {
			log.Fatal(err)
		}
	}
*/
package nhohnhehr
