/*
Package stream provides the two I/O framings of the language over plain
io.Reader / io.Writer pairs.

  - BitPort: one '0' or '1' character per unit. Any other input character is skipped.
  - BytePort: eight units per byte, most significant bit first, in both directions.

Both ports flush after every complete output character so that interactive
programs behave as expected on a terminal.
*/
package stream
