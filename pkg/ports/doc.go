/*
Package ports defines the driven ports (interfaces) for the Nhohnhehr engine.

These interfaces decouple the core logic from external implementations, allowing
the engine to work with various I/O framings and program sources.

# Key Interfaces

  - IOPort: supplies and accepts one binary unit per call (bit or byte framed).
  - ProgramLoader: retrieves program source text by name (file, memory, Redis).
  - ProgramStore: a ProgramLoader that can also save, delete and list programs.
*/
package ports
