package nhohnhehr_test

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aretw0/nhohnhehr"
	"github.com/aretw0/nhohnhehr/pkg/adapters/memory"
	"github.com/aretw0/nhohnhehr/pkg/adapters/stream"
)

// ExampleNew demonstrates running a program with bit-framed I/O.
func ExampleNew() {
	source := []byte(`
+-----+
|$101@|
|     |
|     |
|     |
|     |
+-----+
`)
	var out bytes.Buffer
	port := stream.NewBitPort(strings.NewReader(""), &out)

	eng, err := nhohnhehr.New(source, port)
	if err != nil {
		log.Fatal(err)
	}
	if err := eng.Run(context.Background()); err != nil {
		log.Fatal(err)
	}

	fmt.Println(out.String())
	fmt.Println("steps:", eng.State().Steps)
	// Output:
	// 101
	// steps: 5
}

// ExampleLoad demonstrates loading a program from a store.
func ExampleLoad() {
	store := memory.NewStore(map[string]string{
		"turn": "+---+\n|$?@|\n|   |\n|   |\n+---+\n",
	})
	tape := memory.NewTapeFromBits("10")

	ctx := context.Background()
	eng, err := nhohnhehr.Load(ctx, store, "turn", tape)
	if err != nil {
		log.Fatal(err)
	}
	if err := eng.Run(ctx); err != nil {
		log.Fatal(err)
	}

	fmt.Println("halted:", eng.State().Halted, "unread input:", tape.Remaining())
	// Output:
	// halted: true unread input: 0
}
