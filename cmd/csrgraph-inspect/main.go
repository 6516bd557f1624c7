// Command csrgraph-inspect is a smoke-test harness over the csrgraph
// library: it loads one edge-list (or cache) file and prints its
// basic shape. It is not part of the library's contract — just a
// manual-verification entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/oxgraph/csrgraph"
)

func main() {
	start := flag.Int("start", -1, "if >= 0, print the BFS edge list from this vertex")
	depth := flag.Int("depth", 0, "max BFS depth, used with -start")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: csrgraph-inspect [-start N] [-depth N] <path>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	g := csrgraph.New()
	defer g.Close()

	if err := g.Load(context.Background(), path); err != nil {
		log.Fatalf("csrgraph-inspect: %v", err)
	}

	fmt.Printf("nodes=%d edges=%d critical=%d\n", g.NumNodes(), g.NumEdges(), g.CriticalNode())

	if *start >= 0 {
		for _, e := range g.BFS(*start, *depth) {
			fmt.Printf("%d -> %d\n", e.U, e.V)
		}
	}
}
