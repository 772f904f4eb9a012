// Command measure times building ordered sets of each implementation from
// the same input and reports the resulting heights of SearchTrees.
//
//	measure --n=100000 --order=ascending --impls=avl,llrb --verify
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"testing"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/g-m-twostay/go-bst/Trees/compare"
	"github.com/golang/glog"
	"github.com/spf13/pflag"
)

var (
	n      = pflag.Uint32("n", 100000, "number of values inserted into each set")
	order  = pflag.String("order", "random", "insertion order: random or ascending")
	impls  = pflag.StringSlice("impls", append([]string{Trees.Unbalanced.String(), Trees.AVL.String()}, compare.Names...), "implementations to measure")
	seed   = pflag.Int64("seed", 0, "seed of the random insertion order")
	degree = pflag.Int("degree", 32, "degree of btree")
	verify = pflag.Bool("verify", false, "verify the invariants of every SearchTree built")
)

// unbalancedLimit is the size above which an unbalanced tree on ascending
// input gets too slow to measure comfortably.
const unbalancedLimit = 20000

func values() ([]int, error) {
	switch *order {
	case "random":
		return rand.New(rand.NewSource(*seed)).Perm(int(*n)), nil
	case "ascending":
		vs := make([]int, *n)
		for i := range vs {
			vs[i] = i
		}
		return vs, nil
	}
	return nil, fmt.Errorf("--order=%q, want random or ascending", *order)
}

// build a set named name holding vs.
func build(name string, vs []int) (Trees.Set[int], error) {
	var s Trees.Set[int]
	var p Trees.Policy
	if err := p.Set(name); err == nil {
		s = Trees.New[int, uint32](uint32(len(vs)), p)
	} else if s, err = compare.New[int](name, *degree); err != nil {
		return nil, err
	}
	for _, v := range vs {
		s.Insert(v)
	}
	return s, nil
}

func main() {
	testing.Init()
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()
	defer glog.Flush()

	vs, err := values()
	if err != nil {
		glog.Exitf("measure: %s", err)
	}
	failed := false
	for _, name := range *impls {
		if name == Trees.Unbalanced.String() && *order == "ascending" && *n > unbalancedLimit {
			glog.Warningf("measure: %s on ascending input is quadratic, n=%d", name, *n)
		}
		if _, err := build(name, nil); err != nil {
			glog.Errorf("measure: %s", err)
			failed = true
			continue
		}
		glog.V(1).Infof("measure: building %s with %d values", name, len(vs))

		var s Trees.Set[int]
		br := testing.Benchmark(func(b *testing.B) {
			for range b.N {
				s, _ = build(name, vs)
			}
		})
		line := fmt.Sprintf("%-12s %14d ns/op %10.1f ns/insert", name, br.NsPerOp(), float64(br.NsPerOp())/float64(max(len(vs), 1)))
		if t, ok := s.(*Trees.SearchTree[int, uint32]); ok {
			line += fmt.Sprintf(" height %d", t.Height())
			if *verify {
				if err := t.Verify(); err != nil {
					glog.Errorf("measure: %s: %s", name, err)
					failed = true
				}
			}
		}
		fmt.Println(line)
		glog.Infof("measure: %s done in %d runs", name, br.N)
	}
	if failed {
		glog.Flush()
		os.Exit(1)
	}
}
