// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Command gentables compiles the instruction description file into
// the decoder's packed dispatch tables.
//
// Usage:
//
//	gentables [OPTIONS] SPEC-FILE OUTPUT-FILE
//
// The generated tables are written to OUTPUT-FILE as Go source. If
// -mnemonics is given, the mnemonic enumeration derived from the
// description file is written there as well. Any inconsistency in
// the description file is fatal: the diagnostic names the offending
// line and no output is written.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/xlab/treeprint"

	"github.com/Liruxo/fadec/internal/opdb"
	"github.com/Liruxo/fadec/internal/table"
)

var program = filepath.Base(os.Args[0])

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
	log.SetPrefix(program + ": ")
}

func main() {
	var pkg, mnemonics string
	var dump, tree bool
	flag.StringVar(&pkg, "pkg", "fadec", "Package name for the generated source.")
	flag.StringVar(&mnemonics, "mnemonics", "", "Also write the mnemonic enumeration to this file.")
	flag.BoolVar(&dump, "dump", false, "Dump the parsed records to stderr and exit.")
	flag.BoolVar(&tree, "tree", false, "Print the dispatch trie to stdout and exit.")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n  %s [OPTIONS] SPEC-FILE OUTPUT-FILE\n\nOptions:\n", program)
		flag.PrintDefaults()
	}

	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	specFile := flag.Arg(0)
	outFile := flag.Arg(1)

	f, err := os.Open(specFile)
	if err != nil {
		log.Fatal(err)
	}

	records, err := opdb.Parse(specFile, f)
	f.Close()
	if err != nil {
		log.Fatal(err)
	}

	if dump {
		spew.Fdump(os.Stderr, records)
		return
	}

	trie, err := table.Build(records)
	if err != nil {
		log.Fatalf("%s: %v", specFile, err)
	}

	if tree {
		fmt.Println(renderTree(trie))
		return
	}

	src, err := trie.EmitTables(pkg)
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile(outFile, src, 0o644); err != nil {
		log.Fatal(err)
	}

	if mnemonics != "" {
		if err := os.WriteFile(mnemonics, trie.EmitMnemonics(pkg), 0o644); err != nil {
			log.Fatal(err)
		}
	}

	log.Printf("%s: %d records, %s", specFile, len(records), trie.Stats())
}

// renderTree renders the dispatch trie for debugging.
func renderTree(trie *table.Trie) string {
	root := treeprint.New()

	var walk func(branch treeprint.Tree, n *table.Node)
	walk = func(branch treeprint.Tree, n *table.Node) {
		if n.Kind == table.KindInstr {
			branch.AddNode(fmt.Sprintf("%s %04x", n.Term.Mnemonic, n.Term.Flags))
			return
		}

		for i, e := range n.Entries {
			if e == nil {
				continue
			}

			if e.Kind == table.KindInstr {
				branch.AddNode(fmt.Sprintf("%02x: %s", i, e.Term.Mnemonic))
				continue
			}

			walk(branch.AddBranch(fmt.Sprintf("%02x: %s", i, e.Kind)), e)
		}
	}

	modes := [2]string{"32-bit", "64-bit"}
	maps := [8]string{"", "0F", "0F38", "0F3A", "VEX", "VEX.0F", "VEX.0F38", "VEX.0F3A"}
	for mode := range trie.Roots {
		mb := root.AddBranch(modes[mode])
		for i, n := range trie.Roots[mode] {
			if n == nil {
				continue
			}

			name := maps[i]
			if name == "" {
				name = "main"
			}

			walk(mb.AddBranch(name), n)
		}
	}

	return root.String()
}
