// Symtool - inspect and manipulate MacRuby symbol tables
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/tliron/commonlog"

	"github.com/EDubaj/MacRuby/manifest"
	"github.com/EDubaj/MacRuby/store"
	"github.com/EDubaj/MacRuby/symbol"
	"github.com/EDubaj/MacRuby/token"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("symtool")

func main() {
	verbose := flag.Bool("v", false, "Verbose output")
	classifyOnly := flag.Bool("classify", false, "Classify names without interning")
	fromStdin := flag.Bool("stdin", false, "Read names from standard input, one per line")
	loadPath := flag.String("load", "", "Restore a snapshot before interning")
	dumpPath := flag.String("dump", "", "Write a snapshot after interning")
	journalPath := flag.String("journal", "", "Record interned names to a journal database")
	listAll := flag.Bool("all", false, "List every registered symbol after interning")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: symtool [options] [names...]\n\n")
		fmt.Fprintf(os.Stderr, "Interns the given names and prints their IDs and literal forms.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  symtool foo @bar '$baz' Const 'foo='   # Intern and print\n")
		fmt.Fprintf(os.Stderr, "  symtool -classify 'foo bar'            # Classify only\n")
		fmt.Fprintf(os.Stderr, "  symtool -dump syms.snapshot foo bar    # Write a snapshot\n")
		fmt.Fprintf(os.Stderr, "  symtool -load syms.snapshot -all       # List a snapshot\n")
	}
	flag.Parse()

	verbosity := 0
	if *verbose {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)

	names := flag.Args()
	if *fromStdin {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			names = append(names, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
	}

	if *classifyOnly {
		for _, name := range names {
			fmt.Printf("%-24s %-9s %s\n",
				name, symbol.Classify(name), symbol.LiteralForm(name))
		}
		return
	}

	reg := buildRegistry(*loadPath)

	var rec *store.Recorder
	if *journalPath != "" {
		j, err := store.Open(*journalPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening journal: %v\n", err)
			os.Exit(1)
		}
		defer j.Close()
		log.Infof("journal session %s at %s", j.Session(), *journalPath)
		rec = store.NewRecorder(reg, j)
	}

	for _, name := range names {
		var id symbol.ID
		if rec != nil {
			var err error
			id, err = rec.Intern(name)
			if err != nil {
				log.Errorf("journal write failed: %v", err)
			}
		} else {
			id = reg.Intern(name)
		}
		printSymbol(name, id)
	}

	if *listAll {
		ids := reg.AllSymbols()
		sort.Slice(ids, func(i, j int) bool { return ids[i].Pack() < ids[j].Pack() })
		for _, id := range ids {
			if name, ok := reg.Resolve(id); ok {
				printSymbol(name, id)
			}
		}
	}

	if *dumpPath != "" {
		data, err := symbol.MarshalSnapshot(reg.Table().Snapshot())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding snapshot: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*dumpPath, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing snapshot: %v\n", err)
			os.Exit(1)
		}
		log.Infof("wrote %d symbols to %s", reg.Len(), *dumpPath)
	}
}

// buildRegistry restores a snapshot when given one, otherwise seeds a
// fresh registry with the parser's operator table plus any extra
// reserved tokens from a symbols.toml found above the working directory.
func buildRegistry(loadPath string) *symbol.Registry {
	if loadPath != "" {
		data, err := os.ReadFile(loadPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading snapshot: %v\n", err)
			os.Exit(1)
		}
		snap, err := symbol.UnmarshalSnapshot(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding snapshot: %v\n", err)
			os.Exit(1)
		}
		log.Infof("restored %d symbols from %s", len(snap.Symbols), loadPath)
		return symbol.NewRegistryFromTable(symbol.RestoreTable(snap))
	}

	reserved := token.Reserved()
	m, err := manifest.FindAndLoad(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading symbols.toml: %v\n", err)
		os.Exit(1)
	}
	if m != nil {
		log.Infof("using manifest in %s (%d extra tokens)", m.Dir, len(m.Reserved))
		reserved = append(reserved, m.ReservedEntries()...)
	}
	return symbol.NewRegistry(reserved)
}

func printSymbol(name string, id symbol.ID) {
	fmt.Printf("%-24s %-9s serial=%-6d packed=%-8d %s\n",
		name, id.Scope, id.Serial, id.Pack(), symbol.LiteralForm(name))
}
