// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/ezrec/cpuid/invoke"
	"github.com/ezrec/cpuid/leaf"
	"github.com/ezrec/cpuid/translate"
)

var f = translate.From

var ErrSubleafWithoutLeaf = errors.New(f("-s requires -l"))

// checkFlags rejects flag combinations that would be silently ignored.
func checkFlags(leafExpr string, set map[string]bool) (err error) {
	if len(leafExpr) == 0 && set["s"] {
		err = ErrSubleafWithoutLeaf
	}
	return
}

func main() {
	var dump bool
	var file string
	var save string
	var leafExpr string
	var subleafExpr string
	var verbose bool

	flag.BoolVar(&dump, "d", false, "Dump raw register values")
	flag.StringVar(&file, "f", "", "Replay a raw dump file instead of the CPUID instruction")
	flag.StringVar(&save, "o", "", "Save every invoked frame to a raw dump file, for -f")
	flag.StringVar(&leafExpr, "l", "", "Dump a single leaf (ie 'EXT+6')")
	flag.StringVar(&subleafExpr, "s", "0", "Sub-leaf of the single leaf to dump, with -l")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	set := map[string]bool{}
	flag.Visit(func(fl *flag.Flag) {
		set[fl.Name] = true
	})
	err := checkFlags(leafExpr, set)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	if verbose {
		log.Printf("cpuid: language %v", translate.Language())
	}

	var inv invoke.Invoker
	if len(file) != 0 {
		inf, err := os.Open(file)
		if err != nil {
			log.Fatalf("%v: %v", file, err)
		}
		defer inf.Close()

		replay := invoke.Static{}
		err = replay.Unmarshal(inf)
		if err != nil {
			log.Fatalf("%v: %v", file, err)
		}
		inv = replay
	} else {
		native, err := invoke.NewNative()
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
		inv = native
	}

	var rec *invoke.Recorder
	if len(save) != 0 {
		rec = &invoke.Recorder{Invoker: inv, Frames: invoke.Static{}}
		inv = rec
	}

	st := leaf.NewState(inv, os.Stdout)
	st.Verbose = verbose

	if len(leafExpr) != 0 {
		id, err := leaf.ParseLeaf(leafExpr)
		if err != nil {
			log.Fatalf("-l: %v", err)
		}
		sub, err := leaf.ParseLeaf(subleafExpr)
		if err != nil {
			log.Fatalf("-s: %v", err)
		}
		st.DumpLeaf(id, sub)
	} else {
		tbl := leaf.DecodeTable
		if dump {
			tbl = leaf.DumpTable
		}
		st.Run(tbl)
	}

	if rec != nil {
		ouf, err := os.Create(save)
		if err != nil {
			log.Fatalf("%v: %v", save, err)
		}
		defer ouf.Close()

		err = rec.Frames.Marshal(ouf)
		if err != nil {
			log.Fatalf("%v: %v", save, err)
		}
		if verbose {
			log.Printf("cpuid: saved %d frames from %d calls to %v", len(rec.Frames), len(rec.Calls), save)
		}
	}
}
