package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/janm-comcon/stdtext/importer"
)

func main() {
	var (
		inPath    = flag.String("in", "", "Path to the raw invoice export (.xlsx or CSV)")
		outPath   = flag.String("out", "corpus.txt", "Path for the cleaned corpus file")
		column    = flag.Int("column", -1, "Zero-based text column (-1 auto-detects by median cell length)")
		delimiter = flag.String("delimiter", ";", "CSV delimiter")
		charset   = flag.String("encoding", "utf-8", "CSV encoding: utf-8, latin-1, windows-1252 or auto")
		noHeader  = flag.Bool("no-header", false, "Treat the first row as data")
		minLen    = flag.Int("min-length", 3, "Drop cleaned lines shorter than this many characters")
		verbose   = flag.Bool("verbose", false, "Verbose output")
	)
	flag.Parse()

	if *inPath == "" {
		fmt.Println("Usage: corpus-import [options]")
		fmt.Println("\nOptions:")
		fmt.Println("  -in <path>          Path to the raw invoice export (.xlsx or CSV)")
		fmt.Println("  -out <path>         Path for the cleaned corpus file (default: corpus.txt)")
		fmt.Println("  -column <n>         Zero-based text column, -1 auto-detects")
		fmt.Println("  -delimiter <c>      CSV delimiter (default: ;)")
		fmt.Println("  -encoding <name>    utf-8, latin-1, windows-1252 or auto")
		fmt.Println("  -no-header          Treat the first row as data")
		fmt.Println("  -min-length <n>     Drop cleaned lines shorter than n characters")
		fmt.Println("  -verbose            Verbose output")
		fmt.Println("\nExamples:")
		fmt.Println("  corpus-import -in fakturalinjer.xlsx -out corpus.txt")
		fmt.Println("  corpus-import -in text.csv -encoding windows-1252 -column 2")
		os.Exit(1)
	}

	opts := importer.DefaultCorpusOptions()
	opts.Column = *column
	opts.Encoding = *charset
	opts.HasHeader = !*noHeader
	opts.MinLength = *minLen
	if *delimiter != "" {
		opts.Delimiter = []rune(*delimiter)[0]
	}

	if *verbose {
		log.Printf("Importing corpus from: %s", *inPath)
	}

	lines, stats, err := importer.ImportCorpusFile(*inPath, opts)
	if err != nil {
		log.Fatalf("Failed to import corpus: %v", err)
	}
	if len(lines) == 0 {
		log.Fatalf("No usable lines found in %s", *inPath)
	}
	if err := importer.WriteCorpus(*outPath, lines); err != nil {
		log.Fatalf("Failed to write corpus: %v", err)
	}

	fmt.Printf("\n=== Import Results ===\n")
	fmt.Printf("Text column: %d\n", stats.Column)
	fmt.Printf("Rows read:   %d\n", stats.RowsRead)
	fmt.Printf("Lines kept:  %d\n", stats.RowsKept)
	fmt.Printf("Duplicates:  %d\n", stats.Duplicates)
	fmt.Printf("Dropped:     %d\n", stats.Dropped)
	fmt.Printf("Corpus file: %s\n", *outPath)
}
