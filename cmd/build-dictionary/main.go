package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/janm-comcon/stdtext/artifacts"
	"github.com/janm-comcon/stdtext/importer"
)

func main() {
	var (
		corpusPath = flag.String("corpus", "", "Path to the cleaned corpus file")
		outPath    = flag.String("out", "dictionary.tsv", "Path for the dictionary artifact")
		minCount   = flag.Int("min-count", 2, "Drop words seen fewer times than this")
		verbose    = flag.Bool("verbose", false, "Verbose output")
	)
	flag.Parse()

	if *corpusPath == "" {
		fmt.Println("Usage: build-dictionary -corpus <path> [options]")
		fmt.Println("\nOptions:")
		fmt.Println("  -corpus <path>    Path to the cleaned corpus file")
		fmt.Println("  -out <path>       Path for the dictionary artifact (default: dictionary.tsv)")
		fmt.Println("  -min-count <n>    Drop words seen fewer than n times (default: 2)")
		fmt.Println("  -verbose          Verbose output")
		os.Exit(1)
	}

	lines, err := importer.ReadCorpus(*corpusPath)
	if err != nil {
		log.Fatalf("Failed to read corpus: %v", err)
	}
	if *verbose {
		log.Printf("Read %d corpus lines from %s", len(lines), *corpusPath)
	}

	counts := importer.BuildDictionary(lines, *minCount)
	if len(counts) == 0 {
		log.Fatalf("No words passed the frequency cutoff %d", *minCount)
	}

	if err := artifacts.WriteDictionary(*outPath, counts); err != nil {
		log.Fatalf("Failed to write dictionary: %v", err)
	}

	fmt.Printf("Wrote %d words to %s\n", len(counts), *outPath)
}
