package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/janm-comcon/stdtext/artifacts"
	"github.com/janm-comcon/stdtext/importer"
)

func main() {
	var (
		corpusPath = flag.String("corpus", "", "Path to the cleaned corpus file")
		outPath    = flag.String("out", "abbreviations.json", "Path for the abbreviation artifact")
		minShort   = flag.Int("min-short", 4, "Shortest prefix considered an abbreviation")
		maxDiff    = flag.Int("max-diff", 4, "How many letters longer the full form may be")
		ceiling    = flag.Int("common-ceiling", 20, "Prefixes more frequent than this count as full words")
		verbose    = flag.Bool("verbose", false, "Verbose output")
	)
	flag.Parse()

	if *corpusPath == "" {
		fmt.Println("Usage: build-abbreviations -corpus <path> [options]")
		fmt.Println("\nOptions:")
		fmt.Println("  -corpus <path>        Path to the cleaned corpus file")
		fmt.Println("  -out <path>           Path for the abbreviation artifact (default: abbreviations.json)")
		fmt.Println("  -min-short <n>        Shortest prefix considered an abbreviation (default: 4)")
		fmt.Println("  -max-diff <n>         How many letters longer the full form may be (default: 4)")
		fmt.Println("  -common-ceiling <n>   Prefixes more frequent than this count as full words (default: 20)")
		fmt.Println("  -verbose              Verbose output")
		os.Exit(1)
	}

	lines, err := importer.ReadCorpus(*corpusPath)
	if err != nil {
		log.Fatalf("Failed to read corpus: %v", err)
	}
	if *verbose {
		log.Printf("Read %d corpus lines from %s", len(lines), *corpusPath)
	}

	opts := importer.DefaultAbbrevOptions()
	opts.MinShortLen = *minShort
	opts.MaxSuffixDiff = *maxDiff
	opts.CommonCeiling = *ceiling

	entries := importer.BuildAbbreviations(lines, opts)
	if err := artifacts.WriteAbbreviations(*outPath, entries); err != nil {
		log.Fatalf("Failed to write abbreviations: %v", err)
	}

	fmt.Printf("Detected %d likely abbreviations.\n", len(entries))
	fmt.Printf("Wrote %s\n", *outPath)

	surfaces := make([]string, 0, len(entries))
	for surface := range entries {
		surfaces = append(surfaces, surface)
	}
	sort.Strings(surfaces)
	if len(surfaces) > 15 {
		surfaces = surfaces[:15]
	}
	for _, surface := range surfaces {
		fmt.Printf("  %-15s -> %s\n", surface, entries[surface])
	}
}
