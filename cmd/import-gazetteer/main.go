package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/janm-comcon/stdtext/artifacts"
	"github.com/janm-comcon/stdtext/importer"
)

func main() {
	var (
		inPath  = flag.String("in", "", "Path to a saved postal-table HTML page or a plain city list")
		outPath = flag.String("out", "gazetteer.txt", "Path for the gazetteer artifact")
		format  = flag.String("format", "auto", "Input format: auto, html or text")
		verbose = flag.Bool("verbose", false, "Verbose output")
	)
	flag.Parse()

	if *inPath == "" {
		fmt.Println("Usage: import-gazetteer -in <path> [options]")
		fmt.Println("\nOptions:")
		fmt.Println("  -in <path>       Saved postal-table HTML page or plain city list")
		fmt.Println("  -out <path>      Path for the gazetteer artifact (default: gazetteer.txt)")
		fmt.Println("  -format <name>   auto, html or text (auto goes by file extension)")
		fmt.Println("  -verbose         Verbose output")
		fmt.Println("\nExamples:")
		fmt.Println("  import-gazetteer -in postnumre.html -out gazetteer.txt")
		fmt.Println("  import-gazetteer -in byer.txt -format text")
		os.Exit(1)
	}

	file, err := os.Open(*inPath)
	if err != nil {
		log.Fatalf("Failed to open input: %v", err)
	}
	defer file.Close()

	kind := strings.ToLower(*format)
	if kind == "auto" {
		switch strings.ToLower(filepath.Ext(*inPath)) {
		case ".html", ".htm":
			kind = "html"
		default:
			kind = "text"
		}
	}
	if *verbose {
		log.Printf("Parsing %s as %s", *inPath, kind)
	}

	var names []string
	switch kind {
	case "html":
		names, err = importer.ParseGazetteerHTML(file)
	case "text":
		names, err = importer.ParseGazetteerText(file)
	default:
		log.Fatalf("Unknown format %q", *format)
	}
	if err != nil {
		log.Fatalf("Failed to parse gazetteer source: %v", err)
	}
	if len(names) == 0 {
		log.Fatalf("No city names found in %s", *inPath)
	}

	if err := artifacts.WriteGazetteer(*outPath, names); err != nil {
		log.Fatalf("Failed to write gazetteer: %v", err)
	}

	fmt.Printf("Wrote %d city names to %s\n", len(names), *outPath)
}
