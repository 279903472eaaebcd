package main

// Generates synthetic Danish invoice lines for load tests and fixtures:
// action, object, count, unit, the occasional room, city or inspection
// phrase, with typos injected at a configurable rate.

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

var (
	actions = []string{
		"levering", "montering", "udskiftning", "opsætning",
		"fejlfinding", "nedtagning", "tilslutning", "etablering",
	}
	objects = []string{
		"dør", "vindue", "rør", "kabel", "lampe",
		"stikkontakt", "ventil", "pumpe", "radiator", "håndvask",
	}
	rooms  = []string{"køkken", "bad", "stue", "kælder", "kontor", "garage"}
	cities = []string{"Aarhus", "Odense", "Aalborg", "Esbjerg", "Randers", "Kolding"}
	units  = []string{"stk", "m", "m2", "timer"}

	// short forms technicians actually type
	abbrevs = map[string]string{
		"levering":    "lev.",
		"montering":   "mont.",
		"udskiftning": "udskift.",
	}
)

func main() {
	var (
		outDir   = flag.String("out", filepath.Join("testdata", "load"), "Output directory")
		typoRate = flag.Int("typo-rate", 20, "Percent of lines that get a typo")
		seed     = flag.Int64("seed", 0, "Random seed")
	)
	flag.Parse()

	gofakeit.Seed(*seed)

	sizes := []struct {
		name string
		size int
	}{
		{"1K", 1000},
		{"10K", 10000},
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	for _, size := range sizes {
		fmt.Printf("Generating %s lines...\n", size.name)

		path := filepath.Join(*outDir, fmt.Sprintf("invoice_lines_%s.txt", size.name))
		if err := writeLines(path, size.size, *typoRate); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}

		fmt.Printf("Generated %d lines in %s\n", size.size, path)
	}
}

func writeLines(path string, n, typoRate int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for i := 0; i < n; i++ {
		line := generateLine()
		if gofakeit.Number(1, 100) <= typoRate {
			line = injectTypo(line)
		}
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

// generateLine builds one plausible raw invoice line.
func generateLine() string {
	action := gofakeit.RandomString(actions)
	if short, ok := abbrevs[action]; ok && gofakeit.Number(1, 10) <= 2 {
		action = short
	}

	parts := []string{action}
	if gofakeit.Bool() {
		parts = append(parts, "af")
	}
	parts = append(parts, gofakeit.RandomString(objects))
	if gofakeit.Bool() {
		parts = append(parts, fmt.Sprintf("%d %s", gofakeit.Number(1, 12), gofakeit.RandomString(units)))
	}
	if gofakeit.Bool() {
		parts = append(parts, "i", gofakeit.RandomString(rooms))
	}
	if gofakeit.Number(1, 10) == 1 {
		parts = append(parts, gofakeit.RandomString(cities))
	}
	if gofakeit.Number(1, 10) <= 2 {
		parts = append(parts, "afprøvet ok")
	}
	return strings.Join(parts, " ")
}

// injectTypo mutates one random word: a dropped, doubled or swapped letter.
func injectTypo(line string) string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return line
	}

	idx := gofakeit.Number(0, len(words)-1)
	runes := []rune(words[idx])
	if len(runes) < 4 {
		return line
	}

	pos := gofakeit.Number(1, len(runes)-2)
	switch gofakeit.Number(0, 2) {
	case 0:
		runes = append(runes[:pos], runes[pos+1:]...)
	case 1:
		runes = append(runes[:pos], append([]rune{runes[pos]}, runes[pos:]...)...)
	default:
		runes[pos], runes[pos+1] = runes[pos+1], runes[pos]
	}
	words[idx] = string(runes)
	return strings.Join(words, " ")
}
