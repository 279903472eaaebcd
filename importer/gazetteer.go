package importer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var postcodePattern = regexp.MustCompile(`^\d{3,4}$`)

// danishTitle recases shouting postal-table entries ("AARHUS C") without
// touching mixed-case names.
var danishTitle = cases.Title(language.Danish)

// ParseGazetteerHTML extracts city names from a saved postal-code table.
// Every table row whose first cell is a three or four digit postcode
// contributes the following cell as a city name.
func ParseGazetteerHTML(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var names []string
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() < 2 {
			return
		}
		first := strings.TrimSpace(cells.Eq(0).Text())
		if !postcodePattern.MatchString(first) {
			return
		}
		if name := cleanCityName(cells.Eq(1).Text()); name != "" {
			names = append(names, name)
		}
	})
	if len(names) == 0 {
		return nil, errors.New("no postal rows found in html")
	}
	return names, nil
}

// ParseGazetteerText reads one city per line, tolerating an optional
// leading postcode and # comments.
func ParseGazetteerText(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if fields := strings.Fields(line); len(fields) > 1 && postcodePattern.MatchString(fields[0]) {
			line = strings.Join(fields[1:], " ")
		}
		if name := cleanCityName(line); name != "" {
			names = append(names, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

func cleanCityName(raw string) string {
	name := strings.Join(strings.Fields(raw), " ")
	if name == "" {
		return ""
	}
	if name == strings.ToUpper(name) {
		name = danishTitle.String(strings.ToLower(name))
	}
	return name
}
