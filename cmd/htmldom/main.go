// Command htmldom parses an HTML-like file (or stdin) and prints a tag
// census, one "tag: count" line per distinct element tag found, sorted by
// tag name. It is the library's smallest possible consumer.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/dpotapov/htmldom"
	"github.com/dpotapov/htmldom/dom"
)

func main() {
	strict := flag.Bool("strict", false, "abort on the first structural error instead of recovering")
	flag.Parse()

	src, err := readSource(flag.Arg(0))
	if err != nil {
		slog.Error("htmldom: read input", "error", err)
		os.Exit(1)
	}

	p := &htmldom.Parser{StrictMode: *strict}
	doc, err := p.Parse(src)
	if err != nil {
		slog.Error("htmldom: parse", "error", err)
		os.Exit(1)
	}

	for _, line := range tagCensusLines(doc) {
		fmt.Println(line)
	}
}

func readSource(path string) (string, error) {
	if path == "" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

// tagCensusLines renders dom.Census(doc) as "tag: count" lines sorted by
// tag name.
func tagCensusLines(doc *dom.Document) []string {
	counts := dom.Census(doc)

	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	lines := make([]string, 0, len(tags))
	for _, tag := range tags {
		lines = append(lines, fmt.Sprintf("%s: %d", tag, counts[tag]))
	}
	return lines
}
