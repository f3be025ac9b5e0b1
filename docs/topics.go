// Package docs embeds the vreg documentation topics, shown by 'vreg topic'
// and given to the assistant as context.
//
// readme.md is the entry page. Its index lists every other topic as a
// "* name: summary" line.
package docs

import (
	"bufio"
	"embed"
	"fmt"
	"regexp"
	"strings"
)

//go:embed *.md
var pages embed.FS

// Readme is the name of the entry page.
const Readme = "readme"

// Topic is one entry of the readme index.
type Topic struct {
	Name    string
	Summary string
}

var indexLine = regexp.MustCompile(`^\*\s+([\w-]+):\s*(.*)$`)

// Index returns the topics listed by the readme, in order.
func Index() []Topic {
	f, err := pages.Open(Readme + ".md")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	var index []Topic
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if m := indexLine.FindStringSubmatch(scanner.Text()); m != nil {
			index = append(index, Topic{Name: m[1], Summary: strings.TrimSpace(m[2])})
		}
	}
	return index
}

// Names returns the names of the indexed topics.
func Names() []string {
	var names []string
	for _, t := range Index() {
		names = append(names, t.Name)
	}
	return names
}

// Read returns the content of the named topics, separated by a blank line.
// "*" stands for every indexed topic.
func Read(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		expanded := []string{name}
		if name == "*" {
			expanded = Names()
		}
		for _, name := range expanded {
			content, err := pages.ReadFile(name + ".md")
			if err != nil {
				return "", fmt.Errorf("topic %q not found, see 'vreg topic' for the list", name)
			}
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.Write(content)
		}
	}
	return b.String(), nil
}

// MustRead is like Read for topics known to exist.
func MustRead(names ...string) string {
	content, err := Read(names...)
	if err != nil {
		panic(err)
	}
	return content
}
