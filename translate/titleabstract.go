package translate

import (
	"regexp"
	"strings"
)

var titleLine = regexp.MustCompile(`^.*@title\s*(?::\s*)?(.+)\s*$`)
var abstractLine = regexp.MustCompile(`^.*@abstract\s*(?::\s*)?(.+)\s*$`)

// titleAndAbstract scans comment line by line for @title/@abstract
// tags, joining multiple title matches with ", " and multiple
// abstract matches with "\n". A comment with no matching lines yields
// two empty strings - absence of a tag is not an error.
func titleAndAbstract(comment string) (title, abstract string) {
	if comment == "" {
		return "", ""
	}
	var titles, abstracts []string
	for _, line := range strings.Split(comment, "\n") {
		if m := titleLine.FindStringSubmatch(line); m != nil {
			titles = append(titles, strings.TrimSpace(m[1]))
		}
		if m := abstractLine.FindStringSubmatch(line); m != nil {
			abstracts = append(abstracts, strings.TrimSpace(m[1]))
		}
	}
	return strings.Join(titles, ", "), strings.Join(abstracts, "\n")
}
