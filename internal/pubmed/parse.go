// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"html"
	"regexp"
	"strings"
)

// Abstract extraction is best effort: efetch records mix structured and
// free-form markup (labelled AbstractText sections, inline emphasis
// tags), so a strict struct decode rejects too many real records. The
// tolerant scan lives behind ParseAbstracts so the strategy can be
// swapped for a real parser without touching the client.
var (
	articleRe  = regexp.MustCompile(`(?s)<PubmedArticle>.*?</PubmedArticle>`)
	pmidRe     = regexp.MustCompile(`<PMID[^>]*>(\d+)</PMID>`)
	abstractRe = regexp.MustCompile(`(?s)<AbstractText[^>]*>(.*?)</AbstractText>`)
	tagRe      = regexp.MustCompile(`<[^>]+>`)
)

// ParseAbstracts extracts abstract text per article identifier from raw
// efetch XML. A record that cannot be parsed is skipped; it never aborts
// the batch. Records without an abstract are simply absent from the map.
func ParseAbstracts(raw []byte) map[string]string {
	abstracts := make(map[string]string)

	for _, record := range articleRe.FindAllString(string(raw), -1) {
		pmid := pmidRe.FindStringSubmatch(record)
		if pmid == nil {
			continue
		}

		var parts []string
		for _, m := range abstractRe.FindAllStringSubmatch(record, -1) {
			text := cleanFragment(m[1])
			if text != "" {
				parts = append(parts, text)
			}
		}
		if len(parts) > 0 {
			abstracts[pmid[1]] = strings.Join(parts, " ")
		}
	}
	return abstracts
}

// cleanFragment strips residual markup, unescapes entities, and
// collapses whitespace.
func cleanFragment(s string) string {
	s = tagRe.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	return strings.Join(strings.Fields(s), " ")
}
