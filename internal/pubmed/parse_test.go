// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"strings"
	"testing"
)

func TestParseAbstractsJoinsLabelledSections(t *testing.T) {
	abstracts := ParseAbstracts([]byte(sampleEfetch))

	got, ok := abstracts["1001"]
	if !ok {
		t.Fatal("missing abstract for 1001")
	}
	if !strings.Contains(got, "Therapy and support improve outcomes.") ||
		!strings.Contains(got, "systematic review") {
		t.Errorf("abstract = %q", got)
	}
	if strings.Contains(got, "<") {
		t.Errorf("abstract contains markup: %q", got)
	}
}

func TestParseAbstractsBestEffortPerRecord(t *testing.T) {
	raw := `<PubmedArticleSet>
	<PubmedArticle><PMID Version="1">1</PMID><AbstractText>Good record.</AbstractText></PubmedArticle>
	<PubmedArticle><Abstract><AbstractText>No PMID here, skipped.</AbstractText></Abstract></PubmedArticle>
	<PubmedArticle><PMID Version="1">3</PMID></PubmedArticle>
	<PubmedArticle><PMID Version="1">4</PMID><AbstractText>Entities &amp; <i>markup</i> stripped.</AbstractText></PubmedArticle>
	</PubmedArticleSet>`

	abstracts := ParseAbstracts([]byte(raw))

	if abstracts["1"] != "Good record." {
		t.Errorf("record 1 = %q", abstracts["1"])
	}
	if _, ok := abstracts["3"]; ok {
		t.Error("record without abstract should be absent, not empty")
	}
	if abstracts["4"] != "Entities & markup stripped." {
		t.Errorf("record 4 = %q", abstracts["4"])
	}
	if len(abstracts) != 2 {
		t.Errorf("got %d abstracts, want 2", len(abstracts))
	}
}

func TestParseAbstractsGarbageInput(t *testing.T) {
	if got := ParseAbstracts([]byte("this is not xml at all")); len(got) != 0 {
		t.Errorf("garbage input produced %v", got)
	}
}
