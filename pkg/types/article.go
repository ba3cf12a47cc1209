// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SourceKind identifies the provenance tier of an evidence link.
type SourceKind string

const (
	SourceNHS    SourceKind = "nhs"
	SourceNICE   SourceKind = "nice"
	SourceCDC    SourceKind = "cdc"
	SourcePubMed SourceKind = "pubmed"
	SourceOther  SourceKind = "other"
)

// EvidenceSource is a citation record: either a curated guideline-body
// link or a retrieved bibliographic article. Sources are deduplicated by
// URL before use.
type EvidenceSource struct {
	Title   string     `json:"title" yaml:"title"`
	URL     string     `json:"url" yaml:"url"`
	Kind    SourceKind `json:"kind" yaml:"kind"`
	PMID    string     `json:"pmid,omitempty" yaml:"pmid,omitempty"`
	Year    int        `json:"year,omitempty" yaml:"year,omitempty"`
	Journal string     `json:"journal,omitempty" yaml:"journal,omitempty"`
}

// Article is a bibliographic record, either retrieved live from the
// search service or drawn from the static fallback table. Both paths
// produce the same shape so downstream code is agnostic to provenance.
type Article struct {
	// PMID is the PubMed identifier.
	PMID string `json:"pmid" yaml:"pmid"`

	// Title is the article title as returned by the source.
	Title string `json:"title" yaml:"title"`

	// Journal is the full journal name.
	Journal string `json:"journal" yaml:"journal"`

	// Year is the publication year.
	Year int `json:"year" yaml:"year"`

	// URL is the canonical article page.
	URL string `json:"url" yaml:"url"`

	// Authors lists authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Abstract is the abstract text when extraction succeeded; empty
	// otherwise. Extraction is best effort per record.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`
}

// Source converts the article to an EvidenceSource citation record.
func (a Article) Source() EvidenceSource {
	return EvidenceSource{
		Title:   a.Title,
		URL:     a.URL,
		Kind:    SourcePubMed,
		PMID:    a.PMID,
		Year:    a.Year,
		Journal: a.Journal,
	}
}
