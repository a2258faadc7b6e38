package skills

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
)

//go:embed data/domain_skills.json
var domainSkillsJSON []byte

// Catalog is the static domain → category → skills dataset.
type Catalog struct {
	Domains []Domain `json:"domains"`
}

// Domain is a field of study such as "CS/IT" or "Pharmacy".
type Domain struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Categories []DomainCategory `json:"categories"`
}

// DomainCategory is a career track within a domain.
type DomainCategory struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Roles  []string `json:"roles"`
	Skills []string `json:"skills"`
}

// CatalogError reports a catalog that could not be loaded.
type CatalogError struct {
	Message string
	Cause   error
}

func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("skill catalog: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("skill catalog: %s", e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// ParseCatalog decodes a catalog from JSON.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, &CatalogError{Message: "invalid JSON", Cause: err}
	}
	if len(c.Domains) == 0 {
		return nil, &CatalogError{Message: "no domains defined"}
	}
	return &c, nil
}

// EmbeddedCatalog returns the catalog compiled into the binary.
func EmbeddedCatalog() (*Catalog, error) {
	return ParseCatalog(domainSkillsJSON)
}

// AllSkills returns every distinct skill string in the catalog, sorted.
func (c *Catalog) AllSkills() []string {
	seen := make(map[string]bool)
	for _, d := range c.Domains {
		for _, cat := range d.Categories {
			for _, s := range cat.Skills {
				seen[s] = true
			}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
