// Package schemas ships ready-made form definitions covering the engine's
// feature surface: conditional branches, cross-field rules, every renderer
// kind, and the layout containers. They double as living documentation for
// schema authors.
package schemas

import (
	"sort"

	"github.com/goliatone/go-schemaform/pkg/schema"
)

// Builder constructs a fresh schema value. Schemas are built per call so
// date bounds anchored to the current time stay current and callers can
// mutate their copy freely.
type Builder func() *schema.FormSchema

var catalog = map[string]Builder{
	"contact-form":      Contact,
	"user-registration": Registration,
	"agent-update":      AgentUpdate,
	"product-form":      Product,
	"address-form":      Address,
	"job-application":   JobApplication,
	"insurance-quote":   InsuranceQuote,
}

// IDs lists the catalog's form ids, sorted.
func IDs() []string {
	out := make([]string, 0, len(catalog))
	for id := range catalog {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Build constructs the named schema, reporting whether the id is known.
func Build(id string) (*schema.FormSchema, bool) {
	builder, ok := catalog[id]
	if !ok {
		return nil, false
	}
	return builder(), true
}

const emailPattern = `(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`
