package catalog

import (
	"fmt"
	"strings"

	"github.com/verdora/voicecart-server/domain/entities"
)

// Store field names referenced by filter formulas.
const (
	fieldInStock  = "in_stock"
	fieldCategory = "category"
	fieldTags     = "tags"
	fieldTitle    = "title"
)

// BuildFilterFormula translates a structured search request into the store's
// filter-expression syntax:
//
//  1. mandatory in-stock clause
//  2. optional exact-equality category clause
//  3. optional OR-group of per-tag containment clauses; the group keeps its
//     OR() wrapper even for a single tag
//
// Clauses are conjoined with AND() only when more than one exists, so a bare
// request compiles to exactly the in-stock clause. The free-text query field
// is not consulted. Interpolated values are escaped, never raw.
func BuildFilterFormula(query entities.ProductQuery) string {
	clauses := []string{fmt.Sprintf("{%s} = TRUE()", fieldInStock)}

	if query.Category != "" {
		clauses = append(clauses, fmt.Sprintf("{%s} = %s", fieldCategory, quoteFormulaValue(query.Category)))
	}

	if len(query.Tags) > 0 {
		tagClauses := make([]string, 0, len(query.Tags))
		for _, tag := range query.Tags {
			tagClauses = append(tagClauses, fmt.Sprintf("FIND(%s, {%s})", quoteFormulaValue(tag), fieldTags))
		}
		clauses = append(clauses, fmt.Sprintf("OR(%s)", strings.Join(tagClauses, ", ")))
	}

	if len(clauses) == 1 {
		return clauses[0]
	}
	return fmt.Sprintf("AND(%s)", strings.Join(clauses, ", "))
}

// quoteFormulaValue wraps a user-supplied value in double quotes, escaping
// backslashes and embedded quotes so the value cannot terminate the string
// literal inside the formula.
func quoteFormulaValue(value string) string {
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}
