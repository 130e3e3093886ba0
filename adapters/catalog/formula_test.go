package catalog

import (
	"strings"
	"testing"

	"github.com/verdora/voicecart-server/domain/entities"
)

func TestBuildFilterFormula_BareRequest(t *testing.T) {
	formula := BuildFilterFormula(entities.ProductQuery{})

	expected := `{in_stock} = TRUE()`
	if formula != expected {
		t.Errorf("Expected formula %q, got %q", expected, formula)
	}
}

func TestBuildFilterFormula_QueryTextIsIgnored(t *testing.T) {
	formula := BuildFilterFormula(entities.ProductQuery{Query: "organic soil for succulents"})

	expected := `{in_stock} = TRUE()`
	if formula != expected {
		t.Errorf("Expected free-text query to be ignored, got %q", formula)
	}
}

func TestBuildFilterFormula_CategoryOnly(t *testing.T) {
	formula := BuildFilterFormula(entities.ProductQuery{Category: "potting-soil"})

	expected := `AND({in_stock} = TRUE(), {category} = "potting-soil")`
	if formula != expected {
		t.Errorf("Expected formula %q, got %q", expected, formula)
	}
}

func TestBuildFilterFormula_TagsOnly(t *testing.T) {
	formula := BuildFilterFormula(entities.ProductQuery{Tags: []string{"organic", "drainage"}})

	expected := `AND({in_stock} = TRUE(), OR(FIND("organic", {tags}), FIND("drainage", {tags})))`
	if formula != expected {
		t.Errorf("Expected formula %q, got %q", expected, formula)
	}
}

func TestBuildFilterFormula_SingleTagKeepsOrGroup(t *testing.T) {
	formula := BuildFilterFormula(entities.ProductQuery{Tags: []string{"organic"}})

	expected := `AND({in_stock} = TRUE(), OR(FIND("organic", {tags})))`
	if formula != expected {
		t.Errorf("Expected formula %q, got %q", expected, formula)
	}
}

func TestBuildFilterFormula_CategoryAndTags(t *testing.T) {
	formula := BuildFilterFormula(entities.ProductQuery{
		Category: "potting-soil",
		Tags:     []string{"organic", "drainage"},
	})

	if !strings.Contains(formula, `{in_stock} = TRUE()`) {
		t.Errorf("Expected mandatory in-stock clause in %q", formula)
	}
	if !strings.Contains(formula, `{category} = "potting-soil"`) {
		t.Errorf("Expected category clause in %q", formula)
	}
	if !strings.Contains(formula, `OR(FIND("organic", {tags}), FIND("drainage", {tags}))`) {
		t.Errorf("Expected tag disjunction in %q", formula)
	}
	if !strings.HasPrefix(formula, "AND(") {
		t.Errorf("Expected conjunction wrapper in %q", formula)
	}
}

func TestBuildFilterFormula_EscapesQuotes(t *testing.T) {
	formula := BuildFilterFormula(entities.ProductQuery{Category: `soil" , {in_stock} = FALSE()`})

	if strings.Contains(formula, `= "soil" ,`) {
		t.Errorf("Embedded quote terminated the string literal: %q", formula)
	}
	if !strings.Contains(formula, `\"`) {
		t.Errorf("Expected escaped quote in %q", formula)
	}
}

func TestBuildFilterFormula_EscapesBackslashes(t *testing.T) {
	formula := BuildFilterFormula(entities.ProductQuery{Tags: []string{`org\"anic`}})

	if !strings.Contains(formula, `org\\\"anic`) {
		t.Errorf("Expected backslash and quote escaping in %q", formula)
	}
}
