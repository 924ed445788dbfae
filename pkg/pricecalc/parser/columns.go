package parser

import (
	"strings"

	"github.com/ukaji3/pricecalc-go/pkg/pricecalc/models"
	"golang.org/x/text/width"
)

// Canonical names used when a ceiling column has to be created.
const (
	RecyclingCeilingName   = "回采最高限价"
	NoRecyclingCeilingName = "无回采最高限价"
)

// columnRule lists the header fragments that identify a role, most specific first.
type columnRule struct {
	role       models.ColumnRole
	candidates []string
}

// columnRules are evaluated in this order. A header satisfying several
// rules is bound to every one of them; "无回采最高限价" contains
// "回采最高限价", so a no-recycling column that precedes the recycling
// column is also bound as the recycling ceiling.
var columnRules = []columnRule{
	{
		role: models.RoleBasePrice,
		candidates: []string{
			"主机厂采购价(含税)",
			"主机厂采购价（含税）",
			"主机厂采购价",
			"采购价",
		},
	},
	{
		role:       models.RoleRecyclingCeiling,
		candidates: []string{RecyclingCeilingName, "回采限价"},
	},
	{
		role:       models.RoleNoRecyclingCeiling,
		candidates: []string{NoRecyclingCeilingName, "无回采限价"},
	},
}

// ResolveColumns binds each role to the first header, in column order,
// that contains any of the role's candidate fragments.
// Unmatched roles are left empty. The bound value is the original header.
func ResolveColumns(headers []string) models.ColumnRefs {
	var refs models.ColumnRefs

	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = NormalizeHeader(h)
	}

	for _, rule := range columnRules {
		for idx, h := range normalized {
			if h != "" && containsAny(h, rule.candidates) {
				refs.Set(rule.role, headers[idx])
				break
			}
		}
	}

	return refs
}

// NormalizeHeader trims surrounding whitespace and folds full-width
// ASCII variants to their narrow form.
func NormalizeHeader(name string) string {
	return width.Fold.String(strings.TrimSpace(name))
}

// containsAny reports whether text contains any of the keywords.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, NormalizeHeader(kw)) {
			return true
		}
	}
	return false
}
