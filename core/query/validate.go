package query

// ValidationWarning describes one structural issue found in a built query.
type ValidationWarning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationResult is the outcome of a structural check. Checking never
// raises: the result carries the findings instead.
type ValidationResult struct {
	Valid    bool                `json:"valid"`
	Warnings []ValidationWarning `json:"warnings,omitempty"`
}

// Warning codes for the known structural issues.
const (
	WarnBoolNoClauses = "bool_no_clauses"
	WarnRangeNoBounds = "range_no_bounds"
)

// Check inspects a built query for the known structural warnings: a bool
// compound with no clauses, and a range with no bounds. Sub-queries embedded
// inside compounds are inspected recursively.
func Check(q Query) ValidationResult {
	if q == nil {
		return ValidationResult{Valid: true}
	}
	warnings := checkBody(q.Map())
	return ValidationResult{
		Valid:    len(warnings) == 0,
		Warnings: warnings,
	}
}

func checkBody(body Body) []ValidationWarning {
	var warnings []ValidationWarning
	for kind, v := range body {
		n, ok := asBody(v)
		if !ok {
			continue
		}
		switch kind {
		case "bool":
			if boolEmpty(n) {
				warnings = append(warnings, ValidationWarning{
					Code:    WarnBoolNoClauses,
					Message: "Bool query has no clauses",
				})
			}
			for _, slot := range []string{clauseMust, clauseShould, clauseFilter, clauseMustNot} {
				list, _ := n[slot].([]any)
				for _, sub := range list {
					if subBody, ok := asBody(sub); ok {
						warnings = append(warnings, checkBody(subBody)...)
					}
				}
			}
		case "range":
			field := singleKey(n)
			params, _ := asBody(n[field])
			if !anyBoundSet(params) {
				warnings = append(warnings, ValidationWarning{
					Code:    WarnRangeNoBounds,
					Message: "Range query has no bounds",
				})
			}
		}
	}
	return warnings
}

func boolEmpty(n Body) bool {
	for _, slot := range []string{clauseMust, clauseShould, clauseFilter, clauseMustNot} {
		if list, ok := n[slot].([]any); ok && len(list) > 0 {
			return false
		}
	}
	return true
}

func anyBoundSet(params Body) bool {
	for _, k := range rangeBoundKeys {
		if _, ok := params[k]; ok {
			return true
		}
	}
	return false
}
