package query

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// knownMethods is the closed set of method names the source generator can
// replay. Records carrying any other name (e.g. from a future version's
// envelope) are rendered with a placeholder marker rather than guessed at.
var knownMethods = map[string]struct{}{
	"Term": {}, "Terms": {}, "Exists": {}, "Prefix": {}, "Wildcard": {},
	"Regexp": {}, "Fuzzy": {}, "IDs": {}, "Match": {}, "MatchPhrase": {},
	"MatchPhrasePrefix": {}, "MultiMatch": {}, "QueryString": {},
	"SimpleQueryString": {}, "Range": {}, "Bool": {}, "Boosting": {},
	"ConstantScore": {}, "DisMax": {}, "FunctionScore": {}, "ScriptScore": {},
	"Nested": {}, "MatchAll": {}, "MatchNone": {}, "Script": {},
	"GeoDistance": {}, "MoreLikeThis": {}, "Raw": {},
	"Boost": {}, "CaseInsensitive": {}, "Add": {}, "Rewrite": {},
	"Flags": {}, "MaxDeterminizedStates": {}, "Fuzziness": {},
	"PrefixLength": {}, "MaxExpansions": {}, "Transpositions": {},
	"Operator": {}, "Analyzer": {}, "MinimumShouldMatch": {},
	"ZeroTermsQuery": {}, "Lenient": {}, "Slop": {}, "Type": {},
	"TieBreaker": {}, "DefaultField": {}, "DefaultOperator": {},
	"Fields": {}, "AnalyzeWildcard": {}, "AllowLeadingWildcard": {},
	"Gte": {}, "Gt": {}, "Lte": {}, "Lt": {}, "Between": {}, "Format": {},
	"TimeZone": {}, "Relation": {}, "Must": {}, "Should": {}, "Filter": {},
	"MustNot": {}, "NegativeBoost": {}, "AddFunction": {}, "BoostMode": {},
	"ScoreMode": {}, "MaxBoost": {}, "MinScore": {}, "Params": {},
	"IgnoreUnmapped": {}, "Lang": {},
	"DistanceType": {}, "ValidationMethod": {}, "MinTermFreq": {},
	"MinDocFreq": {}, "MaxQueryTerms": {},
}

// renderSource replays an operation log into a chained builder-call string.
// The result is a debugging aid: equivalent to how the query was built, but
// not guaranteed parseable in every edge case.
func renderSource(ops []OperationRecord) string {
	var sb strings.Builder
	for i, op := range ops {
		name := op.Method
		if _, ok := knownMethods[name]; !ok {
			name = fmt.Sprintf("/* %s */", op.Method)
		}
		if i > 0 {
			sb.WriteString(".")
		}
		sb.WriteString(name)
		sb.WriteString("(")
		for j, a := range op.Args {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(renderArg(a))
		}
		sb.WriteString(")")
	}
	return sb.String()
}

func renderArg(a Argument) string {
	if a.Query != nil {
		return "Raw(" + compactJSON(a.Query.Snapshot) + ")"
	}
	switch v := a.Value.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(v)
	case bool:
		return strconv.FormatBool(v)
	case Body, map[string]any, []any:
		return compactJSON(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func compactJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
