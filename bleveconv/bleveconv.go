// Package bleveconv translates built query bodies into bleve query objects,
// so the same wire document a remote engine would receive can also drive a
// locally embedded bleve index. It only translates; it never opens an index
// or executes a search.
package bleveconv

import (
	"errors"
	"fmt"

	bquery "github.com/blevesearch/bleve/v2/search/query"
	"go.uber.org/zap"

	"github.com/asaidimu/go-esquery/core/query"
	"github.com/asaidimu/go-esquery/utils"
)

// ErrUnsupportedKind is returned when a query kind has no bleve equivalent
// (scoring compounds, scripts, geo, ...).
var ErrUnsupportedKind = errors.New("query kind has no bleve equivalent")

// Translator converts query bodies to bleve queries. A nil logger is
// replaced with a no-op logger.
type Translator struct {
	logger *zap.Logger
}

// New creates a Translator.
func New(logger *zap.Logger) *Translator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Translator{logger: logger}
}

// Translate converts a built query into a bleve query.
func (t *Translator) Translate(q query.Query) (bquery.Query, error) {
	if q == nil {
		return nil, fmt.Errorf("cannot translate nil query")
	}
	return t.translateBody(q.Map())
}

// translateBody dispatches on the body's top-level kind key. Embedded
// sub-query snapshots recurse through the same path.
func (t *Translator) translateBody(body query.Body) (bquery.Query, error) {
	if len(body) != 1 {
		return nil, fmt.Errorf("expected a single-kind body, got %d keys", len(body))
	}
	kind := firstKey(body)
	nested, ok := body[kind].(query.Body)
	if !ok {
		if m, isMap := body[kind].(map[string]any); isMap {
			nested = query.Body(m)
		} else {
			return nil, fmt.Errorf("malformed %q body", kind)
		}
	}

	switch kind {
	case "term":
		return t.singleField(nested, "value", func(field, text string) bquery.FieldableQuery {
			q := bquery.NewTermQuery(text)
			q.SetField(field)
			return q
		})
	case "match":
		return t.singleField(nested, "query", func(field, text string) bquery.FieldableQuery {
			q := bquery.NewMatchQuery(text)
			q.SetField(field)
			return q
		})
	case "match_phrase":
		return t.singleField(nested, "query", func(field, text string) bquery.FieldableQuery {
			q := bquery.NewMatchPhraseQuery(text)
			q.SetField(field)
			return q
		})
	case "prefix":
		return t.singleField(nested, "value", func(field, text string) bquery.FieldableQuery {
			q := bquery.NewPrefixQuery(text)
			q.SetField(field)
			return q
		})
	case "wildcard":
		return t.singleField(nested, "value", func(field, text string) bquery.FieldableQuery {
			q := bquery.NewWildcardQuery(text)
			q.SetField(field)
			return q
		})
	case "regexp":
		return t.singleField(nested, "value", func(field, text string) bquery.FieldableQuery {
			q := bquery.NewRegexpQuery(text)
			q.SetField(field)
			return q
		})
	case "fuzzy":
		return t.singleField(nested, "value", func(field, text string) bquery.FieldableQuery {
			q := bquery.NewFuzzyQuery(text)
			q.SetField(field)
			return q
		})
	case "terms":
		return t.translateTerms(nested)
	case "range":
		return t.translateRange(nested)
	case "bool":
		return t.translateBool(nested)
	case "ids":
		return t.translateIDs(nested)
	case "query_string":
		expr, _ := nested["query"].(string)
		q := bquery.NewQueryStringQuery(expr)
		return q, nil
	case "match_all":
		q := bquery.NewMatchAllQuery()
		if boost, ok := utils.ToFloat64(nested["boost"]); ok {
			q.SetBoost(boost)
		}
		return q, nil
	case "match_none":
		return bquery.NewMatchNoneQuery(), nil
	default:
		t.logger.Debug("unsupported query kind for bleve", zap.String("kind", kind))
		return nil, fmt.Errorf("%q: %w", kind, ErrUnsupportedKind)
	}
}

// singleField handles the single-field variants, tolerating both the scalar
// shorthand and the expanded object form and applying a boost when present.
func (t *Translator) singleField(nested query.Body, valueKey string, build func(field, text string) bquery.FieldableQuery) (bquery.Query, error) {
	field := firstKey(nested)
	raw := nested[field]

	var (
		text  string
		boost *float64
	)
	if params, ok := asBody(raw); ok {
		text = fmt.Sprintf("%v", params[valueKey])
		if b, ok := utils.ToFloat64(params["boost"]); ok {
			boost = &b
		}
	} else {
		text = fmt.Sprintf("%v", raw)
	}

	q := build(field, text)
	if boost != nil {
		if bq, ok := q.(bquery.BoostableQuery); ok {
			bq.SetBoost(*boost)
		}
	}
	return q, nil
}

func (t *Translator) translateTerms(nested query.Body) (bquery.Query, error) {
	var field string
	var values []any
	for k, v := range nested {
		if list, ok := v.([]any); ok {
			field = k
			values = list
			break
		}
	}
	if field == "" {
		return nil, fmt.Errorf("terms body has no value list")
	}

	out := bquery.NewBooleanQuery(nil, nil, nil)
	for _, v := range values {
		tq := bquery.NewTermQuery(fmt.Sprintf("%v", v))
		tq.SetField(field)
		out.AddShould(tq)
	}
	out.SetMinShould(1)
	if boost, ok := utils.ToFloat64(nested["boost"]); ok {
		out.SetBoost(boost)
	}
	return out, nil
}

func (t *Translator) translateRange(nested query.Body) (bquery.Query, error) {
	field := firstKey(nested)
	params, ok := asBody(nested[field])
	if !ok {
		return nil, fmt.Errorf("malformed range body for field %q", field)
	}

	var lo, hi *float64
	var loInc, hiInc bool
	if v, ok := utils.ToFloat64(params["gte"]); ok {
		lo, loInc = &v, true
	} else if v, ok := utils.ToFloat64(params["gt"]); ok {
		lo, loInc = &v, false
	}
	if v, ok := utils.ToFloat64(params["lte"]); ok {
		hi, hiInc = &v, true
	} else if v, ok := utils.ToFloat64(params["lt"]); ok {
		hi, hiInc = &v, false
	}
	if lo == nil && hi == nil {
		return nil, fmt.Errorf("range on %q has no numeric bounds: %w", field, ErrUnsupportedKind)
	}

	q := bquery.NewNumericRangeInclusiveQuery(lo, hi, &loInc, &hiInc)
	q.SetField(field)
	if boost, ok := utils.ToFloat64(params["boost"]); ok {
		q.SetBoost(boost)
	}
	return q, nil
}

// translateBool maps bool clause slots onto a bleve boolean query. Filter
// clauses fold into must: bleve has no non-scoring slot.
func (t *Translator) translateBool(nested query.Body) (bquery.Query, error) {
	out := bquery.NewBooleanQuery(nil, nil, nil)

	add := func(slot string, sink func(...bquery.Query)) error {
		list, _ := nested[slot].([]any)
		for _, sub := range list {
			subBody, ok := asBody(sub)
			if !ok {
				return fmt.Errorf("malformed %s clause", slot)
			}
			q, err := t.translateBody(subBody)
			if err != nil {
				return err
			}
			sink(q)
		}
		return nil
	}

	if err := add("must", out.AddMust); err != nil {
		return nil, err
	}
	if err := add("filter", out.AddMust); err != nil {
		return nil, err
	}
	if err := add("should", out.AddShould); err != nil {
		return nil, err
	}
	if err := add("must_not", out.AddMustNot); err != nil {
		return nil, err
	}

	if m, ok := utils.ToFloat64(nested["minimum_should_match"]); ok {
		out.SetMinShould(m)
	}
	if boost, ok := utils.ToFloat64(nested["boost"]); ok {
		out.SetBoost(boost)
	}
	return out, nil
}

func (t *Translator) translateIDs(nested query.Body) (bquery.Query, error) {
	list, _ := nested["values"].([]any)
	ids := make([]string, 0, len(list))
	for _, v := range list {
		ids = append(ids, fmt.Sprintf("%v", v))
	}
	q := bquery.NewDocIDQuery(ids)
	if boost, ok := utils.ToFloat64(nested["boost"]); ok {
		q.SetBoost(boost)
	}
	return q, nil
}

func firstKey(b query.Body) string {
	for k := range b {
		return k
	}
	return ""
}

func asBody(v any) (query.Body, bool) {
	switch t := v.(type) {
	case query.Body:
		return t, true
	case map[string]any:
		return query.Body(t), true
	default:
		return nil, false
	}
}
