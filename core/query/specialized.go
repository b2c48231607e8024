package query

// MatchAllQuery matches every document. Wire form: {"match_all": {}}.
type MatchAllQuery struct{ base }

// MatchAll creates a match_all query.
func MatchAll() MatchAllQuery {
	body := Body{"match_all": Body{}}
	return MatchAllQuery{newBase("match_all", body, record("MatchAll"))}
}

// Boost sets the uniform score given to every document.
func (q MatchAllQuery) Boost(boost float64) MatchAllQuery {
	return MatchAllQuery{q.setNested("boost", boost, record("Boost", boost))}
}

// MatchNoneQuery matches no documents. Wire form: {"match_none": {}}.
type MatchNoneQuery struct{ base }

// MatchNone creates a match_none query.
func MatchNone() MatchNoneQuery {
	body := Body{"match_none": Body{}}
	return MatchNoneQuery{newBase("match_none", body, record("MatchNone"))}
}

// ScriptQuery filters documents with a script predicate.
// Wire form: {"script": {"script": {"source": ...}}}.
type ScriptQuery struct{ base }

// Script creates a script query from a script source.
func Script(source string) ScriptQuery {
	body := Body{"script": Body{"script": Body{"source": source}}}
	return ScriptQuery{newBase("script", body, record("Script", source))}
}

func (q ScriptQuery) setScript(key string, v any, op OperationRecord) ScriptQuery {
	n := q.nested()
	script, _ := asBody(n["script"])
	if script == nil {
		script = Body{}
	}
	script[key] = cloneValue(v)
	n["script"] = script
	return ScriptQuery{q.withNested(n, op)}
}

// Params sets the script parameters.
func (q ScriptQuery) Params(params Body) ScriptQuery {
	return q.setScript("params", params, record("Params", params))
}

// Lang sets the script language.
func (q ScriptQuery) Lang(lang string) ScriptQuery {
	return q.setScript("lang", lang, record("Lang", lang))
}

// GeoDistanceQuery matches documents within a distance of a point.
// Wire form: {"geo_distance": {"distance": d, field: {"lat": ..., "lon": ...}}}.
type GeoDistanceQuery struct{ base }

// GeoDistance creates a geo_distance query around a lat/lon point.
func GeoDistance(field string, lat, lon float64, distance string) GeoDistanceQuery {
	body := Body{"geo_distance": Body{
		"distance": distance,
		field:      Body{"lat": lat, "lon": lon},
	}}
	return GeoDistanceQuery{newBase("geo_distance", body, record("GeoDistance", field, lat, lon, distance))}
}

// DistanceType sets the distance computation (arc or plane).
func (q GeoDistanceQuery) DistanceType(mode string) GeoDistanceQuery {
	return GeoDistanceQuery{q.setNested("distance_type", mode, record("DistanceType", mode))}
}

// ValidationMethod sets coordinate validation (STRICT, COERCE,
// IGNORE_MALFORMED).
func (q GeoDistanceQuery) ValidationMethod(mode string) GeoDistanceQuery {
	return GeoDistanceQuery{q.setNested("validation_method", mode, record("ValidationMethod", mode))}
}

// MoreLikeThisQuery finds documents similar to the given texts.
// Wire form: {"more_like_this": {"fields": [...], "like": [...]}}.
type MoreLikeThisQuery struct{ base }

// MoreLikeThis creates a more_like_this query.
func MoreLikeThis(fields []string, like ...any) MoreLikeThisQuery {
	likes := make([]any, len(like))
	for i, l := range like {
		likes[i] = cloneValue(l)
	}
	body := Body{"more_like_this": Body{
		"fields": toAnySlice(fields),
		"like":   likes,
	}}
	args := append([]any{toAnySlice(fields)}, like...)
	return MoreLikeThisQuery{newBase("more_like_this", body, record("MoreLikeThis", args...))}
}

// MinTermFreq sets the minimum term frequency in the source document.
func (q MoreLikeThisQuery) MinTermFreq(n int) MoreLikeThisQuery {
	return MoreLikeThisQuery{q.setNested("min_term_freq", n, record("MinTermFreq", n))}
}

// MinDocFreq sets the minimum number of documents a term must appear in.
func (q MoreLikeThisQuery) MinDocFreq(n int) MoreLikeThisQuery {
	return MoreLikeThisQuery{q.setNested("min_doc_freq", n, record("MinDocFreq", n))}
}

// MaxQueryTerms caps the number of terms selected.
func (q MoreLikeThisQuery) MaxQueryTerms(n int) MoreLikeThisQuery {
	return MoreLikeThisQuery{q.setNested("max_query_terms", n, record("MaxQueryTerms", n))}
}

// Boost sets the relevance boost.
func (q MoreLikeThisQuery) Boost(boost float64) MoreLikeThisQuery {
	return MoreLikeThisQuery{q.setNested("boost", boost, record("Boost", boost))}
}

// RawQuery wraps an arbitrary body under a caller-supplied kind. It carries
// no variant-specific mutators and exists for bodies restored from an
// envelope or assembled outside the builder.
type RawQuery struct{ base }

// Raw creates a query from a ready-made body. When the body has exactly one
// top-level key, that key is taken as the kind; otherwise the kind is "raw".
func Raw(body Body) RawQuery {
	kind := "raw"
	if len(body) == 1 {
		kind = singleKey(body)
	}
	return RawQuery{newBase(kind, body, record("Raw", body))}
}

// With returns a new instance carrying the given body, operation log copied
// verbatim. This is the clone-with primitive exposed for callers extending
// the builder with bodies of their own.
func (q RawQuery) With(body Body) RawQuery {
	return RawQuery{q.cloneWith(body, nil)}
}

// FromEnvelope restores a query from its serialized-with-metadata envelope.
// The restored instance reproduces the envelope's body and metadata; its
// serialized form is deeply equal to the source query's.
func FromEnvelope(e Envelope) RawQuery {
	b := base{
		kind: e.Type,
		body: e.Body.Clone(),
		meta: Metadata{
			ID:         e.Metadata.ID,
			Created:    e.Metadata.Created,
			Provenance: e.Metadata.Provenance,
			Operations: append([]OperationRecord(nil), e.Metadata.Operations...),
		},
	}
	if b.meta.ID == "" {
		b.meta = newMetadata()
	}
	return RawQuery{b}
}
