package selector

// And computes the conjunction of the given selectors, normalizing,
// flattening nested And nodes, and short-circuiting to Reject as soon
// as the combination becomes unsatisfiable.
func And(selectors ...Selector) Selector {
	flat := make([]Selector, 0, len(selectors))
	for _, s := range selectors {
		flat = append(flat, flattenAnd(s)...)
	}

	var typeNames []TypeName
	var scaleRanges []ScaleRange
	var ids []ID
	var others []Selector

	for _, s := range flat {
		switch v := s.(type) {
		case rejectType:
			return Reject
		case acceptType:
			// identity, drop
		case TypeName:
			typeNames = append(typeNames, v)
		case ScaleRange:
			scaleRanges = append(scaleRanges, v)
		case ID:
			ids = append(ids, v)
		default:
			others = append(others, s)
		}
	}

	result := make([]Selector, 0, len(others)+3)

	if tn, ok, reject := combineTypeNames(typeNames); reject {
		return Reject
	} else if ok {
		result = append(result, tn)
	}

	if sr, ok, reject := combineScaleRanges(scaleRanges); reject {
		return Reject
	} else if ok {
		result = append(result, sr)
	}

	if id, ok, reject := combineIDs(ids); reject {
		return Reject
	} else if ok {
		result = append(result, id)
	}

	result = append(result, others...)

	switch len(result) {
	case 0:
		return Accept
	case 1:
		return result[0]
	default:
		return AndNode{Children: result}
	}
}

func flattenAnd(s Selector) []Selector {
	if a, ok := s.(AndNode); ok {
		out := make([]Selector, 0, len(a.Children))
		for _, c := range a.Children {
			out = append(out, flattenAnd(c)...)
		}
		return out
	}
	return []Selector{s}
}

// combineTypeNames folds a list of TypeName atoms, returning the
// merged TypeName (ok=true) unless two distinct non-default names
// conflict, in which case reject=true. An empty list yields ok=false
// (no constraint to add).
func combineTypeNames(tns []TypeName) (TypeName, bool, bool) {
	if len(tns) == 0 {
		return TypeName{}, false, false
	}
	acc := DefaultTypeName
	seen := false
	for _, tn := range tns {
		if !seen {
			acc = tn
			seen = true
			continue
		}
		if acc.IsDefault() {
			acc = tn
		} else if !tn.IsDefault() && tn.Name != acc.Name {
			return TypeName{}, false, true
		}
	}
	if acc.IsDefault() {
		// all default: no real constraint to add back to the result.
		return TypeName{}, false, false
	}
	return acc, true, false
}

func combineScaleRanges(ranges []ScaleRange) (ScaleRange, bool, bool) {
	if len(ranges) == 0 {
		return ScaleRange{}, false, false
	}
	acc := ranges[0]
	for _, r := range ranges[1:] {
		next, ok := acc.Intersect(r)
		if !ok {
			return ScaleRange{}, false, true
		}
		acc = next
	}
	return acc, true, false
}

func combineIDs(ids []ID) (ID, bool, bool) {
	if len(ids) == 0 {
		return ID{}, false, false
	}
	acc := ids[0]
	for _, id := range ids[1:] {
		merged := make(map[string]struct{})
		for k := range acc.IDs {
			if _, ok := id.IDs[k]; ok {
				merged[k] = struct{}{}
			}
		}
		if len(merged) == 0 {
			return ID{}, false, true
		}
		acc = ID{IDs: merged}
	}
	return acc, true, false
}

// Or computes the disjunction of the given selectors, flattening
// nested Or nodes and short-circuiting to Accept as soon as one
// operand already matches everything.
func Or(selectors ...Selector) Selector {
	flat := make([]Selector, 0, len(selectors))
	for _, s := range selectors {
		flat = append(flat, flattenOr(s)...)
	}

	result := make([]Selector, 0, len(flat))
	for _, s := range flat {
		switch s.(type) {
		case acceptType:
			return Accept
		case rejectType:
			// identity, drop
		default:
			result = append(result, s)
		}
	}

	switch len(result) {
	case 0:
		return Reject
	case 1:
		return result[0]
	default:
		return OrNode{Children: result}
	}
}

func flattenOr(s Selector) []Selector {
	if o, ok := s.(OrNode); ok {
		out := make([]Selector, 0, len(o.Children))
		for _, c := range o.Children {
			out = append(out, flattenOr(c)...)
		}
		return out
	}
	return []Selector{s}
}

// Negate negates a selector, collapsing double negation and the two
// identities. Named Negate rather than Not to avoid colliding with
// the Not selector node type.
func Negate(s Selector) Selector {
	switch v := s.(type) {
	case acceptType:
		return Reject
	case rejectType:
		return Accept
	case Not:
		return v.Operand
	default:
		return Not{Operand: s}
	}
}

// Disjoint reports whether a and b can never match the same feature
// at the same scale.
func Disjoint(a, b Selector) bool {
	return IsReject(And(a, b))
}
