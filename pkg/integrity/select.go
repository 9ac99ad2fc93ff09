package integrity

// Select filters a catalog by names and kinds, keeping catalog order.
//
// A name matches a check by its full Name or by its Base, so "table_exists"
// selects every table_exists[...] instance. Empty only means all checks.
// Names in only or skip that match nothing are reported as an error, as
// they are most likely typos.
func Select(
	checks []Check,
	only, skip, kinds []string,
) ([]Check, error) {
	for _, name := range append(append([]string{}, only...), skip...) {
		if !matchesAny(checks, name) {
			return nil, UnknownCheckError(name)
		}
	}

	kindSet := make(map[Kind]struct{})
	for _, v := range kinds {
		k, err := NewKind(v)
		if err != nil {
			return nil, err
		}
		kindSet[k] = struct{}{}
	}

	var res []Check
	for _, chk := range checks {
		if len(only) > 0 && !matchesName(chk, only) {
			continue
		}
		if matchesName(chk, skip) {
			continue
		}
		if len(kindSet) > 0 {
			if _, ok := kindSet[chk.Kind]; !ok {
				continue
			}
		}
		res = append(res, chk)
	}
	return res, nil
}

func matchesName(chk Check, names []string) bool {
	for _, v := range names {
		if v == chk.Name || v == chk.Base {
			return true
		}
	}
	return false
}

func matchesAny(checks []Check, name string) bool {
	for _, chk := range checks {
		if name == chk.Name || name == chk.Base {
			return true
		}
	}
	return false
}
