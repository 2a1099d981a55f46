package exposure

// reduction is the outcome of folding one incoming value over the existing
// value of the same key.
type reduction struct {
	// value is the new value for the key.
	value any
	// displaced is set when a single predicate lost against a map-form one.
	displaced    any
	hasDisplaced bool
}

// reduce folds incoming over existing for key. existing is only meaningful
// when present is true.
func reduce(key Key, existing any, present bool, incoming any) reduction {
	if !present || !key.IsPredicate() {
		return reduction{value: incoming}
	}

	prev, prevIsMap := AsConditions(existing)
	next, nextIsMap := AsConditions(incoming)

	switch {
	case prevIsMap && nextIsMap:
		return reduction{value: prev.Merge(next)}
	case nextIsMap:
		return reduction{value: incoming, displaced: existing, hasDisplaced: true}
	case prevIsMap:
		return reduction{value: existing, displaced: incoming, hasDisplaced: true}
	default:
		return reduction{value: incoming}
	}
}

// folder accumulates layers and the predicates they displace.
type folder struct {
	acc    Options
	extras map[Key][]any
	// onDisplace is called for every displaced predicate, may be nil.
	onDisplace func(key Key, value any)
}

func newFolder() *folder {
	return &folder{
		acc:    Options{},
		extras: map[Key][]any{},
	}
}

// fold merges layer into the accumulator.
func (f *folder) fold(layer Options) {
	for _, k := range layer.SortedKeys() {
		existing, present := f.acc[k]

		r := reduce(k, existing, present, layer[k])
		f.acc[k] = r.value

		if !r.hasDisplaced {
			continue
		}

		ek, _ := k.ExtrasKey()
		f.extras[ek] = append(f.extras[ek], r.displaced)

		if f.onDisplace != nil {
			f.onDisplace(k, r.displaced)
		}
	}
}

// result returns the extras overlaid with the accumulator. An extras key
// supplied explicitly by a layer wins over the collected one.
func (f *folder) result() Options {
	out := make(Options, len(f.acc)+len(f.extras))

	for k, v := range f.extras {
		out[k] = v
	}

	for k, v := range f.acc {
		out[k] = v
	}

	return out
}

// MergeLayers folds the given option layers oldest first, without validating
// them. It is the building block of Config.MergeOptions.
func MergeLayers(layers ...Options) Options {
	f := newFolder()
	for _, l := range layers {
		f.fold(l)
	}

	return f.result()
}
