package fieldset

// InsertOptions controls where Insert places new fields.
//
// With Block nil a new fieldset named BlockName is inserted at Position among
// the fieldsets (-1 appends). With Block set the fields are added as rows of
// that fieldset at Position; negative positions count from the end, so -1
// appends after the last row.
type InsertOptions struct {
	Block       *int
	Position    int
	BlockName   string
	Description string
	Classes     []string
}

// Block is a helper for InsertOptions.Block.
func Block(index int) *int {
	return &index
}

// Insert returns a copy of sets with fields inserted. The input is never
// modified. An out-of-range block index leaves the fieldsets unchanged.
func Insert(sets []Fieldset, fields []string, opts InsertOptions) []Fieldset {
	out := make([]Fieldset, len(sets))
	for i, set := range sets {
		out[i] = set.Clone()
	}
	rows := make([][]string, len(fields))
	for i, name := range fields {
		rows[i] = []string{name}
	}

	if opts.Block == nil {
		classes := append([]string(nil), opts.Classes...)
		if len(classes) == 0 && len(sets) > 0 {
			classes = []string{ClassCollapse}
		}
		block := Fieldset{
			Name:        opts.BlockName,
			Description: opts.Description,
			Classes:     classes,
			Rows:        rows,
		}
		pos := clampPosition(opts.Position, len(out))
		result := make([]Fieldset, 0, len(out)+1)
		result = append(result, out[:pos]...)
		result = append(result, block)
		result = append(result, out[pos:]...)
		return result
	}

	idx := *opts.Block
	if idx < 0 {
		idx += len(out)
	}
	if idx < 0 || idx >= len(out) {
		return out
	}
	target := out[idx]
	pos := clampPosition(opts.Position, len(target.Rows))
	merged := make([][]string, 0, len(target.Rows)+len(rows))
	merged = append(merged, target.Rows[:pos]...)
	merged = append(merged, rows...)
	merged = append(merged, target.Rows[pos:]...)
	target.Rows = merged
	out[idx] = target
	return out
}

// clampPosition converts a possibly negative insert position into an index in
// [0, n]. -1 maps to n (append), -2 to n-1, and so on.
func clampPosition(position, n int) int {
	if position < 0 {
		position = n + position + 1
	}
	if position < 0 {
		return 0
	}
	if position > n {
		return n
	}
	return position
}
