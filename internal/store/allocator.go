package store

// MaxID returns the largest id among records, or 0 for none. Rows are not
// assumed to be sorted.
func MaxID[T any](records []T, id func(T) int32) int32 {
	var highest int32
	for _, r := range records {
		if v := id(r); v > highest {
			highest = v
		}
	}
	return highest
}

// NextID returns one past the largest id in the table, or 1 when empty
func (t *Table[T]) NextID(id func(T) int32) (int32, error) {
	records, err := t.ReadAll()
	if err != nil {
		return 0, err
	}
	return MaxID(records, id) + 1, nil
}
