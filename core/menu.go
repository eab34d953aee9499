package core

// MenuRow identifies a row of the picker overlay
type MenuRow int32

const (
	MenuRowShape MenuRow = iota
	MenuRowSize
	MenuRowColor
	MenuRowGravity
	MenuRowCount
)

// Next cycles forward through the menu rows
func (r MenuRow) Next() MenuRow {
	return (r + 1) % MenuRowCount
}

// Prev cycles backward through the menu rows
func (r MenuRow) Prev() MenuRow {
	return (r + MenuRowCount - 1) % MenuRowCount
}
