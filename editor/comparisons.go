package editor

// AddComparison registers a new custom comparison name.
func (e *Editor) AddComparison(name string) ([]Warning, error) {
	if err := e.r.AddComparisonName(name); err != nil {
		return nil, err
	}
	return e.fixUp(), nil
}

// RemoveComparison un-registers a custom comparison name.
func (e *Editor) RemoveComparison(name string) []Warning {
	e.r.RemoveComparisonName(name)
	return e.fixUp()
}

// RenameComparison renames a custom comparison name.
func (e *Editor) RenameComparison(oldName, newName string) ([]Warning, error) {
	if err := e.r.RenameComparisonName(oldName, newName); err != nil {
		return nil, err
	}
	return e.fixUp(), nil
}

// ReorderComparisons sets the display order of custom comparison names. It
// must be a permutation of the existing names.
func (e *Editor) ReorderComparisons(order []string) ([]Warning, error) {
	if err := e.r.ReorderComparisonNames(order); err != nil {
		return nil, err
	}
	return e.fixUp(), nil
}
