package calendar

// DaysBetween returns the number of whole days strictly between two D/M/Y
// dates using the Default calendar.
func DaysBetween(a, b string) (int, error) {
	return Default.DaysBetween(a, b)
}

// DaysBetweenAll is DaysBetween for a slice of inputs, which must hold
// exactly two dates.
func (c Calendar) DaysBetweenAll(dates []string) (int, error) {
	if len(dates) != 2 {
		return 0, &UsageError{Count: len(dates)}
	}
	return c.DaysBetween(dates[0], dates[1])
}

// DaysBetween returns the number of whole days strictly between a and b,
// excluding both endpoints. The order of the arguments does not matter.
// Identical dates have no days between them and yield 0.
func (c Calendar) DaysBetween(a, b string) (int, error) {
	inputs := [2]string{a, b}

	var dates [2]Date
	var failed []string
	for i, s := range inputs {
		d, ok := c.Parse(s)
		if !ok {
			failed = append(failed, s)
			continue
		}
		dates[i] = d
	}
	if len(failed) > 0 {
		return 0, &ParseError{Inputs: failed}
	}

	var counts [2]int
	for i, d := range dates {
		n, ok := c.DayCount(d)
		if !ok {
			failed = append(failed, inputs[i])
			continue
		}
		counts[i] = n
	}
	if len(failed) > 0 {
		return 0, &ConversionError{Inputs: failed}
	}

	diff := counts[0] - counts[1]
	if diff < 0 {
		diff = -diff
	}
	return max(diff-1, 0), nil
}
