package types

// EditInfo describes which lines an edit touched. Lines from StartLine to
// OldEndLine were replaced by lines StartLine to NewEndLine.
type EditInfo struct {
	StartLine  int
	OldEndLine int
	NewEndLine int
}

// LineDelta is the change in line count caused by the edit.
func (e EditInfo) LineDelta() int {
	return e.NewEndLine - e.OldEndLine
}
