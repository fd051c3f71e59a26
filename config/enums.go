package config

// Specification of requested row emission behavior. Historically rows could be
// made to act as wrappers (centered, width constrained) - this is deprecated
// but still supported for old grid definitions.
// ENUM(default, wrapper)
type RowBehavior int

func (r RowBehavior) IsWrapper() bool {
	return r == RowBehaviorWrapper
}
