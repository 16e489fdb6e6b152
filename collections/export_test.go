package collections

// ResetRegistry restores the operation table to its uninstalled state.
func ResetRegistry() { resetRegistry() }
