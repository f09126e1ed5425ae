package colors

// Default returns the default color scheme (near-black terminal)
func Default() ColorScheme {
	return New("#0c0c0c", "#cccccc")
}
