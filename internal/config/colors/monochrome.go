package colors

// Monochrome returns a black and white color scheme
func Monochrome() ColorScheme {
	return New("#000000", "#ffffff")
}

// Light returns a paper-white scheme with dark text
func Light() ColorScheme {
	return New("#ffffff", "#1f2328")
}
