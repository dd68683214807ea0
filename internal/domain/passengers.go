package domain

// ResizePassengerNames returns a list of exactly count names.
// Existing entries keep their indices; missing ones are empty strings, extra ones are dropped from the end.
func ResizePassengerNames(names []string, count int) []string {
	if count < 0 {
		count = 0
	}

	resized := make([]string, count)
	copy(resized, names)
	return resized
}
