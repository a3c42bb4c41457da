package utils

func Clamp(value, minimum, maximum int) int {
	return min(max(value, minimum), maximum)
}
