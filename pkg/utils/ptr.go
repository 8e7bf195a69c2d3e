package utils

func SafeDeref[T any](ptr *T) T {
	if ptr == nil {
		var zero T
		return zero
	}
	return *ptr
}

func ToPtr[T any](v T) *T {
	return &v
}

// Patch копирует значение из src в dst, если оно передано.
// Возвращает true, если поле изменилось.
func Patch[T comparable](dst *T, src *T) bool {
	if src == nil || *dst == *src {
		return false
	}
	*dst = *src
	return true
}

// PatchTime - то же для необязательных времён.
func PatchTime[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}
