// Package utils содержит утилитарные функции общего назначения.
package utils

// Ptr возвращает указатель на копию v.
func Ptr[T any](v T) *T {
	return &v
}

// StrPtrOrNil возвращает nil для пустой строки, иначе указатель на s.
// Нужен для частичных обновлений: пустой флаг CLI значит «не менять».
func StrPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
