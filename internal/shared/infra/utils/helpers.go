package utils

// Ternary devuelve ifTrue si condition se cumple y ifFalse en otro caso.
func Ternary[T any](condition bool, ifTrue, ifFalse T) T {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// ValueOr desreferencia p, o devuelve fallback si p es nil.
// Sirve para campos opcionales del JSON con valor por defecto.
func ValueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
