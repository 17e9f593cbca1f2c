package sanitizer

// Func is a single string clean-up step.
type Func func(string) string

// Apply runs s through fns in order.
func Apply(s string, fns ...Func) string {
	for _, fn := range fns {
		s = fn(s)
	}
	return s
}

// Compose chains fns into one reusable Func.
func Compose(fns ...Func) Func {
	return func(s string) string { return Apply(s, fns...) }
}
