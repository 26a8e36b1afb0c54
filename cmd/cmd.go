// cmd contains helpers shared by the binaries.
package cmd

// OrPanic panics if err is not nil.
func OrPanic(err error) {
	if err != nil {
		panic(err)
	}
}

// GetOrPanic returns v, or panics if err is not nil.
func GetOrPanic[T any](v T, err error) T {
	OrPanic(err)

	return v
}
