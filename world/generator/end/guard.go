package end

// ClosedPanicMessage is the value a debug Generator panics with when it is
// used after Close.
const ClosedPanicMessage = "end.Generator: use of generator after Close is not permitted"

// Guard runs fn and reports false if fn panicked because a debug Generator
// was used after Close. Any other panic is propagated.
func Guard(fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if msg, str := r.(string); str && msg == ClosedPanicMessage {
				ok = false
				return
			}
			panic(r)
		}
	}()
	fn()
	return true
}

// GuardValue runs fn like Guard and returns its result. The zero value is
// returned if fn panicked because a debug Generator was used after Close.
func GuardValue[T any](fn func() T) (value T, ok bool) {
	ok = Guard(func() {
		value = fn()
	})
	return
}
