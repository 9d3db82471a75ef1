package fp

// Identity returns v unchanged.
func Identity[T any](v T) T {
	return v
}

// Compose returns a function applying ab, then bc.
func Compose[A, B, C any](ab func(A) B, bc func(B) C) func(A) C {
	return func(a A) C {
		return bc(ab(a))
	}
}

func Pipe[A, B any](a A, ab func(A) B) B {
	return ab(a)
}

func Pipe2[A, B, C any](a A, ab func(A) B, bc func(B) C) C {
	return bc(ab(a))
}

func Pipe3[A, B, C, D any](a A, ab func(A) B, bc func(B) C, cd func(C) D) D {
	return cd(bc(ab(a)))
}

func Pipe4[A, B, C, D, E any](a A, ab func(A) B, bc func(B) C, cd func(C) D,
	de func(D) E) E {
	return de(cd(bc(ab(a))))
}

func Pipe5[A, B, C, D, E, F any](a A, ab func(A) B, bc func(B) C, cd func(C) D,
	de func(D) E, ef func(E) F) F {
	return ef(de(cd(bc(ab(a)))))
}

func Pipe6[A, B, C, D, E, F, G any](a A, ab func(A) B, bc func(B) C, cd func(C) D,
	de func(D) E, ef func(E) F, fg func(F) G) G {
	return fg(ef(de(cd(bc(ab(a))))))
}

func Pipe7[A, B, C, D, E, F, G, H any](a A, ab func(A) B, bc func(B) C, cd func(C) D,
	de func(D) E, ef func(E) F, fg func(F) G, gh func(G) H) H {
	return gh(fg(ef(de(cd(bc(ab(a)))))))
}

func Pipe8[A, B, C, D, E, F, G, H, I any](a A, ab func(A) B, bc func(B) C, cd func(C) D,
	de func(D) E, ef func(E) F, fg func(F) G, gh func(G) H, hi func(H) I) I {
	return hi(gh(fg(ef(de(cd(bc(ab(a))))))))
}

func Pipe9[A, B, C, D, E, F, G, H, I, J any](a A, ab func(A) B, bc func(B) C, cd func(C) D,
	de func(D) E, ef func(E) F, fg func(F) G, gh func(G) H, hi func(H) I, ij func(I) J) J {
	return ij(hi(gh(fg(ef(de(cd(bc(ab(a)))))))))
}

// PipeAll folds v through fns in order. With no stages it returns v.
func PipeAll[T any](v T, fns ...func(T) T) T {
	res := v
	for _, fn := range fns {
		res = fn(res)
	}
	return res
}
