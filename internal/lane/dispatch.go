package lane

import "golang.org/x/sys/cpu"

// Best returns the widest lane width the current CPU supports, matching
// the reference crate's vector::best() feature cascade (AVX-512 -> AVX2 ->
// SSE2 -> NEON -> scalar). Detection happens once per Convert call; all
// inner loops in that call use the returned width.
func Best() Width {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW:
		return Width16
	case cpu.X86.HasAVX2:
		return Width8
	case cpu.X86.HasSSE2:
		return Width4
	case cpu.ARM64.HasASIMD:
		return Width4
	default:
		return Width1
	}
}
