package core

import (
	"runtime"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/cpu"
)

// reportAcceleration logs whether the vector kernels run with SIMD acceleration on this CPU.
// It is called once the log level has been applied.
func reportAcceleration() {
	log.Debug().Msgf("SIMD acceleration for distance kernels on %s: %t", runtime.GOARCH, Accelerated())
}

// Accelerated reports whether the CPU has the instruction sets used by the accelerated
// vector kernels (AVX2 with FMA on amd64, ASIMD on arm64). Without them the kernels
// fall back to portable Go loops, which give the same results more slowly.
func Accelerated() bool {
	switch runtime.GOARCH {
	case "amd64":
		return cpu.X86.HasAVX2 && cpu.X86.HasFMA
	case "arm64":
		return cpu.ARM64.HasASIMD
	default:
		return false
	}
}
