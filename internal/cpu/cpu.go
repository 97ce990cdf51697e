// Package cpu reports the CPU capabilities of the current process. The
// benchmark tooling uses it to label results with the platform they were
// measured on.
package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features describes the CPU capabilities relevant to numeric throughput.
type Features struct {
	HasSSE2      bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// String returns a short summary such as "amd64 sse2 avx2".
func (f Features) String() string {
	s := f.Architecture

	if f.HasSSE2 {
		s += " sse2"
	}

	if f.HasAVX2 {
		s += " avx2"
	}

	if f.HasAVX512 {
		s += " avx512"
	}

	if f.HasNEON {
		s += " neon"
	}

	return s
}
