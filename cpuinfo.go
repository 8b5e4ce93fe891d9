package cachescope

import (
	"strings"
	"unsafe"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// CPUInfo is the host CPU's self-reported identity and cache geometry,
// printed alongside measured results so reported and measured numbers
// can be compared side by side.
type CPUInfo struct {
	BrandName     string   `json:"brand_name"`
	PhysicalCores int      `json:"physical_cores"`
	LogicalCores  int      `json:"logical_cores"`
	CacheLine     int      `json:"cache_line"` // reported line size in bytes
	L1D           int      `json:"l1d"`        // reported capacities in bytes, -1 when unreported
	L1I           int      `json:"l1i"`
	L2            int      `json:"l2"`
	L3            int      `json:"l3"`
	SIMD          []string `json:"simd,omitempty"`
}

// Host CPU description captured at startup
var hostCPU CPUInfo

func init() {
	hostCPU = detectHostCPU()
}

// detectHostCPU queries CPUID for identity and cache geometry
func detectHostCPU() CPUInfo {
	info := CPUInfo{
		BrandName:     cpuid.CPU.BrandName,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
		CacheLine:     cpuid.CPU.CacheLine,
		L1D:           cpuid.CPU.Cache.L1D,
		L1I:           cpuid.CPU.Cache.L1I,
		L2:            cpuid.CPU.Cache.L2,
		L3:            cpuid.CPU.Cache.L3,
	}
	if info.CacheLine <= 0 {
		// Line size unreported by CPUID; fall back to the per-arch
		// padding width the runtime assumes.
		info.CacheLine = int(unsafe.Sizeof(cpu.CacheLinePad{}))
	}

	if cpu.X86.HasSSE41 || cpu.X86.HasSSE42 {
		info.SIMD = append(info.SIMD, "SSE4")
	}
	if cpu.X86.HasAVX {
		info.SIMD = append(info.SIMD, "AVX")
	}
	if cpu.X86.HasAVX2 {
		info.SIMD = append(info.SIMD, "AVX2")
	}
	if cpu.X86.HasFMA {
		info.SIMD = append(info.SIMD, "FMA")
	}
	if cpu.X86.HasAVX512F {
		info.SIMD = append(info.SIMD, "AVX512F")
	}

	return info
}

// DetectCPU returns the host CPU description captured at startup.
func DetectCPU() CPUInfo {
	return hostCPU
}

// FeatureSummary returns a one-line description of available SIMD
// extensions.
func (c CPUInfo) FeatureSummary() string {
	if len(c.SIMD) == 0 {
		return "No SIMD extensions detected"
	}
	return "CPU features: " + strings.Join(c.SIMD, ", ")
}
