//go:build arm64

package simd

import (
	"github.com/samber/lo"
	"golang.org/x/sys/cpu"
)

const (
	featureNEON Features = 1 << iota
	featureSVE
	featureSVE2
)

func detectFeatures() Features {
	// NEON is mandatory on arm64, so it is always reported present;
	// SVE/SVE2 are optional extensions cpu.ARM64 surfaces directly.
	f := featureNEON
	if cpu.ARM64.HasSVE {
		f |= featureSVE
	}
	if cpu.ARM64.HasSVE2 {
		f |= featureSVE2
	}
	return f
}

func tierCandidates() []tierCandidate {
	return []tierCandidate{
		lo.T2(TierWideSWAR, featureSVE2),
		lo.T2(TierWideSWAR, featureSVE),
		lo.T2(TierWideSWAR, featureNEON),
	}
}
