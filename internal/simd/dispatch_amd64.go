//go:build amd64

package simd

import (
	"github.com/samber/lo"
	"golang.org/x/sys/cpu"
)

// amd64 feature bits. Only the ones a tier actually requires are given
// names; spec §4.1 is explicit that the dispatcher "does not interpret
// feature names" beyond matching bits, so these exist purely for
// detectFeatures/tierCandidates to agree on a vocabulary.
const (
	featureSSE42 Features = 1 << iota
	featureAVX2
	featureAVX512
)

func detectFeatures() Features {
	var f Features
	if cpu.X86.HasSSE42 {
		f |= featureSSE42
	}
	if cpu.X86.HasAVX2 {
		f |= featureAVX2
	}
	if cpu.X86.HasAVX512F {
		f |= featureAVX512
	}
	return f
}

// tierCandidates lists tiers strongest-first. This module has only two
// real tiers (scalar, wide-SWAR); AVX2/AVX-512 both map to the same
// word-parallel Go implementation since there is no assembly backend to
// distinguish them — see DESIGN.md for why a true per-width assembly
// tier was not built.
func tierCandidates() []tierCandidate {
	return []tierCandidate{
		lo.T2(TierWideSWAR, featureSSE42|featureAVX2),
		lo.T2(TierWideSWAR, featureSSE42),
	}
}
