//go:build !amd64 && !arm64

package simd

// Unrecognized architectures have no feature vocabulary to detect and
// always resolve to the scalar tier.
func detectFeatures() Features { return 0 }

func tierCandidates() []tierCandidate { return nil }
