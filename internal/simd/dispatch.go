package simd

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/samber/lo"
)

// Features is the opaque 32-bit CPU-feature bitmask spec §4.1 describes:
// "the core does not interpret feature names, only the flags it requires
// for each tier." Bit meanings are assigned per architecture in
// dispatch_amd64.go / dispatch_arm64.go / dispatch_generic.go.
type Features uint32

// table holds the three dispatched function references (the always-scalar
// float parser is the plain function ParseFloat, outside the table),
// selected once at first use and never changed for
// the process lifetime (spec §4.1, §5: "safe under concurrent first use;
// publish the filled table only after all slots are set").
type table struct {
	tier           Tier
	scanString     func([]byte) int
	findStructural func([]byte) (uint64, int)
	parseIntLane   func([]byte, int) (int64, int)
}

// tbl publishes the resolved dispatch table. It is read on every
// ScanString/FindStructural/ParseIntLane call, so the lazy-init path
// below double-checks under initMu rather than paying a mutex on every
// call once the table is built (spec §4.1, §5: "safe under concurrent
// first use; publish the filled table only after all slots are set").
var (
	tbl    atomic.Pointer[table]
	initMu sync.Mutex
)

// tierCandidate pairs a tier with the feature bits it requires, mirroring
// the (feature, handler) pairs an architecture-specific parser in the
// code-generation pack keeps per instruction form.
type tierCandidate = lo.Tuple2[Tier, Features]

func ensureInit() *table {
	if t := tbl.Load(); t != nil {
		return t
	}
	initMu.Lock()
	defer initMu.Unlock()
	if t := tbl.Load(); t != nil {
		return t
	}
	t := buildTable(detectFeatures())
	tbl.Store(t)
	return t
}

// buildTable picks the highest tier whose required features are all
// present in detected, walking candidates from strongest to weakest
// (spec §4.1: "the highest tier whose required features are all present
// wins").
func buildTable(detected Features) *table {
	for _, c := range tierCandidates() {
		tier, required := c.A, c.B
		if detected&required == required {
			return newTableForTier(tier)
		}
	}
	return newTableForTier(TierScalar)
}

func newTableForTier(tier Tier) *table {
	if tier == TierWideSWAR {
		return &table{
			tier:           TierWideSWAR,
			scanString:     scanStringSWAR,
			findStructural: findStructuralSWAR,
			parseIntLane:   ParseIntLaneScalar,
		}
	}
	return &table{
		tier:           TierScalar,
		scanString:     ScanStringScalar,
		findStructural: FindStructuralScalar,
		parseIntLane:   ParseIntLaneScalar,
	}
}

// ActiveTier reports which tier the dispatch table resolved to. Useful
// for diagnostics (the CLI's `bench` subcommand prints it).
func ActiveTier() Tier {
	return ensureInit().tier
}

// ResetForTest forces re-initialization with an explicit feature mask,
// bypassing runtime CPU detection. It exists only for tests that need to
// exercise every tier's code path deterministically regardless of the
// host machine. Unlike the lazy path, it publishes unconditionally, so
// it's safe to call both before and after the table has already been
// built by a prior dispatched call.
func ResetForTest(detected Features) {
	tbl.Store(buildTable(detected))
}

// ScanString is the dispatched entry point for spec's scan_string
// primitive.
func ScanString(b []byte) int {
	return ensureInit().scanString(b)
}

// FindStructural is the dispatched entry point for spec's
// find_structural primitive. count is the number of bytes examined
// (spec §4.3: "returns the number of bytes examined"); structural is the
// population count of mask, i.e. how many of those bytes were structural.
func FindStructural(b []byte) (mask uint64, count int, structural int) {
	mask, count = ensureInit().findStructural(b)
	return mask, count, popcount(mask)
}

// ParseIntLane is the dispatched entry point for spec's parse_int_lane
// primitive.
func ParseIntLane(b []byte, maxLen int) (value int64, consumed int) {
	return ensureInit().parseIntLane(b, maxLen)
}

// ParseFloat parses a JSON-syntax float lexeme. It is always scalar (spec
// §4.1: "plus a fourth parse_float, always scalar") — there is no
// word-parallel tier for floating point conversion.
func ParseFloat(lexeme []byte) (float64, error) {
	return strconv.ParseFloat(string(lexeme), 64)
}
