package tree

const (
	// ============================================================================
	// Structural Limits
	// ============================================================================
	// Presets used by DefaultLimits, RelaxedLimits and StrictLimits.

	// MaxChildrenDefault is the default fan-out allowed for a single node.
	MaxChildrenDefault = 1 << 16

	// MaxChildrenRelaxed allows very wide nodes such as flattened listings.
	MaxChildrenRelaxed = 1 << 20

	// MaxChildrenStrict is a conservative fan-out for untrusted input.
	MaxChildrenStrict = 256

	// MaxTreeDepthPractical bounds recursive decoding of structured input.
	// Depth is counted in edges from the root.
	MaxTreeDepthPractical = 512

	// MaxTreeDepthDeep allows very deep trees for special cases.
	MaxTreeDepthDeep = 1024

	// MaxTreeDepthShallow is a conservative limit for untrusted input.
	MaxTreeDepthShallow = 128

	// MaxNameLenDefault is the longest node name accepted, in characters.
	MaxNameLenDefault = 4096

	// MaxNameLenRelaxed allows long generated names.
	MaxNameLenRelaxed = 64 << 10

	// MaxNameLenStrict matches common filesystem name limits.
	MaxNameLenStrict = 255

	// MaxNodesDefault is the default total node count.
	MaxNodesDefault = 1 << 20

	// MaxNodesRelaxed allows very large trees.
	MaxNodesRelaxed = 1 << 24

	// MaxNodesStrict is a conservative node count for untrusted input.
	MaxNodesStrict = 1 << 16
)
