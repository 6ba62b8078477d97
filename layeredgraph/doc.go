// Package layeredgraph implements the backward layered dynamic-programming
// graph at the heart of the optimization kernel.
//
// Graph is an array of `legs` layers; layer k (0-indexed) has one Cell per
// fix. Cell[i] holds {PrevIndex, Distance}: Distance is the maximum sum of
// planar distances over any strictly-increasing sequence of k+2 fixes
// starting at fix i, and PrevIndex is the next turnpoint chosen one layer
// down that achieves it. A leg always connects two distinct fixes — the
// self-hop is never a candidate — which is what keeps a reconstructed
// path strictly increasing even when every leg in some region ties.
//
// Two build modes are provided: BuildUnconstrained ignores the altitude
// rule entirely; BuildStartConstrained assumes a fixed start altitude and
// penalizes bottom-layer cells whose altitude drop from that start
// exceeds the limit, so the cell remains walkable via its back-pointer
// but will not win an argmax unless no compliant alternative exists.
//
// Each layer is built with one goroutine per fix (fork-join via
// golang.org/x/sync/errgroup), joined before the next layer starts — the
// only parallelism this package performs; reconstruction and the
// top-layer scans are sequential.
package layeredgraph
