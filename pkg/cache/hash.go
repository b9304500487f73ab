package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
)

// hashKey returns "prefix:sha256(json(parts))".
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

// Hash returns the hex SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashGraph returns the digest of the canonical JSON encoding of g. Derived
// flags (bridge, critical) are cleared first so an annotated graph hashes the
// same as its source.
func HashGraph(g graph.Graph) (string, error) {
	c := g.Clone()
	for i := range c.Nodes {
		c.Nodes[i].Critical = false
	}
	for i := range c.Edges {
		c.Edges[i].Bridge = false
		c.Edges[i].Critical = false
		c.Edges[i].Kind = graph.EdgeKindNone
	}
	data, err := graph.Marshal(c)
	if err != nil {
		return "", err
	}
	return Hash(data), nil
}
