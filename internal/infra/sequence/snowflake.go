// Package sequence issues order numbers.
package sequence

import (
	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/bwmarrin/snowflake"
	"github.com/pkg/errors"
)

// snowflakeGenerator hands out time-ordered 63-bit order numbers. Numbers from
// different nodes never collide, so each running instance needs its own node id.
type snowflakeGenerator struct {
	node *snowflake.Node
}

// NewOrderNumberGenerator builds a generator for the configured node.
func NewOrderNumberGenerator(cfg *config.Config) (service.OrderNumberGenerator, error) {
	var nodeID int64
	if cfg.OrderNumber != nil {
		nodeID = cfg.OrderNumber.Node
	}

	return newSnowflakeGenerator(nodeID)
}

func newSnowflakeGenerator(nodeID int64) (*snowflakeGenerator, error) {
	// NodeBits is a package variable, so the bound is read at call time.
	maxNode := int64(-1 ^ (-1 << snowflake.NodeBits))
	if nodeID < 0 || nodeID > maxNode {
		return nil, errors.Errorf("order number node %d out of range [0, %d]", nodeID, maxNode)
	}

	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create snowflake node")
	}

	return &snowflakeGenerator{node: node}, nil
}

func (g *snowflakeGenerator) Next() int64 {
	return g.node.Generate().Int64()
}
