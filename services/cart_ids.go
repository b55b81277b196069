package services

import (
	"fmt"
	"sync/atomic"

	"ice-cream-shop/models"

	"github.com/google/uuid"
)

// IDGenerator hands out CartIDs for newly appended lines. IDs must be unique
// for the lifetime of a store.
type IDGenerator interface {
	NextID(key models.LineKey) string
}

// SequenceIDGenerator suffixes the line key with a monotonic counter, so two
// adds in the same instant still get distinct IDs.
type SequenceIDGenerator struct {
	seq atomic.Uint64
}

func NewSequenceIDGenerator() *SequenceIDGenerator {
	return &SequenceIDGenerator{}
}

func (g *SequenceIDGenerator) NextID(key models.LineKey) string {
	return fmt.Sprintf("%s-%d", key, g.seq.Add(1))
}

type UUIDGenerator struct{}

func (UUIDGenerator) NextID(models.LineKey) string {
	return uuid.NewString()
}

// NewIDGenerator maps the CART_ID_STRATEGY setting to a generator.
func NewIDGenerator(strategy string) (IDGenerator, error) {
	switch strategy {
	case "", "sequence":
		return NewSequenceIDGenerator(), nil
	case "uuid":
		return UUIDGenerator{}, nil
	default:
		return nil, fmt.Errorf("unknown cart id strategy %q", strategy)
	}
}
