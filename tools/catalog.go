package tools

import (
	"github.com/lexkeep/lexkeep/backend"
	"github.com/lexkeep/lexkeep/research"
)

// NewCatalogue assembles the full tool registry over a store and a
// research orchestrator. This is the one place the catalogue is built.
func NewCatalogue(store backend.Store, orch *research.Orchestrator) (*Registry, error) {
	var descriptors []Descriptor
	descriptors = append(descriptors, CaseTools(store)...)
	descriptors = append(descriptors, EvidenceTools(store)...)
	descriptors = append(descriptors, FactTools(store)...)
	descriptors = append(descriptors, ResearchTools(orch)...)
	return NewRegistry(descriptors...)
}
