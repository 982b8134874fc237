package service

import "heating_advisor/internal/engine"

type engineSource interface {
	Engine() *engine.Engine
}

// AdvisorService runs requests against whatever snapshot is current.
type AdvisorService struct {
	catalog engineSource
}

func NewAdvisorService(catalog engineSource) *AdvisorService {
	return &AdvisorService{catalog: catalog}
}

func (s *AdvisorService) Recommend(req engine.Request) engine.Result {
	return s.catalog.Engine().Recommend(req)
}

func (s *AdvisorService) Estimate(area, insulation string) int {
	return s.catalog.Engine().Estimate(area, insulation)
}
