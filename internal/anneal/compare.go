package anneal

import (
	"github.com/CGLemon/2025NCTU-placement/internal/hbtree"
	"github.com/CGLemon/2025NCTU-placement/internal/model"
)

// ComparisonScenario names a Config variant to benchmark against the
// others in a CompareConfigs call.
type ComparisonScenario struct {
	Name   string
	Config Config
}

// ComparisonResult pairs a scenario with the Result its run produced.
type ComparisonResult struct {
	Scenario ComparisonScenario
	Result   Result
}

// CompareConfigs runs Run once per scenario, each against its own fresh
// HbTree and its own copy of blocks so scenarios never interfere with
// each other's tree structure or coordinates, and returns the results in
// scenario order. The caller picks the winner by whatever field matters
// to them (BestArea, BestCost, Elapsed, ...).
func CompareConfigs(scenarios []ComparisonScenario, blocks []model.Block, groups []model.SymGroup) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))
	for _, scenario := range scenarios {
		trial := append([]model.Block(nil), blocks...)
		hb := &hbtree.HbTree{}
		hb.Initialize(trial, groups)
		result := Run(hb, trial, scenario.Config)
		results = append(results, ComparisonResult{Scenario: scenario, Result: result})
	}
	return results
}

// BuildDefaultScenarios returns a handful of Config variants around base,
// useful as a quick what-if sweep over the knobs most likely to matter:
// the cooling schedule and the area/HPWL cost weighting.
func BuildDefaultScenarios(base Config) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "Default", Config: base},
	}

	slowCool := base
	slowCool.CoolingFactor = 0.99
	scenarios = append(scenarios, ComparisonScenario{Name: "Slow Cooling", Config: slowCool})

	fastCool := base
	fastCool.CoolingFactor = 0.85
	scenarios = append(scenarios, ComparisonScenario{Name: "Fast Cooling", Config: fastCool})

	if base.Beta == 0 {
		withHPWL := base
		withHPWL.Alpha, withHPWL.Beta = 0.8, 0.2
		scenarios = append(scenarios, ComparisonScenario{Name: "Area + HPWL", Config: withHPWL})
	}

	return scenarios
}
