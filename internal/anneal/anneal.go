// Package anneal runs simulated annealing over an HB-tree placement:
// repeatedly perturb the tree, repack, and accept or undo by the
// Metropolis criterion, cooling the temperature until the run stalls.
package anneal

import (
	"math"
	"time"

	"github.com/CGLemon/2025NCTU-placement/internal/hbtree"
	"github.com/CGLemon/2025NCTU-placement/internal/model"
	"github.com/CGLemon/2025NCTU-placement/internal/rng"
)

// Result is the outcome of a Run: the best placement found and the
// statistics of the search that found it.
type Result struct {
	BestArea   int64
	BestCost   float64
	BestBlocks []model.Block

	Steps       int
	UphillTotal int
	RejectTotal int
	Elapsed     time.Duration
}

// baseline holds the area/hpwl values a normalized cost is measured
// against, captured once at the start of each outer (temperature)
// iteration.
type baseline struct {
	area float64
	hpwl float64
}

// Run anneals hb in place, starting from whatever placement blocks
// currently holds (the caller should have packed it once already), and
// returns the best placement found. blocks is mutated throughout and
// ends the run holding the best placement, matching Result.BestBlocks.
func Run(hb *hbtree.HbTree, blocks []model.Block, cfg Config) Result {
	src := rng.New(cfg.Seed)
	start := time.Now()
	timeBudget := cfg.TimeBudget

	currArea := hb.PackAndGetArea(blocks)
	bestArea := currArea
	bestBlocks := append([]model.Block(nil), blocks...)
	bestCost := score(blocks, bestArea, cfg, baseline{area: float64(bestArea), hpwl: hpwl(blocks)})

	temperature := float64(bestArea) / 10.0
	steps, uphillTotal, rejectTotal := 0, 0, 0
	continuousReject := 0

	numBlocks := len(blocks)
	if numBlocks == 0 {
		numBlocks = 1
	}

	iteration := 0

outer:
	for {
		if timeBudget > 0 && time.Since(start) > timeBudget {
			break
		}

		bl := baseline{area: float64(bestArea), hpwl: hpwl(blocks)}
		if bl.area == 0 {
			bl.area = 1
		}
		if bl.hpwl == 0 {
			bl.hpwl = 1
		}

		genCnt, uphillCnt, rejectCnt := 0, 0, 0
		stopFactor := numBlocks * cfg.K
		genMin := stopFactor * 2
		unappliedStreak := 0

		for {
			if timeBudget > 0 && time.Since(start) > timeBudget {
				break
			}
			currArea = bestArea
			currCost := score(blocks, currArea, cfg, bl)

			undo, applied := applyRandomMove(hb, blocks, src)
			if !applied {
				unappliedStreak++
				if unappliedStreak > 4*(numBlocks+1) {
					// nothing in this instance is perturbable; stop rather
					// than spin forever.
					break outer
				}
				continue
			}
			unappliedStreak = 0

			newArea := hb.PackAndGetArea(blocks)
			newCost := score(blocks, newArea, cfg, bl)
			delta := newCost - currCost

			accept := delta <= 0
			if !accept && temperature > 0 {
				accept = src.Float64() < math.Exp(-delta/temperature)
			}

			if accept {
				currArea = newArea
				if newArea < bestArea {
					bestArea = newArea
					bestCost = newCost
					bestBlocks = append(bestBlocks[:0], blocks...)
				}
				if delta > 0 {
					uphillCnt++
				}
			} else {
				undo()
				hb.PackAndGetArea(blocks)
				rejectCnt++
			}
			steps++
			genCnt++

			if uphillCnt > stopFactor || genCnt > genMin {
				break
			}
		}

		uphillTotal += uphillCnt
		rejectTotal += rejectCnt

		if rejectCnt > 0 && rejectCnt == genCnt {
			continuousReject++
		} else {
			continuousReject = 0
		}

		temperature *= cfg.CoolingFactor
		iteration++
		if cfg.OnOuterStep != nil {
			cfg.OnOuterStep(iteration, temperature, bestArea)
		}

		if continuousReject >= cfg.ContinuousRejectMax || temperature < cfg.TemperatureMin {
			break
		}
		if timeBudget > 0 && time.Since(start) > timeBudget {
			break
		}
	}

	copy(blocks, bestBlocks)
	return Result{
		BestArea:    bestArea,
		BestCost:    bestCost,
		BestBlocks:  bestBlocks,
		Steps:       steps,
		UphillTotal: uphillTotal,
		RejectTotal: rejectTotal,
		Elapsed:     time.Since(start),
	}
}

// score computes the run's cost function for a placement already packed
// to area. Beta == 0 short-circuits to the raw packed area so the common
// case never pays for an HPWL pass it doesn't need.
func score(blocks []model.Block, area int64, cfg Config, bl baseline) float64 {
	if cfg.Beta == 0 {
		return cfg.Alpha * float64(area)
	}
	normArea := float64(area) / bl.area
	normHPWL := hpwl(blocks) / bl.hpwl
	return cfg.Alpha*normArea + cfg.Beta*normHPWL
}

// hpwl sums, over every block, the spread between its center x and
// center y, the geometric wirelength proxy used when no netlist is
// available.
func hpwl(blocks []model.Block) float64 {
	total := 0.0
	for _, b := range blocks {
		cx, cy := model.CenterX(b), model.CenterY(b)
		if cx > cy {
			total += cx - cy
		} else {
			total += cy - cx
		}
	}
	return total
}
