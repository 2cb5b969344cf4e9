// Package report turns a (project, run, checklist, progress) snapshot into a
// deterministic markdown report and a minimal HTML rendering of it.
package report

import (
	"github.com/lbruni/collaudo/internal/domain/checklist"
	"github.com/lbruni/collaudo/internal/domain/run"
)

// Summary holds the completion counts for one (checklist, run) pair
type Summary struct {
	Total int `json:"total"`
	Done  int `json:"done"`
	Fail  int `json:"fail"`
}

// Summarize computes completion counts from the ordered checklist and the
// run's progress map. Pure; recomputed on every report request since
// outcomes can change between reads.
func Summarize(items []checklist.Item, progress map[string]run.Result) Summary {
	s := Summary{Total: len(items)}
	for _, item := range items {
		res, ok := progress[item.ID]
		if !ok {
			continue
		}
		s.Done++
		if res.Outcome == run.OutcomeFail {
			s.Fail++
		}
	}
	return s
}
