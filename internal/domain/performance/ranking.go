package performance

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
)

// RecomputeRanks reloads every scored record for the period and reassigns
// all four rank partitions. A single new score can shift every sibling's
// position, so the whole period is always re-ranked; incremental updates
// would leave stale ranks behind.
//
// Recomputation is serialized per period: two submissions racing on the same
// period would otherwise each rank a partial snapshot and the later write
// could clobber the earlier one.
func (s *Service) RecomputeRanks(ctx context.Context, period string) error {
	unlock := s.lockPeriod(period)
	defer unlock()

	records, err := s.Records.FindByPeriod(ctx, period)
	if err != nil {
		return fmt.Errorf("load records for period %s: %w", period, err)
	}

	eligible := make([]Record, 0, len(records))
	for _, rec := range records {
		if rec.Status != StatusScored && rec.Status != StatusCompleted {
			continue
		}
		if rec.TotalScore <= 0 || rec.GroupType == "" || rec.Department == "" {
			slog.Warn("rank recompute skipping malformed record",
				"recordId", rec.ID, "period", period,
				"totalScore", rec.TotalScore, "groupType", rec.GroupType, "department", rec.Department)
			continue
		}
		eligible = append(eligible, rec)
	}
	if len(eligible) == 0 {
		return nil
	}

	ranks := make(map[string]*RankAssignment, len(eligible))
	for _, rec := range eligible {
		ranks[rec.ID] = &RankAssignment{RecordID: rec.ID}
	}

	// Group rank: within (department, tier).
	assignPartition(eligible, ranks,
		func(r Record) string { return r.Department + "|" + r.GroupType },
		func(a *RankAssignment, pos int) { a.GroupRank = pos })

	// Department rank: within department.
	assignPartition(eligible, ranks,
		func(r Record) string { return r.Department },
		func(a *RankAssignment, pos int) { a.DepartmentRank = pos })

	// Cross-department rank: tier across all departments.
	assignPartition(eligible, ranks,
		func(r Record) string { return r.GroupType },
		func(a *RankAssignment, pos int) { a.CrossDeptRank = pos })

	// Company rank: one global partition.
	assignPartition(eligible, ranks,
		func(r Record) string { return "" },
		func(a *RankAssignment, pos int) { a.CompanyRank = pos })

	out := make([]RankAssignment, 0, len(ranks))
	for _, rec := range eligible {
		out = append(out, *ranks[rec.ID])
	}
	if err := s.Records.ApplyRanks(ctx, period, out); err != nil {
		return fmt.Errorf("apply ranks for period %s: %w", period, err)
	}

	slog.Info("ranks recomputed", "period", period, "records", len(out), "skipped", len(records)-len(eligible))
	return nil
}

// assignPartition sorts each partition by total score descending and hands
// out consecutive positions starting at 1.
func assignPartition(records []Record, ranks map[string]*RankAssignment, keyFn func(Record) string, setFn func(*RankAssignment, int)) {
	partitions := make(map[string][]Record)
	for _, rec := range records {
		key := keyFn(rec)
		partitions[key] = append(partitions[key], rec)
	}
	for _, members := range partitions {
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].TotalScore > members[j].TotalScore
		})
		for i, rec := range members {
			setFn(ranks[rec.ID], i+1)
		}
	}
}
