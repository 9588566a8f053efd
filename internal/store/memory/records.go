package memory

import (
	"context"
	"sort"

	"perfreview/internal/domain/performance"
)

type RecordStore struct {
	db *Store
}

func (s *RecordStore) Create(_ context.Context, record performance.Record) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, exists := s.db.records[record.ID]; exists {
		return performance.ErrRecordExists
	}
	s.db.records[record.ID] = record
	return nil
}

func (s *RecordStore) FindByID(_ context.Context, id string) (performance.Record, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	record, ok := s.db.records[id]
	if !ok {
		return performance.Record{}, performance.ErrRecordNotFound
	}
	return record, nil
}

func (s *RecordStore) FindByEmployeeAndPeriod(_ context.Context, employeeID, period string) (performance.Record, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	for _, record := range s.db.records {
		if record.EmployeeID == employeeID && record.Period == period {
			return record, nil
		}
	}
	return performance.Record{}, performance.ErrRecordNotFound
}

func (s *RecordStore) FindByPeriod(_ context.Context, period string) ([]performance.Record, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	var out []performance.Record
	for _, record := range s.db.records {
		if record.Period == period {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *RecordStore) UpdateScores(_ context.Context, record performance.Record) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	stored, ok := s.db.records[record.ID]
	if !ok {
		return performance.ErrRecordNotFound
	}
	stored.TaskCompletion = record.TaskCompletion
	stored.Initiative = record.Initiative
	stored.ProjectFeedback = record.ProjectFeedback
	stored.QualityImprovement = record.QualityImprovement
	stored.TotalScore = record.TotalScore
	stored.Level = record.Level
	stored.ManagerComment = record.ManagerComment
	stored.AssessorID = record.AssessorID
	stored.Status = record.Status
	stored.UpdatedAt = record.UpdatedAt
	s.db.records[record.ID] = stored
	return nil
}

func (s *RecordStore) ApplyRanks(_ context.Context, _ string, ranks []performance.RankAssignment) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, assignment := range ranks {
		record, ok := s.db.records[assignment.RecordID]
		if !ok {
			continue
		}
		record.GroupRank = assignment.GroupRank
		record.DepartmentRank = assignment.DepartmentRank
		record.CrossDeptRank = assignment.CrossDeptRank
		record.CompanyRank = assignment.CompanyRank
		s.db.records[assignment.RecordID] = record
	}
	return nil
}
