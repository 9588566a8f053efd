package peerreview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"perfreview/internal/domain/employee"
)

const reviewersPerReviewee = 2

// Allocator assigns reviewers to reviewees within a department for a
// period. Only base contributors participate; managers and above are never
// reviewees in this pass. Allocation is idempotent: an assignment whose
// composite key already exists is skipped, so re-running after a partial
// failure only fills the gaps.
type Allocator struct {
	Employees employee.StoreAPI
	Reviews   StoreAPI

	// rng is shared across departments and periods; the keyed lock below
	// only serializes same-key calls, so every use goes through rngMu.
	rngMu sync.Mutex
	rng   *rand.Rand

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewAllocator seeds selection from the wall clock. Tests inject their own
// source via NewAllocatorWithRand.
func NewAllocator(employees employee.StoreAPI, reviews StoreAPI) *Allocator {
	return NewAllocatorWithRand(employees, reviews, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func NewAllocatorWithRand(employees employee.StoreAPI, reviews StoreAPI, rng *rand.Rand) *Allocator {
	return &Allocator{
		Employees: employees,
		Reviews:   reviews,
		rng:       rng,
		locks:     make(map[string]*sync.Mutex),
	}
}

// Allocate builds the (reviewer, reviewee, period) assignments for a
// department and returns only the reviews created by this invocation.
// Fewer than two eligible members is a normal empty outcome, not an error.
func (a *Allocator) Allocate(ctx context.Context, department, period string) ([]Review, error) {
	unlock := a.lock(department + "|" + period)
	defer unlock()

	members, err := a.Employees.FindByDepartment(ctx, department)
	if err != nil {
		return nil, fmt.Errorf("load department %s: %w", department, err)
	}

	eligible := make([]employee.Employee, 0, len(members))
	for _, m := range members {
		if m.Role == employee.RoleEmployee && m.Status == employee.StatusActive {
			eligible = append(eligible, m)
		}
	}
	if len(eligible) < 2 {
		slog.Info("peer review allocation skipped, not enough eligible members",
			"department", department, "period", period, "eligible", len(eligible))
		return []Review{}, nil
	}

	var created []Review
	for _, reviewee := range eligible {
		others := make([]employee.Employee, 0, len(eligible)-1)
		for _, m := range eligible {
			if m.ID != reviewee.ID {
				others = append(others, m)
			}
		}

		reviewers := others
		if len(others) > reviewersPerReviewee {
			a.rngMu.Lock()
			a.rng.Shuffle(len(others), func(i, j int) {
				others[i], others[j] = others[j], others[i]
			})
			a.rngMu.Unlock()
			reviewers = others[:reviewersPerReviewee]
		}

		for _, reviewer := range reviewers {
			review, ok, err := a.createIfAbsent(ctx, reviewer.ID, reviewee.ID, period)
			if err != nil {
				return nil, err
			}
			if ok {
				created = append(created, review)
			}
		}
	}

	slog.Info("peer review allocation done",
		"department", department, "period", period, "created", len(created))
	return created, nil
}

// createIfAbsent persists the assignment unless its composite key already
// exists. Pre-existing assignments are silently omitted from the result.
func (a *Allocator) createIfAbsent(ctx context.Context, reviewerID, revieweeID, period string) (Review, bool, error) {
	id := CompositeID(reviewerID, revieweeID, period)
	if _, err := a.Reviews.FindByID(ctx, id); err == nil {
		return Review{}, false, nil
	} else if !errors.Is(err, ErrReviewNotFound) {
		return Review{}, false, err
	}

	review := Review{
		ID:         id,
		ReviewerID: reviewerID,
		RevieweeID: revieweeID,
		Period:     period,
		CreatedAt:  time.Now().UTC(),
	}
	if err := a.Reviews.Create(ctx, review); err != nil {
		return Review{}, false, err
	}
	return review, true, nil
}

// Submit records the reviewer's scores and comment on an assignment.
func (a *Allocator) Submit(ctx context.Context, id string, collaboration, professionalism, communication float64, comment string) (Review, error) {
	review, err := a.Reviews.FindByID(ctx, id)
	if err != nil {
		return Review{}, err
	}
	review.Collaboration = collaboration
	review.Professionalism = professionalism
	review.Communication = communication
	review.Comment = comment
	review.Submitted = true
	if err := a.Reviews.Update(ctx, review); err != nil {
		return Review{}, err
	}
	return review, nil
}

func (a *Allocator) List(ctx context.Context, revieweeID, period string) ([]Review, error) {
	return a.Reviews.List(ctx, revieweeID, period)
}

func (a *Allocator) lock(key string) func() {
	a.mu.Lock()
	lock, ok := a.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		a.locks[key] = lock
	}
	a.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
