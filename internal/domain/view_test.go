package domain

import (
	"testing"
	"time"
)

func TestSelectors_Buckets(t *testing.T) {
	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	at := func(min int) *time.Time {
		v := base.Add(time.Duration(min) * time.Minute)
		return &v
	}

	tasks := []Task{
		{Title: "active", Seq: 1, CreatedAt: base},
		{Title: "completed", Seq: 2, CreatedAt: base.Add(time.Minute), CompletedAt: at(5)},
		{Title: "deleted", Seq: 3, CreatedAt: base.Add(2 * time.Minute), DeletedAt: at(6)},
		{Title: "completed-then-deleted", Seq: 4, CreatedAt: base.Add(3 * time.Minute), CompletedAt: at(7), DeletedAt: at(8)},
	}

	assertTitles(t, SelectActive(tasks, nil, nil, testToday), []string{"active"})
	assertTitles(t, SelectArchiveCompleted(tasks), []string{"completed"})
	assertTitles(t, SelectArchiveDeleted(tasks), []string{"deleted", "completed-then-deleted"})
}

func TestSelectActive_FilterThenSort(t *testing.T) {
	tasks := []Task{
		{Title: "milk", DueDate: due(2), Priority: PriorityLow},
		{Title: "taxes", DueDate: due(20), Priority: PriorityHigh},
		{Title: "someday"},
		{Title: "report", DueDate: due(1), Priority: PriorityHigh, Category: "Work"},
	}

	f := &Filter{DueWithin: DueIn3Days}
	s := &Sort{Field: SortByPriority, Order: SortDesc}

	assertTitles(t, SelectActive(tasks, f, s, testToday), []string{"report", "milk"})

	// Re-callable with identical results
	assertTitles(t, SelectActive(tasks, f, s, testToday), []string{"report", "milk"})
	assertTitles(t, tasks, []string{"milk", "taxes", "someday", "report"})
}
