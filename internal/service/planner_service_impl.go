package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/bluecal/internal/domain"
	"github.com/alexanderramin/bluecal/internal/notify"
	"github.com/alexanderramin/bluecal/internal/recur"
	"github.com/alexanderramin/bluecal/internal/reschedule"
	"github.com/alexanderramin/bluecal/internal/store"
	"github.com/alexanderramin/bluecal/internal/timeline"
	"github.com/alexanderramin/bluecal/internal/voice"
)

type plannerService struct {
	items    *store.ItemStore
	settings *store.SettingsStore
	expander *recur.Expander
	sweeper  *reschedule.Sweeper
	notifier notify.Notifier
}

// NewPlannerService wires the item store with the expander, the
// missed-task sweeper, and the notification port.
func NewPlannerService(items *store.ItemStore, settings *store.SettingsStore, notifier notify.Notifier) PlannerService {
	return &plannerService{
		items:    items,
		settings: settings,
		expander: recur.NewExpander(items),
		sweeper:  reschedule.NewSweeper(items, settings, notifier),
		notifier: notifier,
	}
}

func (s *plannerService) Create(ctx context.Context, it domain.Item) (string, error) {
	return s.items.Create(ctx, it)
}

func (s *plannerService) Get(_ context.Context, id string) (domain.Item, error) {
	it, ok := s.items.Find(id)
	if !ok {
		return domain.Item{}, fmt.Errorf("item %s: %w", id, store.ErrNotFound)
	}
	return it, nil
}

func (s *plannerService) Update(ctx context.Context, id string, patch store.Patch) error {
	return s.items.Update(ctx, id, patch)
}

func (s *plannerService) Delete(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}

func (s *plannerService) ToggleComplete(ctx context.Context, id string) (domain.Item, error) {
	it, ok := s.items.Find(id)
	if !ok {
		return domain.Item{}, fmt.Errorf("toggling item %s: %w", id, store.ErrNotFound)
	}
	completed := !it.Completed
	if err := s.items.Update(ctx, id, store.Patch{Completed: store.BoolPtr(completed)}); err != nil {
		return domain.Item{}, err
	}
	it.Completed = completed

	if completed && s.settings.Get().NotifyTaskStart {
		s.notifier.Notify("Task completed", fmt.Sprintf("%q is done", it.Title))
	}
	return it, nil
}

func (s *plannerService) Day(ctx context.Context, date string) (*DayView, error) {
	if _, err := s.expander.Expand(ctx, date); err != nil {
		return nil, err
	}

	items := s.items.Query(func(it domain.Item) bool {
		return it.Date == date && it.Scheduled()
	})

	scheduled := make([]timeline.ScheduledItem, len(items))
	for i, it := range items {
		scheduled[i] = timeline.ScheduledItem{ID: it.ID, StartTime: it.StartTime, Duration: it.Duration}
	}
	placements, skipped := timeline.Layout(scheduled)

	return &DayView{
		Date:       date,
		Items:      items,
		Placements: placements,
		Skipped:    skipped,
	}, nil
}

func (s *plannerService) List(_ context.Context) ([]domain.Item, error) {
	return s.items.All(), nil
}

func (s *plannerService) Backlog(_ context.Context) ([]domain.Item, error) {
	return s.items.Query(func(it domain.Item) bool {
		return it.Type == domain.TypeTask && !it.Scheduled() && !it.Completed
	}), nil
}

func (s *plannerService) Habits(_ context.Context) ([]domain.Item, error) {
	return s.items.Query(func(it domain.Item) bool {
		return it.Type == domain.TypeHabit && !it.Completed
	}), nil
}

func (s *plannerService) Projects(_ context.Context) ([]domain.Item, error) {
	return s.items.Query(func(it domain.Item) bool {
		return it.Type == domain.TypeProject
	}), nil
}

func (s *plannerService) SweepMissed(ctx context.Context, now time.Time) ([]domain.Item, error) {
	return s.sweeper.Sweep(ctx, now)
}

func (s *plannerService) CreateFromTranscript(ctx context.Context, transcript, activeDate string, now time.Time) (domain.Item, bool, error) {
	fields, ok := voice.Parse(transcript, activeDate, now)
	if !ok {
		return domain.Item{}, false, nil
	}

	it := domain.Item{
		Type:      domain.TypeTask,
		Title:     fields.Title,
		Notes:     fmt.Sprintf("voice input: %q", transcript),
		Date:      fields.Date,
		StartTime: fields.StartTime,
		Duration:  fields.Duration,
		Icon:      "mic",
	}
	id, err := s.items.Create(ctx, it)
	if err != nil {
		return domain.Item{}, false, err
	}
	it.ID = id

	s.notifier.Notify("Task created", fmt.Sprintf("%q was added", it.Title))
	return it, true, nil
}
