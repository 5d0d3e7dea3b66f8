package service

import (
	"context"

	"github.com/alexanderramin/bluecal/internal/domain"
	"github.com/alexanderramin/bluecal/internal/store"
)

type inboxService struct {
	inbox *store.InboxStore
	items *store.ItemStore
}

// NewInboxService creates an InboxService over the inbox and item stores.
func NewInboxService(inbox *store.InboxStore, items *store.ItemStore) InboxService {
	return &inboxService{inbox: inbox, items: items}
}

func (s *inboxService) Add(ctx context.Context, text string) error {
	return s.inbox.Add(ctx, text)
}

func (s *inboxService) Notes(_ context.Context) ([]domain.InboxNote, error) {
	return s.inbox.Notes(), nil
}

func (s *inboxService) Delete(ctx context.Context, idx int) error {
	return s.inbox.Delete(ctx, idx)
}

func (s *inboxService) Promote(ctx context.Context, idx int) (domain.Item, error) {
	note, err := s.inbox.Take(ctx, idx)
	if err != nil {
		return domain.Item{}, err
	}

	it := domain.Item{Type: domain.TypeTask, Title: note.Text}
	id, err := s.items.Create(ctx, it)
	if err != nil {
		// Creation failed (e.g. blank note text); put the note back.
		if addErr := s.inbox.Add(ctx, note.Text); addErr != nil {
			return domain.Item{}, addErr
		}
		return domain.Item{}, err
	}
	it.ID = id
	return it, nil
}
