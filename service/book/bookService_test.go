package booksvc_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"biblioteca/model"
	booksvc "biblioteca/service/book"
)

type repoMock struct {
	createFn func(ctx context.Context, b *model.Book) error
	listFn   func(ctx context.Context) ([]model.Book, error)
	getFn    func(ctx context.Context, id int64) (*model.Book, error)
	updateFn func(ctx context.Context, b *model.Book) error
	deleteFn func(ctx context.Context, id int64) error
}

func (m *repoMock) Create(ctx context.Context, b *model.Book) error { return m.createFn(ctx, b) }
func (m *repoMock) List(ctx context.Context) ([]model.Book, error)  { return m.listFn(ctx) }
func (m *repoMock) Get(ctx context.Context, id int64) (*model.Book, error) {
	return m.getFn(ctx, id)
}
func (m *repoMock) Update(ctx context.Context, b *model.Book) error { return m.updateFn(ctx, b) }
func (m *repoMock) Delete(ctx context.Context, id int64) error      { return m.deleteFn(ctx, id) }

func TestCreate_Validation(t *testing.T) {
	s := booksvc.New(&repoMock{})
	if err := s.Create(context.Background(), &model.Book{Author: "a", ISBN: "i"}); err == nil {
		t.Fatal("expected error for empty title")
	}
	if err := s.Create(context.Background(), &model.Book{Title: "t", ISBN: "i"}); err == nil {
		t.Fatal("expected error for empty author")
	}
	if err := s.Create(context.Background(), &model.Book{Title: "t", Author: "a"}); err == nil {
		t.Fatal("expected error for empty isbn")
	}
}

func TestCreate_Success(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, b *model.Book) error {
			b.ID = 42
			return nil
		},
	}
	s := booksvc.New(m)
	b := &model.Book{Title: "Dom Casmurro", Author: "Machado de Assis", ISBN: "978-85", Available: true}
	if err := s.Create(context.Background(), b); err != nil || b.ID != 42 {
		t.Fatalf("got id=%v err=%v; want 42 nil", b.ID, err)
	}
}

func TestGet_NotFound(t *testing.T) {
	m := &repoMock{
		getFn: func(ctx context.Context, id int64) (*model.Book, error) {
			return nil, sql.ErrNoRows
		},
	}
	s := booksvc.New(m)
	if _, err := s.Get(context.Background(), 99); !errors.Is(err, booksvc.ErrNotFound) {
		t.Fatalf("got %v; want ErrNotFound", err)
	}
}

func TestPassThroughs(t *testing.T) {
	m := &repoMock{
		listFn:   func(ctx context.Context) ([]model.Book, error) { return nil, nil },
		deleteFn: func(ctx context.Context, id int64) error { return nil },
	}
	s := booksvc.New(m)

	if _, err := s.List(context.Background()); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if err := s.Delete(context.Background(), 7); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}
