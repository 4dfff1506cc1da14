package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNegativePages возвращается, если у книги отрицательное число страниц.
var ErrNegativePages = errors.New("pages must be non-negative")

// Book — физическая книга, которую можно открыть и закрыть.
// Название, автор и число страниц задаются один раз при создании.
type Book struct {
	ID string

	title  string
	author string
	pages  int
	isOpen bool
}

// NewBook создает закрытую книгу.
func NewBook(title, author string, pages int) (*Book, error) {
	if pages < 0 {
		return nil, fmt.Errorf("книга %q: %w", title, ErrNegativePages)
	}

	return &Book{
		ID:     uuid.NewString(),
		title:  title,
		author: author,
		pages:  pages,
	}, nil
}

func (b *Book) Title() string  { return b.title }
func (b *Book) Author() string { return b.author }
func (b *Book) Pages() int     { return b.pages }

// IsOpen отражает только последний вызов Open/Close.
func (b *Book) IsOpen() bool { return b.isOpen }

// Open открывает книгу. Повторный вызов ничего не меняет.
func (b *Book) Open() string {
	b.isOpen = true
	return fmt.Sprintf("%s is now open and ready to read!", b.title)
}

// Close закрывает книгу. Закрытую книгу можно закрыть еще раз.
func (b *Book) Close() string {
	b.isOpen = false
	return fmt.Sprintf("%s is now closed.", b.title)
}

// Describe — описание книги, не зависит от того, открыта ли она.
func (b *Book) Describe() string {
	return fmt.Sprintf("%s by %s, %d pages.", b.title, b.author, b.pages)
}

// String — чтобы книгу можно было печатать через %s.
func (b *Book) String() string {
	return b.Describe()
}
