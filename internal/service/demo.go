package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"class_objects/internal/models"
)

// Demo прогоняет фиксированный сценарий с книгами и учениками
// и печатает каждый шаг в out.
type Demo struct {
	out    io.Writer
	logger *slog.Logger
}

func NewDemo(out io.Writer, logger *slog.Logger) *Demo {
	if logger == nil {
		logger = slog.Default()
	}
	return &Demo{
		out:    out,
		logger: logger,
	}
}

// Run — весь сценарий: сначала книги, потом ученики.
// Между частями две пустые строки.
func (d *Demo) Run(ctx context.Context) error {
	if err := d.RunBooks(ctx); err != nil {
		return err
	}

	p := &printer{w: d.out}
	p.println("")
	p.println("")
	if p.err != nil {
		return p.err
	}

	if err := d.RunStudents(ctx); err != nil {
		return err
	}

	d.logger.Info("demo finished")
	return nil
}

// RunBooks показывает, что у каждой книги свое состояние.
func (d *Demo) RunBooks(ctx context.Context) error {
	p := &printer{w: d.out}

	if err := d.section(ctx, p, 0, "CREATING BOOK OBJECTS"); err != nil {
		return err
	}

	harryPotter, err := d.newBook("Harry Potter", "J.K. Rowling", 320)
	if err != nil {
		return err
	}
	p.printf("Object 1: %s", harryPotter.Describe())

	hungerGames, err := d.newBook("The Hunger Games", "Suzanne Collins", 374)
	if err != nil {
		return err
	}
	p.printf("Object 2: %s", hungerGames.Describe())

	hobbit, err := d.newBook("The Hobbit", "J.R.R. Tolkien", 295)
	if err != nil {
		return err
	}
	p.printf("Object 3: %s", hobbit.Describe())

	if err := d.section(ctx, p, 1, "INTERACTING WITH BOOK OBJECTS"); err != nil {
		return err
	}

	p.println(d.open(harryPotter))

	p.printf("Is Harry Potter open? %s", boolText(harryPotter.IsOpen()))
	p.printf("Is Hunger Games open? %s", boolText(hungerGames.IsOpen()))
	p.printf("Is The Hobbit open? %s", boolText(hobbit.IsOpen()))

	p.println(d.open(hobbit))
	p.println(d.close(harryPotter))

	p.printf("Is Harry Potter open? %s", boolText(harryPotter.IsOpen()))
	p.printf("Is Hunger Games open? %s", boolText(hungerGames.IsOpen()))
	p.printf("Is The Hobbit open? %s", boolText(hobbit.IsOpen()))

	return p.err
}

// RunStudents показывает, что очки у каждого ученика свои.
func (d *Demo) RunStudents(ctx context.Context) error {
	p := &printer{w: d.out}

	if err := d.section(ctx, p, 0, "CREATING STUDENT OBJECTS"); err != nil {
		return err
	}

	emma := d.newStudent("Emma", 10)
	p.printf("Student 1: %s", emma.Status())

	jack := d.newStudent("Jack", 11)
	p.printf("Student 2: %s", jack.Status())

	sophia := d.newStudent("Sophia", 10)
	p.printf("Student 3: %s", sophia.Status())

	students := []*models.Student{emma, jack, sophia}

	if err := d.section(ctx, p, 1, "STUDENT ACTIVITIES"); err != nil {
		return err
	}

	plan := []struct {
		student *models.Student
		hours   int
	}{
		{emma, 3},
		{jack, 1},
		{sophia, 5},
	}
	for _, step := range plan {
		msg, err := d.study(step.student, step.hours)
		if err != nil {
			return err
		}
		p.println(msg)
	}

	if err := d.section(ctx, p, 1, "STUDENT STATUS AFTER STUDYING"); err != nil {
		return err
	}
	for _, s := range students {
		p.println(s.Status())
	}

	if err := d.section(ctx, p, 1, "STUDENTS TAKING TESTS"); err != nil {
		return err
	}
	for _, s := range students {
		p.println(d.takeTest(s))
	}

	if err := d.section(ctx, p, 1, "FINAL STUDENT STATUS"); err != nil {
		return err
	}
	for _, s := range students {
		p.println(s.Status())
	}

	return p.err
}

// Обертки над операциями записей: сама операция плюс debug-запись с id экземпляра.

func (d *Demo) newBook(title, author string, pages int) (*models.Book, error) {
	b, err := models.NewBook(title, author, pages)
	if err != nil {
		return nil, fmt.Errorf("создание книги: %w", err)
	}
	d.logger.Debug("book created", "id", b.ID, "title", title)
	return b, nil
}

func (d *Demo) open(b *models.Book) string {
	msg := b.Open()
	d.logger.Debug("book opened", "id", b.ID, "title", b.Title())
	return msg
}

func (d *Demo) close(b *models.Book) string {
	msg := b.Close()
	d.logger.Debug("book closed", "id", b.ID, "title", b.Title())
	return msg
}

func (d *Demo) newStudent(name string, grade int) *models.Student {
	s := models.NewStudent(name, grade)
	d.logger.Debug("student created", "id", s.ID, "name", name)
	return s
}

func (d *Demo) study(s *models.Student, hours int) (string, error) {
	msg, err := s.Study(hours)
	if err != nil {
		return "", fmt.Errorf("учеба: %w", err)
	}
	d.logger.Debug("student studied", "id", s.ID, "name", s.Name(), "hours", hours, "points", s.Points())
	return msg, nil
}

func (d *Demo) takeTest(s *models.Student) string {
	msg, passed := s.TakeTest()
	if passed {
		d.logger.Debug("test taken", "id", s.ID, "name", s.Name(), "points", s.Points())
	} else {
		d.logger.Debug("not enough points for a test", "id", s.ID, "name", s.Name(), "points", s.Points())
	}
	return msg
}

// section проверяет контекст и печатает заголовок раздела,
// отделяя его от предыдущего blank пустыми строками.
func (d *Demo) section(ctx context.Context, p *printer, blank int, title string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.err != nil {
		return p.err
	}

	d.logger.Debug("section", "title", title)
	for i := 0; i < blank; i++ {
		p.println("")
	}
	p.printf("=== %s ===", title)
	return p.err
}

// boolText печатает булево значение с заглавной буквы: True / False.
func boolText(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

// printer запоминает первую ошибку записи, после нее ничего не пишет.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) println(line string) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintln(p.w, line); err != nil {
		p.err = fmt.Errorf("ошибка вывода: %w", err)
	}
}

func (p *printer) printf(format string, args ...any) {
	p.println(fmt.Sprintf(format, args...))
}
