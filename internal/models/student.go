package models

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

const (
	// PointsPerHour — сколько очков дает один час занятий.
	PointsPerHour = 5

	// TestCost — сколько очков списывается за тест.
	TestCost = 10
)

// ErrNegativeHours возвращается из Study при отрицательном числе часов.
var ErrNegativeHours = errors.New("hours must be non-negative")

// ErrTooManyHours возвращается из Study, если очки не поместятся в int.
var ErrTooManyHours = errors.New("too many hours: points would overflow")

// Student копит очки за учебу и тратит их на тесты.
type Student struct {
	ID string

	name   string
	grade  int
	points int
}

// NewStudent создает ученика с нулем очков.
func NewStudent(name string, grade int) *Student {
	return &Student{
		ID:    uuid.NewString(),
		name:  name,
		grade: grade,
	}
}

func (s *Student) Name() string { return s.name }
func (s *Student) Grade() int   { return s.grade }
func (s *Student) Points() int  { return s.points }

// Study начисляет PointsPerHour очков за каждый час.
func (s *Student) Study(hours int) (string, error) {
	if hours < 0 {
		return "", fmt.Errorf("%s: %d ч: %w", s.name, hours, ErrNegativeHours)
	}
	if hours > (math.MaxInt-s.points)/PointsPerHour {
		return "", fmt.Errorf("%s: %d ч: %w", s.name, hours, ErrTooManyHours)
	}

	earned := hours * PointsPerHour
	s.points += earned

	return fmt.Sprintf("%s studied for %d hours and earned %d points!", s.name, hours, earned), nil
}

// CanTakeTest сообщает, хватает ли очков на тест.
func (s *Student) CanTakeTest() bool {
	return s.points >= TestCost
}

// TakeTest списывает TestCost очков, если их хватает.
// Нехватка очков — не ошибка: второй результат просто false, очки не меняются.
func (s *Student) TakeTest() (string, bool) {
	if !s.CanTakeTest() {
		return fmt.Sprintf("%s needs more study points before taking a test.", s.name), false
	}

	s.points -= TestCost
	return fmt.Sprintf("%s took a test and did well!", s.name), true
}

// Status — текущее состояние ученика.
func (s *Student) Status() string {
	return fmt.Sprintf("%s is in grade %d with %d points.", s.name, s.grade, s.points)
}

func (s *Student) String() string {
	return s.Status()
}
