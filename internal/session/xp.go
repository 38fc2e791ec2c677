package session

import (
	"context"

	"github.com/cashfy/backend/internal/gamification"
	"github.com/cashfy/backend/internal/learning"
	"github.com/cashfy/backend/internal/models"
)

// EarnXP credits XP to the user. Negative amounts are penalties.
func (s *Session) EarnXP(ctx context.Context, amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.earnXP(ctx, amount, sourceManual)
}

func (s *Session) earnXP(ctx context.Context, amount int, source string) {
	before := s.state
	next, events := gamification.EarnXP(s.state, amount)
	s.state = next
	s.apply(ctx, events, source)

	s.refresh(ctx, before, false)
}

// EarnLearningXP credits XP earned in lessons. It counts towards the
// total and the learning XP.
func (s *Session) EarnLearningXP(ctx context.Context, amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.earnLearningXP(ctx, amount)
}

func (s *Session) earnLearningXP(ctx context.Context, amount int) {
	before := s.state
	next, events := gamification.EarnLearningXP(s.state, amount)
	s.state = next
	s.apply(ctx, events, sourceLearning)

	if before.LearningXP != s.state.LearningXP {
		s.setMetadata(ctx, models.MetadataLearningXP, s.state.LearningXP)
	}

	s.refresh(ctx, before, false)
}

// LessonStatus is a lesson and whether the user completed it.
type LessonStatus struct {
	learning.Lesson
	Completed bool `json:"completed" example:"false"`
}

// Lessons returns all lessons of the catalog.
func (s *Session) Lessons() []LessonStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	lessons := make([]LessonStatus, 0, len(s.lessons.Lessons))
	for _, l := range s.lessons.Lessons {
		lessons = append(lessons, LessonStatus{Lesson: l, Completed: s.progress.Completed(l.ID)})
	}

	return lessons
}

// Answer is the outcome of answering a quiz question.
type Answer struct {
	learning.Result
	LessonCompleted bool `json:"lessonCompleted" example:"false"`
}

// AnswerQuestion grades the answer to a question and credits or
// deducts learning XP.
func (s *Session) AnswerQuestion(ctx context.Context, lessonID, questionID string, option int) (Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.lessons.Grade(lessonID, questionID, option)
	if err != nil {
		return Answer{}, err
	}

	// Grade succeeded, the lesson exists
	lesson, _ := s.lessons.Lesson(lessonID)

	s.earnLearningXP(ctx, result.XP)

	completed := s.progress.Record(lesson, questionID)
	if completed {
		s.setMetadata(ctx, models.MetadataCompletedLessons, s.progress.CompletedLessons())
	}

	return Answer{Result: result, LessonCompleted: completed}, nil
}
