// Package learning contains the financial education lessons and grades
// the answers to their quizzes.
package learning

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// XP awarded for answers.
const (
	CorrectXP   = 50
	IncorrectXP = -20
)

var (
	ErrLessonNotFound   = errors.New("there is no lesson with this id")
	ErrQuestionNotFound = errors.New("there is no question with this id in the lesson")
	ErrOptionInvalid    = errors.New("the selected option does not exist for this question")
)

//go:embed lessons.toml
var lessonsTOML string

type Question struct {
	ID      string   `toml:"id" json:"id" example:"q1"`
	Text    string   `toml:"text" json:"text" example:"What is the definition of passive income?"`
	Options []string `toml:"options" json:"options"`
	Answer  int      `toml:"answer" json:"-"`
}

type Lesson struct {
	ID          string     `toml:"id" json:"id" example:"passive_income"`
	Title       string     `toml:"title" json:"title" example:"Passive income"`
	Description string     `toml:"description" json:"description"`
	Content     string     `toml:"content" json:"content"`
	Questions   []Question `toml:"questions" json:"questions"`
}

// Catalog is the list of all lessons.
type Catalog struct {
	Lessons []Lesson `toml:"lessons"`
}

// Load parses the embedded lesson catalog.
func Load() (Catalog, error) {
	return Parse(lessonsTOML)
}

// Parse parses a lesson catalog in TOML format.
func Parse(data string) (Catalog, error) {
	var c Catalog
	if _, err := toml.Decode(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parsing lessons: %w", err)
	}

	for _, l := range c.Lessons {
		for _, q := range l.Questions {
			if q.Answer < 0 || q.Answer >= len(q.Options) {
				return Catalog{}, fmt.Errorf("lesson %s, question %s: answer %d is not an option", l.ID, q.ID, q.Answer)
			}
		}
	}

	return c, nil
}

// Lesson returns the lesson with the id.
func (c Catalog) Lesson(id string) (Lesson, error) {
	for _, l := range c.Lessons {
		if l.ID == id {
			return l, nil
		}
	}

	return Lesson{}, ErrLessonNotFound
}

// Result is the outcome of answering a question.
type Result struct {
	Correct       bool `json:"correct" example:"true"`
	CorrectOption int  `json:"correctOption" example:"2"`
	XP            int  `json:"xp" example:"50"`
}

// Grade checks the selected option for a question of a lesson.
func (c Catalog) Grade(lessonID, questionID string, option int) (Result, error) {
	lesson, err := c.Lesson(lessonID)
	if err != nil {
		return Result{}, err
	}

	for _, q := range lesson.Questions {
		if q.ID != questionID {
			continue
		}

		if option < 0 || option >= len(q.Options) {
			return Result{}, ErrOptionInvalid
		}

		if option == q.Answer {
			return Result{Correct: true, CorrectOption: q.Answer, XP: CorrectXP}, nil
		}

		return Result{Correct: false, CorrectOption: q.Answer, XP: IncorrectXP}, nil
	}

	return Result{}, ErrQuestionNotFound
}

// Progress tracks the answered questions of a user.
//
// A lesson is completed when every question of it was answered once.
// Progress is not safe for concurrent use.
type Progress struct {
	answered  map[string]map[string]bool
	completed []string
}

// NewProgress returns the progress with the already completed lessons.
func NewProgress(completed []string) *Progress {
	return &Progress{
		answered:  map[string]map[string]bool{},
		completed: append([]string(nil), completed...),
	}
}

// Record marks a question as answered. It reports whether the lesson
// was completed by this answer.
func (p *Progress) Record(lesson Lesson, questionID string) bool {
	if p.Completed(lesson.ID) {
		return false
	}

	if p.answered[lesson.ID] == nil {
		p.answered[lesson.ID] = map[string]bool{}
	}
	p.answered[lesson.ID][questionID] = true

	for _, q := range lesson.Questions {
		if !p.answered[lesson.ID][q.ID] {
			return false
		}
	}

	p.completed = append(p.completed, lesson.ID)
	return true
}

// Completed reports whether the lesson is completed.
func (p *Progress) Completed(lessonID string) bool {
	for _, id := range p.completed {
		if id == lessonID {
			return true
		}
	}

	return false
}

// CompletedLessons returns the identifiers of all completed lessons.
func (p *Progress) CompletedLessons() []string {
	return append([]string(nil), p.completed...)
}
