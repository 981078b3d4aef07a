package fundamentos

import (
	"context"

	"github.com/robbyt/go-fundamentos/engines/types"
	"github.com/robbyt/go-fundamentos/lessons"
	"github.com/robbyt/go-fundamentos/platform"
)

// LessonEvaluator wraps an engine evaluator together with the lesson it was
// compiled from. The script is compiled once and may be evaluated many times.
type LessonEvaluator struct {
	delegate platform.Evaluator
	lesson   lessons.Lesson
	engine   types.Type
}

// NewLessonEvaluator creates a new evaluator wrapper.
func NewLessonEvaluator(
	delegate platform.Evaluator,
	lesson lessons.Lesson,
	engine types.Type,
) *LessonEvaluator {
	return &LessonEvaluator{
		delegate: delegate,
		lesson:   lesson,
		engine:   engine,
	}
}

// Eval implements the platform.Evaluator interface.
func (e *LessonEvaluator) Eval(ctx context.Context) (platform.EvaluatorResponse, error) {
	return e.delegate.Eval(ctx)
}

func (e *LessonEvaluator) Lesson() lessons.Lesson {
	return e.lesson
}

func (e *LessonEvaluator) Engine() types.Type {
	return e.engine
}

func (e *LessonEvaluator) String() string {
	return e.lesson.String() + e.engine.Extension()
}
