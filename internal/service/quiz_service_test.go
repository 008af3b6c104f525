package service_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"quiz_backend/internal/model"
	"quiz_backend/internal/service"
)

func TestFetchQuizSetCapsAtTen(t *testing.T) {
	db := newTestDB(t)
	_, categoryRepo, questionRepo, attemptRepo := newTestRepos(db)
	quiz := service.NewQuizService(categoryRepo, questionRepo, attemptRepo)

	category := &model.Category{Name: "History", Description: "past events"}
	mustCreate(t, db, category)

	for i := 0; i < 15; i++ {
		mustCreate(t, db, &model.Question{
			CategoryID:   category.ID,
			QuestionText: fmt.Sprintf("question %d", i),
			OptionA:      "a", OptionB: "b", OptionC: "c", OptionD: "d",
			CorrectAnswer: "a",
		})
	}

	set, err := quiz.FetchQuizSet(category.ID)
	if err != nil {
		t.Fatalf("fetch quiz set: %v", err)
	}
	if len(set) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(set))
	}
}

func TestFetchQuizSetReturnsAllWhenFewerThanTen(t *testing.T) {
	db := newTestDB(t)
	_, categoryRepo, questionRepo, attemptRepo := newTestRepos(db)
	quiz := service.NewQuizService(categoryRepo, questionRepo, attemptRepo)

	category := &model.Category{Name: "Science"}
	mustCreate(t, db, category)
	for i := 0; i < 3; i++ {
		mustCreate(t, db, &model.Question{
			CategoryID:   category.ID,
			QuestionText: fmt.Sprintf("question %d", i),
			OptionA:      "a", OptionB: "b", OptionC: "c", OptionD: "d",
			CorrectAnswer: "b",
		})
	}

	set, err := quiz.FetchQuizSet(category.ID)
	if err != nil {
		t.Fatalf("fetch quiz set: %v", err)
	}
	if len(set) != 3 {
		t.Fatalf("expected all 3 questions, got %d", len(set))
	}
}

func TestFetchQuizSetNeverLeaksCorrectAnswer(t *testing.T) {
	db := newTestDB(t)
	_, categoryRepo, questionRepo, attemptRepo := newTestRepos(db)
	quiz := service.NewQuizService(categoryRepo, questionRepo, attemptRepo)

	category := &model.Category{Name: "Sports"}
	mustCreate(t, db, category)
	mustCreate(t, db, &model.Question{
		CategoryID:   category.ID,
		QuestionText: "who won",
		OptionA:      "a", OptionB: "b", OptionC: "c", OptionD: "d",
		CorrectAnswer: "c",
	})

	set, err := quiz.FetchQuizSet(category.ID)
	if err != nil {
		t.Fatalf("fetch quiz set: %v", err)
	}

	raw, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "correct") {
		t.Fatalf("serialized quiz set leaks the answer key: %s", raw)
	}
}

func TestSubmitQuizRecordsAttempt(t *testing.T) {
	db := newTestDB(t)
	_, categoryRepo, questionRepo, attemptRepo := newTestRepos(db)
	quiz := service.NewQuizService(categoryRepo, questionRepo, attemptRepo)

	category := &model.Category{Name: "General Knowledge"}
	mustCreate(t, db, category)
	q1 := &model.Question{CategoryID: category.ID, QuestionText: "q1",
		OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectAnswer: "b"}
	q2 := &model.Question{CategoryID: category.ID, QuestionText: "q2",
		OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectAnswer: "a"}
	mustCreate(t, db, q1)
	mustCreate(t, db, q2)

	// q1 用 5 秒答对：50 + int(100*10/15) = 116；q2 答错
	score, err := quiz.SubmitQuiz(7, category.ID, []service.AnswerSubmission{
		{QuestionID: q1.ID, UserAnswer: "b", TimeTaken: 5},
		{QuestionID: q2.ID, UserAnswer: "d", TimeTaken: 3},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if score != 116 {
		t.Fatalf("expected score 116, got %d", score)
	}

	var attempt model.QuizAttempt
	if err := db.First(&attempt).Error; err != nil {
		t.Fatalf("attempt not recorded: %v", err)
	}
	if attempt.UserID != 7 || attempt.CategoryID != category.ID || attempt.Score != 116 {
		t.Fatalf("attempt row mismatch: %+v", attempt)
	}
	if attempt.CompletedAt.IsZero() {
		t.Fatal("attempt missing completion timestamp")
	}
}

func TestSubmitQuizIgnoresUnknownQuestions(t *testing.T) {
	db := newTestDB(t)
	_, categoryRepo, questionRepo, attemptRepo := newTestRepos(db)
	quiz := service.NewQuizService(categoryRepo, questionRepo, attemptRepo)

	category := &model.Category{Name: "Empty"}
	mustCreate(t, db, category)

	score, err := quiz.SubmitQuiz(1, category.ID, []service.AnswerSubmission{
		{QuestionID: 12345, UserAnswer: "a", TimeTaken: 1},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if score != 0 {
		t.Fatalf("unknown question should contribute 0, got %d", score)
	}
}
