package service_test

import (
	"testing"

	"quiz_backend/internal/service"
)

func TestScoreAnswersSpeedWeighting(t *testing.T) {
	correct := map[uint]string{1: "b"}

	cases := []struct {
		name      string
		timeTaken float64
		want      int
	}{
		{"instant answer", 0, 150},
		{"exactly at the limit", 15, 50},
		{"over the limit clamps to base", 20, 50},
		{"fractional time truncates", 7.5, 100},
		{"five seconds", 5, 116},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := service.ScoreAnswers([]service.AnswerSubmission{
				{QuestionID: 1, UserAnswer: "b", TimeTaken: tc.timeTaken},
			}, correct)
			if got != tc.want {
				t.Fatalf("time_taken=%v: expected %d points, got %d", tc.timeTaken, tc.want, got)
			}
		})
	}
}

func TestScoreAnswersWrongAnswerScoresZero(t *testing.T) {
	correct := map[uint]string{1: "b"}

	for _, timeTaken := range []float64{0, 5, 15, 100} {
		got := service.ScoreAnswers([]service.AnswerSubmission{
			{QuestionID: 1, UserAnswer: "a", TimeTaken: timeTaken},
		}, correct)
		if got != 0 {
			t.Fatalf("wrong answer at %vs should score 0, got %d", timeTaken, got)
		}
	}
}

func TestScoreAnswersUnknownQuestionScoresZero(t *testing.T) {
	correct := map[uint]string{1: "b"}

	got := service.ScoreAnswers([]service.AnswerSubmission{
		{QuestionID: 999, UserAnswer: "b", TimeTaken: 0},
	}, correct)
	if got != 0 {
		t.Fatalf("unknown question should score 0, got %d", got)
	}
}

func TestScoreAnswersSumsAcrossSubmissions(t *testing.T) {
	correct := map[uint]string{1: "b", 2: "c", 3: "a"}

	got := service.ScoreAnswers([]service.AnswerSubmission{
		{QuestionID: 1, UserAnswer: "b", TimeTaken: 0},  // 150
		{QuestionID: 2, UserAnswer: "c", TimeTaken: 15}, // 50
		{QuestionID: 3, UserAnswer: "d", TimeTaken: 1},  // 答错
	}, correct)
	if got != 200 {
		t.Fatalf("expected total 200, got %d", got)
	}
}

func TestScoreAnswersNeverNegative(t *testing.T) {
	correct := map[uint]string{1: "b"}

	got := service.ScoreAnswers([]service.AnswerSubmission{
		{QuestionID: 1, UserAnswer: "a", TimeTaken: 9999},
		{QuestionID: 2, UserAnswer: "b", TimeTaken: 9999},
	}, correct)
	if got < 0 {
		t.Fatalf("score must be non-negative, got %d", got)
	}
}
