package service

import (
	"math/rand"
	"time"

	"quiz_backend/internal/model"
	"quiz_backend/internal/repository"
)

// 每次出题最多下发的题目数
const quizSetSize = 10

type QuizService struct {
	CategoryRepo *repository.CategoryRepository
	QuestionRepo *repository.QuestionRepository
	AttemptRepo  *repository.QuizAttemptRepository
}

func NewQuizService(
	categoryRepo *repository.CategoryRepository,
	questionRepo *repository.QuestionRepository,
	attemptRepo *repository.QuizAttemptRepository,
) *QuizService {
	return &QuizService{
		CategoryRepo: categoryRepo,
		QuestionRepo: questionRepo,
		AttemptRepo:  attemptRepo,
	}
}

// CategoryView 分类列表项
type CategoryView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// QuestionView 下发给客户端的题目，不含正确选项
type QuestionView struct {
	ID           uint   `json:"id"`
	QuestionText string `json:"question_text"`
	OptionA      string `json:"option_a"`
	OptionB      string `json:"option_b"`
	OptionC      string `json:"option_c"`
	OptionD      string `json:"option_d"`
}

func (s *QuizService) ListCategories() ([]CategoryView, error) {
	categories, err := s.CategoryRepo.FindAll()
	if err != nil {
		return nil, err
	}

	views := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, CategoryView{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
		})
	}
	return views, nil
}

// FetchQuizSet 随机抽取最多 10 道题。洗牌在进程内完成，顺序不可复现；
// 分类题目不足 10 道时全部下发
func (s *QuizService) FetchQuizSet(categoryID uint) ([]QuestionView, error) {
	questions, err := s.QuestionRepo.FindByCategory(categoryID)
	if err != nil {
		return nil, err
	}

	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	if len(questions) > quizSetSize {
		questions = questions[:quizSetSize]
	}

	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, QuestionView{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			OptionA:      q.OptionA,
			OptionB:      q.OptionB,
			OptionC:      q.OptionC,
			OptionD:      q.OptionD,
		})
	}
	return views, nil
}

// SubmitQuiz 给一次提交计分并记录成绩。只持久化总分，
// 单题作答不落库
func (s *QuizService) SubmitQuiz(userID, categoryID uint, answers []AnswerSubmission) (int, error) {
	ids := make([]uint, 0, len(answers))
	for _, a := range answers {
		ids = append(ids, a.QuestionID)
	}

	correctByID, err := s.QuestionRepo.FindCorrectAnswers(ids)
	if err != nil {
		return 0, err
	}

	totalScore := ScoreAnswers(answers, correctByID)

	attempt := &model.QuizAttempt{
		UserID:      userID,
		CategoryID:  categoryID,
		Score:       totalScore,
		CompletedAt: time.Now(),
	}
	if err := s.AttemptRepo.Create(attempt); err != nil {
		return 0, err
	}

	return totalScore, nil
}
