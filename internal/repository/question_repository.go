package repository

import (
	"quiz_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) FindByCategory(categoryID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("category_id = ?", categoryID).Find(&questions).Error
	return questions, err
}

// FindCorrectAnswers 批量取出题目的正确选项；不存在的题目不出现在结果里
func (r *QuestionRepository) FindCorrectAnswers(ids []uint) (map[uint]string, error) {
	answers := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return answers, nil
	}

	var questions []model.Question
	err := r.DB.Select("id", "correct_answer").Where("id IN ?", ids).Find(&questions).Error
	if err != nil {
		return nil, err
	}

	for _, q := range questions {
		answers[q.ID] = q.CorrectAnswer
	}
	return answers, nil
}
