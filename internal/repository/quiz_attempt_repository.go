package repository

import (
	"quiz_backend/internal/model"

	"gorm.io/gorm"
)

// QuizAttemptRepository 答题记录只增不改，仓库上不存在更新或删除方法
type QuizAttemptRepository struct {
	DB *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) *QuizAttemptRepository {
	return &QuizAttemptRepository{DB: db}
}

func (r *QuizAttemptRepository) Create(attempt *model.QuizAttempt) error {
	return r.DB.Create(attempt).Error
}

// AggregateRow 按用户聚合后的一行榜单数据
type AggregateRow struct {
	Username   string
	TotalScore int
	Attempts   int
}

// AggregateByUser 按用户汇总得分，按总分降序截取前 limit 名；
// categoryID 为 0 时不过滤分类
func (r *QuizAttemptRepository) AggregateByUser(categoryID uint, limit int) ([]AggregateRow, error) {
	var rows []AggregateRow

	query := r.DB.Table("quiz_attempts qa").
		Select("u.username AS username, SUM(qa.score) AS total_score, COUNT(qa.id) AS attempts").
		Joins("JOIN users u ON u.id = qa.user_id").
		Group("qa.user_id, u.username").
		Order("total_score DESC").
		Limit(limit)

	if categoryID != 0 {
		query = query.Where("qa.category_id = ?", categoryID)
	}

	err := query.Scan(&rows).Error
	return rows, err
}
