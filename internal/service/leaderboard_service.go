package service

import "quiz_backend/internal/repository"

// 榜单最多展示的名次数
const leaderboardLimit = 50

type LeaderboardService struct {
	AttemptRepo *repository.QuizAttemptRepository
}

func NewLeaderboardService(attemptRepo *repository.QuizAttemptRepository) *LeaderboardService {
	return &LeaderboardService{AttemptRepo: attemptRepo}
}

// LeaderboardEntry 榜单一行
type LeaderboardEntry struct {
	Username   string `json:"username"`
	TotalScore int    `json:"total_score"`
	Attempts   int    `json:"attempts"`
	Rank       int    `json:"rank"`
}

// GetLeaderboard 按用户汇总历史得分并排名；categoryID 为 0 时取全量。
// 名次从 1 递增，同分按查询返回顺序依次排号，不并列
func (s *LeaderboardService) GetLeaderboard(categoryID uint) ([]LeaderboardEntry, error) {
	rows, err := s.AttemptRepo.AggregateByUser(categoryID, leaderboardLimit)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, LeaderboardEntry{
			Username:   row.Username,
			TotalScore: row.TotalScore,
			Attempts:   row.Attempts,
			Rank:       i + 1,
		})
	}
	return entries, nil
}
