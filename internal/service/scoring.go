package service

const (
	questionTimeLimit = 15  // 每题限时（秒）
	speedBonusMax     = 100 // 速度加成上限
	correctBasePoints = 50  // 答对保底分
)

// AnswerSubmission 单题作答，只在一次提交请求内存在，不单独落库
type AnswerSubmission struct {
	QuestionID uint    `json:"question_id"`
	UserAnswer string  `json:"user_answer"`
	TimeTaken  float64 `json:"time_taken"`
}

// scorePoints 单题得分：剩余时间按比例换算速度加成，再加保底分。
// 超时不倒扣，剩余时间在 0 处截断
func scorePoints(timeTaken float64) int {
	timeRemaining := questionTimeLimit - timeTaken
	if timeRemaining < 0 {
		timeRemaining = 0
	}
	return int(speedBonusMax*timeRemaining/questionTimeLimit) + correctBasePoints
}

// ScoreAnswers 计算一次提交的总分。答错计 0 分；
// correctByID 中不存在的题目视为未命中，同样计 0 分
func ScoreAnswers(answers []AnswerSubmission, correctByID map[uint]string) int {
	totalScore := 0
	for _, answer := range answers {
		correct, ok := correctByID[answer.QuestionID]
		if !ok || correct != answer.UserAnswer {
			continue
		}
		totalScore += scorePoints(answer.TimeTaken)
	}
	return totalScore
}
