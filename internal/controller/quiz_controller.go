package controller

import (
	"net/http"
	"strconv"

	"quiz_backend/internal/service"
	"quiz_backend/internal/util"
	"quiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// GetCategories godoc
// @Summary 分类列表
// @Description 返回全部题目分类，按名称排序
// @Tags 答题
// @Produce json
// @Success 200 {array} service.CategoryView
// @Router /api/categories [get]
func (c *QuizController) GetCategories(ctx *gin.Context) {
	categories, err := c.QuizService.ListCategories()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// GetQuiz godoc
// @Summary 按分类出题
// @Description 随机抽取最多 10 道题，响应中不含正确选项
// @Tags 答题
// @Produce json
// @Security ApiKeyAuth
// @Param categoryId path int true "分类ID"
// @Success 200 {array} service.QuestionView
// @Failure 400 {object} util.MessageResponse "分类ID不合法"
// @Failure 401 {object} util.MessageResponse "未授权"
// @Router /api/quiz/{categoryId} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	categoryID, err := strconv.ParseUint(ctx.Param("categoryId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid category id")
		return
	}

	questions, err := c.QuizService.FetchQuizSet(uint(categoryID))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// swagger:model SubmitRequest
type SubmitRequest struct {
	CategoryID uint                       `json:"category_id" binding:"required"`
	Answers    []service.AnswerSubmission `json:"answers" binding:"required"`
}

// SubmitQuiz godoc
// @Summary 提交答题
// @Description 按限时计分并记录一次答题成绩
// @Tags 答题
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SubmitRequest true "作答内容"
// @Success 200 {object} object "总分与提示"
// @Failure 400 {object} util.MessageResponse "请求参数错误"
// @Failure 401 {object} util.MessageResponse "未授权"
// @Router /api/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "Token is invalid")
		return
	}

	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Missing required fields")
		return
	}

	score, err := c.QuizService.SubmitQuiz(claims.UserID, req.CategoryID, req.Answers)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	monitoring.QuizSubmissions.WithLabelValues(strconv.FormatUint(uint64(req.CategoryID), 10)).Inc()

	ctx.JSON(http.StatusOK, gin.H{
		"score":   score,
		"message": "Quiz submitted successfully",
	})
}
