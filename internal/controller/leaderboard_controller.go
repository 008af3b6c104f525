package controller

import (
	"net/http"
	"strconv"

	"quiz_backend/internal/service"
	"quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	LeaderboardService *service.LeaderboardService
}

func NewLeaderboardController(leaderboardService *service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{LeaderboardService: leaderboardService}
}

// GetLeaderboard godoc
// @Summary 排行榜
// @Description 按用户汇总历史得分，降序取前 50 名；可按分类过滤
// @Tags 排行榜
// @Produce json
// @Param category_id query int false "分类ID"
// @Success 200 {array} service.LeaderboardEntry
// @Router /api/leaderboard [get]
func (c *LeaderboardController) GetLeaderboard(ctx *gin.Context) {
	// 无法解析的 category_id 当作未过滤处理
	var categoryID uint
	if raw := ctx.Query("category_id"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 32); err == nil {
			categoryID = uint(parsed)
		}
	}

	entries, err := c.LeaderboardService.GetLeaderboard(categoryID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}
