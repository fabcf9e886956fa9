package handler

import (
	"Mirsui/config"
	"Mirsui/middleware"
	"Mirsui/pkg/context"
	"Mirsui/pkg/response"
	"Mirsui/service"
	"Mirsui/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Prediction struct {
	Config            *config.Config
	PredictionService service.IPredictionService
}

func (h *Prediction) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/predictions")
	g.Use(authorize)
	g.POST("", context.Wrap(h.CreatePrediction))
	g.GET("/mine", context.Wrap(h.ListMyPredictions))
	g.GET("/prophet", context.Wrap(h.GetProphetStats))
}

// CreatePrediction 创建流行度预言并扣除下注积分
func (h *Prediction) CreatePrediction(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreatePredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := h.PredictionService.CreatePrediction(c.Request.Context(), userID, &req)
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	response.Success(c, resp)
	return nil
}

func (h *Prediction) ListMyPredictions(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.ListPredictionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := h.PredictionService.ListMyPredictions(c.Request.Context(),
		userID, req.Status, req.Cursor, req.PageSize)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, resp)
	return nil
}

// GetProphetStats 预言家战绩
func (h *Prediction) GetProphetStats(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	stats, err := h.PredictionService.GetProphetStats(c.Request.Context(), userID)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, stats)
	return nil
}
