package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	achievementin "hunttrack/internal/modules/achievement/port/in"
	applicationdto "hunttrack/internal/modules/application/dto"
	applicationin "hunttrack/internal/modules/application/port/in"
	metricsin "hunttrack/internal/modules/metrics/port/in"
	studydto "hunttrack/internal/modules/study/dto"
	studyin "hunttrack/internal/modules/study/port/in"
)

type handlers struct {
	applications applicationin.Usecase
	study        studyin.Usecase
	metrics      metricsin.Usecase
	achievements achievementin.Usecase
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handlers) dashboard(c *gin.Context) {
	out, err := h.metrics.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *handlers) listApplications(c *gin.Context) {
	input := applicationdto.ListInput{
		Statuses: c.QueryArray("status"),
		From:     c.Query("from"),
		To:       c.Query("to"),
	}
	out, err := h.applications.List(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *handlers) addApplication(c *gin.Context) {
	var input applicationdto.AddInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badJSON(c, err)
		return
	}
	out, err := h.applications.Add(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *handlers) getApplication(c *gin.Context) {
	out, err := h.applications.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *handlers) updateApplication(c *gin.Context) {
	var input applicationdto.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badJSON(c, err)
		return
	}
	input.ID = c.Param("id")
	out, err := h.applications.Update(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *handlers) deleteApplication(c *gin.Context) {
	if err := h.applications.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) listStudyLogs(c *gin.Context) {
	out, err := h.study.List(c.Request.Context(), studydto.ListInput{From: c.Query("from"), To: c.Query("to")})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *handlers) logStudy(c *gin.Context) {
	var input studydto.LogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badJSON(c, err)
		return
	}
	out, err := h.study.Log(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *handlers) getStudyLog(c *gin.Context) {
	out, err := h.study.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *handlers) updateStudyLog(c *gin.Context) {
	var input studydto.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badJSON(c, err)
		return
	}
	input.ID = c.Param("id")
	out, err := h.study.Update(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *handlers) deleteStudyLog(c *gin.Context) {
	if err := h.study.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) listAchievements(c *gin.Context) {
	out, err := h.achievements.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
