package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/CodeClinic/internal/dto"
	"github.com/lshigami/CodeClinic/internal/service"
	"github.com/rs/zerolog/log"
)

type ReportController struct {
	reportService service.ReportService
}

func NewReportController(reportService service.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// GetReports godoc
// @Summary (Admin) Build the reports dashboard snapshot
// @Description Computes every engagement, AI-vs-human and oversight metric fresh from the store. Fails as a whole if any sub-query fails; there is no partial report.
// @Tags Admin - Reports
// @Produce json
// @Success 200 {object} dto.ReportSnapshot
// @Failure 500 {object} dto.ErrorResponse "Report build failed"
// @Router /admin/reports [get]
func (c *ReportController) GetReports(ctx *gin.Context) {
	snapshot, err := c.reportService.BuildReport()
	if err != nil {
		log.Error().Err(err).Msg("GetReports: Report build failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to build report", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, snapshot)
}
