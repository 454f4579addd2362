package apiv1

import (
	"bytes"
	"fmt"
	"time"

	"talent-screen-backend/config"
	"talent-screen-backend/controllers"
	"talent-screen-backend/db"
	candidatestore "talent-screen-backend/lib/candidate/store"
	xlsexport "talent-screen-backend/lib/export/xls"
	filestorage "talent-screen-backend/lib/file-storage"
	"talent-screen-backend/lib/interview"
	apimodels "talent-screen-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type screeningApiController struct {
	controllers.BaseAPIController
}

func InitScreeningApiRouters(app *fiber.App) {
	controller := screeningApiController{}
	app.Route("screening", func(router fiber.Router) {
		router.Get("stats", controller.getStats)
		router.Get("register", controller.downloadRegister)
		router.Put("register/archive", controller.archiveRegister)
		router.Get("candidate/:id/summary", controller.candidateSummary)
	})
}

// @Summary Screening statistics
// @Tags Screening
// @Description Session counts, completion rate, average experience and top technologies
// @Success 200 {object} apimodels.Response{data=interviewapimodels.StatsView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screening/stats [get]
func (c *screeningApiController) getStats(ctx *fiber.Ctx) error {
	stats, err := interview.Instance.Statistics()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get screening statistics")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(stats))
}

// @Summary Download the candidate register
// @Tags Screening
// @Description Builds the full candidate register as an Excel file
// @Success 200
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screening/register [get]
func (c *screeningApiController) downloadRegister(ctx *fiber.Ctx) error {
	list, err := candidatestore.NewInstance(db.DB).List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list candidates for register export")
	}
	data, err := xlsexport.Instance.ExportCandidateRegister(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to build candidate register")
	}
	fileName := fmt.Sprintf("candidates-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Archive the candidate register
// @Tags Screening
// @Description Rebuilds the register and stores it in object storage
// @Success 200 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screening/register/archive [put]
func (c *screeningApiController) archiveRegister(ctx *fiber.Ctx) error {
	list, err := candidatestore.NewInstance(db.DB).List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list candidates for register export")
	}
	data, err := xlsexport.Instance.ExportCandidateRegister(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to build candidate register")
	}
	err = filestorage.Instance.UploadRegister(ctx.UserContext(), config.Conf.Export.RegisterFileName, data.Bytes())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to archive candidate register")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Candidate summary report
// @Tags Screening
// @Description One-candidate screening report as a PDF file
// @Param	id		path		string	true	"session id"
// @Success 200
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screening/candidate/{id}/summary [get]
func (c *screeningApiController) candidateSummary(ctx *fiber.Ctx) error {
	data, err := interview.Instance.SummaryPDF(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to build candidate summary")
	}
	fileName := fmt.Sprintf("candidate-%v.pdf", ctx.Params("id"))
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(bytes.NewReader(data))
}
