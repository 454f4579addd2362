package apiv1

import (
	"context"
	"encoding/json"

	"talent-screen-backend/config"
	"talent-screen-backend/controllers"
	"talent-screen-backend/lib/interview"
	apimodels "talent-screen-backend/models/api"
	interviewapimodels "talent-screen-backend/models/api/interview"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type interviewApiController struct {
	controllers.BaseAPIController
}

func InitInterviewApiRouters(app *fiber.App) {
	controller := interviewApiController{}
	app.Route("interview", func(router fiber.Router) {
		router.Post("start", controller.startSession)
		router.Get(":id", controller.getSession)
		router.Get(":id/transcript", controller.getTranscript)
		router.Post(":id/message", controller.postMessage)
		router.Post(":id/reset", controller.resetSession)
		router.Use(":id/ws", func(ctx *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(ctx) {
				ctx.Locals("sessionID", ctx.Params("id"))
				return ctx.Next()
			}
			return fiber.ErrUpgradeRequired
		})
		router.Get(":id/ws", websocket.New(chatHandler))
	})
}

// @Summary Start a new screening session
// @Tags Interview
// @Description Creates a session in the greeting stage and returns the opening message
// @Success 200 {object} apimodels.Response{data=interviewapimodels.SessionView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/start [post]
func (c *interviewApiController) startSession(ctx *fiber.Ctx) error {
	view, err := interview.Instance.StartSession(ctx.UserContext())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to start screening session")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Get session state
// @Tags Interview
// @Description Returns the current stage, progress and completion flag
// @Param	id		path		string	true	"session id"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.SessionView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{id} [get]
func (c *interviewApiController) getSession(ctx *fiber.Ctx) error {
	view, err := interview.Instance.GetSession(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get screening session")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Get session transcript
// @Tags Interview
// @Description Returns the ordered message log of a session
// @Param	id		path		string	true	"session id"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.TranscriptItem}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{id}/transcript [get]
func (c *interviewApiController) getTranscript(ctx *fiber.Ctx) error {
	items, err := interview.Instance.GetTranscript(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get session transcript")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(items))
}

// @Summary Send a candidate message
// @Tags Interview
// @Description Processes one conversation turn and returns the assistant reply
// @Param	id		path		string	true	"session id"
// @Param	body	body		interviewapimodels.MessageRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.ReplyView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{id}/message [post]
func (c *interviewApiController) postMessage(ctx *fiber.Ctx) error {
	var payload interviewapimodels.MessageRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(config.Conf.Session.MaxMessageSize); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	reply, err := interview.Instance.ProcessMessage(ctx.UserContext(), ctx.Params("id"), payload.Message)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to process candidate message")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(reply))
}

// @Summary Reset a session
// @Tags Interview
// @Description Restarts the conversation from the greeting stage, keeping the transcript
// @Param	id		path		string	true	"session id"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.ReplyView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{id}/reset [post]
func (c *interviewApiController) resetSession(ctx *fiber.Ctx) error {
	reply, err := interview.Instance.Reset(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to reset screening session")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(reply))
}

var closeCodes []int

func init() {
	for i := websocket.CloseNormalClosure; i <= websocket.CloseTLSHandshake; i++ {
		closeCodes = append(closeCodes, i)
	}
}

// @Summary Screening chat over websocket
// @Tags Interview
// @Description Each text frame is a candidate message, each reply frame is a ReplyView JSON
// @Param	id		path		string	true	"session id"
// @Success 200 {object} interviewapimodels.ReplyView
// @Failure 400
// @Failure 500
// @router /api/v1/interview/{id}/ws [get]
func chatHandler(c *websocket.Conn) {
	sessionID := c.Locals("sessionID").(string)
	logger := log.WithField("session_id", sessionID)
	for {
		_, data, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, closeCodes...) {
				logger.WithError(err).Error("failed to read ws message")
			}
			break
		}
		payload := interviewapimodels.MessageRequest{Message: string(data)}
		if err = payload.Validate(config.Conf.Session.MaxMessageSize); err != nil {
			writeWsError(c, logger, err.Error())
			continue
		}
		reply, err := interview.Instance.ProcessMessage(context.Background(), sessionID, payload.Message)
		if err != nil {
			logger.WithError(err).Error("failed to process ws message")
			writeWsError(c, logger, "failed to process message")
			continue
		}
		out, err := json.Marshal(apimodels.NewResponse(reply))
		if err != nil {
			logger.WithError(err).Error("failed to marshal ws reply")
			continue
		}
		if err = c.WriteMessage(websocket.TextMessage, out); err != nil {
			logger.WithError(err).Error("failed to write ws reply")
			break
		}
	}
}

func writeWsError(c *websocket.Conn, logger *log.Entry, msg string) {
	out, err := json.Marshal(apimodels.NewError(msg))
	if err != nil {
		logger.WithError(err).Error("failed to marshal ws error")
		return
	}
	if err = c.WriteMessage(websocket.TextMessage, out); err != nil {
		logger.WithError(err).Error("failed to write ws error")
	}
}
