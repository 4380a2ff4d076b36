package http

import (
	"github.com/gin-gonic/gin"

	"community-support-platform/pkg/response"
)

// Ask godoc
// @Summary     Ask the assistant a question
// @Description Classifies the question against the FAQ keyword rules and returns
// @Description a canned template, a generated reply, or the default message.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body askReq true "Question"
// @Success     200 {object} askResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/ask [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Answer(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Answer: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newAskResp(output))
}

// Topics godoc
// @Summary     List suggested topics
// @Description Returns the suggested conversation topics shown beside the chat box.
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} topicsResp
// @Router      /api/v1/assistant/topics [GET]
func (h *handler) Topics(c *gin.Context) {
	ctx := c.Request.Context()

	output := h.uc.Topics(ctx)
	response.OK(c, h.newTopicsResp(output))
}
