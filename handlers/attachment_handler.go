package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/ticketdesk/services"
	"github.com/linskybing/ticketdesk/utils"
)

type AttachmentHandler struct {
	Attachments *services.AttachmentService
}

// Upload godoc
// @Summary Attach a file to a ticket
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to attach"
// @Success 201 {object} dto.AttachmentOut
// @Router /tickets/{id}/attachments [post]
func (h *AttachmentHandler) Upload(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		unauthorized(c, err.Error())
		return
	}
	projectID, ok := projectScope(c)
	if !ok {
		return
	}
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid ticket id")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "file required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	out, err := h.Attachments.Upload(c, ticketID, projectID, userID,
		fileHeader.Filename, contentType, file, fileHeader.Size)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// List godoc
// @Summary List a ticket's attachments
// @Produce json
// @Success 200 {array} dto.AttachmentOut
// @Router /tickets/{id}/attachments [get]
func (h *AttachmentHandler) List(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		unauthorized(c, err.Error())
		return
	}
	projectID, ok := projectScope(c)
	if !ok {
		return
	}
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid ticket id")
		return
	}

	out, err := h.Attachments.List(ticketID, projectID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Download godoc
// @Summary Stream an attachment's content
// @Produce octet-stream
// @Router /tickets/{id}/attachments/{attachment_id} [get]
func (h *AttachmentHandler) Download(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		unauthorized(c, err.Error())
		return
	}
	projectID, ok := projectScope(c)
	if !ok {
		return
	}
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid ticket id")
		return
	}
	attachmentID, err := utils.ParseIDParam(c, "attachment_id")
	if err != nil {
		badRequest(c, "invalid attachment id")
		return
	}

	attachment, reader, err := h.Attachments.Open(c, ticketID, attachmentID, projectID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	defer reader.Close()

	c.DataFromReader(http.StatusOK, attachment.Size, attachment.ContentType, reader, map[string]string{
		"Content-Disposition": `attachment; filename="` + attachment.FileName + `"`,
	})
}

// Delete godoc
// @Summary Remove an attachment
// @Success 204
// @Router /tickets/{id}/attachments/{attachment_id} [delete]
func (h *AttachmentHandler) Delete(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		unauthorized(c, err.Error())
		return
	}
	projectID, ok := projectScope(c)
	if !ok {
		return
	}
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid ticket id")
		return
	}
	attachmentID, err := utils.ParseIDParam(c, "attachment_id")
	if err != nil {
		badRequest(c, "invalid attachment id")
		return
	}

	if err := h.Attachments.Delete(c, ticketID, attachmentID, projectID, userID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
