package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"actapi/internal/model"
	"actapi/internal/service"
)

// ActaIDHeader carries the archive ID of a freshly rendered acta.
const ActaIDHeader = "X-Acta-ID"

func parseForm(c *fiber.Ctx) (model.Form, error) {
	var f model.Form
	if err := c.BodyParser(&f); err != nil {
		return f, err
	}
	return f, nil
}

func validID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	_, err := uuid.Parse(id)
	return id, err == nil
}

// GenerateActa renders the submitted form and returns the PDF as a download.
//
// @Summary     Render an acta
// @Tags        actas
// @Accept      json
// @Produce     application/pdf
// @Param       form body     model.Form true "Meeting minutes"
// @Success     200  {file}   binary
// @Failure     400  {object} errorPayload
// @Failure     422  {object} errorPayload
// @Failure     500  {object} errorPayload
// @Router      /actas [post]
func GenerateActa(svc service.ActaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := parseForm(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON acta form")
		}

		res, err := svc.Generate(c.UserContext(), f)
		if err != nil {
			return writeServiceError(c, err)
		}
		if res.Acta != nil {
			c.Set(ActaIDHeader, res.Acta.ID)
		}
		c.Attachment(res.Filename)
		return c.Status(fiber.StatusOK).Send(res.PDF)
	}
}

// SendActa renders the submitted form and emails it to the configured recipients.
// A failed email still answers 200 with notified=false and a reason.
//
// @Summary     Render and email an acta
// @Tags        actas
// @Accept      json
// @Produce     json
// @Param       form body     model.Form true "Meeting minutes"
// @Success     200  {object} service.SendResult
// @Failure     400  {object} errorPayload
// @Failure     422  {object} errorPayload
// @Failure     500  {object} errorPayload
// @Router      /actas/send [post]
func SendActa(svc service.ActaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := parseForm(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON acta form")
		}

		res, err := svc.Send(c.UserContext(), f)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// ResendActa emails an archived acta again.
//
// @Summary     Email an archived acta again
// @Tags        actas
// @Produce     json
// @Param       id  path     string true "Acta ID (UUID)"
// @Success     200 {object} service.SendResult
// @Failure     400 {object} errorPayload
// @Failure     404 {object} errorPayload
// @Failure     501 {object} errorPayload
// @Router      /actas/{id}/send [post]
func ResendActa(svc service.ActaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := validID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		res, err := svc.Resend(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// ListActas returns archived actas, newest first.
//
// @Summary     List archived actas
// @Tags        actas
// @Produce     json
// @Param       limit  query    int false "Page size" default(10)
// @Param       offset query    int false "Offset"    default(0)
// @Success     200    {object} service.ActaListResult
// @Failure     400    {object} errorPayload
// @Failure     501    {object} errorPayload
// @Router      /actas [get]
func ListActas(svc service.ActaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetActa returns the archive record of one acta.
//
// @Summary     Get an archived acta
// @Tags        actas
// @Produce     json
// @Param       id  path     string true "Acta ID (UUID)"
// @Success     200 {object} model.Acta
// @Failure     400 {object} errorPayload
// @Failure     404 {object} errorPayload
// @Failure     501 {object} errorPayload
// @Router      /actas/{id} [get]
func GetActa(svc service.ActaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := validID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		acta, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(acta)
	}
}

// DownloadActa redirects to a short-lived presigned URL of the archived PDF.
//
// @Summary     Download an archived acta
// @Tags        actas
// @Param       id  path     string true "Acta ID (UUID)"
// @Success     302
// @Failure     400 {object} errorPayload
// @Failure     404 {object} errorPayload
// @Failure     501 {object} errorPayload
// @Router      /actas/{id}/download [get]
func DownloadActa(svc service.ActaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := validID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		url, err := svc.DownloadURL(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Redirect(url, fiber.StatusFound)
	}
}

// DeleteActa removes an archived acta and its PDF.
//
// @Summary     Delete an archived acta
// @Tags        actas
// @Param       id  path     string true "Acta ID (UUID)"
// @Success     204
// @Failure     400 {object} errorPayload
// @Failure     404 {object} errorPayload
// @Failure     501 {object} errorPayload
// @Router      /actas/{id} [delete]
func DeleteActa(svc service.ActaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := validID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
