package controller

import (
	"fmt"

	"emogo-be/internal/pkg/serverutils"
	"emogo-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IVlogController interface {
	RegisterRoutes(r fiber.Router)
	DownloadVlog(ctx *fiber.Ctx) error
}

type vlogController struct {
	videoService service.IVideoService
}

func NewVlogController(videoService service.IVideoService) IVlogController {
	return &vlogController{videoService: videoService}
}

func (c *vlogController) RegisterRoutes(r fiber.Router) {
	r.Get("/download/vlog/:id", c.DownloadVlog)
}

func (c *vlogController) DownloadVlog(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	vlog, err := c.videoService.GetVlog(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	// Malformed identifiers end up here too: they can never name a record.
	if vlog == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "vlog not found"))
	}

	ctx.Set(fiber.HeaderContentType, "video/mp4")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename=%q`, vlog.Filename))
	return ctx.Send(vlog.Payload)
}
