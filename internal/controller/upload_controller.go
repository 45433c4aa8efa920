package controller

import (
	"io"
	"strconv"

	"emogo-be/internal/dto"
	"emogo-be/internal/pkg/serverutils"
	"emogo-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUploadController interface {
	RegisterRoutes(r fiber.Router)
	UploadSentiment(ctx *fiber.Ctx) error
	UploadGps(ctx *fiber.Ctx) error
	UploadVlog(ctx *fiber.Ctx) error
	UploadFullRecord(ctx *fiber.Ctx) error
}

type uploadController struct {
	ingestionService service.IIngestionService
}

func NewUploadController(ingestionService service.IIngestionService) IUploadController {
	return &uploadController{ingestionService: ingestionService}
}

func (c *uploadController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/upload")
	h.Post("/sentiment", c.UploadSentiment)
	h.Post("/gps", c.UploadGps)
	h.Post("/vlog", c.UploadVlog)
	h.Post("/full_record", c.UploadFullRecord)
}

func (c *uploadController) UploadSentiment(ctx *fiber.Ctx) error {
	var req dto.UploadSentimentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid JSON body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ingestionService.SubmitSentiment(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}

func (c *uploadController) UploadGps(ctx *fiber.Ctx) error {
	var req dto.UploadGpsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid JSON body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ingestionService.SubmitGps(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}

func (c *uploadController) UploadVlog(ctx *fiber.Ctx) error {
	payload, filename, err := readUploadedFile(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	mood, _ := strconv.Atoi(ctx.FormValue("mood"))
	in := dto.VlogInput{
		Slot:     ctx.FormValue("slot"),
		Mood:     mood,
		ScaleRef: ctx.FormValue("scale_ref"),
		Filename: filename,
		Payload:  payload,
	}

	res, err := c.ingestionService.SubmitVlog(ctx.Context(), &in)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}

func (c *uploadController) UploadFullRecord(ctx *fiber.Ctx) error {
	payload, filename, err := readUploadedFile(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	moodScore, err := strconv.Atoi(ctx.FormValue("mood_score"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "mood_score must be an integer"))
	}
	lat, err := strconv.ParseFloat(ctx.FormValue("lat"), 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "lat must be a number"))
	}
	lon, err := strconv.ParseFloat(ctx.FormValue("lon"), 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "lon must be a number"))
	}
	timestamp := ctx.FormValue("timestamp")
	if timestamp == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "timestamp is required"))
	}

	in := dto.FullRecordInput{
		MoodScore: moodScore,
		Slot:      ctx.FormValue("slot"),
		Latitude:  lat,
		Longitude: lon,
		Timestamp: timestamp,
		Duration:  ctx.FormValue("duration"),
		Filename:  filename,
		Payload:   payload,
	}

	res, err := c.ingestionService.SubmitFullRecord(ctx.Context(), &in)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}

func readUploadedFile(ctx *fiber.Ctx) ([]byte, string, error) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	payload, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return payload, fileHeader.Filename, nil
}
