package controller

import (
	"bytes"
	"fmt"
	"html/template"

	"emogo-be/internal/dto"
	"emogo-be/internal/pkg/serverutils"
	"emogo-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const dataPageTemplate = `<!DOCTYPE html>
<html lang="zh-Hant">
<head>
<meta charset="utf-8">
<title>EmoGo 紀錄</title>
<style>
table { border-collapse: collapse; }
th, td { border: 1px solid #999; padding: 4px 10px; }
</style>
</head>
<body>
<h1>EmoGo 紀錄</h1>
<table>
<tr><th>時間戳記</th><th>時段</th><th>心情分數</th><th>GPS 座標</th><th>影片</th></tr>
{{range .}}<tr>
<td>{{.Timestamp}}</td>
<td>{{.Slot}}</td>
<td>{{.Score}}</td>
<td>{{.GpsText}}</td>
<td>{{if .HasVideo}}<a href="{{.VideoURL}}">{{.VideoText}}</a>{{else}}{{.VideoText}}{{end}}</td>
</tr>
{{end}}</table>
</body>
</html>
`

type IDataController interface {
	RegisterRoutes(r fiber.Router)
	ShowData(ctx *fiber.Ctx) error
	DownloadAllData(ctx *fiber.Ctx) error
}

type dataController struct {
	aggregationService service.IAggregationService
	exportService      service.IExportService
	baseURL            string
	page               *template.Template
}

func NewDataController(
	aggregationService service.IAggregationService,
	exportService service.IExportService,
	baseURL string,
) IDataController {
	return &dataController{
		aggregationService: aggregationService,
		exportService:      exportService,
		baseURL:            baseURL,
		page:               template.Must(template.New("data").Parse(dataPageTemplate)),
	}
}

func (c *dataController) RegisterRoutes(r fiber.Router) {
	r.Get("/data", c.ShowData)
	r.Get("/download_all_data", c.DownloadAllData)
}

func (c *dataController) ShowData(ctx *fiber.Ctx) error {
	rows, err := c.aggregationService.AggregateRows(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	views := make([]dto.DataRowView, 0, len(rows))
	for _, row := range rows {
		view := dto.DataRowView{
			Score:     row.Sentiment.Score,
			Slot:      row.Sentiment.Slot,
			Timestamp: row.Sentiment.Timestamp,
			GpsText:   service.SentinelNoGps,
			VideoText: service.SentinelNoVideo,
		}
		if row.HasGps {
			view.GpsText = fmt.Sprintf("%.6f, %.6f", row.Gps.Latitude, row.Gps.Longitude)
		}
		if row.HasVideo {
			view.HasVideo = true
			view.VideoURL = fmt.Sprintf("%s/download/vlog/%s", c.baseURL, row.Vlog.Id)
			view.VideoText = "觀看影片"
		}
		views = append(views, view)
	}

	var buf bytes.Buffer
	if err := c.page.Execute(&buf, views); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.Send(buf.Bytes())
}

func (c *dataController) DownloadAllData(ctx *fiber.Ctx) error {
	format := ctx.Query("format", "json")

	if format == "csv" {
		data, err := c.exportService.ExportCSV(ctx.Context())
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
		}
		ctx.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="emogo_data.csv"`)
		return ctx.Send(data)
	}

	res, err := c.exportService.ExportJSON(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="emogo_data.json"`)
	return ctx.JSON(res)
}
