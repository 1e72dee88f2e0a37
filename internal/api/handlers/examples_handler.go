package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"recipe-catalog/domain"
	"recipe-catalog/internal/api/presenters"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	uploadDir     = "./uploads"
	maxUploadSize = 10 << 20
)

var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

var exampleItems = []fiber.Map{
	{"id": 1, "name": "Item 1", "price": 100},
	{"id": 2, "name": "Item 2", "price": 200},
	{"id": 3, "name": "Item 3", "price": 300},
}

type (
	ExamplesHandler interface {
		CreateItemWithBody(c *fiber.Ctx) error
		QueryValidation(c *fiber.Ctx) error
		PathValidation(c *fiber.Ctx) error
		QueryModel(c *fiber.Ctx) error
		CreateProduct(c *fiber.Ctx) error
		HandleForm(c *fiber.Ctx) error
		HandleFormModel(c *fiber.Ctx) error
		FormatExample(c *fiber.Ctx) error
		UploadImage(c *fiber.Ctx) error
	}

	examplesHandler struct {
		validator *validator.Validate
	}
)

func NewExamplesHandler(validator *validator.Validate) ExamplesHandler {
	return &examplesHandler{
		validator: validator,
	}
}

func (h *examplesHandler) CreateItemWithBody(c *fiber.Ctx) error {
	req := new(domain.BodyExampleRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"item":       req.Item,
		"user":       req.User,
		"importance": req.Importance,
	}, fiber.StatusOK, domain.MessageSuccessBodyExample)
}

func (h *examplesHandler) QueryValidation(c *fiber.Ctx) error {
	req := domain.QueryValidationRequest{Limit: 10}
	if err := c.QueryParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQueryRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQueryRequest, err)
	}

	items := exampleItems
	if req.Q != "" {
		filtered := make([]fiber.Map, 0, len(items))
		for _, item := range items {
			if strings.Contains(strings.ToLower(item["name"].(string)), strings.ToLower(req.Q)) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	start := req.Skip
	if start > len(items) {
		start = len(items)
	}
	end := start + req.Limit
	if end > len(items) {
		end = len(items)
	}

	return c.JSON(fiber.Map{
		"q":     req.Q,
		"skip":  req.Skip,
		"limit": req.Limit,
		"items": items[start:end],
		"total": len(items),
	})
}

func (h *examplesHandler) PathValidation(c *fiber.Ctx) error {
	itemID, err := strconv.Atoi(c.Params("id"))
	if err != nil || itemID < 1 || itemID > 1000 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParseID, domain.ErrItemIDOutOfRange)
	}

	return c.JSON(fiber.Map{
		"item_id":     itemID,
		"name":        fmt.Sprintf("Item %d", itemID),
		"price":       itemID * 100,
		"description": fmt.Sprintf("Description for item %d", itemID),
	})
}

func (h *examplesHandler) QueryModel(c *fiber.Ctx) error {
	req := domain.FilterParamsRequest{Limit: 100, OrderBy: "created_at"}
	if err := c.QueryParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQueryRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQueryRequest, err)
	}

	items := make([]string, 0, req.Limit)
	for i := req.Offset; i < req.Offset+req.Limit; i++ {
		items = append(items, fmt.Sprintf("Item %d", i))
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"applied_filters": req,
		"items":           items,
	}, fiber.StatusOK, domain.MessageSuccessQueryModel)
}

func (h *examplesHandler) CreateProduct(c *fiber.Ctx) error {
	req := new(domain.ProductRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	totalImages := len(req.Images)
	if req.Image != nil {
		totalImages++
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"product":      req,
		"total_images": totalImages,
	}, fiber.StatusOK, domain.MessageSuccessNestedModels)
}

func (h *examplesHandler) HandleForm(c *fiber.Ctx) error {
	req := domain.FormRequest{Age: 18}
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFormRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFormRequest, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"username": req.Username,
		"age":      req.Age,
	}, fiber.StatusOK, domain.MessageSuccessForm)
}

func (h *examplesHandler) HandleFormModel(c *fiber.Ctx) error {
	req := new(domain.FormModelRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFormRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFormRequest, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"received_data": fiber.Map{
			"username":    req.Username,
			"remember_me": req.RememberMe,
		},
	}, fiber.StatusOK, domain.MessageSuccessFormModel)
}

func (h *examplesHandler) FormatExample(c *fiber.Ctx) error {
	format := c.Query("format", "json")
	if format != "json" && format != "html" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQueryRequest, domain.ErrInvalidFormat)
	}

	items := []fiber.Map{
		{"id": 1, "name": "First item", "value": 100},
		{"id": 2, "name": "Second item", "value": 200},
		{"id": 3, "name": "Third item", "value": 300},
		{"id": 4, "name": "Fourth item", "value": 400},
		{"id": 5, "name": "Fifth item", "value": 500},
	}
	createdAt := time.Now().Format(time.RFC3339)

	if format == "html" {
		var rows strings.Builder
		for _, item := range items {
			rows.WriteString(fmt.Sprintf("<tr><td>%v</td><td>%v</td><td>%v</td></tr>\n", item["id"], item["name"], item["value"]))
		}

		html := fmt.Sprintf(formatExamplePage, "Sample data", "Sample data", "This is test data", createdAt, rows.String())
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(html)
	}

	return c.JSON(fiber.Map{
		"title":       "Sample data",
		"description": "This is test data",
		"items":       items,
		"created_at":  createdAt,
	})
}

func (h *examplesHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadFile, err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadFile, domain.ErrFileNotImage)
	}

	if file.Size > maxUploadSize {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadFile, domain.ErrFileTooLarge)
	}

	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadFile, err)
	}

	uniqueName := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	if err := c.SaveFile(file, filepath.Join(uploadDir, uniqueName)); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadFile, err)
	}

	res := domain.UploadFileResponse{
		Filename:         uniqueName,
		OriginalFilename: file.Filename,
		URL:              fmt.Sprintf("/static/%s", uniqueName),
		Size:             file.Size,
		ContentType:      file.Header.Get("Content-Type"),
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadFile)
}

const formatExamplePage = `<!DOCTYPE html>
<html>
<head>
    <title>%s</title>
    <style>
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            background: #f5f5f5;
        }
        .container {
            background: white;
            padding: 30px;
            border-radius: 10px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
        }
        h1 { color: #2c3e50; }
        .date { color: #7f8c8d; font-size: 0.9em; }
        table {
            width: 100%%;
            border-collapse: collapse;
            margin-top: 20px;
        }
        th {
            background: #3498db;
            color: white;
            padding: 10px;
            text-align: left;
        }
        td {
            padding: 10px;
            border-bottom: 1px solid #ddd;
        }
        tr:hover { background: #f5f5f5; }
    </style>
</head>
<body>
    <div class="container">
        <h1>%s</h1>
        <p>%s</p>
        <p class="date">Created at: %s</p>

        <h3>Items:</h3>
        <table>
            <thead>
                <tr>
                    <th>ID</th>
                    <th>Name</th>
                    <th>Value</th>
                </tr>
            </thead>
            <tbody>
                %s
            </tbody>
        </table>
    </div>
</body>
</html>`
