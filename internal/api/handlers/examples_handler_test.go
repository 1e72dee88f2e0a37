package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExamplesTestApp() *fiber.App {
	app := fiber.New()
	handler := NewExamplesHandler(validator.New())
	group := app.Group("/api/v1/examples")
	group.Post("/body", handler.CreateItemWithBody)
	group.Get("/query-validation", handler.QueryValidation)
	group.Get("/path-validation/:id", handler.PathValidation)
	group.Get("/query-model", handler.QueryModel)
	group.Post("/nested-models", handler.CreateProduct)
	group.Post("/form", handler.HandleForm)
	group.Post("/form-model", handler.HandleFormModel)
	group.Get("/format-example", handler.FormatExample)
	group.Post("/upload-image", handler.UploadImage)
	return app
}

func TestQueryValidationDefaults(t *testing.T) {
	app := newExamplesTestApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/examples/query-validation", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Q     string      `json:"q"`
		Skip  int         `json:"skip"`
		Limit int         `json:"limit"`
		Items []fiber.Map `json:"items"`
		Total int         `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Q)
	assert.Equal(t, 0, body.Skip)
	assert.Equal(t, 10, body.Limit)
	assert.Len(t, body.Items, 3)
	assert.Equal(t, 3, body.Total)
}

func TestQueryValidationFiltersItems(t *testing.T) {
	app := newExamplesTestApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/examples/query-validation?q=Item%201", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Items []fiber.Map `json:"items"`
		Total int         `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, "Item 1", body.Items[0]["name"])
	assert.Equal(t, 1, body.Total)
}

func TestQueryValidationRejectsBadParams(t *testing.T) {
	for name, query := range map[string]string{
		"short q":       "q=ab",
		"zero limit":    "limit=0",
		"negative skip": "skip=-1",
		"huge limit":    "limit=101",
	} {
		t.Run(name, func(t *testing.T) {
			app := newExamplesTestApp()

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/examples/query-validation?"+query, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestPathValidationBounds(t *testing.T) {
	app := newExamplesTestApp()

	cases := []struct {
		id   string
		code int
	}{
		{"1", fiber.StatusOK},
		{"1000", fiber.StatusOK},
		{"0", fiber.StatusBadRequest},
		{"1001", fiber.StatusBadRequest},
		{"abc", fiber.StatusBadRequest},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/examples/path-validation/"+tc.id, nil))
		require.NoError(t, err)
		assert.Equal(t, tc.code, resp.StatusCode, "id %s", tc.id)
	}
}

func TestPathValidationDerivesPrice(t *testing.T) {
	app := newExamplesTestApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/examples/path-validation/7", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		ItemID int    `json:"item_id"`
		Name   string `json:"name"`
		Price  int    `json:"price"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 7, body.ItemID)
	assert.Equal(t, "Item 7", body.Name)
	assert.Equal(t, 700, body.Price)
}

func TestCreateItemWithBodyReturnsObjects(t *testing.T) {
	app := newExamplesTestApp()

	body := `{
		"item": {"name": "Hammer", "price": 9.99},
		"user": {"username": "alice"},
		"importance": 3
	}`
	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/examples/body", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp.Body)
	assert.True(t, env.Status)

	var data struct {
		Importance int `json:"importance"`
		Item       struct {
			Name string `json:"name"`
		} `json:"item"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 3, data.Importance)
	assert.Equal(t, "Hammer", data.Item.Name)
}

func TestCreateItemWithBodyRejectsImportanceOutOfRange(t *testing.T) {
	app := newExamplesTestApp()

	body := `{
		"item": {"name": "Hammer", "price": 9.99},
		"user": {"username": "alice"},
		"importance": 11
	}`
	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/examples/body", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestQueryModelDefaults(t *testing.T) {
	app := newExamplesTestApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/examples/query-model", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp.Body)

	var data struct {
		AppliedFilters struct {
			Limit   int    `json:"limit"`
			Offset  int    `json:"offset"`
			OrderBy string `json:"order_by"`
		} `json:"applied_filters"`
		Items []string `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 100, data.AppliedFilters.Limit)
	assert.Equal(t, "created_at", data.AppliedFilters.OrderBy)
	require.Len(t, data.Items, 100)
	assert.Equal(t, "Item 0", data.Items[0])
}

func TestQueryModelRejectsUnknownOrderBy(t *testing.T) {
	app := newExamplesTestApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/examples/query-model?order_by=price", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateProductCountsImages(t *testing.T) {
	app := newExamplesTestApp()

	body := `{
		"name": "Camera",
		"description": "A mirrorless camera",
		"price": 1299.99,
		"image": {"url": "https://example.com/front.png", "name": "front"},
		"images": [
			{"url": "https://example.com/back.png", "name": "back"},
			{"url": "https://example.com/top.png", "name": "top"}
		]
	}`
	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/examples/nested-models", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp.Body)

	var data struct {
		TotalImages int `json:"total_images"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 3, data.TotalImages)
}

func TestHandleFormDefaultsAge(t *testing.T) {
	app := newExamplesTestApp()

	form := "username=alice&password=supersecret1"
	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/examples/form", strings.NewReader(form))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp.Body)

	var data struct {
		Username string `json:"username"`
		Age      int    `json:"age"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "alice", data.Username)
	assert.Equal(t, 18, data.Age)
}

func TestHandleFormRejectsShortPassword(t *testing.T) {
	app := newExamplesTestApp()

	form := "username=alice&password=short"
	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/examples/form", strings.NewReader(form))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleFormModelEchoesFields(t *testing.T) {
	app := newExamplesTestApp()

	form := "username=alice&password=supersecret1&remember_me=true"
	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/examples/form-model", strings.NewReader(form))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp.Body)

	var data struct {
		ReceivedData struct {
			Username   string `json:"username"`
			RememberMe bool   `json:"remember_me"`
		} `json:"received_data"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "alice", data.ReceivedData.Username)
	assert.True(t, data.ReceivedData.RememberMe)
}

func TestFormatExampleReturnsJSONByDefault(t *testing.T) {
	app := newExamplesTestApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/examples/format-example", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Title string      `json:"title"`
		Items []fiber.Map `json:"items"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Sample data", body.Title)
	assert.Len(t, body.Items, 5)
}

func TestFormatExampleRendersHTML(t *testing.T) {
	app := newExamplesTestApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/examples/format-example?format=html", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<table>")
	assert.Contains(t, string(raw), "Sample data")
	assert.Contains(t, string(raw), "Fifth item")
}

func TestFormatExampleRejectsUnknownFormat(t *testing.T) {
	app := newExamplesTestApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/examples/format-example?format=xml", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUploadImageRejectsNonImageFile(t *testing.T) {
	app := newExamplesTestApp()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("plain text"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/examples/upload-image", &buf)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	env := decodeEnvelope(t, resp.Body)
	assert.False(t, env.Status)
	assert.Contains(t, env.Error, "image")
}

func TestUploadImageRequiresFileField(t *testing.T) {
	app := newExamplesTestApp()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("note", "no file attached"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/examples/upload-image", &buf)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
