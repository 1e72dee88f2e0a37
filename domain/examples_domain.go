package domain

import "errors"

var (
	MessageSuccessBodyExample  = "objects created successfully"
	MessageSuccessQueryModel   = "query model parsed successfully"
	MessageSuccessNestedModels = "product created successfully"
	MessageSuccessForm         = "form submitted successfully"
	MessageSuccessFormModel    = "form model processed successfully"
	MessageSuccessUploadFile   = "file uploaded successfully"

	MessageFailedQueryRequest = "failed to parse query request"
	MessageFailedFormRequest  = "failed to parse form request"
	MessageFailedUploadFile   = "failed to upload file"

	ErrFileNotImage     = errors.New("file must be a png, jpg, jpeg or webp image")
	ErrFileTooLarge     = errors.New("file too large, maximum size is 10MB")
	ErrItemIDOutOfRange = errors.New("item_id must be between 1 and 1000")
	ErrInvalidFormat    = errors.New("format must be json or html")
)

type (
	ExampleItem struct {
		Name        string   `json:"name" validate:"required"`
		Description string   `json:"description"`
		Price       float64  `json:"price" validate:"required"`
		Tax         *float64 `json:"tax"`
	}

	ExampleUser struct {
		Username string `json:"username" validate:"required"`
		FullName string `json:"full_name"`
	}

	BodyExampleRequest struct {
		Item       ExampleItem `json:"item" validate:"required"`
		User       ExampleUser `json:"user" validate:"required"`
		Importance int         `json:"importance" validate:"required,min=1,max=10"`
	}

	QueryValidationRequest struct {
		Q     string `query:"q" validate:"omitempty,min=3,max=50"`
		Skip  int    `query:"skip" validate:"min=0"`
		Limit int    `query:"limit" validate:"min=1,max=100"`
	}

	FilterParamsRequest struct {
		Limit   int      `json:"limit" query:"limit" validate:"min=1,max=100"`
		Offset  int      `json:"offset" query:"offset" validate:"min=0"`
		OrderBy string   `json:"order_by" query:"order_by" validate:"omitempty,oneof=created_at updated_at"`
		Tags    []string `json:"tags" query:"tags"`
	}

	ExampleImage struct {
		URL  string `json:"url" validate:"required"`
		Name string `json:"name" validate:"required"`
	}

	ProductRequest struct {
		Name        string         `json:"name" validate:"required"`
		Description string         `json:"description" validate:"required"`
		Price       float64        `json:"price" validate:"required"`
		Tags        []string       `json:"tags"`
		Image       *ExampleImage  `json:"image"`
		Images      []ExampleImage `json:"images" validate:"dive"`
	}

	FormRequest struct {
		Username string `form:"username" validate:"required,min=3,max=20"`
		Password string `form:"password" validate:"required,min=8"`
		Age      int    `form:"age" validate:"min=18,max=120"`
	}

	FormModelRequest struct {
		Username   string `form:"username" validate:"required,min=3,max=20"`
		Password   string `form:"password" validate:"required,min=8"`
		RememberMe bool   `form:"remember_me"`
	}

	UploadFileResponse struct {
		Filename         string `json:"filename"`
		OriginalFilename string `json:"original_filename"`
		URL              string `json:"url"`
		Size             int64  `json:"size"`
		ContentType      string `json:"content_type"`
	}
)
