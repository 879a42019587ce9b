package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"product-catalog-api/internal/models"
	"product-catalog-api/internal/services"
	"product-catalog-api/pkg/lambda"
)

// ProductHandler handles product catalog HTTP requests
type ProductHandler struct {
	productService services.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// @Summary Create a new product
// @Description Create a new product under a server-generated id
// @Tags products
// @Accept json
// @Produce json
// @Param product body models.ProductInput true "Product data"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return
	}

	input, violations, err := models.DecodeProductInput(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if len(violations) > 0 {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: violations})
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), input)
	if err != nil {
		// Store faults are not translated here; the error middleware
		// surfaces them as a generic server failure
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, product)
}

// @Summary Get a product
// @Description Get a product by ID
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		if isNotFoundError(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: msgProductNotFound})
			return
		}
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, product)
}

// @Summary Update a product
// @Description Replace every field of an existing product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body models.ProductInput true "Updated product data"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	// The target must exist before the body is even parsed; an unknown
	// id answers 404 no matter what the request carries
	if _, err := h.productService.GetProduct(c.Request.Context(), id); err != nil {
		if isNotFoundError(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: msgProductNotFound})
			return
		}
		_ = c.Error(err)
		c.Abort()
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return
	}

	input, violations, err := models.DecodeProductInput(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if len(violations) > 0 {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: violations})
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, input)
	if err != nil {
		if isNotFoundError(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: msgProductNotFound})
			return
		}
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, product)
}

// @Summary Delete a product
// @Description Delete a product by ID
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Success 204 "Product deleted"
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		if isNotFoundError(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: msgProductNotFound})
			return
		}
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List products
// @Description Get every product in the catalog
// @Tags products
// @Accept json
// @Produce json
// @Success 200 {array} models.Product
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, products)
}

// Lambda-compatible handler methods

// jsonResponse marshals payload into a Lambda response with the given status
func jsonResponse(status int, payload interface{}) (*lambda.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &lambda.Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}, nil
}

// HandleCreate handles product creation for Lambda
func (h *ProductHandler) HandleCreate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	input, violations, err := models.DecodeProductInput(req.Body)
	if err != nil {
		return jsonResponse(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	if len(violations) > 0 {
		return jsonResponse(http.StatusBadRequest, ValidationErrorResponse{Errors: violations})
	}

	product, err := h.productService.CreateProduct(ctx, input)
	if err != nil {
		// Store faults propagate to the runtime unhandled
		return nil, err
	}

	return jsonResponse(http.StatusOK, product)
}

// HandleGet handles product retrieval for Lambda
func (h *ProductHandler) HandleGet(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := req.PathParams["id"]

	product, err := h.productService.GetProduct(ctx, id)
	if err != nil {
		if isNotFoundError(err) {
			return jsonResponse(http.StatusNotFound, ErrorResponse{Error: msgProductNotFound})
		}
		return nil, err
	}

	return jsonResponse(http.StatusOK, product)
}

// HandleUpdate handles product replacement for Lambda
func (h *ProductHandler) HandleUpdate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := req.PathParams["id"]

	// Same ordering as the server path: existence first, then the body
	if _, err := h.productService.GetProduct(ctx, id); err != nil {
		if isNotFoundError(err) {
			return jsonResponse(http.StatusNotFound, ErrorResponse{Error: msgProductNotFound})
		}
		return nil, err
	}

	input, violations, err := models.DecodeProductInput(req.Body)
	if err != nil {
		return jsonResponse(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	if len(violations) > 0 {
		return jsonResponse(http.StatusBadRequest, ValidationErrorResponse{Errors: violations})
	}

	product, err := h.productService.UpdateProduct(ctx, id, input)
	if err != nil {
		if isNotFoundError(err) {
			return jsonResponse(http.StatusNotFound, ErrorResponse{Error: msgProductNotFound})
		}
		return nil, err
	}

	return jsonResponse(http.StatusOK, product)
}

// HandleDelete handles product removal for Lambda
func (h *ProductHandler) HandleDelete(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := req.PathParams["id"]

	if err := h.productService.DeleteProduct(ctx, id); err != nil {
		if isNotFoundError(err) {
			return jsonResponse(http.StatusNotFound, ErrorResponse{Error: msgProductNotFound})
		}
		return nil, err
	}

	return &lambda.Response{StatusCode: http.StatusNoContent}, nil
}

// HandleList handles catalog listing for Lambda
func (h *ProductHandler) HandleList(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	products, err := h.productService.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	return jsonResponse(http.StatusOK, products)
}
