package handler

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Quinhas/sgpg-api/internal/registry"
	"github.com/Quinhas/sgpg-api/pkg/response"
)

type resourceService[T any] interface {
	Schema() *registry.Schema
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, req interface{}) (*T, error)
	Update(ctx context.Context, id int64, req interface{}) (*T, error)
	SoftDelete(ctx context.Context, id int64) (*T, error)
	Restore(ctx context.Context, id int64) (*T, error)
	Remove(ctx context.Context, id int64) (*T, error)
}

// ResourceHandler exposes the lifecycle operations of one resource. C and U
// are the create and update request bodies.
type ResourceHandler[T, C, U any] struct {
	svc    resourceService[T]
	schema *registry.Schema
}

// NewResourceHandler constructs a ResourceHandler.
func NewResourceHandler[T, C, U any](svc resourceService[T]) *ResourceHandler[T, C, U] {
	return &ResourceHandler[T, C, U]{svc: svc, schema: svc.Schema()}
}

// List godoc
// @Summary List every record of a resource
// @Tags Resources
// @Produce json
// @Param resource path string true "Resource name"
// @Success 200 {object} response.Envelope
// @Router /{resource} [get]
func (h *ResourceHandler[T, C, U]) List(c *gin.Context) {
	records, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, fmt.Sprintf("%d %s returned", len(records), h.schema.Plural), records)
}

// Get godoc
// @Summary Get a record by id
// @Tags Resources
// @Produce json
// @Param resource path string true "Resource name"
// @Param id path int true "Record ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} errors.Error
// @Failure 404 {object} errors.Error
// @Router /{resource}/{id} [get]
func (h *ResourceHandler[T, C, U]) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	record, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, h.schema.Label+" found", record)
}

// Create godoc
// @Summary Create a record
// @Tags Resources
// @Accept json
// @Produce json
// @Param resource path string true "Resource name"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} errors.Error
// @Failure 409 {object} errors.Error
// @Router /{resource} [post]
func (h *ResourceHandler[T, C, U]) Create(c *gin.Context) {
	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	record, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, h.schema.Label+" created", record)
}

// Update godoc
// @Summary Partially update a record
// @Tags Resources
// @Accept json
// @Produce json
// @Param resource path string true "Resource name"
// @Param id path int true "Record ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} errors.Error
// @Failure 409 {object} errors.Error
// @Router /{resource}/{id} [put]
func (h *ResourceHandler[T, C, U]) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	record, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, h.schema.Label+" updated", record)
}

// SoftDelete godoc
// @Summary Mark a record deleted
// @Tags Resources
// @Produce json
// @Param resource path string true "Resource name"
// @Param id path int true "Record ID"
// @Success 200 {object} response.Envelope
// @Router /{resource}/{id}/soft-delete [patch]
func (h *ResourceHandler[T, C, U]) SoftDelete(c *gin.Context) {
	h.byID(c, h.svc.SoftDelete, h.schema.Label+" soft-deleted")
}

// Restore godoc
// @Summary Clear the deleted mark of a record
// @Tags Resources
// @Produce json
// @Param resource path string true "Resource name"
// @Param id path int true "Record ID"
// @Success 200 {object} response.Envelope
// @Router /{resource}/{id}/restore [patch]
func (h *ResourceHandler[T, C, U]) Restore(c *gin.Context) {
	h.byID(c, h.svc.Restore, h.schema.Label+" restored")
}

// Remove godoc
// @Summary Permanently delete a record
// @Tags Resources
// @Produce json
// @Param resource path string true "Resource name"
// @Param id path int true "Record ID"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} errors.Error
// @Router /{resource}/{id} [delete]
func (h *ResourceHandler[T, C, U]) Remove(c *gin.Context) {
	h.byID(c, h.svc.Remove, h.schema.Label+" removed")
}

// Routes returns the standard route set below /<resource>.
func (h *ResourceHandler[T, C, U]) Routes() []Route {
	base := "/" + h.schema.Resource
	return []Route{
		{Method: "GET", Path: base, Handler: h.List},
		{Method: "GET", Path: base + "/:id", Handler: h.Get},
		{Method: "POST", Path: base, Handler: h.Create},
		{Method: "PUT", Path: base + "/:id", Handler: h.Update},
		{Method: "PATCH", Path: base + "/:id/soft-delete", Handler: h.SoftDelete},
		{Method: "PATCH", Path: base + "/:id/restore", Handler: h.Restore},
		{Method: "DELETE", Path: base + "/:id", Handler: h.Remove},
	}
}

func (h *ResourceHandler[T, C, U]) byID(c *gin.Context, op func(context.Context, int64) (*T, error), message string) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	record, err := op(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, message, record)
}
