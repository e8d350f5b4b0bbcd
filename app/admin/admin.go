// Package admin exposes a generic CRUD surface bound directly to the
// catalog tables, one resource per table. Orders are deliberately absent:
// they are created once through the order transaction and never edited.
package admin

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ilumastore/go-store-backend/models"
)

// Resource is one admin-managed table.
type Resource interface {
	Name() string
	Mount(rg *gin.RouterGroup)
}

type resource[T any] struct {
	name string
	db   *gorm.DB
}

// NewResource binds CRUD handlers for entity type T under the given name.
func NewResource[T any](db *gorm.DB, name string) Resource {
	return &resource[T]{name: name, db: db}
}

// Routes builds the registration table for every admin-managed entity and
// mounts it on rg.
func Routes(rg *gin.RouterGroup, db *gorm.DB) {
	resources := []Resource{
		NewResource[models.Device](db, "devices"),
		NewResource[models.Iqos](db, "iqos"),
		NewResource[models.Terea](db, "terea"),
		NewResource[models.DevicesCategory](db, "devices_categories"),
		NewResource[models.IqosCategory](db, "iqos_categories"),
		NewResource[models.TereaCategory](db, "terea_categories"),
	}
	for _, res := range resources {
		res.Mount(rg)
		slog.Debug("admin resource mounted", "resource", res.Name())
	}
}

func (r *resource[T]) Name() string {
	return r.name
}

func (r *resource[T]) Mount(rg *gin.RouterGroup) {
	g := rg.Group("/" + r.name)
	g.GET("", r.list)
	g.GET("/:id", r.get)
	g.POST("", r.create)
	g.PUT("/:id", r.update)
	g.DELETE("/:id", r.remove)
}

func (r *resource[T]) list(c *gin.Context) {
	var rows []T
	if err := r.db.Order("id").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list " + r.name})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (r *resource[T]) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var row T
	if err := r.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": r.name + " entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load " + r.name})
		return
	}
	c.JSON(http.StatusOK, row)
}

func (r *resource[T]) create(c *gin.Context) {
	var row T
	if err := c.ShouldBindJSON(&row); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	if err := r.db.Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create " + r.name})
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (r *resource[T]) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var existing T
	if err := r.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": r.name + " entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load " + r.name})
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	// The key never changes, and relations are edited through their own
	// resource.
	delete(payload, "id")
	delete(payload, "category")

	if err := r.db.Model(&existing).Updates(payload).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update " + r.name})
		return
	}

	var row T
	if err := r.db.First(&row, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reload " + r.name})
		return
	}
	c.JSON(http.StatusOK, row)
}

func (r *resource[T]) remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res := r.db.Delete(new(T), id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete " + r.name})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": r.name + " entry not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}
